// Package main is the entry point for the talentstake CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"talent-stake/cmd/talentstake/commands"
)

func main() {
	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	app := commands.NewApp()
	defer func() {
		if err := app.Close(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to close container: %v\n", err)
		}
	}()

	rootCmd := commands.NewRootCommand(app)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", commands.FormatError(err))
		return 1
	}
	return 0
}
