package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"talent-stake/cmd/version"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(app *App) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Shows the version, git commit, build date, and runtime information.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if short {
				_, err := fmt.Fprintln(app.Out, version.Version())
				return err
			}
			return app.Print(version.Get())
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print a single human-readable line")
	return cmd
}
