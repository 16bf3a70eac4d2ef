package commands

import (
	"github.com/spf13/cobra"
	flags "talent-stake/config"
	"talent-stake/domain/errors"
)

// NewRootCommand creates the talentstake root command with every subcommand attached.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "talentstake",
		Short: "Escrowed referral marketplace ledger",
		Long: `Runs the escrow and adjudication ledger behind a referral marketplace:
companies post bounties, referrers stake on candidates, and job owners decide
who gets paid.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().StringVarP(&app.ConfigPath, flags.ConfigFileFlag, flags.ShortConfigFileFlag, "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&app.LogLevel, flags.LogLevelFlag, flags.ShortLogLevelFlag, "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&app.Output, flags.OutputTypeFlag, flags.ShortOutputTypeFlag, OutputFormatJSON, "output format (json, yaml, table)")
	rootCmd.PersistentFlags().StringVarP(&app.Principal, flags.PrincipalFlag, flags.ShortPrincipalFlag, "", "address to act as (defaults to $"+PrincipalEnv+")")

	rootCmd.AddCommand(
		NewJobCommand(app),
		NewReferralCommand(app),
		NewTokenCommand(app),
		NewDisputeCommand(app),
		NewMirrorCommand(app),
		NewExportCommand(app),
		NewServeCommand(app),
		NewMigrateCommand(app),
		NewVersionCommand(app),
	)

	return rootCmd
}

// FormatError renders err for the terminal. Ledger rejections use the
// human-readable reason so the user knows how to correct them.
func FormatError(err error) string {
	if errors.Classify(err) == errors.ClassInternal {
		return err.Error()
	}
	return errors.UserMessage(err)
}
