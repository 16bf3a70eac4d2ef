package commands

import (
	"github.com/spf13/cobra"
	"talent-stake/infrastructure/config"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the ledger schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Building the container runs the migrations.
			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}
			if err := config.MigrateDatabase(cmd.Context(), container.DB); err != nil {
				return err
			}

			return app.Print(map[string]interface{}{
				"driver":   container.Config.Database.Driver,
				"migrated": true,
			})
		},
	}
}
