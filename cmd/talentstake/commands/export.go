package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
	"talent-stake/domain/dto"
	"talent-stake/domain/entities"
	"talent-stake/infrastructure/config"
)

// NewExportCommand creates the export command.
func NewExportCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write a YAML snapshot of every job and referral",
		Long: `Exports the ledger as a YAML document: every job with its referrals,
the escrow holder and the funds it currently holds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			snapshot, err := buildSnapshot(cmd.Context(), container)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(snapshot)
			if err != nil {
				return fmt.Errorf("failed to marshal snapshot: %w", err)
			}
			if err := os.WriteFile(args[0], out, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}

			return app.Print(map[string]interface{}{
				"path": args[0],
				"jobs": len(snapshot.Jobs),
			})
		},
	}
}

func buildSnapshot(ctx context.Context, container *config.Container) (*dto.LedgerSnapshot, error) {
	holder, err := container.Config.Escrow.Holder()
	if err != nil {
		return nil, err
	}
	balance, err := container.LedgerQueries.EscrowBalance(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := container.LedgerQueries.ListJobs(ctx, entities.JobFilter{})
	if err != nil {
		return nil, err
	}

	snapshot := &dto.LedgerSnapshot{
		GeneratedAt:   time.Now().UTC(),
		EscrowHolder:  holder,
		EscrowBalance: balance,
		Jobs:          make([]dto.JobView, 0, len(jobs)),
	}
	for _, job := range jobs {
		view, err := container.LedgerQueries.GetJobView(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		snapshot.Jobs = append(snapshot.Jobs, *view)
	}
	return snapshot, nil
}
