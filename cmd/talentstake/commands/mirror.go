package commands

import (
	"github.com/spf13/cobra"
	"talent-stake/domain/interfaces"
)

// NewMirrorCommand creates the mirror command group.
func NewMirrorCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Maintain the read-side projection of the ledger",
	}

	cmd.AddCommand(
		newMirrorSyncCommand(app),
		newMirrorReconcileCommand(app),
		newMirrorShowCommand(app),
	)
	return cmd
}

func newMirrorSyncCommand(app *App) *cobra.Command {
	var params interfaces.SyncMirrorParams

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Project pending ledger events into the read store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}
			if params.BatchSize == 0 {
				params.BatchSize = container.Config.Mirror.BatchSize
			}

			result, err := container.SyncMirrorUseCase.Execute(cmd.Context(), params)
			if err != nil {
				return err
			}
			return app.Print(result)
		},
	}

	cmd.Flags().IntVar(&params.BatchSize, "batch-size", 0, "events per batch (defaults to mirror.batch_size)")
	cmd.Flags().IntVar(&params.MaxBatches, "max-batches", 0, "stop after this many batches (0 drains everything)")
	return cmd
}

func newMirrorReconcileCommand(app *App) *cobra.Command {
	var params interfaces.ReconcileMirrorParams

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Overwrite projections that differ from the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			result, err := container.ReconcileMirrorUseCase.Execute(cmd.Context(), params)
			if err != nil {
				return err
			}
			return app.Print(result)
		},
	}

	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "jobs and referrals read per page")
	return cmd
}

func newMirrorShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [job_id]",
		Short: "Show the projected job and its referrals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID("job id", args[0])
			if err != nil {
				return err
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			job, err := container.ReadStore.GetJob(cmd.Context(), jobID)
			if err != nil {
				return err
			}
			referrals, err := container.ReadStore.ListReferralsByJob(cmd.Context(), jobID)
			if err != nil {
				return err
			}
			return app.Print(map[string]interface{}{
				"job":       job,
				"referrals": referrals,
			})
		},
	}
}
