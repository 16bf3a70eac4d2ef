package commands

import (
	"github.com/spf13/cobra"
	"talent-stake/domain/interfaces"
)

// NewDisputeCommand creates the dispute command group.
func NewDisputeCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dispute",
		Short: "Record and list disputes between job participants",
	}

	cmd.AddCommand(
		newDisputeOpenCommand(app),
		newDisputeListCommand(app),
	)
	return cmd
}

func newDisputeOpenCommand(app *App) *cobra.Command {
	var evidence string

	cmd := &cobra.Command{
		Use:   "open [job_id] [target] [reason]",
		Short: "Report another participant of a job",
		Long: `Records a dispute raised by the principal against another participant of the job.
Disputes are only recorded and announced; they never move funds.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter, err := app.CallerPrincipal()
			if err != nil {
				return err
			}
			jobID, err := parseID("job id", args[0])
			if err != nil {
				return err
			}
			target, err := parseAddress("target", args[1])
			if err != nil {
				return err
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			dispute, err := container.DisputeService.RecordDispute(cmd.Context(), interfaces.RecordDisputeParams{
				JobID:    jobID,
				Reporter: reporter,
				Target:   target,
				Reason:   args[2],
				Evidence: evidence,
			})
			if err != nil {
				return err
			}
			return app.Print(dispute)
		},
	}

	cmd.Flags().StringVar(&evidence, "evidence", "", "link or text supporting the report")
	return cmd
}

func newDisputeListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [job_id]",
		Short: "List the disputes of a job",
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

			disputes, err := container.DisputeService.ListDisputes(cmd.Context(), jobID)
			if err != nil {
				return err
			}
			return app.Print(disputes)
		},
	}
}
