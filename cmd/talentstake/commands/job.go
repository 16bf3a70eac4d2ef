package commands

import (
	"github.com/spf13/cobra"
	"talent-stake/domain/entities"
	"talent-stake/domain/interfaces"
)

// NewJobCommand creates the job command group.
func NewJobCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Create, inspect and withdraw jobs",
	}

	cmd.AddCommand(
		newJobCreateCommand(app),
		newJobShowCommand(app),
		newJobListCommand(app),
		newJobHistoryCommand(app),
		newJobWithdrawCommand(app),
	)
	return cmd
}

func newJobCreateCommand(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create [title] [bounty]",
		Short: "Open a job and escrow its bounty",
		Long: `Pulls the bounty from the principal's balance into escrow and opens the job.
The principal must have approved the escrow for at least the bounty (see "token approve").`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			creator, err := app.CallerPrincipal()
			if err != nil {
				return err
			}
			bounty, err := parseAmount("bounty", args[1])
			if err != nil {
				return err
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			job, err := container.EscrowEngine.CreateJob(cmd.Context(), interfaces.CreateJobParams{
				Creator:     creator,
				Title:       args[0],
				Description: description,
				Bounty:      bounty,
			})
			if err != nil {
				return err
			}
			return app.Print(job)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "job description")
	return cmd
}

func newJobShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [job_id]",
		Short: "Show a job with its referrals",
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

			view, err := container.LedgerQueries.GetJobView(cmd.Context(), jobID)
			if err != nil {
				return err
			}
			return app.Print(view)
		},
	}
}

func newJobListCommand(app *App) *cobra.Command {
	var (
		creator string
		state   string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := entities.JobFilter{Limit: limit}
			if creator != "" {
				addr, err := parseAddress("creator", creator)
				if err != nil {
					return err
				}
				filter.Creator = &addr
			}
			if state != "" {
				js := entities.JobState(state)
				filter.State = &js
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			jobs, err := container.LedgerQueries.ListJobs(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return app.Print(jobs)
		},
	}

	cmd.Flags().StringVar(&creator, "creator", "", "only jobs created by this address")
	cmd.Flags().StringVar(&state, "state", "", "only jobs in this state (open, closed)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of jobs")
	return cmd
}

func newJobHistoryCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history [job_id]",
		Short: "Show the ledger events of a job",
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

			events, err := container.LedgerQueries.JobHistory(cmd.Context(), jobID)
			if err != nil {
				return err
			}
			return app.Print(events)
		},
	}
}

func newJobWithdrawCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw [job_id]",
		Short: "Close a job and return its pot to the creator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.CallerPrincipal()
			if err != nil {
				return err
			}
			jobID, err := parseID("job id", args[0])
			if err != nil {
				return err
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			result, err := container.EscrowEngine.WithdrawJob(cmd.Context(), interfaces.WithdrawJobParams{
				JobID:  jobID,
				Caller: caller,
			})
			if err != nil {
				return err
			}
			return app.Print(result)
		},
	}
}
