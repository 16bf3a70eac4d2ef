package commands

import (
	"github.com/spf13/cobra"
	"talent-stake/domain/dto"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// NewReferralCommand creates the referral command group.
func NewReferralCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "referral",
		Short: "Stake, claim and adjudicate referrals",
	}

	cmd.AddCommand(
		newReferralStakeCommand(app),
		newReferralClaimCommand(app),
		newReferralAdjudicateCommand(app),
		newReferralShowCommand(app),
		newReferralListCommand(app),
	)
	return cmd
}

func newReferralStakeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stake [job_id] [pitch]",
		Short: "Stake a referral on an open job",
		Long: `Pulls the referral stake from the principal into escrow and prints the claim hash.
Hand the claim hash to the candidate; it is the only way to claim the referral.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			referrer, err := app.CallerPrincipal()
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

			referral, err := container.EscrowEngine.StakeReferral(cmd.Context(), interfaces.StakeReferralParams{
				JobID:    jobID,
				Referrer: referrer,
				Pitch:    args[1],
			})
			if err != nil {
				return err
			}
			return app.Print(dto.StakeReferralResponse{
				ReferralID: referral.ID,
				ClaimHash:  referral.ClaimHash,
				Referral:   referral,
			})
		},
	}
}

func newReferralClaimCommand(app *App) *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "claim [claim_hash]",
		Short: "Claim a referral as the candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := parseHash("claim hash", args[0])
			if err != nil {
				return err
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			if checkOnly {
				claimable, err := container.LedgerQueries.IsReferralClaimable(cmd.Context(), hash)
				if err != nil {
					return err
				}
				return app.Print(dto.ClaimStatusResponse{ClaimHash: hash, Claimable: claimable})
			}

			candidate, err := app.CallerPrincipal()
			if err != nil {
				return err
			}
			referral, err := container.EscrowEngine.ClaimReferral(cmd.Context(), interfaces.ClaimReferralParams{
				ClaimHash: hash,
				Candidate: candidate,
			})
			if err != nil {
				return err
			}
			return app.Print(referral)
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether the hash is claimable")
	return cmd
}

func newReferralAdjudicateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "adjudicate [referral_id] [pass|spam|hire]",
		Short: "Decide a submitted referral as the job owner",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.CallerPrincipal()
			if err != nil {
				return err
			}
			referralID, err := parseID("referral id", args[0])
			if err != nil {
				return err
			}
			decision, err := entities.ParseDecision(args[1])
			if err != nil {
				return errors.NewDomainError(errors.ErrInvalidDecision, err.Error())
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			result, err := container.EscrowEngine.AdjudicateReferral(cmd.Context(), interfaces.AdjudicateReferralParams{
				ReferralID: referralID,
				Decision:   decision,
				Caller:     caller,
			})
			if err != nil {
				return err
			}
			return app.Print(result)
		},
	}
}

func newReferralShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [referral_id]",
		Short: "Show a referral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			referralID, err := parseID("referral id", args[0])
			if err != nil {
				return err
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			referral, err := container.LedgerQueries.GetReferral(cmd.Context(), referralID)
			if err != nil {
				return err
			}
			return app.Print(referral)
		},
	}
}

func newReferralListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the principal's referrals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			referrer, err := app.CallerPrincipal()
			if err != nil {
				return err
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			referrals, err := container.LedgerQueries.ListReferralsByReferrer(cmd.Context(), referrer)
			if err != nil {
				return err
			}
			return app.Print(referrals)
		},
	}
}
