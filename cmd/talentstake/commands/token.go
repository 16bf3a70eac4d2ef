package commands

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	flags "talent-stake/config"
	"talent-stake/domain/dto"
	"talent-stake/infrastructure/config"
)

// NewTokenCommand creates the token command group.
func NewTokenCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage settlement balances and escrow allowances",
	}

	cmd.AddCommand(
		newTokenFundCommand(app),
		newTokenApproveCommand(app),
		newTokenBalanceCommand(app),
		newTokenEscrowCommand(app),
	)
	return cmd
}

func newTokenFundCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fund [address] [amount]",
		Short: "Credit settlement funds to an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := parseAddress("address", args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount("amount", args[1])
			if err != nil {
				return err
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			if err := container.FundingService.Fund(cmd.Context(), owner, amount); err != nil {
				return err
			}
			balance, err := container.FundingService.Balance(cmd.Context(), owner)
			if err != nil {
				return err
			}
			return app.Print(balance)
		},
	}
}

func newTokenApproveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve [amount]",
		Short: "Let the escrow pull up to amount from the principal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.CallerPrincipal()
			if err != nil {
				return err
			}
			amount, err := parseAmount("amount", args[0])
			if err != nil {
				return err
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			if err := container.FundingService.ApproveEscrow(cmd.Context(), owner, amount); err != nil {
				return err
			}
			balance, err := container.FundingService.Balance(cmd.Context(), owner)
			if err != nil {
				return err
			}
			return app.Print(balance)
		},
	}
}

func newTokenBalanceCommand(app *App) *cobra.Command {
	var onchain bool

	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Show the settlement balance and escrow allowance of an address",
		Long: `Shows the ledger balance of an address, or of the principal when no address is given.
With --onchain the balance is read from the configured ERC-20 token instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				address common.Address
				err     error
			)
			if len(args) == 1 {
				address, err = parseAddress("address", args[0])
			} else {
				address, err = app.CallerPrincipal()
			}
			if err != nil {
				return err
			}

			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			if !onchain {
				balance, err := container.FundingService.Balance(cmd.Context(), address)
				if err != nil {
					return err
				}
				return app.Print(balance)
			}

			if container.ChainReader == nil {
				return fmt.Errorf("chain.rpc_addr and chain.token_address must be configured for --%s", flags.OnchainFlag)
			}
			balance, err := onchainBalance(cmd.Context(), container, address)
			if err != nil {
				return err
			}
			return app.Print(balance)
		},
	}

	cmd.Flags().BoolVar(&onchain, flags.OnchainFlag, false, "read the balance from the ERC-20 token contract")
	return cmd
}

func onchainBalance(ctx context.Context, container *config.Container, address common.Address) (*dto.OnchainBalance, error) {
	holder, err := container.Config.Escrow.Holder()
	if err != nil {
		return nil, err
	}

	info, err := container.ChainReader.TokenInfo(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := container.ChainReader.BalanceOf(ctx, address)
	if err != nil {
		return nil, err
	}
	allowance, err := container.ChainReader.Allowance(ctx, address, holder)
	if err != nil {
		return nil, err
	}

	return &dto.OnchainBalance{
		Token:           info.Address,
		Symbol:          info.Symbol,
		Decimals:        info.Decimals,
		Owner:           address,
		Balance:         balance,
		EscrowAllowance: allowance,
	}, nil
}

func newTokenEscrowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "escrow",
		Short: "Show the funds currently held in escrow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}

			holder, err := container.Config.Escrow.Holder()
			if err != nil {
				return err
			}
			balance, err := container.LedgerQueries.EscrowBalance(cmd.Context())
			if err != nil {
				return err
			}
			return app.Print(map[string]interface{}{
				"escrow_holder": holder,
				"balance":       balance,
			})
		},
	}
}
