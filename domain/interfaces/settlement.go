package interfaces

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"talent-stake/domain/entities"
)

// BalanceReader reads balances and allowances of the settlement asset.
type BalanceReader interface {
	// BalanceOf returns the balance held by owner.
	BalanceOf(ctx context.Context, owner common.Address) (entities.Amount, error)

	// Allowance returns how much spender may pull from owner.
	Allowance(ctx context.Context, owner, spender common.Address) (entities.Amount, error)
}

// SettlementAsset moves the fungible token that funds bounties and stakes.
// Every transfer either fully succeeds or returns an error.
type SettlementAsset interface {
	BalanceReader

	// TransferFrom pulls amount from from to to using spender's allowance.
	TransferFrom(ctx context.Context, spender, from, to common.Address, amount entities.Amount) error

	// Transfer moves amount held by from to to.
	Transfer(ctx context.Context, from, to common.Address, amount entities.Amount) error
}

// TokenLedger is a SettlementAsset that can also fund accounts and grant allowances.
type TokenLedger interface {
	SettlementAsset

	// Mint credits amount to owner.
	Mint(ctx context.Context, owner common.Address, amount entities.Amount) error

	// Approve sets spender's allowance over owner's balance.
	Approve(ctx context.Context, owner, spender common.Address, amount entities.Amount) error
}

// ClaimTokenGenerator produces unguessable claim hashes for new referrals.
type ClaimTokenGenerator interface {
	// Generate derives a hash for referralID issued at the given time.
	Generate(referralID uint64, at time.Time) (common.Hash, error)
}
