// Package interfaces defines contracts and interfaces for the escrow ledger domain layer.
// It contains interfaces for repositories, the settlement asset, use cases, and logging.
package interfaces

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// TokenInfo describes the on-chain settlement token.
type TokenInfo struct {
	Address  common.Address `json:"address" yaml:"address"`
	Symbol   string         `json:"symbol" yaml:"symbol"`
	Decimals uint8          `json:"decimals" yaml:"decimals"`
}

// ChainTokenReader reads the settlement token deployed on chain.
type ChainTokenReader interface {
	BalanceReader

	// TokenInfo returns the token symbol and decimals.
	TokenInfo(ctx context.Context) (*TokenInfo, error)

	// Close closes the chain client connection.
	Close() error
}
