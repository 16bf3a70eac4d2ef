package commands

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"talent-stake/domain/entities"
)

// parseID parses a positive job or referral ID.
func parseID(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return n, nil
}

// parseAmount parses a positive amount in smallest units.
func parseAmount(name, s string) (entities.Amount, error) {
	amount, err := entities.ParseAmount(s)
	if err != nil {
		return entities.Amount{}, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if amount.IsZero() {
		return entities.Amount{}, fmt.Errorf("invalid %s: must be positive", name)
	}
	return amount, nil
}

func parseAddress(name, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid %s %q: not an address", name, s)
	}
	return common.HexToAddress(s), nil
}

func parseHash(name, s string) (common.Hash, error) {
	raw, err := hexutil.Decode(s)
	if err != nil || len(raw) != common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid %s %q: must be a 32-byte hex string", name, s)
	}
	return common.BytesToHash(raw), nil
}
