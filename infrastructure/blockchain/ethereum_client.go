// Package blockchain reads the settlement token deployed on an EVM chain so the
// ledger's balances can be compared with on-chain ones.
package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// erc20ABI covers the read-only ERC-20 methods the reader calls.
const erc20ABI = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"type":"function"}
]`

// erc20Reader implements the ChainTokenReader interface.
type erc20Reader struct {
	token    common.Address
	contract *bind.BoundContract
	closeFn  func()
}

// NewERC20Reader dials rpcURL and reads the ERC-20 token at token.
func NewERC20Reader(ctx context.Context, rpcURL string, token common.Address) (interfaces.ChainTokenReader, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, &errors.ChainError{
			Operation: "Dial",
			Contract:  token.Hex(),
			Err:       err,
		}
	}

	reader, err := newERC20Reader(client, token, client.Close)
	if err != nil {
		client.Close()
		return nil, err
	}
	return reader, nil
}

func newERC20Reader(caller bind.ContractCaller, token common.Address, closeFn func()) (*erc20Reader, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}
	return &erc20Reader{
		token:    token,
		contract: bind.NewBoundContract(token, parsed, caller, nil, nil),
		closeFn:  closeFn,
	}, nil
}

// BalanceOf returns the on-chain balance of owner.
func (r *erc20Reader) BalanceOf(ctx context.Context, owner common.Address) (entities.Amount, error) {
	return r.callAmount(ctx, "balanceOf", owner)
}

// Allowance returns the on-chain allowance owner granted spender.
func (r *erc20Reader) Allowance(ctx context.Context, owner, spender common.Address) (entities.Amount, error) {
	return r.callAmount(ctx, "allowance", owner, spender)
}

// TokenInfo returns the token symbol and decimals.
func (r *erc20Reader) TokenInfo(ctx context.Context) (*interfaces.TokenInfo, error) {
	var out []interface{}
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, "symbol"); err != nil {
		return nil, r.chainError("TokenInfo.symbol", err)
	}
	symbol, ok := out[0].(string)
	if !ok {
		return nil, r.chainError("TokenInfo.symbol", fmt.Errorf("unexpected output %T", out[0]))
	}

	out = nil
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, "decimals"); err != nil {
		return nil, r.chainError("TokenInfo.decimals", err)
	}
	decimals, ok := out[0].(uint8)
	if !ok {
		return nil, r.chainError("TokenInfo.decimals", fmt.Errorf("unexpected output %T", out[0]))
	}

	return &interfaces.TokenInfo{
		Address:  r.token,
		Symbol:   symbol,
		Decimals: decimals,
	}, nil
}

// Close closes the chain client connection.
func (r *erc20Reader) Close() error {
	if r.closeFn != nil {
		r.closeFn()
	}
	return nil
}

func (r *erc20Reader) callAmount(ctx context.Context, method string, params ...interface{}) (entities.Amount, error) {
	var out []interface{}
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return entities.Amount{}, r.chainError(method, err)
	}
	value, ok := out[0].(*big.Int)
	if !ok {
		return entities.Amount{}, r.chainError(method, fmt.Errorf("unexpected output %T", out[0]))
	}
	amount, err := entities.AmountFromBig(value)
	if err != nil {
		return entities.Amount{}, r.chainError(method, err)
	}
	return amount, nil
}

func (r *erc20Reader) chainError(operation string, err error) error {
	return &errors.ChainError{
		Operation: operation,
		Contract:  r.token.Hex(),
		Err:       err,
	}
}
