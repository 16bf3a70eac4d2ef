// Package entities contains the core domain entities of the referral escrow ledger.
// It defines jobs, referrals, ledger events, projections and the Amount type.
package entities

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

var (
	// ErrAmountOverflow is returned when an addition exceeds 256 bits.
	ErrAmountOverflow = errors.New("amount overflow")
	// ErrAmountUnderflow is returned when a subtraction would go below zero.
	ErrAmountUnderflow = errors.New("amount underflow")
)

// Amount is a non-negative quantity of the settlement asset in its smallest unit.
// The zero value is a valid zero amount and Amount values are comparable with ==.
type Amount struct {
	v uint256.Int
}

// ZeroAmount returns an amount of zero.
func ZeroAmount() Amount {
	return Amount{}
}

// NewAmount creates an amount from a uint64.
func NewAmount(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

// ParseAmount parses a base-10 amount string.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("empty amount")
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{v: *v}, nil
}

// AmountFromBig converts a big.Int, rejecting negative and oversized values.
func AmountFromBig(b *big.Int) (Amount, error) {
	if b == nil {
		return Amount{}, nil
	}
	if b.Sign() < 0 {
		return Amount{}, ErrAmountUnderflow
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return Amount{}, ErrAmountOverflow
	}
	return Amount{v: *v}, nil
}

// Add returns a + b.
func (a Amount) Add(b Amount) (Amount, error) {
	var out Amount
	if _, overflow := out.v.AddOverflow(&a.v, &b.v); overflow {
		return Amount{}, ErrAmountOverflow
	}
	return out, nil
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) (Amount, error) {
	var out Amount
	if _, underflow := out.v.SubOverflow(&a.v, &b.v); underflow {
		return Amount{}, ErrAmountUnderflow
	}
	return out, nil
}

// MulDiv returns floor(a * num / den) using a 512-bit intermediate.
func (a Amount) MulDiv(num, den uint64) (Amount, error) {
	if den == 0 {
		return Amount{}, fmt.Errorf("division by zero")
	}
	var out Amount
	n := uint256.NewInt(num)
	d := uint256.NewInt(den)
	if _, overflow := out.v.MulDivOverflow(&a.v, n, d); overflow {
		return Amount{}, ErrAmountOverflow
	}
	return out, nil
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.v.Lt(&b.v)
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// String returns the base-10 representation.
func (a Amount) String() string {
	return a.v.Dec()
}

// Big converts the amount to a new big.Int.
func (a Amount) Big() *big.Int {
	return a.v.ToBig()
}

// Scan implements the sql.Scanner interface.
func (a *Amount) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*a = Amount{}
		return nil
	case string:
		parsed, err := ParseAmount(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		parsed, err := ParseAmount(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case int64:
		if v < 0 {
			return fmt.Errorf("cannot scan negative value %d into Amount", v)
		}
		*a = NewAmount(uint64(v))
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into Amount", value)
	}
}

// Value implements the driver.Valuer interface.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON encodes the amount as a decimal string so no precision is lost in clients.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON accepts a decimal string or a bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = Amount{}
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML renders the amount as a plain decimal string.
func (a Amount) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}
