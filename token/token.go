// Package token converts amounts between the native decimal precision of a token
// and the 18-decimal fixed-point scale used for all calculations.
package token

import (
	"github.com/avdva/fixed256"
	"github.com/avdva/fixed256/internal/strutil"
	"github.com/avdva/fixed256/ud60x18"
	"github.com/holiman/uint256"
)

// MaxDecimals is the largest supported number of token decimals.
const MaxDecimals = ud60x18.Decimals

// Decimaler is anything, which knows its decimal precision, like a token description.
type Decimaler interface {
	Decimals() uint8
}

// Precision converts amounts of a token with a fixed number of decimals.
type Precision struct {
	decimals uint8
	// scale is 10^decimals, and diff is 10^(18-decimals).
	scale, diff uint256.Int
}

var _ Decimaler = Precision{}

// New returns a precision for a token with the given number of decimals.
// Fails with InvalidDecimals if decimals > 18.
func New(decimals uint8) (Precision, error) {
	if decimals > MaxDecimals {
		return Precision{}, fixed256.NewError(fixed256.InvalidDecimals, uint256.NewInt(uint64(decimals)).ToBig())
	}
	return Precision{
		decimals: decimals,
		scale:    fixed256.Exp10(uint(decimals)),
		diff:     fixed256.Exp10(uint(MaxDecimals - decimals)),
	}, nil
}

// Of returns the precision of t.
func Of(t Decimaler) (Precision, error) {
	return New(t.Decimals())
}

// Decimals returns the number of token decimals.
func (p Precision) Decimals() uint8 {
	return p.decimals
}

// Normalize converts a native token amount to a fixed-point value.
// Fails with MulDivOverflow if the value doesn't fit.
func (p Precision) Normalize(amount uint256.Int) (ud60x18.Value, error) {
	if p.decimals == MaxDecimals {
		return ud60x18.FromRaw(amount), nil
	}
	result, err := fixed256.MulDiv(amount, fixed256.Unit(), p.scale)
	if err != nil {
		return ud60x18.Zero, err
	}
	return ud60x18.FromRaw(result), nil
}

// Denormalize converts a fixed-point value to a native token amount.
// Digits, which the token can't represent, are truncated.
func (p Precision) Denormalize(v ud60x18.Value) uint256.Int {
	raw := v.Raw()
	if p.decimals == MaxDecimals {
		return raw
	}
	var result uint256.Int
	return *result.Div(&raw, &p.diff)
}

// ToTokenPrecision removes the digits of v, which the token can't represent.
// If round is set, v is rounded with the banker's rounding, otherwise it is truncated.
// Fails with AddOverflow if rounding up overflows.
func (p Precision) ToTokenPrecision(v ud60x18.Value, round bool) (ud60x18.Value, error) {
	if p.decimals == MaxDecimals {
		return v, nil
	}
	raw := v.Raw()
	if round {
		rounded, err := fixed256.BankersRound(raw, MaxDecimals-p.decimals)
		if err != nil {
			return ud60x18.Zero, err
		}
		return ud60x18.FromRaw(rounded), nil
	}
	var truncated uint256.Int
	truncated.Div(&raw, &p.diff)
	truncated.Mul(&truncated, &p.diff)
	return ud60x18.FromRaw(truncated), nil
}

// Format returns the decimal representation of a native token amount.
func (p Precision) Format(amount uint256.Int) string {
	return strutil.FormatScaled(amount.ToBig(), int32(p.decimals))
}
