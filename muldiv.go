// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixed256 implements the integer kernel of the 256-bit fixed-point arithmetic:
// full-precision multiply-divide, square root, banker's rounding and a binary exponent.
// All functions are pure and deterministic, no floating point is involved.
package fixed256

import (
	"github.com/avdva/fixed256/internal/mathutil"
	"github.com/holiman/uint256"
)

var (
	unit     = *uint256.NewInt(1e18)
	halfUnit = *uint256.NewInt(5e17)
	one      = uint256.NewInt(1)

	// unitInverse is the inverse of 5^18 modulo 2^256, so that x / 1e18 == (x >> 18) * unitInverse for exact divisions.
	unitInverse = mathutil.MustParse("78156646155174841979727994598816262306175212592076161876661508869554232690281")
)

const unitLpotdBits = 18 // 1e18 = 2^18 * 5^18

// Unit returns 10^18, the scale of fixed-point numbers.
func Unit() uint256.Int {
	return unit
}

// MulDiv calculates floor(x*y / denominator) with full precision.
// The result is never rounded up.
// Fails with DivideByZero if denominator is zero, and with MulDivOverflow if the result doesn't fit 256 bits.
func MulDiv(x, y, denominator uint256.Int) (uint256.Int, error) {
	if denominator.IsZero() {
		return uint256.Int{}, wordError(DivideByZero, &x, &y)
	}
	p := mathutil.Mul512(&x, &y)
	if !p.Hi.Lt(&denominator) {
		return uint256.Int{}, wordError(MulDivOverflow, &x, &y, &denominator)
	}
	return p.Div(&denominator), nil
}

// MulDivFixed calculates x*y / 1e18 with full precision.
// The result is rounded half up: 1 is added, if (x*y) % 1e18 >= 5e17.
// Fails with MulDiv18Overflow if the result doesn't fit 256 bits.
func MulDivFixed(x, y uint256.Int) (uint256.Int, error) {
	p := mathutil.Mul512(&x, &y)
	if !p.Hi.Lt(&unit) {
		return uint256.Int{}, wordError(MulDiv18Overflow, &x, &y)
	}
	var result, rem uint256.Int
	rem.MulMod(&x, &y, &unit)
	if p.Hi.IsZero() {
		result.Div(&p.Lo, &unit)
	} else {
		hi, lo := p.Hi, p.Lo
		if rem.Gt(&lo) {
			hi.SubUint64(&hi, 1)
		}
		lo.Sub(&lo, &rem)
		lo.Rsh(&lo, unitLpotdBits)
		hi.Lsh(&hi, 256-unitLpotdBits)
		lo.Or(&lo, &hi)
		result.Mul(&lo, &unitInverse)
	}
	if !rem.Lt(&halfUnit) {
		if _, overflow := result.AddOverflow(&result, one); overflow {
			return uint256.Int{}, wordError(MulDiv18Overflow, &x, &y)
		}
	}
	return result, nil
}
