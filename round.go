package fixed256

import (
	"github.com/avdva/fixed256/internal/mathutil"
	"github.com/holiman/uint256"
)

var ten = uint256.NewInt(10)

// Exp10 returns 10^n, or zero if 10^n does not fit 256 bits.
func Exp10(n uint) uint256.Int {
	if n > mathutil.MaxPow10 {
		return uint256.Int{}
	}
	return mathutil.Pow10(int(n))
}

// NthDigit returns the n-th decimal digit of x, counting from 1 for the least significant digit.
// Returns 0 for n == 0.
func NthDigit(x uint256.Int, n uint8) uint8 {
	if n == 0 {
		return 0
	}
	p := Exp10(uint(n - 1))
	if p.IsZero() {
		return 0
	}
	x.Div(&x, &p)
	x.Mod(&x, ten)
	return uint8(x.Uint64())
}

// BankersRound rounds x to a multiple of 10^digit using round-half-to-even.
// The digit below the rounding point decides: more than 5 rounds up, less than 5 rounds down,
// and exactly 5 rounds up only if the retained digit is odd.
// Fails with AddOverflow if the rounded value doesn't fit 256 bits.
func BankersRound(x uint256.Int, digit uint8) (uint256.Int, error) {
	precision := Exp10(uint(digit))
	if precision.IsZero() {
		// x < 10^78, so it is less than a half of such precision.
		return uint256.Int{}, nil
	}
	n := NthDigit(x, digit)
	var roundUp bool
	if n == 5 {
		roundUp = NthDigit(x, digit+1)%2 != 0
	} else {
		roundUp = n > 5
	}
	var result uint256.Int
	result.Div(&x, &precision)
	if roundUp {
		result.AddUint64(&result, 1)
	}
	if _, overflow := result.MulOverflow(&result, &precision); overflow {
		return uint256.Int{}, wordError(AddOverflow, &x, &precision)
	}
	return result, nil
}
