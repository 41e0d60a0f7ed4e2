package fixed256

import (
	"github.com/holiman/uint256"
)

var sqrtLadder = [...]struct {
	shift, seed uint
}{
	{128, 64}, {64, 32}, {32, 16}, {16, 8}, {8, 4}, {4, 2},
}

// CheckedAdd returns x+y or AddOverflow.
func CheckedAdd(x, y uint256.Int) (uint256.Int, error) {
	var result uint256.Int
	if _, overflow := result.AddOverflow(&x, &y); overflow {
		return uint256.Int{}, wordError(AddOverflow, &x, &y)
	}
	return result, nil
}

// CheckedSub returns x-y or SubUnderflow.
func CheckedSub(x, y uint256.Int) (uint256.Int, error) {
	var result uint256.Int
	if _, underflow := result.SubOverflow(&x, &y); underflow {
		return uint256.Int{}, wordError(SubUnderflow, &x, &y)
	}
	return result, nil
}

// AbsDiff returns |x-y|.
func AbsDiff(x, y uint256.Int) uint256.Int {
	var result uint256.Int
	if x.Gt(&y) {
		return *result.Sub(&x, &y)
	}
	return *result.Sub(&y, &x)
}

// IsOdd returns true, if x is odd.
func IsOdd(x uint256.Int) bool {
	return x[0]&1 == 1
}

// Avg returns floor((x+y)/2) without overflowing.
func Avg(x, y uint256.Int) uint256.Int {
	var and, xor uint256.Int
	and.And(&x, &y)
	xor.Xor(&x, &y)
	xor.Rsh(&xor, 1)
	return *and.Add(&and, &xor)
}

// MostSignificantBit returns the zero-based index of the highest set bit of x.
// Returns 0 for x == 0.
func MostSignificantBit(x uint256.Int) uint {
	var result uint
	var shifted uint256.Int
	for shift := uint(128); shift > 0; shift >>= 1 {
		shifted.Rsh(&x, shift)
		if !shifted.IsZero() {
			x = shifted
			result |= shift
		}
	}
	return result
}

// Sqrt calculates the square root of x, rounding down.
// Uses the Babylonian method, seeded with the largest power of two not greater
// than the root, so that the seed has at least one correct bit.
func Sqrt(x uint256.Int) uint256.Int {
	if x.IsZero() {
		return uint256.Int{}
	}
	xAux := x
	var result uint256.Int
	result.SetOne()
	for _, step := range sqrtLadder {
		if xAux.BitLen() > int(step.shift) {
			xAux.Rsh(&xAux, step.shift)
			result.Lsh(&result, step.seed)
		}
	}
	if !xAux.LtUint64(4) {
		result.Lsh(&result, 1)
	}

	var quo uint256.Int
	for i := 0; i < 7; i++ { // seven iterations are enough for 256 bits.
		quo.Div(&x, &result)
		result.Add(&result, &quo)
		result.Rsh(&result, 1)
	}
	quo.Div(&x, &result)
	if !result.Lt(&quo) {
		return quo
	}
	return result
}
