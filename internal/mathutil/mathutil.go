package mathutil

import (
	"math/big"

	"github.com/holiman/uint256"
)

// MaxPow10 is the largest n such that 10^n fits 256 bits.
const MaxPow10 = 77

var (
	decimalFactorTable = makeDecimalFactorTable()

	// MaxWord is 2^256-1.
	MaxWord = *new(uint256.Int).Not(new(uint256.Int))
)

func makeDecimalFactorTable() (table [MaxPow10 + 1]uint256.Int) {
	table[0].SetOne()
	ten := uint256.NewInt(10)
	for i := 1; i < len(table); i++ {
		table[i].Mul(&table[i-1], ten)
	}
	return table
}

// Pow10 returns 10^pow.
// Returns zero if pow is out of [0, MaxPow10].
func Pow10(pow int) uint256.Int {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return uint256.Int{}
	}
	return decimalFactorTable[pow]
}

// Log10Exact returns n if value == 10^n.
func Log10Exact(value *uint256.Int) (int, bool) {
	digits := DecimalDigits(value)
	if value.Eq(&decimalFactorTable[digits-1]) {
		return digits - 1, true
	}
	return 0, false
}

// DecimalDigits returns the number of decimal digits in 'value'.
func DecimalDigits(value *uint256.Int) int {
	// binary search for the first power of ten greater than value.
	lo, hi := 1, len(decimalFactorTable)
	for lo < hi {
		mid := (lo + hi) / 2
		if value.Lt(&decimalFactorTable[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// MustParse parses a decimal or 0x-prefixed hex constant. Underscores between digits are allowed.
// It panics if s is not a valid 256-bit unsigned number.
func MustParse(s string) uint256.Int {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok || b.Sign() < 0 {
		panic("mathutil: invalid constant " + s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		panic("mathutil: constant overflows 256 bits " + s)
	}
	return *v
}
