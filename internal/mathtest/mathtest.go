// Package mathtest contains assertions for approximate fixed-point results.
package mathtest

import (
	"math/big"

	"github.com/avdva/fixed256"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

// Within asserts that |expected-actual| <= delta.
func Within(t assert.TestingT, expected, actual uint256.Int, delta uint64, msgAndArgs ...interface{}) bool {
	diff := fixed256.AbsDiff(expected, actual)
	if diff.GtUint64(delta) {
		return assert.Fail(t, "values differ by "+diff.ToBig().String()+
			": expected "+expected.ToBig().String()+", actual "+actual.ToBig().String(), msgAndArgs...)
	}
	return true
}

// CloseBankers asserts that expected equals actual, rounded at the given digit with banker's rounding.
func CloseBankers(t assert.TestingT, expected, actual uint256.Int, digit uint8, msgAndArgs ...interface{}) bool {
	rounded, err := fixed256.BankersRound(actual, digit)
	if !assert.NoError(t, err, msgAndArgs...) {
		return false
	}
	return assert.Equal(t, expected.ToBig().String(), rounded.ToBig().String(), msgAndArgs...)
}

// CloseTrim asserts that expected equals actual/10^n.
func CloseTrim(t assert.TestingT, expected, actual uint256.Int, n uint, msgAndArgs ...interface{}) bool {
	p := fixed256.Exp10(n)
	var trimmed uint256.Int
	trimmed.Div(&actual, &p)
	return assert.Equal(t, expected.ToBig().String(), trimmed.ToBig().String(), msgAndArgs...)
}

// WithinBig asserts that |expected-actual| <= delta for signed values.
func WithinBig(t assert.TestingT, expected, actual *big.Int, delta int64, msgAndArgs ...interface{}) bool {
	diff := new(big.Int).Sub(expected, actual)
	if diff.Abs(diff).Cmp(big.NewInt(delta)) > 0 {
		return assert.Fail(t, "values differ by "+diff.String()+
			": expected "+expected.String()+", actual "+actual.String(), msgAndArgs...)
	}
	return true
}
