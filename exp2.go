package fixed256

import (
	"github.com/avdva/fixed256/internal/mathutil"
	"github.com/holiman/uint256"
)

// Exp2MaxInput is the exclusive upper bound of the integer part of Exp2 input.
const Exp2MaxInput = 192

var (
	// 0.5 in the 192.64-bit fixed-point format.
	exp2Start = mathutil.MustParse("0x800000000000000000000000000000000000000000000000")

	// exp2Factors[i] is 2^(2^-(i+1)) in the 64.64-bit fixed-point format.
	exp2Factors = parseWords(
		"0x16A09E667F3BCC909", "0x1306FE0A31B7152DF", "0x1172B83C7D517ADCE", "0x10B5586CF9890F62A",
		"0x1059B0D31585743AE", "0x102C9A3E778060EE7", "0x10163DA9FB33356D8", "0x100B1AFA5ABCBED61",
		"0x10058C86DA1C09EA2", "0x1002C605E2E8CEC50", "0x100162F3904051FA1", "0x1000B175EFFDC76BA",
		"0x100058BA01FB9F96D", "0x10002C5CC37DA9492", "0x1000162E525EE0547", "0x10000B17255775C04",
		"0x1000058B91B5BC9AE", "0x100002C5C89D5EC6D", "0x10000162E43F4F831", "0x100000B1721BCFC9A",
		"0x10000058B90CF1E6E", "0x1000002C5C863B73F", "0x100000162E430E5A2", "0x1000000B172183551",
		"0x100000058B90C0B49", "0x10000002C5C8601CC", "0x1000000162E42FFF0", "0x10000000B17217FBB",
		"0x1000000058B90BFCE", "0x100000002C5C85FE3", "0x10000000162E42FF1", "0x100000000B17217F8",
		"0x10000000058B90BFC", "0x1000000002C5C85FE", "0x100000000162E42FF", "0x1000000000B17217F",
		"0x100000000058B90C0", "0x10000000002C5C860", "0x1000000000162E430", "0x10000000000B17218",
		"0x1000000000058B90C", "0x100000000002C5C86", "0x10000000000162E43", "0x100000000000B1721",
		"0x10000000000058B91", "0x1000000000002C5C8", "0x100000000000162E4", "0x1000000000000B172",
		"0x100000000000058B9", "0x10000000000002C5D", "0x1000000000000162E", "0x10000000000000B17",
		"0x1000000000000058C", "0x100000000000002C6", "0x10000000000000163", "0x100000000000000B1",
		"0x10000000000000059", "0x1000000000000002C", "0x10000000000000016", "0x1000000000000000B",
		"0x10000000000000006", "0x10000000000000003", "0x10000000000000001", "0x10000000000000001",
	)
)

func parseWords(hex ...string) [64]uint256.Int {
	var result [64]uint256.Int
	for i, h := range hex {
		result[i] = mathutil.MustParse(h)
	}
	return result
}

// Exp2 calculates 2^x using the binary fraction method.
// x is an unsigned 192.64-bit fixed-point number, the result is an unsigned 60.18-decimal fixed-point number.
// Exp2 panics if x >= 192*2^64.
func Exp2(x uint256.Int) uint256.Int {
	var ip uint256.Int
	ip.Rsh(&x, 64)
	if !ip.LtUint64(Exp2MaxInput) {
		panic("fixed256: exp2 input too big")
	}
	result := exp2Start
	// multiply the result by 2^(2^-i) for every set bit i of the fractional part, one byte at a time.
	// None of the intermediate results overflows, because the result stays below 2^192
	// and all the factors are less than 2^65.
	frac := x.Uint64()
	for b := 0; b < 8; b++ {
		shift := uint(56 - 8*b)
		bits := byte(frac >> shift)
		if bits == 0 {
			continue
		}
		for bit := 0; bit < 8; bit++ {
			if bits&(0x80>>bit) != 0 {
				result.Mul(&result, &exp2Factors[8*b+bit])
				result.Rsh(&result, 64)
			}
		}
	}
	// multiply the result by 2^ip, and convert it to 60.18. The start value is 0.5,
	// so the result has to be shifted by 191-ip rather than 192-ip.
	result.Mul(&result, &unit)
	result.Rsh(&result, uint(191-ip.Uint64()))
	return result
}
