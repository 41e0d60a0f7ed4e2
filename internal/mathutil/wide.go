package mathutil

import (
	"github.com/holiman/uint256"
)

var (
	one   = uint256.NewInt(1)
	two   = uint256.NewInt(2)
	three = uint256.NewInt(3)
)

// Uint512 is an unsigned 512-bit number equal to Hi*2^256 + Lo.
type Uint512 struct {
	Hi, Lo uint256.Int
}

// Mul512 returns the exact product of x and y.
// It computes the product mod 2^256 and mod 2^256-1,
// and reconstructs the high word using the Chinese remainder theorem.
func Mul512(x, y *uint256.Int) Uint512 {
	var result Uint512
	var mm uint256.Int
	mm.MulMod(x, y, &MaxWord)
	result.Lo.Mul(x, y)
	result.Hi.Sub(&mm, &result.Lo)
	if mm.Lt(&result.Lo) {
		result.Hi.SubUint64(&result.Hi, 1)
	}
	return result
}

// IsUint256 returns true, if the number fits 256 bits.
func (p *Uint512) IsUint256() bool {
	return p.Hi.IsZero()
}

// Mod returns p mod d. d must not be zero.
func (p *Uint512) Mod(d *uint256.Int) uint256.Int {
	var result uint256.Int
	if p.Hi.IsZero() {
		result.Mod(&p.Lo, d)
		return result
	}
	// 2^256 mod d = ((2^256-1) mod d + 1) mod d
	var base, lo uint256.Int
	base.Mod(&MaxWord, d)
	base.AddMod(&base, one, d)
	result.MulMod(&p.Hi, &base, d)
	lo.Mod(&p.Lo, d)
	result.AddMod(&result, &lo, d)
	return result
}

// Div returns floor(p / d). d must not be zero, and the quotient must fit 256 bits,
// which holds if p.Hi < d.
func (p *Uint512) Div(d *uint256.Int) uint256.Int {
	var result uint256.Int
	if p.Hi.IsZero() {
		result.Div(&p.Lo, d)
		return result
	}
	rem := p.Mod(d)

	// make the division exact by subtracting the remainder from [hi lo].
	hi, lo := p.Hi, p.Lo
	if rem.Gt(&lo) {
		hi.SubUint64(&hi, 1)
	}
	lo.Sub(&lo, &rem)

	// factor the largest power of two out of d, and shift [hi lo] right by the same amount.
	var twos, den, flip uint256.Int
	twos.Neg(d)
	twos.And(&twos, d)
	den.Div(d, &twos)
	lo.Div(&lo, &twos)
	// flip = 2^256 / twos. Wraps to zero if twos == 1, which is what we need.
	flip.Neg(&twos)
	flip.Div(&flip, &twos)
	flip.AddUint64(&flip, 1)
	flip.Mul(&flip, &hi)
	lo.Or(&lo, &flip)

	// den is odd now, so it has an inverse modulo 2^256, and the exact quotient is lo*inverse.
	inv := Inverse(&den)
	result.Mul(&lo, &inv)
	return result
}

// Inverse returns such inv, that d*inv == 1 mod 2^256. d must be odd.
// Starts from a seed correct to 4 bits, and doubles the precision with each Newton-Raphson step.
func Inverse(d *uint256.Int) uint256.Int {
	var inv, t uint256.Int
	inv.Mul(d, three)
	inv.Xor(&inv, two)
	for i := 0; i < 6; i++ { // 8, 16, 32, 64, 128, 256 bits.
		t.Mul(d, &inv)
		t.Sub(two, &t)
		inv.Mul(&inv, &t)
	}
	return inv
}
