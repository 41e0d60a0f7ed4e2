package sd59x18

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/avdva/fixed256"
	"github.com/avdva/fixed256/internal/mathtest"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

var (
	negPi = MustFromString("-3.141592653589793238")
	negE  = MustFromString("-2.718281828459045235")
	two   = MustFromString("2")
)

type unaryTest struct {
	x        Value
	expected Value
	kind     fixed256.Kind
}

func runUnary(t *testing.T, tests []unaryTest, fn func(Value) (Value, error)) {
	a := assert.New(t)
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			result, err := fn(test.x)
			if test.kind != 0 {
				a.True(errors.Is(err, test.kind), "expected %v, got %v", test.kind, err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.expected.RawString(), result.RawString())
				a.Equal(test.expected, result)
			}
		})
	}
}

type binaryTest struct {
	x, y     Value
	expected Value
	kind     fixed256.Kind
}

func runBinary(t *testing.T, tests []binaryTest, fn func(Value, Value) (Value, error)) {
	a := assert.New(t)
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			result, err := fn(test.x, test.y)
			if test.kind != 0 {
				a.True(errors.Is(err, test.kind), "expected %v, got %v", test.kind, err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.expected.RawString(), result.RawString())
				a.Equal(test.expected, result)
			}
		})
	}
}

func zeros(n int) string {
	return strings.Repeat("0", n)
}

func TestAdd(t *testing.T) {
	runBinary(t, []binaryTest{
		{x: MustFromString("1.5"), y: MustFromString("-2.5"), expected: MustFromString("-1")},
		{x: MustFromString("-1.5"), y: MustFromString("-2.5"), expected: MustFromString("-4")},
		{x: MustFromString("-1.5"), y: MustFromString("1.5"), expected: Zero},
		{x: Max, y: Min, expected: raw("-1")},
		{x: Max, y: raw("1"), kind: fixed256.AddOverflow},
		{x: Min, y: raw("-1"), kind: fixed256.SubUnderflow},
		{x: Min, y: Min, kind: fixed256.SubUnderflow},
	}, Value.Add)
}

func TestSub(t *testing.T) {
	runBinary(t, []binaryTest{
		{x: MustFromString("1.5"), y: MustFromString("2.5"), expected: MustFromString("-1")},
		{x: MustFromString("-1.5"), y: MustFromString("-2.5"), expected: Unit},
		{x: Pi, y: Zero, expected: Pi},
		{x: raw("-1"), y: Min, expected: Max},
		{x: Min, y: Min, expected: Zero},
		{x: Zero, y: Min, kind: fixed256.AddOverflow},
		{x: Max, y: raw("-1"), kind: fixed256.AddOverflow},
		{x: Min, y: raw("1"), kind: fixed256.SubUnderflow},
	}, Value.Sub)
}

func TestNegAbs(t *testing.T) {
	runUnary(t, []unaryTest{
		{x: Pi, expected: negPi},
		{x: negPi, expected: Pi},
		{x: Zero, expected: Zero},
		{x: Max, expected: raw("-" + Max.RawString())},
		{x: Min, kind: fixed256.AbsInputTooSmall},
	}, Value.Neg)
	runUnary(t, []unaryTest{
		{x: Pi, expected: Pi},
		{x: negPi, expected: Pi},
		{x: Zero, expected: Zero},
		{x: Min, kind: fixed256.AbsInputTooSmall},
	}, Value.Abs)
}

func TestMul(t *testing.T) {
	runBinary(t, []binaryTest{
		{x: negPi, y: E, expected: raw("-8539734222673567063")},
		{x: negPi, y: negE, expected: raw("8539734222673567063")},
		{x: raw("-6"), y: MustFromString("0.1"), expected: raw("-1")},
		{x: raw("-4"), y: MustFromString("0.1"), expected: Zero},
		{x: Max, y: Unit, expected: Max},
		{x: Max, y: two, kind: fixed256.MulOverflow},
		{x: Min, y: Unit, kind: fixed256.MulInputTooSmall},
		{x: Unit, y: Min, kind: fixed256.MulInputTooSmall},
	}, Value.Mul)
}

func TestDiv(t *testing.T) {
	runBinary(t, []binaryTest{
		{x: MustFromString("-22"), y: MustFromString("7"), expected: raw("-3142857142857142857")},
		{x: Unit, y: MustFromString("-3"), expected: raw("-333333333333333333")},
		{x: MustFromString("-6"), y: MustFromString("-3"), expected: two},
		{x: raw("-" + maxScaledStr), y: raw("-1"), expected: MaxWhole},
		{x: raw(maxScaledStr + "000000000000000001"), y: raw("1"), kind: fixed256.MulDivOverflow},
		{x: raw(maxScaledStr), y: MustFromString("0.000000000000000000"), kind: fixed256.DivideByZero},
		{x: raw("6"+zeros(58)), y: raw("1"), kind: fixed256.DivOverflow},
		{x: Min, y: Unit, kind: fixed256.DivInputTooSmall},
		{x: Unit, y: Min, kind: fixed256.DivInputTooSmall},
	}, Value.Div)
}

func TestAvg(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, expected Value
	}{
		{negPi, negE, raw("-2929937241024419236")},
		{negPi, E, raw("-211655412565374001")},
		{Pi, negE, raw("211655412565374001")},
		{raw("-3"), Zero, raw("-1")},
		{raw("3"), Zero, raw("1")},
		{Min, Min, Min},
		{Max, Max, Max},
		{Min, Max, Zero},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.expected, test.x.Avg(test.y))
			a.Equal(test.expected, test.y.Avg(test.x))
		})
	}
}

func TestFloorCeil(t *testing.T) {
	runUnary(t, []unaryTest{
		{x: negPi, expected: MustFromString("-4")},
		{x: Pi, expected: MustFromString("3")},
		{x: MustFromString("-1"), expected: MustFromString("-1")},
		{x: MustFromString("0.5"), expected: Zero},
		{x: MustFromString("-0.5"), expected: MustFromString("-1")},
		{x: MinWhole, expected: MinWhole},
		{x: Max, expected: MaxWhole},
		{x: Min, kind: fixed256.FloorUnderflow},
	}, Value.Floor)
	runUnary(t, []unaryTest{
		{x: negPi, expected: MustFromString("-3")},
		{x: Pi, expected: MustFromString("4")},
		{x: MustFromString("-0.5"), expected: Zero},
		{x: MaxWhole, expected: MaxWhole},
		{x: Min, expected: MinWhole},
		{x: Max, kind: fixed256.CeilOverflow},
	}, Value.Ceil)
}

func TestFrac(t *testing.T) {
	a := assert.New(t)
	a.Equal(raw("-141592653589793238"), negPi.Frac())
	a.Equal(raw("141592653589793238"), Pi.Frac())
	a.Equal(raw("-792003956564819968"), Min.Frac())
	a.Equal(raw("792003956564819967"), Max.Frac())
	a.Equal(Zero, MustFromString("-7").Frac())
}

func TestInv(t *testing.T) {
	runUnary(t, []unaryTest{
		{x: negPi, expected: raw("-318309886183790671")},
		{x: MustFromString("-2"), expected: MustFromString("-0.5")},
		{x: raw("-1000000000000000000000000000000000001"), expected: Zero},
		{x: raw("-1"), expected: raw("-1000000000000000000000000000000000000")},
		{x: Zero, kind: fixed256.DivideByZero},
	}, Value.Inv)
}

func TestExp2(t *testing.T) {
	runUnary(t, []unaryTest{
		{x: Zero, expected: Unit},
		{x: Unit, expected: two},
		{x: MustFromString("-1"), expected: HalfUnit},
		{x: MustFromString("-2"), expected: MustFromString("0.25")},
		{x: MustFromString("-0.5"), expected: raw("707106781186547524")},
		{x: negPi, expected: raw("113314732296760873")},
		{x: MustFromString("-10"), expected: raw("976562500000000")},
		{x: exp2MinInput, expected: raw("1")},
		{x: raw("-59794705707972522262"), expected: Zero},
		{x: Min, expected: Zero},
		{x: MustFromString("191"),
			expected: raw("3138550867693340381917894711603833208051177722232017256448000000000000000000")},
		{x: MustFromString("192"), kind: fixed256.Exp2InputTooBig},
	}, Value.Exp2)
}

func TestExp(t *testing.T) {
	runUnary(t, []unaryTest{
		{x: Zero, expected: Unit},
		{x: Unit, expected: raw("2718281828459045234")},
		{x: MustFromString("-1"), expected: raw("367879441171442322")},
		{x: MustFromString("-2"), expected: raw("135335283236612692")},
		{x: MustFromString("-0.5"), expected: raw("606530659712633424")},
		{x: negPi, expected: raw("43213918263772249")},
		{x: MustFromString("-10"), expected: raw("45399929762484")},
		{x: expMinInput, expected: raw("1")},
		{x: raw("-41446531673892822323"), expected: Zero},
		{x: expMaxInput, kind: fixed256.ExpInputTooBig},
	}, Value.Exp)
}

func TestLog2(t *testing.T) {
	runUnary(t, []unaryTest{
		{x: Unit, expected: Zero},
		{x: HalfUnit, expected: MustFromString("-1")},
		{x: MustFromString("0.25"), expected: MustFromString("-2")},
		{x: MustFromString("0.1"), expected: raw("-3321928094887362334")},
		{x: raw("1"), expected: raw("-59794705707972522245")},
		{x: Pi, expected: raw("1651496129472318782")},
		{x: Max, expected: raw("195205294292027477728")},
		{x: raw("-1"), kind: fixed256.LogInputTooSmall},
		{x: Zero, kind: fixed256.LogInputTooSmall},
	}, Value.Log2)
}

func TestLn(t *testing.T) {
	runUnary(t, []unaryTest{
		{x: HalfUnit, expected: raw("-693147180559945309")},
		{x: MustFromString("0.1"), expected: raw("-2302585092994045674")},
		{x: raw("1"), expected: raw("-41446531673892822311")},
		{x: E, expected: raw("999999999999999990")},
		{x: Max, expected: raw("135305999368893231615")},
		{x: negE, kind: fixed256.LogInputTooSmall},
	}, Value.Ln)
}

func TestLog10(t *testing.T) {
	runUnary(t, []unaryTest{
		{x: raw("1"), expected: MustFromString("-18")},
		{x: MustFromString("0.1"), expected: MustFromString("-1")},
		{x: Unit, expected: Zero},
		{x: MustFromString("1e58"), expected: MustFromString("58")},
		{x: MustFromString("0.2"), expected: raw("-698970004336018800")},
		{x: HalfUnit, expected: raw("-301029995663981195")},
		{x: E, expected: raw("434294481903251823")},
		{x: Max, expected: raw("58762648894315204791")},
		{x: Zero, kind: fixed256.LogInputTooSmall},
		{x: MustFromString("-10"), kind: fixed256.LogInputTooSmall},
	}, Value.Log10)
}

func TestPow(t *testing.T) {
	runBinary(t, []binaryTest{
		{x: two, y: MustFromString("-1"), expected: HalfUnit},
		{x: MustFromString("4"), y: MustFromString("-0.5"), expected: HalfUnit},
		{x: HalfUnit, y: two, expected: MustFromString("0.25")},
		{x: two, y: MustFromString("-1.5"), expected: raw("353553390593273762")},
		{x: Zero, y: Zero, expected: Unit},
		{x: Zero, y: MustFromString("-1"), expected: Zero},
		{x: MustFromString("-1"), y: two, kind: fixed256.LogInputTooSmall},
	}, Value.Pow)
}

func TestPowu(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x        Value
		y        uint64
		expected Value
		kind     fixed256.Kind
	}{
		{x: MustFromString("-2"), y: 3, expected: MustFromString("-8")},
		{x: MustFromString("-2"), y: 4, expected: MustFromString("16")},
		{x: negPi, y: 3, expected: raw("-31006276680299820162")},
		{x: MustFromString("-0.1"), y: 2, expected: MustFromString("0.01")},
		{x: MustFromString("-5"), y: 0, expected: Unit},
		{x: Max, y: 1, expected: Max},
		{x: two, y: 190, expected: raw("1569275433846670190958947355801916604025588861116008628224000000000000000000")},
		{x: Min, y: 1, kind: fixed256.PowuOverflow},
		{x: two, y: 196, kind: fixed256.PowuOverflow},
		{x: two, y: 300, kind: fixed256.MulDiv18Overflow},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			result, err := test.x.Powu(test.y)
			if test.kind != 0 {
				a.True(errors.Is(err, test.kind), "expected %v, got %v", test.kind, err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.expected, result)
			}
		})
	}
}

func TestGm(t *testing.T) {
	runBinary(t, []binaryTest{
		{x: MustFromString("-1"), y: MustFromString("-4"), expected: two},
		{x: MustFromString("-3"), y: MustFromString("-12"), expected: MustFromString("6")},
		{x: Zero, y: MustFromString("-1"), expected: Zero},
		{x: MustFromString("-1"), y: Zero, expected: Zero},
		{x: MustFromString("-1"), y: MustFromString("4"), kind: fixed256.GmNegativeProduct},
		{x: Max, y: raw("2"), kind: fixed256.GmOverflow},
		{x: Min, y: raw("-1"), kind: fixed256.GmOverflow},
	}, Value.Gm)
}

func TestSqrt(t *testing.T) {
	runUnary(t, []unaryTest{
		{x: Zero, expected: Zero},
		{x: two, expected: raw("1414213562373095048")},
		{x: raw(maxScaledStr), expected: raw("240615969168004511545033772477625056927")},
		{x: raw("57896044618658097711785492504343953926634992332820282019729"), kind: fixed256.SqrtOverflow},
		{x: raw("-1"), kind: fixed256.SqrtNegativeInput},
	}, Value.Sqrt)
}

func TestLog2Exp2(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	lo := MustFromString("-4").Big()
	width := new(big.Int).Sub(MustFromString("192").Big(), lo)
	for i := 0; i < 1000; i++ {
		b := new(big.Int).Rand(rnd, width)
		b.Add(b, lo)
		v, err := FromBig(b)
		if !assert.NoError(t, err) {
			return
		}
		e, err := v.Exp2()
		if !assert.NoError(t, err, spew.Sdump(v)) {
			return
		}
		l, err := e.Log2()
		if !assert.NoError(t, err, spew.Sdump(v, e)) {
			return
		}
		mathtest.WithinBig(t, v.Big(), l.Big(), 100, "x = %s", v)
	}
}
