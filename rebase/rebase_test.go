package rebase

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/avdva/fixed256"
	"github.com/avdva/fixed256/internal/mathutil"
	"github.com/avdva/fixed256/ud60x18"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u(v uint64) uint256.Int {
	return *uint256.NewInt(v)
}

func newRebase(elastic, base uint64) Rebase {
	return Rebase{Elastic: u(elastic), Base: u(base)}
}

func TestConvert(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		r       Rebase
		amount  uint64
		roundUp bool
		base    uint64
		elastic uint64
	}{
		{newRebase(0, 0), 100, false, 100, 100},
		{newRebase(0, 0), 100, true, 100, 100},
		{newRebase(480, 320), 30, false, 20, 45},
		{newRebase(480, 320), 20, true, 14, 30},
		{newRebase(3, 2), 1, false, 0, 1},
		{newRebase(3, 2), 1, true, 1, 2},
		{newRebase(1000, 1000), 7, true, 7, 7},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			base, err := test.r.ToBase(u(test.amount), test.roundUp)
			if a.NoError(err) {
				a.Equal(test.base, base.Uint64())
			}
			elastic, err := test.r.ToElastic(u(test.amount), test.roundUp)
			if a.NoError(err) {
				a.Equal(test.elastic, elastic.Uint64())
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	a := assert.New(t)
	r := newRebase(5, 0)
	base, err := r.ToBase(u(3), false)
	a.NoError(err)
	a.True(base.IsZero())
	_, err = r.ToBase(u(3), true)
	a.True(errors.Is(err, fixed256.DivideByZero))

	r = Rebase{Elastic: u(1), Base: mathutil.MaxWord}
	_, err = r.ToBase(u(2), false)
	a.True(errors.Is(err, fixed256.MulDivOverflow))
}

func TestPairedOperations(t *testing.T) {
	a := assert.New(t)
	var r Rebase
	elastic, err := r.AddBase(u(100), false)
	require.NoError(t, err)
	a.Equal(uint64(100), elastic.Uint64())
	a.Equal(newRebase(100, 100), r)

	r = Rebase{}
	_, err = r.AddBase(u(320), false)
	require.NoError(t, err)
	// interest accrued.
	require.NoError(t, r.AddSelf(u(160), uint256.Int{}))
	a.Equal(newRebase(480, 320), r)

	elastic, err = r.ToElastic(u(20), true)
	a.NoError(err)
	a.Equal(uint64(30), elastic.Uint64())

	base, err := r.AddElastic(u(48), false)
	a.NoError(err)
	a.Equal(uint64(32), base.Uint64())
	a.Equal(newRebase(528, 352), r)

	base, err = r.SubElastic(u(78), false)
	a.NoError(err)
	a.Equal(uint64(52), base.Uint64())
	a.Equal(newRebase(450, 300), r)

	elastic, err = r.SubBase(u(300), false)
	a.NoError(err)
	a.Equal(uint64(450), elastic.Uint64())
	a.True(r.IsZero())
}

func TestAtomicity(t *testing.T) {
	a := assert.New(t)
	r := newRebase(480, 320)
	_, err := r.SubElastic(u(481), false)
	a.True(errors.Is(err, fixed256.SubUnderflow))
	a.Equal(newRebase(480, 320), r)

	_, err = r.SubBase(u(321), false)
	a.True(errors.Is(err, fixed256.SubUnderflow))
	a.Equal(newRebase(480, 320), r)

	// 11 shares are worth 1 elastic, which is available, but the shares are not.
	r = newRebase(1, 10)
	_, err = r.SubBase(u(11), false)
	a.True(errors.Is(err, fixed256.SubUnderflow))
	a.Equal(newRebase(1, 10), r)

	var maxMinusOne uint256.Int
	maxMinusOne.SubUint64(&mathutil.MaxWord, 1)
	r = Rebase{Elastic: u(1), Base: maxMinusOne}
	_, err = r.AddElastic(u(1), false)
	a.True(errors.Is(err, fixed256.AddOverflow))
	a.Equal(Rebase{Elastic: u(1), Base: maxMinusOne}, r)

	r = Rebase{Elastic: maxMinusOne, Base: u(1)}
	_, err = r.AddElastic(u(16), false)
	a.True(errors.Is(err, fixed256.AddOverflow))
	a.Equal(Rebase{Elastic: maxMinusOne, Base: u(1)}, r)

	r = newRebase(10, 10)
	a.True(errors.Is(r.SubSelf(u(1), u(11)), fixed256.SubUnderflow))
	a.Equal(newRebase(10, 10), r)
	a.NoError(r.SubSelf(u(10), u(10)))
	a.True(r.IsZero())
}

func TestConservation(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		amount := u(rnd.Uint64())
		var r Rebase
		elastic, err := r.AddBase(amount, false)
		if !assert.NoError(t, err) {
			return
		}
		back, err := r.ToElastic(amount, true)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, elastic, back)
	}
}

func TestRate(t *testing.T) {
	a := assert.New(t)
	rate, err := newRebase(480, 320).Rate()
	a.NoError(err)
	a.Equal(ud60x18.MustFromString("1.5"), rate)
	rate, err = Rebase{}.Rate()
	a.NoError(err)
	a.Equal(ud60x18.Unit, rate)
	_, err = newRebase(1, 0).Rate()
	a.True(errors.Is(err, fixed256.DivideByZero))
	a.Equal("480/320", newRebase(480, 320).String())
}

func TestRecord(t *testing.T) {
	a := assert.New(t)
	r := Rebase{Elastic: mathutil.MaxWord, Base: u(320)}
	rec := r.Record()
	a.Equal(mathutil.MaxWord.ToBig(), rec.Elastic)
	fromRec, err := FromRecord(rec)
	a.NoError(err)
	a.Equal(r, fromRec)

	fromRec, err = FromRecord(Record{Base: big.NewInt(7)})
	a.NoError(err)
	a.Equal(newRebase(0, 7), fromRec)

	_, err = FromRecord(Record{Elastic: big.NewInt(-1)})
	a.True(errors.Is(err, fixed256.ConvertUnderflow))
	_, err = FromRecord(Record{Base: new(big.Int).Lsh(big.NewInt(1), 256)})
	a.True(errors.Is(err, fixed256.ConvertOverflow))
}

func TestEncoding(t *testing.T) {
	a := assert.New(t)
	r := newRebase(480, 320)
	data, err := r.MarshalBinary()
	a.NoError(err)
	a.Len(data, BinarySize)
	a.Equal([]byte{0x01, 0xe0}, data[30:32])
	a.Equal([]byte{0x01, 0x40}, data[62:64])

	var decoded Rebase
	a.NoError(decoded.UnmarshalBinary(data))
	a.Equal(r, decoded)
	a.Error(decoded.UnmarshalBinary(data[:63]))

	data, err = json.Marshal(r)
	a.NoError(err)
	a.Equal(`{"elastic":480,"base":320}`, string(data))
	decoded = Rebase{}
	a.NoError(json.Unmarshal([]byte(`{"elastic":115792089237316195423570985008687907853269984665640564039457584007913129639935,"base":1}`), &decoded))
	a.Equal(Rebase{Elastic: mathutil.MaxWord, Base: u(1)}, decoded)
	a.Error(json.Unmarshal([]byte(`{"elastic":-1}`), &decoded))
	a.Error(json.Unmarshal([]byte(`{"elastic":"x"}`), &decoded))
}
