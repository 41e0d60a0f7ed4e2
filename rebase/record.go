package rebase

import (
	"encoding/json"
	"math/big"

	"github.com/avdva/fixed256"
	"github.com/holiman/uint256"
)

// BinarySize is the size of the storage representation of a Rebase.
const BinarySize = 64

// Record is the host representation of a Rebase, which is convenient to build and to encode.
// Nil fields are zero.
type Record struct {
	Elastic *big.Int `json:"elastic"`
	Base    *big.Int `json:"base"`
}

// Record returns the host representation of r.
func (r Rebase) Record() Record {
	return Record{Elastic: r.Elastic.ToBig(), Base: r.Base.ToBig()}
}

// FromRecord returns a rebase for rec.
// Fails with ConvertUnderflow for negative fields, and with ConvertOverflow for fields, which don't fit 256 bits.
func FromRecord(rec Record) (Rebase, error) {
	var r Rebase
	if err := fromBig(&r.Elastic, rec.Elastic); err != nil {
		return Rebase{}, err
	}
	if err := fromBig(&r.Base, rec.Base); err != nil {
		return Rebase{}, err
	}
	return r, nil
}

func fromBig(dst *uint256.Int, b *big.Int) error {
	if b == nil {
		dst.Clear()
		return nil
	}
	if b.Sign() < 0 {
		return fixed256.NewError(fixed256.ConvertUnderflow, b)
	}
	if dst.SetFromBig(b) {
		return fixed256.NewError(fixed256.ConvertOverflow, b)
	}
	return nil
}

// MarshalBinary returns elastic and base as two big-endian 32-byte words.
func (r Rebase) MarshalBinary() ([]byte, error) {
	data := make([]byte, 0, BinarySize)
	elastic, base := r.Elastic.Bytes32(), r.Base.Bytes32()
	data = append(data, elastic[:]...)
	return append(data, base[:]...), nil
}

// UnmarshalBinary decodes the result of MarshalBinary.
func (r *Rebase) UnmarshalBinary(data []byte) error {
	if len(data) != BinarySize {
		return fixed256.Error.New("invalid rebase length %d", len(data))
	}
	r.Elastic.SetBytes32(data[:32])
	r.Base.SetBytes32(data[32:])
	return nil
}

// MarshalJSON encodes the rebase as a Record.
func (r Rebase) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Record())
}

// UnmarshalJSON decodes a Record.
func (r *Rebase) UnmarshalJSON(data []byte) error {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fixed256.Error.Wrap(err)
	}
	result, err := FromRecord(rec)
	if err != nil {
		return err
	}
	*r = result
	return nil
}
