// Package rebase tracks a proportional exchange rate between a growing elastic total
// (principal plus accrued interest, for example) and a fixed number of base shares.
// The exchange rate is elastic/base, so changing the elastic total redistributes it over all shares at once.
//
// A Rebase is not safe for concurrent use.
package rebase

import (
	"github.com/avdva/fixed256"
	"github.com/avdva/fixed256/ud60x18"
	"github.com/holiman/uint256"
)

// Rebaser is the set of rebase conversions and paired mutations.
type Rebaser interface {
	ToBase(elastic uint256.Int, roundUp bool) (uint256.Int, error)
	ToElastic(base uint256.Int, roundUp bool) (uint256.Int, error)
	AddElastic(elastic uint256.Int, roundUp bool) (uint256.Int, error)
	SubElastic(elastic uint256.Int, roundUp bool) (uint256.Int, error)
	AddBase(base uint256.Int, roundUp bool) (uint256.Int, error)
	SubBase(base uint256.Int, roundUp bool) (uint256.Int, error)
}

var _ Rebaser = (*Rebase)(nil)

// Rebase is an (elastic, base) pair. The zero value is an empty rebase.
// Every mutating method updates both totals or none of them.
type Rebase struct {
	Elastic uint256.Int
	Base    uint256.Int
}

// ToBase returns the number of shares, which elastic is worth.
// If roundUp is set, the result is rounded so that converting it back is not less than elastic.
func (r Rebase) ToBase(elastic uint256.Int, roundUp bool) (uint256.Int, error) {
	if r.Elastic.IsZero() {
		return elastic, nil
	}
	return convert(elastic, r.Base, r.Elastic, roundUp)
}

// ToElastic returns the elastic amount, which base shares are worth.
// If roundUp is set, the result is rounded so that converting it back is not less than base.
func (r Rebase) ToElastic(base uint256.Int, roundUp bool) (uint256.Int, error) {
	if r.Base.IsZero() {
		return base, nil
	}
	return convert(base, r.Elastic, r.Base, roundUp)
}

// convert returns amount*to/from, incremented by one if roundUp is set and the reverse conversion undershoots.
func convert(amount, to, from uint256.Int, roundUp bool) (uint256.Int, error) {
	result, err := fixed256.MulDiv(amount, to, from)
	if err != nil || !roundUp {
		return result, err
	}
	back, err := fixed256.MulDiv(result, from, to)
	if err != nil {
		return uint256.Int{}, err
	}
	if back.Lt(&amount) {
		return fixed256.CheckedAdd(result, uint256.Int{1})
	}
	return result, nil
}

// AddElastic adds elastic to the totals together with the corresponding amount of shares.
// Returns the added shares.
func (r *Rebase) AddElastic(elastic uint256.Int, roundUp bool) (uint256.Int, error) {
	base, err := r.ToBase(elastic, roundUp)
	if err != nil {
		return uint256.Int{}, err
	}
	return base, r.AddSelf(elastic, base)
}

// SubElastic subtracts elastic from the totals together with the corresponding amount of shares.
// Returns the subtracted shares.
func (r *Rebase) SubElastic(elastic uint256.Int, roundUp bool) (uint256.Int, error) {
	base, err := r.ToBase(elastic, roundUp)
	if err != nil {
		return uint256.Int{}, err
	}
	return base, r.SubSelf(elastic, base)
}

// AddBase adds base shares to the totals together with the corresponding elastic amount.
// Returns the added elastic.
func (r *Rebase) AddBase(base uint256.Int, roundUp bool) (uint256.Int, error) {
	elastic, err := r.ToElastic(base, roundUp)
	if err != nil {
		return uint256.Int{}, err
	}
	return elastic, r.AddSelf(elastic, base)
}

// SubBase subtracts base shares from the totals together with the corresponding elastic amount.
// Returns the subtracted elastic.
func (r *Rebase) SubBase(base uint256.Int, roundUp bool) (uint256.Int, error) {
	elastic, err := r.ToElastic(base, roundUp)
	if err != nil {
		return uint256.Int{}, err
	}
	return elastic, r.SubSelf(elastic, base)
}

// AddSelf adds amounts to both totals without any conversion.
func (r *Rebase) AddSelf(elastic, base uint256.Int) error {
	newElastic, err := fixed256.CheckedAdd(r.Elastic, elastic)
	if err != nil {
		return err
	}
	newBase, err := fixed256.CheckedAdd(r.Base, base)
	if err != nil {
		return err
	}
	r.Elastic, r.Base = newElastic, newBase
	return nil
}

// SubSelf subtracts amounts from both totals without any conversion.
func (r *Rebase) SubSelf(elastic, base uint256.Int) error {
	newElastic, err := fixed256.CheckedSub(r.Elastic, elastic)
	if err != nil {
		return err
	}
	newBase, err := fixed256.CheckedSub(r.Base, base)
	if err != nil {
		return err
	}
	r.Elastic, r.Base = newElastic, newBase
	return nil
}

// Rate returns elastic/base, the value of one share.
// The rate of an empty rebase is 1.
func (r Rebase) Rate() (ud60x18.Value, error) {
	if r.Elastic.IsZero() && r.Base.IsZero() {
		return ud60x18.Unit, nil
	}
	return ud60x18.FromRaw(r.Elastic).Div(ud60x18.FromRaw(r.Base))
}

// IsZero returns true, if both totals are zero.
func (r Rebase) IsZero() bool {
	return r.Elastic.IsZero() && r.Base.IsZero()
}

func (r Rebase) String() string {
	return r.Elastic.ToBig().String() + "/" + r.Base.ToBig().String()
}
