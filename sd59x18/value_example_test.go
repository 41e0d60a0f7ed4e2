// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sd59x18

import (
	"fmt"
)

type priceSize struct {
	Price, Size Value
}

func ExampleValue() {
	obook := []priceSize{
		{MustFromString("1.2345"), MustFromString("3.3")},
		{MustFromString("1.235"), MustFromString("1.4")},
		{MustFromString("1.2357"), MustFromString("4")},
		{MustFromString("1.23571"), MustFromString("2.5")},
		{MustFromString("1.23582"), MustFromString("1.5")},
	}

	vw, vol := vwap(obook, MustFromString("10"))
	fmt.Printf("vwap for order book is %s with volume %s\n", vw, vol)

	pnl, err := MustFromString("1.2").Sub(vw)
	if err != nil {
		panic(err)
	}
	if pnl, err = pnl.Mul(vol); err != nil {
		panic(err)
	}
	fmt.Printf("selling at 1.2 gives %s\n", pnl)

	vw, vol = vwap(obook, MustFromString("15"))
	fmt.Printf("vwap for order book is %s with volume %s\n", vw, vol)

	// Output:
	// vwap for order book is 1.2352073 with volume 10
	// selling at 1.2 gives -0.352073
	// vwap for order book is 1.235327165354330708 with volume 12.7
}

func vwap(obook []priceSize, desiredVolume Value) (vwap, vol Value) {
	var tier, spent Value
	for _, it := range obook {
		left, err := desiredVolume.Sub(tier)
		if err != nil {
			panic(err)
		}
		if left.Sign() <= 0 {
			break
		}
		sz := it.Size
		if left.Cmp(sz) < 0 {
			sz = left
		}
		if tier, err = tier.Add(sz); err != nil {
			panic(err)
		}
		cost, err := sz.Mul(it.Price)
		if err != nil {
			panic(err)
		}
		if spent, err = spent.Add(cost); err != nil {
			panic(err)
		}
	}
	vwap, err := spent.Div(tier)
	if err != nil {
		panic(err)
	}
	return vwap, tier
}
