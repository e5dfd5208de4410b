// Package alloyed implements the share-token side of the transmuter: the
// normalization kernel shared by mint and burn across join, exit and
// alloyed-denom swaps.
package alloyed

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/pool"
)

// Asset is the alloyed share denom and the normalization factor it is
// quoted at.
type Asset struct {
	Denom               string
	NormalizationFactor osmomath.Int
}

// Coin is one exact amount of a given denom, paired with the
// normalization factor it should be converted through.
type Coin struct {
	Amount              osmomath.Int
	NormalizationFactor osmomath.Int
}

// AmountFrom sums convert(amount_i, factor_i, targetFactor, rounding)
// across coins: the single kernel used by join (round down), exit (round
// up), swap-to-alloyed-exact-in (round down) and swap-to-alloyed-exact-out
// (round up).
func AmountFrom(coins []Coin, targetFactor osmomath.Int, rounding pool.Rounding) (osmomath.Int, error) {
	total := osmomath.ZeroInt()
	for _, c := range coins {
		converted, err := pool.ConvertAmount(c.Amount, c.NormalizationFactor, targetFactor, rounding)
		if err != nil {
			return osmomath.Int{}, err
		}
		total = total.Add(converted)
	}
	return total, nil
}
