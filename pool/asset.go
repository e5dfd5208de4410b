package pool

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/domain"
)

// Asset is one denom held by the pool, together with the normalization
// factor used to convert its balance into the standard unit.
type Asset struct {
	Denom               string
	Amount              osmomath.Int
	NormalizationFactor osmomath.Int
	Corrupted           bool
}

// NewAsset constructs an Asset at a given starting amount. factor must be
// non-zero; a zero factor is a construction error.
func NewAsset(denom string, amount, factor osmomath.Int) (Asset, error) {
	if factor.IsZero() {
		return Asset{}, domain.ZeroInputError{}
	}
	return Asset{
		Denom:               denom,
		Amount:              amount,
		NormalizationFactor: factor,
	}, nil
}

// Increase adds amount to the asset's balance with checked arithmetic.
func (a *Asset) Increase(amount osmomath.Int) {
	a.Amount = a.Amount.Add(amount)
}

// Decrease subtracts amount from the asset's balance, failing on
// underflow.
func (a *Asset) Decrease(amount osmomath.Int) error {
	if a.Amount.LT(amount) {
		return domain.InsufficientPoolAssetError{
			Denom:     a.Denom,
			Required:  amount,
			Available: a.Amount,
		}
	}
	a.Amount = a.Amount.Sub(amount)
	return nil
}

// NormalizedValue returns the asset's balance expressed in the standard
// unit: amount * standardFactor / NormalizationFactor. The conversion is
// exact because standardFactor is the LCM of every asset's factor.
func (a Asset) NormalizedValue(standardFactor osmomath.Int) (osmomath.Int, error) {
	return ConvertAmount(a.Amount, a.NormalizationFactor, standardFactor, RoundDown)
}
