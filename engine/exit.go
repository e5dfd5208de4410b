package engine

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/alloyed"
	"github.com/osmosis-labs/transmuter-engine/corrupted"
	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/pool"
)

// ExitPool burns alloyed shares equal to the normalized value of
// tokensOut, rounded up, and pays tokensOut out of the pool.
func (e *Engine) ExitPool(user string, tokensOut []Coin) (osmomath.Int, error) {
	coins := make([]alloyed.Coin, 0, len(tokensOut))
	for _, t := range tokensOut {
		asset, err := e.pool.GetAsset(t.Denom)
		if err != nil {
			return osmomath.Int{}, err
		}
		coins = append(coins, alloyed.Coin{Amount: t.Amount, NormalizationFactor: asset.NormalizationFactor})
	}

	burn, err := alloyed.AmountFrom(coins, e.alloyed.NormalizationFactor, pool.RoundUp)
	if err != nil {
		return osmomath.Int{}, err
	}

	available := e.userShareBalance(user)
	if available.LT(burn) {
		return osmomath.Int{}, domain.InsufficientSharesError{Required: burn, Available: available}
	}

	for _, t := range tokensOut {
		asset, err := e.pool.GetAsset(t.Denom)
		if err != nil {
			return osmomath.Int{}, err
		}
		if asset.Amount.LT(t.Amount) {
			return osmomath.Int{}, domain.InsufficientPoolAssetError{Denom: t.Denom, Required: t.Amount, Available: asset.Amount}
		}
	}

	_, err = corrupted.Guard(e.pool, func(p *pool.Pool) (struct{}, error) {
		for _, t := range tokensOut {
			if err := p.Decrease(t.Denom, t.Amount); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		for _, t := range tokensOut {
			e.pool.Increase(t.Denom, t.Amount)
		}
		return osmomath.Int{}, err
	}

	_ = e.burnShares(user, burn) // sufficiency already checked above

	e.persist()
	return burn, nil
}
