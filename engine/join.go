package engine

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/alloyed"
	"github.com/osmosis-labs/transmuter-engine/corrupted"
	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/pool"
)

// JoinPool deposits a non-empty multi-denom amount, mints alloyed shares
// equal to its normalized value rounded down, and rejects the deposit if
// any configured scope's weight would cross its limit or any corrupted
// scope would relatively grow.
func (e *Engine) JoinPool(user string, deposit []Coin) (osmomath.Int, error) {
	if len(deposit) == 0 {
		return osmomath.Int{}, domain.AtLeastSingleTokenExpectedError{}
	}

	coins := make([]alloyed.Coin, 0, len(deposit))
	for _, d := range deposit {
		asset, err := e.pool.GetAsset(d.Denom)
		if err != nil {
			return osmomath.Int{}, domain.InvalidJoinPoolDenomError{Denom: d.Denom}
		}
		coins = append(coins, alloyed.Coin{Amount: d.Amount, NormalizationFactor: asset.NormalizationFactor})
	}

	preWeights, err := e.snapshotConfiguredWeights()
	if err != nil {
		return osmomath.Int{}, err
	}

	rollback := func() {
		for _, d := range deposit {
			_ = e.pool.Decrease(d.Denom, d.Amount)
		}
	}

	_, err = corrupted.Guard(e.pool, func(p *pool.Pool) (struct{}, error) {
		for _, d := range deposit {
			if err := p.Increase(d.Denom, d.Amount); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		rollback()
		return osmomath.Int{}, err
	}

	if err := e.checkLimits(preWeights); err != nil {
		rollback()
		return osmomath.Int{}, err
	}

	minted, err := alloyed.AmountFrom(coins, e.alloyed.NormalizationFactor, pool.RoundDown)
	if err != nil {
		rollback()
		return osmomath.Int{}, err
	}

	e.mintShares(user, minted)
	e.persist()
	return minted, nil
}
