package engine

import (
	"github.com/osmosis-labs/transmuter-engine/incentive"
	"github.com/osmosis-labs/transmuter-engine/pool"
)

// RedeemIncentiveCredit pays redemptions out of the incentive pool
// against the caller's outstanding normalized credit, rounding each
// coin's normalized cost up so the caller never under-pays for a payout.
func (e *Engine) RedeemIncentiveCredit(user string, redemptions []Coin) error {
	standardFactor, err := e.pool.StandardFactor()
	if err != nil {
		return err
	}

	reds := make([]incentive.Redemption, 0, len(redemptions))
	for _, r := range redemptions {
		asset, err := e.pool.GetAsset(r.Denom)
		if err != nil {
			return err
		}
		normalized, err := pool.ConvertAmount(r.Amount, asset.NormalizationFactor, standardFactor, pool.RoundUp)
		if err != nil {
			return err
		}
		reds = append(reds, incentive.Redemption{Denom: r.Denom, Amount: r.Amount, NormalizedValue: normalized})
	}

	if err := e.ledger.Redeem(user, reds); err != nil {
		return err
	}
	e.persist()
	return nil
}
