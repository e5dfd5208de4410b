package engine

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/rebalancer"
	"github.com/osmosis-labs/transmuter-engine/scope"
)

// TotalPoolLiquidity returns the pool's total liquidity in the standard
// normalized unit.
func (e *Engine) TotalPoolLiquidity() (osmomath.Int, error) {
	return e.pool.TotalNormalizedLiquidity()
}

// TotalShares returns the total outstanding alloyed share supply.
func (e *Engine) TotalShares() osmomath.Int { return e.totalShares }

// UserShares returns user's outstanding alloyed share balance.
func (e *Engine) UserShares(user string) osmomath.Int { return e.userShareBalance(user) }

// ShareDenom returns the alloyed share denom.
func (e *Engine) ShareDenom() string { return e.pool.ShareDenom }

// PoolAssetDenoms lists the pool's asset denoms in insertion order.
func (e *Engine) PoolAssetDenoms() []string {
	assets := e.pool.Assets()
	denoms := make([]string, len(assets))
	for i, a := range assets {
		denoms[i] = a.Denom
	}
	return denoms
}

// RebalancingConfig returns the config registered for s.
func (e *Engine) RebalancingConfig(s scope.Scope) (rebalancer.Config, error) {
	cfg, ok := e.configs[s.Key()]
	if !ok {
		return rebalancer.Config{}, domain.ConfigDoesNotExistError{Scope: s.Key()}
	}
	return cfg, nil
}

// IncentivePoolBalances returns every denom balance held by the incentive
// pool ledger.
func (e *Engine) IncentivePoolBalances() map[string]osmomath.Int {
	return e.ledger.PoolBalances()
}

// UserCredit returns user's outstanding normalized incentive credit.
func (e *Engine) UserCredit(user string) osmomath.Int { return e.ledger.UserCredit(user) }

// SpotPrice is always one after normalization, failing if either side is
// not a transmutable denom or the two sides coincide.
func (e *Engine) SpotPrice(quote, base string) (osmomath.Dec, error) {
	if quote == base {
		return osmomath.Dec{}, domain.InvalidTransmuteDenomError{Denom: quote}
	}
	if _, _, err := e.transmuteFactor(quote); err != nil {
		return osmomath.Dec{}, err
	}
	if _, _, err := e.transmuteFactor(base); err != nil {
		return osmomath.Dec{}, err
	}
	return osmomath.OneDec(), nil
}
