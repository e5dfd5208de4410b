package engine

import (
	"sort"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/pool"
	"github.com/osmosis-labs/transmuter-engine/rebalancer"
	"github.com/osmosis-labs/transmuter-engine/scope"
)

// transmuteFactor resolves denom's normalization factor, reporting
// whether it is the alloyed share denom rather than a pool asset.
func (e *Engine) transmuteFactor(denom string) (osmomath.Int, bool, error) {
	if denom == e.alloyed.Denom {
		return e.alloyed.NormalizationFactor, true, nil
	}
	asset, err := e.pool.GetAsset(denom)
	if err != nil {
		return osmomath.Int{}, false, domain.InvalidTransmuteDenomError{Denom: denom}
	}
	return asset.NormalizationFactor, false, nil
}

// scopesFor returns the configured scope keys touched by denom: its own
// denom scope and any asset group scope it belongs to, restricted to
// scopes that actually carry a rebalancing config.
func (e *Engine) scopesFor(denom string) []string {
	var keys []string

	denomKey := scope.Denom(denom).Key()
	if _, ok := e.configs[denomKey]; ok {
		keys = append(keys, denomKey)
	}

	for label, g := range e.pool.AssetGroups() {
		for _, d := range g.Denoms {
			if d != denom {
				continue
			}
			groupKey := scope.AssetGroup(label).Key()
			if _, ok := e.configs[groupKey]; ok {
				keys = append(keys, groupKey)
			}
			break
		}
	}

	return keys
}

// orderedConfigScopeKeys lists every configured scope key, pool assets in
// their insertion order followed by asset groups in label order, so that
// a limit violation is always reported against the first offending scope
// in a deterministic order.
func (e *Engine) orderedConfigScopeKeys() []string {
	var keys []string

	for _, a := range e.pool.Assets() {
		key := scope.Denom(a.Denom).Key()
		if _, ok := e.configs[key]; ok {
			keys = append(keys, key)
		}
	}

	groups := e.pool.AssetGroups()
	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		key := scope.AssetGroup(label).Key()
		if _, ok := e.configs[key]; ok {
			keys = append(keys, key)
		}
	}

	return keys
}

// snapshotConfiguredWeights reads the current weight of every configured
// scope, for comparison against the post-operation weight in checkLimits.
func (e *Engine) snapshotConfiguredWeights() (map[string]osmomath.Dec, error) {
	weights, err := e.pool.Weights()
	if err != nil {
		return nil, err
	}
	out := make(map[string]osmomath.Dec, len(e.configs))
	for key := range e.configs {
		out[key] = weights[key]
	}
	return out, nil
}

// checkLimits fails with the first configured scope (in orderedConfigScopeKeys
// order) whose weight now exceeds its limit while non-decreasing relative
// to pre.
func (e *Engine) checkLimits(pre map[string]osmomath.Dec) error {
	post, err := e.pool.Weights()
	if err != nil {
		return err
	}
	for _, key := range e.orderedConfigScopeKeys() {
		cfg := e.configs[key]
		w := post[key]
		if w.GT(cfg.Limit) && w.GTE(pre[key]) {
			return domain.UpperLimitExceededError{Scope: key, Limit: cfg.Limit, Value: w}
		}
	}
	return nil
}

// adjustmentFor computes the combined fee/incentive adjustment, in atomic
// units of denom, of increasing denom's pool balance by grossDelta: the
// sum of rebalancer.ComputeAdjustmentValue across denom's own scope and
// any asset group scope it belongs to. It simulates the balance change
// and reverts it before returning, so it never leaves the pool mutated.
func (e *Engine) adjustmentFor(denom string, grossDelta osmomath.Int) (osmomath.Int, error) {
	scopes := e.scopesFor(denom)
	if len(scopes) == 0 {
		return osmomath.ZeroInt(), nil
	}

	asset, err := e.pool.GetAsset(denom)
	if err != nil {
		return osmomath.Int{}, err
	}
	preTotal := asset.Amount

	preWeights, err := e.pool.Weights()
	if err != nil {
		return osmomath.Int{}, err
	}
	if err := e.pool.Increase(denom, grossDelta); err != nil {
		return osmomath.Int{}, err
	}
	postWeights, err := e.pool.Weights()
	if err != nil {
		_ = e.pool.Decrease(denom, grossDelta)
		return osmomath.Int{}, err
	}
	if err := e.pool.Decrease(denom, grossDelta); err != nil {
		return osmomath.Int{}, err
	}

	total := osmomath.ZeroInt()
	for _, key := range scopes {
		cfg := e.configs[key]
		adj, err := rebalancer.ComputeAdjustmentValue(preWeights[key], postWeights[key], preTotal, cfg)
		if err != nil {
			return osmomath.Int{}, err
		}
		total = total.Add(adj)
	}
	return total, nil
}

// incentivePoolNormalizedValue returns the incentive ledger's own
// collected-fee reserves, converted to the standard unit — the solvency
// cap for CreditUser is measured against this, not against the AMM
// pool's own liquidity.
func (e *Engine) incentivePoolNormalizedValue() (osmomath.Int, error) {
	standardFactor, err := e.pool.StandardFactor()
	if err != nil {
		return osmomath.Int{}, err
	}

	total := osmomath.ZeroInt()
	for denom, amount := range e.ledger.PoolBalances() {
		asset, err := e.pool.GetAsset(denom)
		if err != nil {
			return osmomath.Int{}, err
		}
		normalized, err := pool.ConvertAmount(amount, asset.NormalizationFactor, standardFactor, pool.RoundDown)
		if err != nil {
			return osmomath.Int{}, err
		}
		total = total.Add(normalized)
	}
	return total, nil
}

// mintShares credits amount of alloyed shares to user.
func (e *Engine) mintShares(user string, amount osmomath.Int) {
	e.userShares[user] = e.userShareBalance(user).Add(amount)
	e.totalShares = e.totalShares.Add(amount)
}

// burnShares debits amount of alloyed shares from user, failing with
// InsufficientSharesError if user holds less than amount.
func (e *Engine) burnShares(user string, amount osmomath.Int) error {
	available := e.userShareBalance(user)
	if available.LT(amount) {
		return domain.InsufficientSharesError{Required: amount, Available: available}
	}
	remaining := available.Sub(amount)
	if remaining.IsZero() {
		delete(e.userShares, user)
	} else {
		e.userShares[user] = remaining
	}
	e.totalShares = e.totalShares.Sub(amount)
	return nil
}
