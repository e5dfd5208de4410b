// Package engine composes pool composition, weight accounting, the
// rebalancing policy, the incentive ledger and the corrupted-scope
// protocol into the join/exit/swap state transitions and their
// administrative and query surface.
package engine

import (
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/alloyed"
	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/incentive"
	"github.com/osmosis-labs/transmuter-engine/log"
	"github.com/osmosis-labs/transmuter-engine/pool"
	"github.com/osmosis-labs/transmuter-engine/rebalancer"
	"github.com/osmosis-labs/transmuter-engine/role"
	"github.com/osmosis-labs/transmuter-engine/scope"
	"github.com/osmosis-labs/transmuter-engine/store"
)

const (
	keyPool                 = "pool"
	keyAlloyedDenom         = "alloyed_denom"
	keyAlloyedNormFactor    = "alloyed_normalization_factor"
	rebalancerKeyPrefix     = "rebalancer/"
	incentiveBalancePrefix  = "incentive_pool/balances/"
	incentiveCreditPrefix   = "incentive_pool/credits/"
	keyIncentiveTotalCredit = "incentive_pool/total_credits"
)

// Engine is one transmuter pool instance: its composition, rebalancing
// policy, incentive ledger, share accounting and role plumbing.
type Engine struct {
	pool    *pool.Pool
	alloyed alloyed.Asset

	configs map[string]rebalancer.Config

	ledger *incentive.Ledger

	userShares  map[string]osmomath.Int
	totalShares osmomath.Int

	roles *role.Store
	kv    store.KVStore

	logger log.Logger
}

// New builds an Engine from its seed configuration, wiring role
// assignment and persisting the initial state.
func New(cfg domain.EngineConfig, kv store.KVStore, logger log.Logger) (*Engine, error) {
	assets := make([]pool.Asset, 0, len(cfg.Assets))
	for _, seed := range cfg.Assets {
		amount, ok := osmomath.NewIntFromString(seed.Amount)
		if !ok {
			return nil, domain.InvalidConfigValueError{Field: fmt.Sprintf("assets[%s].amount", seed.Denom), Value: seed.Amount}
		}
		factor, ok := osmomath.NewIntFromString(seed.NormalizationFactor)
		if !ok {
			return nil, domain.InvalidConfigValueError{Field: fmt.Sprintf("assets[%s].normalization_factor", seed.Denom), Value: seed.NormalizationFactor}
		}
		asset, err := pool.NewAsset(seed.Denom, amount, factor)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	p, err := pool.NewPool(cfg.AlloyedDenom, assets)
	if err != nil {
		return nil, err
	}

	for _, g := range cfg.AssetGroups {
		if err := p.CreateAssetGroup(g.Label, g.Denoms); err != nil {
			return nil, err
		}
	}

	alloyedFactor, ok := osmomath.NewIntFromString(cfg.AlloyedNormalizationFact)
	if !ok {
		return nil, domain.InvalidConfigValueError{Field: "alloyed_normalization_factor", Value: cfg.AlloyedNormalizationFact}
	}

	configs := make(map[string]rebalancer.Config, len(cfg.RebalancingConfigs))
	for _, seed := range cfg.RebalancingConfigs {
		s, err := scope.Parse(seed.ScopeKey)
		if err != nil {
			return nil, err
		}

		decFields := []struct {
			name  string
			value string
		}{
			{"ideal_upper", seed.IdealUpper},
			{"ideal_lower", seed.IdealLower},
			{"critical_upper", seed.CriticalUpper},
			{"critical_lower", seed.CriticalLower},
			{"limit", seed.Limit},
			{"rate_strained", seed.RateStrained},
			{"rate_critical", seed.RateCritical},
		}
		decs := make([]osmomath.Dec, len(decFields))
		for i, f := range decFields {
			d, err := osmomath.NewDecFromStr(f.value)
			if err != nil {
				return nil, domain.InvalidConfigValueError{Field: fmt.Sprintf("rebalancing_configs[%s].%s", seed.ScopeKey, f.name), Value: f.value}
			}
			decs[i] = d
		}

		rc, err := rebalancer.NewConfig(decs[0], decs[1], decs[2], decs[3], decs[4], decs[5], decs[6])
		if err != nil {
			return nil, err
		}
		configs[s.Key()] = rc
	}

	roles := role.NewStore(kv)
	roles.SetAdmin(cfg.Admin)
	if cfg.Moderator != "" {
		roles.SetModerator(cfg.Moderator)
	}

	e := &Engine{
		pool:        p,
		alloyed:     alloyed.Asset{Denom: cfg.AlloyedDenom, NormalizationFactor: alloyedFactor},
		configs:     configs,
		ledger:      incentive.NewLedger(),
		userShares:  make(map[string]osmomath.Int),
		totalShares: osmomath.ZeroInt(),
		roles:       roles,
		kv:          kv,
		logger:      logger,
	}

	e.persist()
	return e, nil
}

// persist writes the engine's top-level state keys, following the
// namespaced layout of the persisted state store.
func (e *Engine) persist() {
	_ = store.SaveJSON(e.kv, keyPool, struct {
		Assets []pool.Asset
		Groups map[string]pool.AssetGroup
	}{Assets: e.pool.Assets(), Groups: e.pool.AssetGroups()})

	e.kv.Set(keyAlloyedDenom, []byte(e.alloyed.Denom))
	_ = store.SaveJSON(e.kv, keyAlloyedNormFactor, e.alloyed.NormalizationFactor)
	e.kv.Set(keyContractVersion, []byte(contractVersion))

	for key, cfg := range e.configs {
		_ = store.SaveJSON(e.kv, rebalancerKeyPrefix+key, cfg)
	}

	for denom, amount := range e.ledger.PoolBalances() {
		_ = store.SaveJSON(e.kv, incentiveBalancePrefix+denom, amount)
	}
	for _, user := range e.ledger.CreditUsers() {
		_ = store.SaveJSON(e.kv, incentiveCreditPrefix+user, e.ledger.UserCredit(user))
	}
	_ = store.SaveJSON(e.kv, keyIncentiveTotalCredit, e.ledger.TotalCredits())
}

func (e *Engine) userShareBalance(user string) osmomath.Int {
	if v, ok := e.userShares[user]; ok {
		return v
	}
	return osmomath.ZeroInt()
}
