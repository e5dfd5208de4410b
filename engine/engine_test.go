package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/engine"
	"github.com/osmosis-labs/transmuter-engine/log"
	"github.com/osmosis-labs/transmuter-engine/scope"
	"github.com/osmosis-labs/transmuter-engine/store"
)

func baseConfig() domain.EngineConfig {
	return domain.EngineConfig{
		AlloyedDenom:             "factory/transmuter/share",
		AlloyedNormalizationFact: "1",
		Assets: []domain.AssetSeed{
			{Denom: "uatom", Amount: "1000000", NormalizationFactor: "1"},
			{Denom: "uosmo", Amount: "1000000", NormalizationFactor: "1"},
		},
		Admin: "admin1",
	}
}

func newTestEngine(t *testing.T, cfg domain.EngineConfig) *engine.Engine {
	t.Helper()
	e, err := engine.New(cfg, store.NewMemStore(), log.NewNopLogger())
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	e := newTestEngine(t, baseConfig())
	require.Equal(t, "factory/transmuter/share", e.ShareDenom())
	require.True(t, e.TotalShares().IsZero())
}

func TestNewInvalidAssetAmount(t *testing.T) {
	cfg := baseConfig()
	cfg.Assets[0].Amount = "not-a-number"

	_, err := engine.New(cfg, store.NewMemStore(), log.NewNopLogger())
	require.Error(t, err)
	require.IsType(t, domain.InvalidConfigValueError{}, err)
}

func TestNewInvalidAlloyedNormalizationFactor(t *testing.T) {
	cfg := baseConfig()
	cfg.AlloyedNormalizationFact = "abc"

	_, err := engine.New(cfg, store.NewMemStore(), log.NewNopLogger())
	require.Error(t, err)
	require.IsType(t, domain.InvalidConfigValueError{}, err)
}

func TestNewInvalidRebalancingConfigValue(t *testing.T) {
	cfg := baseConfig()
	cfg.RebalancingConfigs = []domain.RebalancerSeed{
		{
			ScopeKey:      "denom::uatom",
			IdealLower:    "0.2",
			IdealUpper:    "0.8",
			CriticalLower: "0.1",
			CriticalUpper: "not-a-decimal",
			Limit:         "0.95",
			RateStrained:  "0.01",
			RateCritical:  "0.05",
		},
	}

	_, err := engine.New(cfg, store.NewMemStore(), log.NewNopLogger())
	require.Error(t, err)
	require.IsType(t, domain.InvalidConfigValueError{}, err)
}

func TestNewRejectsUnparsableScope(t *testing.T) {
	cfg := baseConfig()
	cfg.RebalancingConfigs = []domain.RebalancerSeed{
		{
			ScopeKey:      "not-a-scope",
			IdealLower:    "0.2",
			IdealUpper:    "0.8",
			CriticalLower: "0.1",
			CriticalUpper: "0.9",
			Limit:         "0.95",
			RateStrained:  "0.01",
			RateCritical:  "0.05",
		},
	}

	_, err := engine.New(cfg, store.NewMemStore(), log.NewNopLogger())
	require.Error(t, err)
	require.IsType(t, domain.ParseScopeError{}, err)
}

func TestNewWiresRebalancingConfig(t *testing.T) {
	cfg := baseConfig()
	cfg.RebalancingConfigs = []domain.RebalancerSeed{
		{
			ScopeKey:      "denom::uatom",
			IdealLower:    "0.2",
			IdealUpper:    "0.8",
			CriticalLower: "0.1",
			CriticalUpper: "0.9",
			Limit:         "0.95",
			RateStrained:  "0.01",
			RateCritical:  "0.05",
		},
	}
	e := newTestEngine(t, cfg)

	got, err := e.RebalancingConfig(scope.Denom("uatom"))
	require.NoError(t, err)
	require.Equal(t, "0.950000000000000000", got.Limit.String())
}
