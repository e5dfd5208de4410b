package engine_test

import (
	"testing"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/engine"
	"github.com/osmosis-labs/transmuter-engine/scope"
)

// A corrupted denom's pool balance may never increase: depositing more of
// it is rejected, and the pool is left exactly as it was before the
// attempt.
func TestJoinPoolRejectsIncreasingCorruptedDenom(t *testing.T) {
	e := newTestEngine(t, baseConfig())

	require.NoError(t, e.MarkCorrupted("admin1", scope.Denom("uatom")))

	before, err := e.TotalPoolLiquidity()
	require.NoError(t, err)

	_, err = e.JoinPool("alice", []engine.Coin{
		{Denom: "uatom", Amount: osmomath.NewInt(1000)},
	})
	require.Error(t, err)
	require.IsType(t, domain.CorruptedScopeRelativelyIncreasedError{}, err)

	after, err := e.TotalPoolLiquidity()
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.True(t, e.TotalShares().IsZero())
}

// Withdrawing a corrupted denom is unaffected, since its balance only
// decreases.
func TestExitPoolAllowsDecreasingCorruptedDenom(t *testing.T) {
	e := newTestEngine(t, baseConfig())

	_, err := e.JoinPool("alice", []engine.Coin{
		{Denom: "uatom", Amount: osmomath.NewInt(1000)},
	})
	require.NoError(t, err)

	require.NoError(t, e.MarkCorrupted("admin1", scope.Denom("uatom")))

	_, err = e.ExitPool("alice", []engine.Coin{
		{Denom: "uatom", Amount: osmomath.NewInt(500)},
	})
	require.NoError(t, err)
}

// A debalancing swap collects a fee into the incentive pool; a later
// swap moving the same scope back toward its ideal range credits the
// caller, who can then redeem it against the fees previously collected.
// The credit is capped by the incentive pool's own fee reserves, not by
// the AMM pool's total liquidity, so the fee has to land first.
func TestFeeThenIncentiveRedemptionFlow(t *testing.T) {
	cfg := baseConfig()
	cfg.RebalancingConfigs = []domain.RebalancerSeed{
		{
			ScopeKey:      "denom::uatom",
			IdealLower:    "0.45",
			IdealUpper:    "0.55",
			CriticalLower: "0.1",
			CriticalUpper: "0.9",
			Limit:         "0.95",
			RateStrained:  "0.1",
			RateCritical:  "0.3",
		},
	}
	e := newTestEngine(t, cfg)

	// swap uatom in hard enough to push its own weight past the ideal
	// range: a debalancing move that funds the incentive pool with a
	// uatom fee.
	_, err := e.SwapExactAmountIn("alice", "uatom", osmomath.NewInt(400_000), "uosmo", osmomath.NewInt(0))
	require.NoError(t, err)

	balances := e.IncentivePoolBalances()
	fee, ok := balances["uatom"]
	require.True(t, ok)
	require.True(t, fee.IsPositive())

	// swap uatom back out: its own balance drops well under the ideal
	// range, landing it in the strained-low zone. uosmo carries no
	// config, so this leg moves for free.
	_, err = e.SwapExactAmountIn("alice", "uosmo", osmomath.NewInt(900_000), "uatom", osmomath.NewInt(0))
	require.NoError(t, err)

	// swap uatom back in: its balance rises back toward the ideal range
	// from below, a rebalancing move that credits bob out of the fee
	// collected above instead of charging one.
	_, err = e.SwapExactAmountIn("bob", "uatom", osmomath.NewInt(100_000), "uosmo", osmomath.NewInt(0))
	require.NoError(t, err)

	credit := e.UserCredit("bob")
	require.True(t, credit.IsPositive())

	// bob's credit is backed by the uatom fee collected above, so a
	// small redemption against it succeeds.
	require.NoError(t, e.RedeemIncentiveCredit("bob", []engine.Coin{
		{Denom: "uatom", Amount: osmomath.OneInt()},
	}))
}
