package rebalancer_test

import (
	"testing"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/transmuter-engine/pool"
	"github.com/osmosis-labs/transmuter-engine/rebalancer"
)

func TestNewBalanceShiftDirection(t *testing.T) {
	testCases := []struct {
		name       string
		balance    osmomath.Dec
		balanceNew osmomath.Dec
		expected   rebalancer.Direction
	}{
		{"increasing", pct(1), pct(2), rebalancer.Increasing},
		{"decreasing", pct(2), pct(1), rebalancer.Decreasing},
		{"neutral", pct(1), pct(1), rebalancer.Neutral},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shift, err := rebalancer.NewBalanceShift(tc.balance, tc.balanceNew)
			require.NoError(t, err)
			require.Equal(t, tc.expected, shift.Direction())
		})
	}
}

func TestBalanceShiftImpactType(t *testing.T) {
	testCases := []struct {
		name       string
		balance    osmomath.Dec
		balanceNew osmomath.Dec
		ideal      pool.Range
		expected   rebalancer.ImpactType
	}{
		{"neutral when no change", pct(1), pct(1), mustRange(t, pct(1), pct(1)), rebalancer.ImpactNeutral},
		{"rebalance when increasing below ideal", pct(1), pct(2), mustRange(t, pct(3), pct(4)), rebalancer.ImpactRebalance},
		{"debalance when increasing above ideal", pct(3), pct(4), mustRange(t, pct(1), pct(2)), rebalancer.ImpactDebalance},
		{"rebalance when decreasing above ideal", pct(4), pct(3), mustRange(t, pct(1), pct(2)), rebalancer.ImpactRebalance},
		{"debalance when decreasing below ideal", pct(2), pct(1), mustRange(t, pct(3), pct(4)), rebalancer.ImpactDebalance},
		{"neutral when moving within ideal", pct(2), pct(3), mustRange(t, pct(1), pct(4)), rebalancer.ImpactNeutral},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shift, err := rebalancer.NewBalanceShift(tc.balance, tc.balanceNew)
			require.NoError(t, err)
			require.Equal(t, tc.expected, shift.ImpactType(tc.ideal))
		})
	}
}

func mustRange(t *testing.T, start, end osmomath.Dec) pool.Range {
	t.Helper()
	r, err := pool.NewRange(pool.Inclusive(start), pool.Inclusive(end))
	require.NoError(t, err)
	return r
}
