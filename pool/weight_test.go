package pool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/transmuter-engine/scope"
)

func TestPoolWeights(t *testing.T) {
	p := newTestPool(t)
	weights, err := p.Weights()
	require.NoError(t, err)

	usdc := weights[scope.Denom("uusdc").Key()]
	usdt := weights[scope.Denom("uusdt").Key()]
	// weights truncate at 18 decimals: 1/3 and 2/3 sum to one unit short of 1.
	require.True(t, usdc.Add(usdt).Equal(dp(999999999999999999, 18)))
	require.True(t, usdt.GT(usdc))
}

func TestPoolWeightGroupIsSumOfMembers(t *testing.T) {
	p := newTestPool(t)
	require.NoError(t, p.CreateAssetGroup("stable", []string{"uusdc", "uusdt"}))

	w, err := p.Weight(scope.AssetGroup("stable"))
	require.NoError(t, err)
	require.True(t, w.Equal(d(1)))
}

func TestPoolWeightUnknownScope(t *testing.T) {
	p := newTestPool(t)
	_, err := p.Weight(scope.Denom("unknown"))
	require.Error(t, err)
}
