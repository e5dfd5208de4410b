package alloyed_test

import (
	"testing"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/transmuter-engine/alloyed"
	"github.com/osmosis-labs/transmuter-engine/pool"
)

func i(v int64) osmomath.Int { return osmomath.NewInt(v) }

func TestAmountFromDifferingFactors(t *testing.T) {
	coins := []alloyed.Coin{
		{Amount: i(1000).Mul(i(100000000)), NormalizationFactor: i(100000000)},
		{Amount: i(0), NormalizationFactor: i(1)},
	}

	total, err := alloyed.AmountFrom(coins, i(1), pool.RoundDown)
	require.NoError(t, err)
	require.True(t, total.Equal(i(1000)))
}

func TestAmountFromRoundingDiffers(t *testing.T) {
	coins := []alloyed.Coin{
		{Amount: i(7), NormalizationFactor: i(3)},
	}

	down, err := alloyed.AmountFrom(coins, i(1), pool.RoundDown)
	require.NoError(t, err)
	require.True(t, down.Equal(i(2)))

	up, err := alloyed.AmountFrom(coins, i(1), pool.RoundUp)
	require.NoError(t, err)
	require.True(t, up.Equal(i(3)))
}
