package rebalancer_test

import (
	"testing"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/transmuter-engine/rebalancer"
)

func pct(v int64) osmomath.Dec { return osmomath.NewDecWithPrec(v, 2) }

func TestNewConfigValidation(t *testing.T) {
	testCases := []struct {
		name                                                              string
		idealUpper, idealLower, criticalUpper, criticalLower, limit       int64
		adjustmentRateStrained, adjustmentRateCritical                    int64
		wantErr                                                           bool
	}{
		{"valid", 60, 40, 80, 20, 90, 1, 2, false},
		{"critical upper exceeds limit", 60, 40, 100, 20, 90, 1, 2, true},
		{"ideal lower below critical lower", 60, 10, 80, 20, 90, 1, 2, true},
		{"ideal upper above critical upper", 90, 40, 80, 20, 90, 1, 2, true},
		{"ideal range reversed", 40, 60, 80, 20, 90, 1, 2, true},
		{"critical range reversed", 60, 40, 20, 80, 90, 1, 2, true},
		{"zero adjustment rates", 60, 40, 80, 20, 90, 0, 0, false},
		{"zero limit", 60, 40, 80, 20, 0, 1, 2, true},
		{"max limit", 60, 40, 80, 20, 100, 1, 2, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rebalancer.NewConfig(
				pct(tc.idealUpper), pct(tc.idealLower),
				pct(tc.criticalUpper), pct(tc.criticalLower),
				pct(tc.limit),
				pct(tc.adjustmentRateStrained), pct(tc.adjustmentRateCritical),
			)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigZones(t *testing.T) {
	cfg, err := rebalancer.NewConfig(pct(60), pct(40), pct(80), pct(20), pct(90), pct(1), pct(2))
	require.NoError(t, err)

	zones, err := cfg.Zones()
	require.NoError(t, err)
	require.Len(t, zones, 5)
}

func TestConfigZonesDegenerateAllZero(t *testing.T) {
	cfg, err := rebalancer.NewConfig(pct(0), pct(0), pct(0), pct(0), pct(0), pct(1), pct(2))
	require.NoError(t, err)

	_, err = cfg.Zones()
	require.Error(t, err)
}
