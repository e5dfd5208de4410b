package rebalancer

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

// ComputeAdjustmentValue computes the incentive (positive) or fee
// (negative) owed on a movement of a scope's weight from balance to
// balanceNew, against balanceTotal atomic units of the affected token.
//
// Each of the config's five zones contributes its adjustment rate scaled
// by however much of the shift's range overlaps that zone; the result is
// summed and applied to balanceTotal, then rounded asymmetrically:
// incentives round down, fees round up, so the pool never over-pays.
func ComputeAdjustmentValue(balance, balanceNew osmomath.Dec, balanceTotal osmomath.Int, cfg Config) (osmomath.Int, error) {
	shift, err := NewBalanceShift(balance, balanceNew)
	if err != nil {
		return osmomath.Int{}, err
	}

	if cfg.AdjustmentRateStrained.IsZero() && cfg.AdjustmentRateCritical.IsZero() {
		return osmomath.ZeroInt(), nil
	}

	zones, err := cfg.Zones()
	if err != nil {
		return osmomath.Int{}, err
	}
	ideal := cfg.Ideal()

	total := osmomath.ZeroDec()
	for _, z := range zones {
		total = total.Add(z.adjustmentRateFor(shift, ideal))
	}

	adjustment := total.MulInt(balanceTotal)
	return roundAdjustment(adjustment), nil
}

// roundAdjustment converts a signed decimal adjustment to an integer:
// positive values (incentives) truncate toward zero so the pool gives out
// no more than it should; negative values (fees) round away from zero so
// the pool always collects at least what is owed.
func roundAdjustment(adjustment osmomath.Dec) osmomath.Int {
	truncated := adjustment.TruncateInt()
	if adjustment.IsNegative() && !adjustment.Sub(osmomath.NewDecFromInt(truncated)).IsZero() {
		return truncated.Sub(osmomath.OneInt())
	}
	return truncated
}
