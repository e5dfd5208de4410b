// Package rebalancer computes the fee-or-incentive adjustment applied to a
// scope's balance movement, steering pool composition toward a configured
// ideal range.
package rebalancer

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/pool"
)

// Config holds the ideal/critical/limit boundaries and the adjustment
// rates applied in the strained and critical zones for one scope.
type Config struct {
	IdealUpper             osmomath.Dec
	IdealLower             osmomath.Dec
	CriticalUpper          osmomath.Dec
	CriticalLower          osmomath.Dec
	Limit                  osmomath.Dec
	AdjustmentRateStrained osmomath.Dec
	AdjustmentRateCritical osmomath.Dec
}

// DefaultConfig has a 100% limit, a 0-100% ideal range, a critical range
// that coincides with the limit, and zero adjustment rates: no fee, no
// incentive.
func DefaultConfig() Config {
	return Config{
		IdealUpper:             osmomath.OneDec(),
		IdealLower:             osmomath.ZeroDec(),
		CriticalUpper:          osmomath.OneDec(),
		CriticalLower:          osmomath.ZeroDec(),
		Limit:                  osmomath.OneDec(),
		AdjustmentRateStrained: osmomath.ZeroDec(),
		AdjustmentRateCritical: osmomath.ZeroDec(),
	}
}

// NewConfig validates and constructs a Config. The critical range must sit
// within [0, limit], the ideal range must sit within the critical range,
// and limit itself must not exceed 100%.
func NewConfig(
	idealUpper, idealLower, criticalUpper, criticalLower, limit,
	adjustmentRateStrained, adjustmentRateCritical osmomath.Dec,
) (Config, error) {
	if limit.GT(osmomath.OneDec()) || limit.IsNegative() {
		return Config{}, domain.InvalidLimitError{Limit: limit}
	}
	if idealUpper.LT(idealLower) {
		return Config{}, domain.InvalidRangeError{Start: idealLower, End: idealUpper}
	}
	if criticalUpper.LT(criticalLower) {
		return Config{}, domain.InvalidRangeError{Start: criticalLower, End: criticalUpper}
	}
	if criticalLower.IsNegative() || criticalUpper.GT(limit) {
		return Config{}, domain.UpperLimitExceededError{Limit: limit, Value: criticalUpper}
	}
	if idealUpper.GT(criticalUpper) || idealLower.LT(criticalLower) {
		return Config{}, domain.InvalidRangeError{Start: criticalLower, End: criticalUpper}
	}

	return Config{
		IdealUpper:             idealUpper,
		IdealLower:             idealLower,
		CriticalUpper:          criticalUpper,
		CriticalLower:          criticalLower,
		Limit:                  limit,
		AdjustmentRateStrained: adjustmentRateStrained,
		AdjustmentRateCritical: adjustmentRateCritical,
	}, nil
}

// LimitOnly builds a Config with no adjustment rates and an ideal range
// spanning the entire limited range: a pure upper-bound check.
func LimitOnly(limit osmomath.Dec) (Config, error) {
	return NewConfig(
		limit, osmomath.ZeroDec(),
		limit, osmomath.ZeroDec(),
		limit,
		osmomath.ZeroDec(), osmomath.ZeroDec(),
	)
}

// Ideal returns the inclusive ideal range.
func (c Config) Ideal() pool.Range {
	r, _ := pool.NewRange(pool.Inclusive(c.IdealLower), pool.Inclusive(c.IdealUpper))
	return r
}

// Zones partitions [0, limit] into five contiguous zones: critical-low,
// strained-low, ideal, strained-high, critical-high. A degenerate config
// where adjacent zone boundaries collapse to the same point with mixed
// inclusivity (e.g. an all-zero config) yields an error rather than a
// malformed zone.
func (c Config) Zones() ([5]Zone, error) {
	var zones [5]Zone
	var err error

	zones[0], err = newZone(pool.Inclusive(osmomath.ZeroDec()), pool.Exclusive(c.CriticalLower), c.AdjustmentRateCritical)
	if err != nil {
		return zones, err
	}
	zones[1], err = newZone(pool.Inclusive(c.CriticalLower), pool.Exclusive(c.IdealLower), c.AdjustmentRateStrained)
	if err != nil {
		return zones, err
	}
	zones[2], err = newZone(pool.Inclusive(c.IdealLower), pool.Inclusive(c.IdealUpper), osmomath.ZeroDec())
	if err != nil {
		return zones, err
	}
	zones[3], err = newZone(pool.Exclusive(c.IdealUpper), pool.Inclusive(c.CriticalUpper), c.AdjustmentRateStrained)
	if err != nil {
		return zones, err
	}
	zones[4], err = newZone(pool.Exclusive(c.CriticalUpper), pool.Inclusive(c.Limit), c.AdjustmentRateCritical)
	if err != nil {
		return zones, err
	}

	return zones, nil
}
