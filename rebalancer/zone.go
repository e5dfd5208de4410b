package rebalancer

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/pool"
)

// Zone is one segment of the [0, limit] range, carrying the adjustment
// rate applied to balance movement through it.
type Zone struct {
	r              pool.Range
	adjustmentRate osmomath.Dec
}

func newZone(start, end pool.Bound, adjustmentRate osmomath.Dec) (Zone, error) {
	r, err := pool.NewRange(start, end)
	if err != nil {
		return Zone{}, err
	}
	return Zone{r: r, adjustmentRate: adjustmentRate}, nil
}

// adjustmentRateFor computes the signed adjustment rate contributed by
// this zone to a balance shift, scaled by how much of the shift's range
// overlaps the zone. The sign follows the shift's impact type relative to
// ideal: positive for rebalance, negative for debalance, zero for neutral
// or no overlap.
func (z Zone) adjustmentRateFor(shift BalanceShift, ideal pool.Range) osmomath.Dec {
	overlap, ok := z.r.Intersect(shift.r)
	if !ok {
		return osmomath.ZeroDec()
	}

	impact := shift.ImpactType(ideal)
	segmentLength := overlap.End().Value().Sub(overlap.Start().Value())
	magnitude := z.adjustmentRate.Mul(segmentLength)

	switch impact {
	case ImpactDebalance:
		return magnitude.Neg()
	case ImpactRebalance:
		return magnitude
	default:
		return osmomath.ZeroDec()
	}
}
