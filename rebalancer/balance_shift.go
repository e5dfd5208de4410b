package rebalancer

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/pool"
)

// Direction classifies how a scope's weight moved across an operation.
type Direction int

const (
	Increasing Direction = iota
	Decreasing
	Neutral
)

// ImpactType classifies a balance shift relative to the ideal range: a
// move toward ideal, a move away from it, or no effect.
type ImpactType int

const (
	ImpactNeutral ImpactType = iota
	ImpactRebalance
	ImpactDebalance
)

// BalanceShift describes a scope's weight moving from balance to
// balanceNew, as the inclusive range it spans plus its direction.
type BalanceShift struct {
	r         pool.Range
	direction Direction
}

// NewBalanceShift builds a BalanceShift from an old and new weight.
func NewBalanceShift(balance, balanceNew osmomath.Dec) (BalanceShift, error) {
	lo, hi := balance, balanceNew
	if lo.GT(hi) {
		lo, hi = hi, lo
	}
	r, err := pool.NewRange(pool.Inclusive(lo), pool.Inclusive(hi))
	if err != nil {
		return BalanceShift{}, err
	}

	var direction Direction
	switch {
	case balance.LT(balanceNew):
		direction = Increasing
	case balance.GT(balanceNew):
		direction = Decreasing
	default:
		direction = Neutral
	}

	return BalanceShift{r: r, direction: direction}, nil
}

// Direction reports whether the shift increased, decreased or held steady.
func (s BalanceShift) Direction() Direction { return s.direction }

// ImpactType reports whether this shift moves the scope toward ideal
// (rebalance), away from it (debalance), or has no effect (neutral).
func (s BalanceShift) ImpactType(ideal pool.Range) ImpactType {
	if s.direction == Neutral {
		return ImpactNeutral
	}

	isBelowIdeal := s.r.Start().Value().LT(ideal.Start().Value())
	isAboveIdeal := s.r.End().Value().GT(ideal.End().Value())
	isIdealZone := s.r.Start().Value().Equal(ideal.Start().Value()) && s.r.End().Value().Equal(ideal.End().Value())

	if isIdealZone {
		return ImpactNeutral
	}

	switch s.direction {
	case Increasing:
		switch {
		case isBelowIdeal:
			return ImpactRebalance
		case isAboveIdeal:
			return ImpactDebalance
		default:
			return ImpactNeutral
		}
	case Decreasing:
		switch {
		case isAboveIdeal:
			return ImpactRebalance
		case isBelowIdeal:
			return ImpactDebalance
		default:
			return ImpactNeutral
		}
	default:
		return ImpactNeutral
	}
}
