// Package pool implements the pool composition model: assets, asset
// groups, scopes and the fixed-point arithmetic helpers they build on.
package pool

import (
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/domain"
)

// Rounding selects the rounding direction for a non-exact division in
// ConvertAmount.
type Rounding int

const (
	RoundDown Rounding = iota
	RoundUp
)

// ConvertAmount re-expresses amount, given in units of fromFactor base
// units per standard unit, into units of toFactor base units per
// standard unit: amount * toFactor / fromFactor.
func ConvertAmount(amount, fromFactor, toFactor osmomath.Int, rounding Rounding) (osmomath.Int, error) {
	if fromFactor.IsZero() {
		return osmomath.Int{}, domain.DivideByZeroError{}
	}

	product := amount.Mul(toFactor)

	switch rounding {
	case RoundUp:
		return ceilDiv(product, fromFactor), nil
	default:
		return product.Quo(fromFactor), nil
	}
}

func ceilDiv(numerator, denominator osmomath.Int) osmomath.Int {
	quotient := numerator.Quo(denominator)
	remainder := numerator.Mod(denominator)
	if remainder.IsPositive() {
		return quotient.Add(osmomath.OneInt())
	}
	return quotient
}

// LCMOver returns the least common multiple of factors. It is the
// standard normalization factor used to convert every pool asset's
// balance into a common unit without rounding loss.
func LCMOver(factors []osmomath.Int) (osmomath.Int, error) {
	if len(factors) == 0 {
		return osmomath.Int{}, domain.EmptyIteratorError{}
	}

	result := osmomath.OneInt()
	for _, f := range factors {
		next, err := lcm(result, f)
		if err != nil {
			return osmomath.Int{}, err
		}
		result = next
	}
	return result, nil
}

func lcm(n, m osmomath.Int) (osmomath.Int, error) {
	g, err := gcd(n, m)
	if err != nil {
		return osmomath.Int{}, err
	}
	// n * m / g, ordered as (n / g) * m to reduce overflow risk.
	return n.Quo(g).Mul(m), nil
}

func gcd(n, m osmomath.Int) (osmomath.Int, error) {
	if n.IsZero() || m.IsZero() {
		return osmomath.Int{}, domain.ZeroInputError{}
	}

	for !m.IsZero() {
		if m.LT(n) {
			n, m = m, n
		}
		m = m.Mod(n)
	}
	return n, nil
}

// Bound is one endpoint of a Range: either inclusive or exclusive of its
// value.
type Bound struct {
	value     osmomath.Dec
	inclusive bool
}

// Inclusive builds a Bound that includes v.
func Inclusive(v osmomath.Dec) Bound { return Bound{value: v, inclusive: true} }

// Exclusive builds a Bound that excludes v.
func Exclusive(v osmomath.Dec) Bound { return Bound{value: v, inclusive: false} }

// Value returns the bound's underlying decimal.
func (b Bound) Value() osmomath.Dec { return b.value }

// IsInclusive reports whether the bound includes its value.
func (b Bound) IsInclusive() bool { return b.inclusive }

func (b Bound) String() string {
	if b.inclusive {
		return fmt.Sprintf("Inclusive(%s)", b.value)
	}
	return fmt.Sprintf("Exclusive(%s)", b.value)
}

// Range is a closed, half-open, or open interval of decimals.
type Range struct {
	start Bound
	end   Bound
}

// NewRange validates start.Value() <= end.Value(), requiring both bounds
// inclusive when the values are equal (a single-point range).
func NewRange(start, end Bound) (Range, error) {
	if start.value.Equal(end.value) {
		if !(start.inclusive && end.inclusive) {
			return Range{}, domain.InvalidRangeError{Start: start, End: end}
		}
	} else if start.value.GT(end.value) {
		return Range{}, domain.InvalidRangeError{Start: start, End: end}
	}

	return Range{start: start, end: end}, nil
}

// Start returns the range's lower bound.
func (r Range) Start() Bound { return r.start }

// End returns the range's upper bound.
func (r Range) End() Bound { return r.end }

// Contains reports whether value falls within the range, honoring each
// bound's inclusivity.
func (r Range) Contains(value osmomath.Dec) bool {
	lowerOK := value.GT(r.start.value) || (r.start.inclusive && value.Equal(r.start.value))
	upperOK := value.LT(r.end.value) || (r.end.inclusive && value.Equal(r.end.value))
	return lowerOK && upperOK
}

// Length returns end.Value() - start.Value(), clamped at zero.
func (r Range) Length() osmomath.Dec {
	if r.end.value.LT(r.start.value) {
		return osmomath.ZeroDec()
	}
	return r.end.value.Sub(r.start.value)
}

// Intersect returns the overlapping segment between r and other, or
// false if they do not overlap. At a shared endpoint the intersection is
// non-empty only when both sides are inclusive there.
func (r Range) Intersect(other Range) (Range, bool) {
	start := maxBound(r.start, other.start)
	end := minBound(r.end, other.end)

	if start.value.GT(end.value) {
		return Range{}, false
	}
	if start.value.Equal(end.value) && !(start.inclusive && end.inclusive) {
		return Range{}, false
	}

	return Range{start: start, end: end}, true
}

// maxBound picks the tighter (larger-valued) of two lower bounds; ties
// prefer the exclusive bound.
func maxBound(a, b Bound) Bound {
	if a.value.GT(b.value) {
		return a
	}
	if b.value.GT(a.value) {
		return b
	}
	if !a.inclusive {
		return a
	}
	if !b.inclusive {
		return b
	}
	return a
}

// minBound picks the tighter (smaller-valued) of two upper bounds; ties
// prefer the exclusive bound.
func minBound(a, b Bound) Bound {
	if a.value.LT(b.value) {
		return a
	}
	if b.value.LT(a.value) {
		return b
	}
	if !a.inclusive {
		return a
	}
	if !b.inclusive {
		return b
	}
	return a
}
