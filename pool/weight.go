package pool

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/scope"
)

// Weights reports the normalized weight of every denom scope and every
// asset group scope, each as a share of total pool liquidity in the
// standard unit. A scope with zero total liquidity maps to a zero weight
// rather than a division error.
func (p *Pool) Weights() (map[string]osmomath.Dec, error) {
	standardFactor, err := p.StandardFactor()
	if err != nil {
		return nil, err
	}

	normalized := make(map[string]osmomath.Int, len(p.assets))
	total := osmomath.ZeroInt()
	for _, a := range p.assets {
		v, err := a.NormalizedValue(standardFactor)
		if err != nil {
			return nil, err
		}
		normalized[a.Denom] = v
		total = total.Add(v)
	}

	weights := make(map[string]osmomath.Dec, len(p.assets)+len(p.groups))
	for _, a := range p.assets {
		weights[scope.Denom(a.Denom).Key()] = weightOf(normalized[a.Denom], total)
	}
	for label, g := range p.groups {
		sum := osmomath.ZeroInt()
		for _, denom := range g.Denoms {
			sum = sum.Add(normalized[denom])
		}
		weights[scope.AssetGroup(label).Key()] = weightOf(sum, total)
	}

	return weights, nil
}

// Weight returns the normalized weight of a single scope.
func (p *Pool) Weight(s scope.Scope) (osmomath.Dec, error) {
	weights, err := p.Weights()
	if err != nil {
		return osmomath.Dec{}, err
	}
	w, ok := weights[s.Key()]
	if !ok {
		switch s.Kind() {
		case scope.KindAssetGroup:
			return osmomath.Dec{}, domain.AssetGroupNotFoundError{Label: s.Value()}
		default:
			return osmomath.Dec{}, domain.InvalidPoolAssetDenomError{Denom: s.Value()}
		}
	}
	return w, nil
}

// TotalNormalizedLiquidity returns the pool's total liquidity expressed in
// the standard unit.
func (p *Pool) TotalNormalizedLiquidity() (osmomath.Int, error) {
	standardFactor, err := p.StandardFactor()
	if err != nil {
		return osmomath.Int{}, err
	}
	total := osmomath.ZeroInt()
	for _, a := range p.assets {
		v, err := a.NormalizedValue(standardFactor)
		if err != nil {
			return osmomath.Int{}, err
		}
		total = total.Add(v)
	}
	return total, nil
}

func weightOf(value, total osmomath.Int) osmomath.Dec {
	if total.IsZero() {
		return osmomath.ZeroDec()
	}
	return osmomath.NewDecFromInt(value).QuoTruncate(osmomath.NewDecFromInt(total))
}
