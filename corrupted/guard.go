// Package corrupted enforces the corrupted-scope protocol: once a denom
// or asset group is flagged corrupted, its pool-asset amount and
// normalized weight may never increase across any mutating operation.
package corrupted

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/pool"
	"github.com/osmosis-labs/transmuter-engine/scope"
)

type snapshot struct {
	amount osmomath.Int
	weight osmomath.Dec
}

// Guard wraps a mutating action on p so that every corrupted scope's
// amount and weight is snapshotted before the action runs and checked
// for a strict increase after it completes. If neither p has any
// corrupted scope, the action runs unchecked.
func Guard[R any](p *pool.Pool, action func(*pool.Pool) (R, error)) (R, error) {
	var zero R

	scopes := p.CorruptedScopes()
	if len(scopes) == 0 {
		return action(p)
	}

	pre, err := snapshotScopes(p, scopes)
	if err != nil {
		return zero, err
	}

	res, err := action(p)
	if err != nil {
		return zero, err
	}

	post, err := snapshotScopes(p, scopes)
	if err != nil {
		return zero, err
	}

	for _, s := range scopes {
		key := s.Key()
		if post[key].amount.GT(pre[key].amount) || post[key].weight.GT(pre[key].weight) {
			return zero, domain.CorruptedScopeRelativelyIncreasedError{Scope: s.String()}
		}
	}

	return res, nil
}

func snapshotScopes(p *pool.Pool, scopes []scope.Scope) (map[string]snapshot, error) {
	out := make(map[string]snapshot, len(scopes))

	for _, s := range scopes {
		switch s.Kind() {
		case scope.KindAssetGroup:
			g, err := p.AssetGroup(s.Value())
			if err != nil {
				return nil, err
			}
			amount := osmomath.ZeroInt()
			weight := osmomath.ZeroDec()
			for _, denom := range g.Denoms {
				a, err := p.GetAsset(denom)
				if err != nil {
					return nil, err
				}
				amount = amount.Add(a.Amount)

				w, err := p.Weight(scope.Denom(denom))
				if err != nil {
					return nil, err
				}
				weight = weight.Add(w)
			}
			out[s.Key()] = snapshot{amount: amount, weight: weight}
		default:
			a, err := p.GetAsset(s.Value())
			if err != nil {
				return nil, err
			}
			w, err := p.Weight(s)
			if err != nil {
				return nil, err
			}
			out[s.Key()] = snapshot{amount: a.Amount, weight: w}
		}
	}

	return out, nil
}
