package pool

import (
	"github.com/osmosis-labs/transmuter-engine/domain"
)

// AssetGroup is a named, non-empty subset of a pool's asset denoms, used
// to address aggregate limits and ideal-balance configuration.
type AssetGroup struct {
	Label     string
	Denoms    []string
	Corrupted bool
}

// newAssetGroup validates the constraints shared by group creation:
// non-empty label, non-empty denom list, no duplicate denoms within the
// list. Membership in the pool is checked by the caller (Pool.CreateAssetGroup).
func newAssetGroup(label string, denoms []string) (AssetGroup, error) {
	if label == "" {
		return AssetGroup{}, domain.EmptyAssetGroupLabelError{}
	}
	if len(denoms) == 0 {
		return AssetGroup{}, domain.AtLeastSingleTokenExpectedError{}
	}

	seen := make(map[string]struct{}, len(denoms))
	for _, denom := range denoms {
		if _, ok := seen[denom]; ok {
			return AssetGroup{}, domain.DuplicatedPoolAssetDenomError{Denom: denom}
		}
		seen[denom] = struct{}{}
	}

	return AssetGroup{Label: label, Denoms: append([]string(nil), denoms...)}, nil
}

// hasDenom reports whether denom is a member of the group.
func (g AssetGroup) hasDenom(denom string) bool {
	for _, d := range g.Denoms {
		if d == denom {
			return true
		}
	}
	return false
}

// removeDenom drops denom from the group's member list, if present.
// Returns true when the group is now empty and should itself be dropped.
func (g *AssetGroup) removeDenom(denom string) (empty bool) {
	filtered := g.Denoms[:0]
	for _, d := range g.Denoms {
		if d != denom {
			filtered = append(filtered, d)
		}
	}
	g.Denoms = filtered
	return len(g.Denoms) == 0
}
