package pool

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/scope"
)

const (
	MinAssets      = 2
	MaxAssets      = 20
	MaxAssetGroups = 10
)

// Pool is an ordered sequence of Assets, insertion order preserved across
// every mutating operation, plus a label-indexed map of AssetGroups.
type Pool struct {
	ShareDenom string
	assets     []Asset
	groups     map[string]AssetGroup
}

// NewPool constructs a pool from its initial assets. shareDenom is the
// alloyed share denom, which may never appear as a pool asset.
func NewPool(shareDenom string, assets []Asset) (*Pool, error) {
	p := &Pool{
		ShareDenom: shareDenom,
		groups:     make(map[string]AssetGroup),
	}
	if err := p.addAssets(assets); err != nil {
		return nil, err
	}
	return p, nil
}

// HasDenom reports whether denom is one of the pool's assets.
func (p *Pool) HasDenom(denom string) bool {
	_, ok := p.index(denom)
	return ok
}

// GetAsset returns the asset for denom.
func (p *Pool) GetAsset(denom string) (Asset, error) {
	i, ok := p.index(denom)
	if !ok {
		return Asset{}, domain.InvalidPoolAssetDenomError{Denom: denom}
	}
	return p.assets[i], nil
}

// Assets returns the pool's assets in insertion order. The returned slice
// is a copy; mutate balances through Increase/Decrease instead.
func (p *Pool) Assets() []Asset {
	out := make([]Asset, len(p.assets))
	copy(out, p.assets)
	return out
}

func (p *Pool) index(denom string) (int, bool) {
	for i, a := range p.assets {
		if a.Denom == denom {
			return i, true
		}
	}
	return -1, false
}

// Increase adds amount to denom's balance.
func (p *Pool) Increase(denom string, amount osmomath.Int) error {
	i, ok := p.index(denom)
	if !ok {
		return domain.InvalidPoolAssetDenomError{Denom: denom}
	}
	p.assets[i].Increase(amount)
	return nil
}

// Decrease subtracts amount from denom's balance, failing on underflow.
func (p *Pool) Decrease(denom string, amount osmomath.Int) error {
	i, ok := p.index(denom)
	if !ok {
		return domain.InvalidPoolAssetDenomError{Denom: denom}
	}
	return p.assets[i].Decrease(amount)
}

// AddNewAssets appends new pool assets, rechecking the size bound and
// denom uniqueness. The share denom may never be added as a pool asset.
func (p *Pool) AddNewAssets(assets []Asset) error {
	return p.addAssets(assets)
}

func (p *Pool) addAssets(assets []Asset) error {
	seen := make(map[string]struct{}, len(p.assets))
	for _, a := range p.assets {
		seen[a.Denom] = struct{}{}
	}

	for _, a := range assets {
		if a.Denom == p.ShareDenom {
			return domain.ShareDenomNotAllowedAsPoolAssetError{Denom: a.Denom}
		}
		if _, dup := seen[a.Denom]; dup {
			return domain.DuplicatedPoolAssetDenomError{Denom: a.Denom}
		}
		seen[a.Denom] = struct{}{}
	}

	total := len(p.assets) + len(assets)
	if total < MinAssets || total > MaxAssets {
		return domain.PoolAssetDenomCountOutOfRangeError{Count: total}
	}

	p.assets = append(p.assets, assets...)
	return nil
}

// RemoveAsset drops denom from the pool. The asset's balance must be
// zero, and it is pruned from every asset group it belongs to, dropping
// any group left empty.
func (p *Pool) RemoveAsset(denom string) error {
	i, ok := p.index(denom)
	if !ok {
		return domain.InvalidPoolAssetDenomError{Denom: denom}
	}
	if !p.assets[i].Amount.IsZero() {
		return domain.InsufficientPoolAssetError{
			Denom:     denom,
			Required:  osmomath.ZeroInt(),
			Available: p.assets[i].Amount,
		}
	}

	p.assets = append(p.assets[:i], p.assets[i+1:]...)

	for label, g := range p.groups {
		if g.hasDenom(denom) {
			if g.removeDenom(denom); len(g.Denoms) == 0 {
				delete(p.groups, label)
			} else {
				p.groups[label] = g
			}
		}
	}

	if len(p.assets) < MinAssets {
		return domain.PoolAssetDenomCountOutOfRangeError{Count: len(p.assets)}
	}
	return nil
}

// StandardFactor returns the LCM of every asset's normalization factor.
func (p *Pool) StandardFactor() (osmomath.Int, error) {
	factors := make([]osmomath.Int, len(p.assets))
	for i, a := range p.assets {
		factors[i] = a.NormalizationFactor
	}
	return LCMOver(factors)
}

// CreateAssetGroup creates a new named group over a subset of the pool's
// denoms.
func (p *Pool) CreateAssetGroup(label string, denoms []string) error {
	if len(p.groups) >= MaxAssetGroups {
		return domain.AssetGroupCountOutOfRangeError{Count: len(p.groups) + 1}
	}
	if _, exists := p.groups[label]; exists {
		return domain.AssetGroupAlreadyExistsError{Label: label}
	}

	group, err := newAssetGroup(label, denoms)
	if err != nil {
		return err
	}
	for _, denom := range group.Denoms {
		if !p.HasDenom(denom) {
			return domain.InvalidPoolAssetDenomError{Denom: denom}
		}
	}

	p.groups[label] = group
	return nil
}

// RemoveAssetGroup deletes the group entry for label.
func (p *Pool) RemoveAssetGroup(label string) error {
	if _, exists := p.groups[label]; !exists {
		return domain.AssetGroupNotFoundError{Label: label}
	}
	delete(p.groups, label)
	return nil
}

// AssetGroup returns the group for label.
func (p *Pool) AssetGroup(label string) (AssetGroup, error) {
	g, ok := p.groups[label]
	if !ok {
		return AssetGroup{}, domain.AssetGroupNotFoundError{Label: label}
	}
	return g, nil
}

// AssetGroups returns every group, keyed by label.
func (p *Pool) AssetGroups() map[string]AssetGroup {
	out := make(map[string]AssetGroup, len(p.groups))
	for k, v := range p.groups {
		out[k] = v
	}
	return out
}

// MarkCorrupted flips the corrupted flag on for the scope's denom, or for
// the scope's group itself; member assets keep their own flags.
func (p *Pool) MarkCorrupted(s scope.Scope) error {
	return p.setCorrupted(s, true)
}

// UnmarkCorrupted flips the corrupted flag off for the scope.
func (p *Pool) UnmarkCorrupted(s scope.Scope) error {
	return p.setCorrupted(s, false)
}

func (p *Pool) setCorrupted(s scope.Scope, corrupted bool) error {
	switch s.Kind() {
	case scope.KindAssetGroup:
		g, ok := p.groups[s.Value()]
		if !ok {
			return domain.AssetGroupNotFoundError{Label: s.Value()}
		}
		g.Corrupted = corrupted
		p.groups[s.Value()] = g
		return nil
	default:
		i, ok := p.index(s.Value())
		if !ok {
			return domain.InvalidPoolAssetDenomError{Denom: s.Value()}
		}
		p.assets[i].Corrupted = corrupted
		return nil
	}
}

// CorruptedScopes returns every denom scope currently marked corrupted,
// plus every group scope marked corrupted.
func (p *Pool) CorruptedScopes() []scope.Scope {
	var out []scope.Scope
	for _, a := range p.assets {
		if a.Corrupted {
			out = append(out, scope.Denom(a.Denom))
		}
	}
	for label, g := range p.groups {
		if g.Corrupted {
			out = append(out, scope.AssetGroup(label))
		}
	}
	return out
}
