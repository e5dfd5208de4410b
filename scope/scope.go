// Package scope defines the addressable unit for rebalancer configuration
// and ideal-balance specification: either a single pool-asset denom or a
// named asset group.
package scope

import (
	"strings"

	"github.com/osmosis-labs/transmuter-engine/domain"
)

const (
	denomPrefix      = "denom::"
	assetGroupPrefix = "asset_group::"
)

// Kind distinguishes the two scope variants.
type Kind int

const (
	KindDenom Kind = iota
	KindAssetGroup
)

// Scope is a tagged variant identifying either a pool-asset denom or a
// named asset group. It is the key used throughout the rebalancer
// configuration and the corrupted-scope guard.
type Scope struct {
	kind  Kind
	value string
}

// Denom builds a denom-scoped Scope.
func Denom(denom string) Scope { return Scope{kind: KindDenom, value: denom} }

// AssetGroup builds a group-scoped Scope.
func AssetGroup(label string) Scope { return Scope{kind: KindAssetGroup, value: label} }

// Kind reports which variant this scope is.
func (s Scope) Kind() Kind { return s.kind }

// Value returns the denom or group label this scope addresses.
func (s Scope) Value() string { return s.value }

// IsDenom reports whether this scope addresses a single denom.
func (s Scope) IsDenom() bool { return s.kind == KindDenom }

// IsAssetGroup reports whether this scope addresses an asset group.
func (s Scope) IsAssetGroup() bool { return s.kind == KindAssetGroup }

// Key serializes the scope into its persisted/wire form:
// `denom::<d>` or `asset_group::<l>`.
func (s Scope) Key() string {
	switch s.kind {
	case KindAssetGroup:
		return assetGroupPrefix + s.value
	default:
		return denomPrefix + s.value
	}
}

func (s Scope) String() string { return s.Key() }

// Parse parses a scope key in the `denom::<d>` / `asset_group::<l>`
// grammar. Any other prefix yields domain.ParseScopeError.
func Parse(key string) (Scope, error) {
	switch {
	case strings.HasPrefix(key, denomPrefix):
		return Denom(strings.TrimPrefix(key, denomPrefix)), nil
	case strings.HasPrefix(key, assetGroupPrefix):
		return AssetGroup(strings.TrimPrefix(key, assetGroupPrefix)), nil
	default:
		return Scope{}, domain.ParseScopeError{Input: key}
	}
}
