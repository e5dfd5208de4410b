package engine

import (
	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/pool"
	"github.com/osmosis-labs/transmuter-engine/rebalancer"
	"github.com/osmosis-labs/transmuter-engine/scope"
)

// AddNewAssets appends new pool assets. Admin-only.
func (e *Engine) AddNewAssets(caller string, inputs []AssetInput) error {
	if !e.roles.IsAdmin(caller) {
		return domain.UnauthorizedError{Caller: caller}
	}

	assets := make([]pool.Asset, 0, len(inputs))
	for _, in := range inputs {
		a, err := pool.NewAsset(in.Denom, in.Amount, in.NormalizationFactor)
		if err != nil {
			return err
		}
		assets = append(assets, a)
	}

	if err := e.pool.AddNewAssets(assets); err != nil {
		return err
	}
	e.persist()
	return nil
}

// CreateAssetGroup creates a new named group over a subset of pool
// denoms. Admin-only.
func (e *Engine) CreateAssetGroup(caller, label string, denoms []string) error {
	if !e.roles.IsAdmin(caller) {
		return domain.UnauthorizedError{Caller: caller}
	}
	if err := e.pool.CreateAssetGroup(label, denoms); err != nil {
		return err
	}
	e.persist()
	return nil
}

// RemoveAssetGroup deletes a group entry. Admin-only.
func (e *Engine) RemoveAssetGroup(caller, label string) error {
	if !e.roles.IsAdmin(caller) {
		return domain.UnauthorizedError{Caller: caller}
	}
	if err := e.pool.RemoveAssetGroup(label); err != nil {
		return err
	}
	e.persist()
	return nil
}

// AddRebalancingConfig registers a new config for s. Admin-only; fails
// with ConfigAlreadyExistsError if one is already registered.
func (e *Engine) AddRebalancingConfig(caller string, s scope.Scope, cfg rebalancer.Config) error {
	if !e.roles.IsAdmin(caller) {
		return domain.UnauthorizedError{Caller: caller}
	}
	key := s.Key()
	if _, exists := e.configs[key]; exists {
		return domain.ConfigAlreadyExistsError{Scope: key}
	}
	e.configs[key] = cfg
	e.persist()
	return nil
}

// UpdateRebalancingConfig replaces the config for s. Admin-only; fails
// with ConfigDoesNotExistError if none is registered.
func (e *Engine) UpdateRebalancingConfig(caller string, s scope.Scope, cfg rebalancer.Config) error {
	if !e.roles.IsAdmin(caller) {
		return domain.UnauthorizedError{Caller: caller}
	}
	key := s.Key()
	if _, exists := e.configs[key]; !exists {
		return domain.ConfigDoesNotExistError{Scope: key}
	}
	e.configs[key] = cfg
	e.persist()
	return nil
}

// RemoveRebalancingConfig deletes the config for s. Admin-only; fails
// with ConfigDoesNotExistError if none is registered.
func (e *Engine) RemoveRebalancingConfig(caller string, s scope.Scope) error {
	if !e.roles.IsAdmin(caller) {
		return domain.UnauthorizedError{Caller: caller}
	}
	key := s.Key()
	if _, exists := e.configs[key]; !exists {
		return domain.ConfigDoesNotExistError{Scope: key}
	}
	delete(e.configs, key)
	e.persist()
	return nil
}

// MarkCorrupted flags s for wind-down. Moderator or admin.
func (e *Engine) MarkCorrupted(caller string, s scope.Scope) error {
	if !e.roles.IsModerator(caller) {
		return domain.UnauthorizedError{Caller: caller}
	}
	if err := e.pool.MarkCorrupted(s); err != nil {
		return err
	}
	e.persist()
	return nil
}

// UnmarkCorrupted clears s's corrupted flag. Moderator or admin.
func (e *Engine) UnmarkCorrupted(caller string, s scope.Scope) error {
	if !e.roles.IsModerator(caller) {
		return domain.UnauthorizedError{Caller: caller}
	}
	if err := e.pool.UnmarkCorrupted(s); err != nil {
		return err
	}
	e.persist()
	return nil
}
