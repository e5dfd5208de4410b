// Package domain holds engine-wide configuration and error types shared
// across the pool, rebalancer, incentive, corrupted-scope and engine
// packages.
package domain

import (
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// UnauthorizedError is returned when a caller lacks the role required for
// an administrative operation.
type UnauthorizedError struct {
	Caller string
}

func (e UnauthorizedError) Error() string {
	return fmt.Sprintf("%s is not authorized to perform this operation", e.Caller)
}

// InvalidTransmuteDenomError is returned when a swap references a denom
// that is not a pool asset and not the alloyed share denom.
type InvalidTransmuteDenomError struct {
	Denom string
}

func (e InvalidTransmuteDenomError) Error() string {
	return fmt.Sprintf("%s is not a valid transmute denom", e.Denom)
}

// InvalidJoinPoolDenomError is returned when a join deposit names a denom
// that is not a pool asset.
type InvalidJoinPoolDenomError struct {
	Denom string
}

func (e InvalidJoinPoolDenomError) Error() string {
	return fmt.Sprintf("%s is not a valid pool asset denom for join", e.Denom)
}

// InvalidPoolAssetDenomError is returned when an operation references a
// denom absent from the pool's asset list.
type InvalidPoolAssetDenomError struct {
	Denom string
}

func (e InvalidPoolAssetDenomError) Error() string {
	return fmt.Sprintf("%s is not a pool asset denom", e.Denom)
}

// InvalidCorruptedAssetDenomError reports a denom that is not currently
// marked corrupted. No operation in this module returns it: unmarking a
// denom that is not flagged succeeds.
type InvalidCorruptedAssetDenomError struct {
	Denom string
}

func (e InvalidCorruptedAssetDenomError) Error() string {
	return fmt.Sprintf("%s is not a corrupted asset denom", e.Denom)
}

// ShareDenomNotAllowedAsPoolAssetError is returned when the alloyed share
// denom is requested as a pool asset.
type ShareDenomNotAllowedAsPoolAssetError struct {
	Denom string
}

func (e ShareDenomNotAllowedAsPoolAssetError) Error() string {
	return fmt.Sprintf("%s is the alloyed share denom and cannot be a pool asset", e.Denom)
}

// AtLeastSingleTokenExpectedError is returned when a join deposit is empty.
type AtLeastSingleTokenExpectedError struct{}

func (e AtLeastSingleTokenExpectedError) Error() string {
	return "at least one token is expected"
}

// EmptyAssetGroupLabelError is returned when creating a group with an
// empty label.
type EmptyAssetGroupLabelError struct{}

func (e EmptyAssetGroupLabelError) Error() string {
	return "asset group label must not be empty"
}

// DuplicatedPoolAssetDenomError is returned when a denom appears more than
// once across a pool's assets, or more than once within one group's list.
type DuplicatedPoolAssetDenomError struct {
	Denom string
}

func (e DuplicatedPoolAssetDenomError) Error() string {
	return fmt.Sprintf("%s is duplicated", e.Denom)
}

// ParseScopeError is returned when a scope key does not match the
// `denom::<d>` / `asset_group::<l>` grammar.
type ParseScopeError struct {
	Input string
}

func (e ParseScopeError) Error() string {
	return fmt.Sprintf("%q is not a valid scope key", e.Input)
}

// InvalidConfigValueError is returned when a seed config field holding a
// numeric string fails to parse.
type InvalidConfigValueError struct {
	Field string
	Value string
}

func (e InvalidConfigValueError) Error() string {
	return fmt.Sprintf("config field %s has invalid value %q", e.Field, e.Value)
}

// PoolAssetDenomCountOutOfRangeError is returned when a pool would end up
// with fewer than 2 or more than 20 asset entries.
type PoolAssetDenomCountOutOfRangeError struct {
	Count int
}

func (e PoolAssetDenomCountOutOfRangeError) Error() string {
	return fmt.Sprintf("pool asset denom count %d is out of range [2, 20]", e.Count)
}

// AssetGroupCountOutOfRangeError is returned when a pool would end up with
// more than 10 asset groups.
type AssetGroupCountOutOfRangeError struct {
	Count int
}

func (e AssetGroupCountOutOfRangeError) Error() string {
	return fmt.Sprintf("asset group count %d exceeds the maximum of 10", e.Count)
}

// UpperLimitExceededError is returned when a scope's post-operation
// weight would exceed its configured limit while non-decreasing.
type UpperLimitExceededError struct {
	Scope string
	Limit osmomath.Dec
	Value osmomath.Dec
}

func (e UpperLimitExceededError) Error() string {
	return fmt.Sprintf("scope %s weight %s exceeds limit %s", e.Scope, e.Value, e.Limit)
}

// CorruptedScopeRelativelyIncreasedError is returned when a corrupted
// scope's amount or weight strictly increases across an operation.
type CorruptedScopeRelativelyIncreasedError struct {
	Scope string
}

func (e CorruptedScopeRelativelyIncreasedError) Error() string {
	return fmt.Sprintf("corrupted scope %s relatively increased", e.Scope)
}

// InvalidLimitError is returned when a RebalancingConfig's limit is
// outside [0, 1].
type InvalidLimitError struct {
	Limit osmomath.Dec
}

func (e InvalidLimitError) Error() string {
	return fmt.Sprintf("limit %s must be within [0, 1]", e.Limit)
}

// InsufficientSharesError is returned when a user tries to burn more
// shares than they hold.
type InsufficientSharesError struct {
	Required  osmomath.Int
	Available osmomath.Int
}

func (e InsufficientSharesError) Error() string {
	return fmt.Sprintf("insufficient shares: required %s, available %s", e.Required, e.Available)
}

// InsufficientPoolAssetError is returned when a pool asset's balance is
// less than the amount requested out.
type InsufficientPoolAssetError struct {
	Denom     string
	Required  osmomath.Int
	Available osmomath.Int
}

func (e InsufficientPoolAssetError) Error() string {
	return fmt.Sprintf("insufficient pool asset %s: required %s, available %s", e.Denom, e.Required, e.Available)
}

// InsufficientIncentivePoolError is returned when the incentive ledger's
// reserve of a denom is less than the amount requested.
type InsufficientIncentivePoolError struct {
	Denom     string
	Required  osmomath.Int
	Available osmomath.Int
}

func (e InsufficientIncentivePoolError) Error() string {
	return fmt.Sprintf("insufficient incentive pool balance for %s: required %s, available %s", e.Denom, e.Required, e.Available)
}

// InsufficientIncentiveCreditError is returned when a user redeems more
// normalized credit than they have outstanding.
type InsufficientIncentiveCreditError struct {
	User      string
	Required  osmomath.Int
	Available osmomath.Int
}

func (e InsufficientIncentiveCreditError) Error() string {
	return fmt.Sprintf("insufficient incentive credit for %s: required %s, available %s", e.User, e.Required, e.Available)
}

// InsufficientTokenOutError is returned when an exact-in swap's computed
// output falls below the caller's minimum.
type InsufficientTokenOutError struct {
	TokenOutMin    osmomath.Int
	TokenOutActual osmomath.Int
}

func (e InsufficientTokenOutError) Error() string {
	return fmt.Sprintf("token out %s is less than min %s", e.TokenOutActual, e.TokenOutMin)
}

// ExcessiveRequiredTokenInError is returned when an exact-out swap's
// computed input exceeds the caller's maximum.
type ExcessiveRequiredTokenInError struct {
	TokenInMax    osmomath.Int
	TokenInActual osmomath.Int
}

func (e ExcessiveRequiredTokenInError) Error() string {
	return fmt.Sprintf("token in %s exceeds max %s", e.TokenInActual, e.TokenInMax)
}

// ConfigAlreadyExistsError is returned by AddRebalancingConfig when a
// config already exists for the scope.
type ConfigAlreadyExistsError struct {
	Scope string
}

func (e ConfigAlreadyExistsError) Error() string {
	return fmt.Sprintf("rebalancing config already exists for scope %s", e.Scope)
}

// ConfigDoesNotExistError is returned by UpdateRebalancingConfig and
// RemoveRebalancingConfig when no config exists for the scope.
type ConfigDoesNotExistError struct {
	Scope string
}

func (e ConfigDoesNotExistError) Error() string {
	return fmt.Sprintf("rebalancing config does not exist for scope %s", e.Scope)
}

// AssetGroupAlreadyExistsError is returned by CreateAssetGroup when the
// label is already in use.
type AssetGroupAlreadyExistsError struct {
	Label string
}

func (e AssetGroupAlreadyExistsError) Error() string {
	return fmt.Sprintf("asset group %s already exists", e.Label)
}

// AssetGroupNotFoundError is returned when a group label has no entry.
type AssetGroupNotFoundError struct {
	Label string
}

func (e AssetGroupNotFoundError) Error() string {
	return fmt.Sprintf("asset group %s not found", e.Label)
}

// OverflowError reports checked arithmetic that would wrap. No operation
// in this module returns it.
type OverflowError struct {
	Op string
	A  osmomath.Int
	B  osmomath.Int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("overflow in %s(%s, %s)", e.Op, e.A, e.B)
}

// DivideByZeroError is returned by any division whose divisor is zero.
type DivideByZeroError struct{}

func (e DivideByZeroError) Error() string {
	return "divide by zero"
}

// CheckedFromRatioError reports a ratio-derived decimal that cannot be
// constructed (e.g. negative or overflowing ratio). No operation in this
// module returns it.
type CheckedFromRatioError struct {
	Numerator   osmomath.Int
	Denominator osmomath.Int
}

func (e CheckedFromRatioError) Error() string {
	return fmt.Sprintf("cannot construct ratio from %s / %s", e.Numerator, e.Denominator)
}

// InvalidRangeError is returned when a Range's bounds are inconsistent:
// start > end, or start == end with at least one side exclusive.
type InvalidRangeError struct {
	Start fmt.Stringer
	End   fmt.Stringer
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range [%s, %s]", e.Start, e.End)
}

// EmptyIteratorError is returned by lcm_over on an empty factor list.
type EmptyIteratorError struct{}

func (e EmptyIteratorError) Error() string {
	return "empty iterator"
}

// ZeroInputError is returned by lcm_over when any factor is zero.
type ZeroInputError struct{}

func (e ZeroInputError) Error() string {
	return "input can't be zero"
}
