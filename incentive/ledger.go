// Package incentive tracks the rebalancing incentive ledger: exact token
// balances collected from fees, and the normalized credits owed to users
// who moved the pool toward balance.
package incentive

import (
	"sort"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/domain"
)

// Ledger holds the incentive pool's exact per-denom balances and the
// normalized credits outstanding to users.
type Ledger struct {
	poolBalances       map[string]osmomath.Int
	outstandingCredits map[string]osmomath.Int
	totalCredits       osmomath.Int
}

// NewLedger returns an empty incentive ledger.
func NewLedger() *Ledger {
	return &Ledger{
		poolBalances:       make(map[string]osmomath.Int),
		outstandingCredits: make(map[string]osmomath.Int),
		totalCredits:       osmomath.ZeroInt(),
	}
}

// AddTokens adds exact tokens collected from a fee into the pool.
func (l *Ledger) AddTokens(denom string, amount osmomath.Int) {
	current, ok := l.poolBalances[denom]
	if !ok {
		current = osmomath.ZeroInt()
	}
	l.poolBalances[denom] = current.Add(amount)
}

// RemoveTokens removes exact tokens from the pool, e.g. to pay out a
// redemption. The entry is dropped once its balance reaches zero.
func (l *Ledger) RemoveTokens(denom string, amount osmomath.Int) error {
	current, ok := l.poolBalances[denom]
	if !ok {
		current = osmomath.ZeroInt()
	}
	if current.LT(amount) {
		return domain.InsufficientIncentivePoolError{Denom: denom, Required: amount, Available: current}
	}

	updated := current.Sub(amount)
	if updated.IsZero() {
		delete(l.poolBalances, denom)
	} else {
		l.poolBalances[denom] = updated
	}
	return nil
}

// PoolBalance returns the exact balance held for denom.
func (l *Ledger) PoolBalance(denom string) osmomath.Int {
	if v, ok := l.poolBalances[denom]; ok {
		return v
	}
	return osmomath.ZeroInt()
}

// PoolBalances returns every non-zero denom balance held by the ledger.
func (l *Ledger) PoolBalances() map[string]osmomath.Int {
	out := make(map[string]osmomath.Int, len(l.poolBalances))
	for k, v := range l.poolBalances {
		out[k] = v
	}
	return out
}

// TotalCredits returns the sum of normalized credits outstanding across
// every user.
func (l *Ledger) TotalCredits() osmomath.Int { return l.totalCredits }

// UserCredit returns the normalized credit outstanding for user.
func (l *Ledger) UserCredit(user string) osmomath.Int {
	if v, ok := l.outstandingCredits[user]; ok {
		return v
	}
	return osmomath.ZeroInt()
}

// CreditUser credits user with normalized incentive, capped so that total
// outstanding credits never exceed the pool's total normalized value.
// Returns the amount actually credited, which may be less than requested
// or zero once the pool is fully spoken for.
func (l *Ledger) CreditUser(user string, requested osmomath.Int, totalNormalizedValue osmomath.Int) osmomath.Int {
	headroom := totalNormalizedValue.Sub(l.totalCredits)
	if headroom.IsNegative() {
		headroom = osmomath.ZeroInt()
	}

	actual := requested
	if actual.GT(headroom) {
		actual = headroom
	}
	if actual.IsZero() {
		return actual
	}

	current := l.UserCredit(user)
	updated := current.Add(actual)
	if updated.IsZero() {
		delete(l.outstandingCredits, user)
	} else {
		l.outstandingCredits[user] = updated
	}

	l.totalCredits = l.totalCredits.Add(actual)
	return actual
}

// Redemption is one exact coin to pay out against its normalized cost in
// a user's outstanding credit.
type Redemption struct {
	Denom           string
	Amount          osmomath.Int
	NormalizedValue osmomath.Int
}

// Redeem pays redemptions out of the pool against user's outstanding
// credit. Every check (credit sufficiency, then per-coin pool balance
// sufficiency) runs before any state is mutated, so a failing redemption
// leaves the ledger untouched.
func (l *Ledger) Redeem(user string, redemptions []Redemption) error {
	totalCost := osmomath.ZeroInt()
	for _, r := range redemptions {
		totalCost = totalCost.Add(r.NormalizedValue)
	}

	currentCredit := l.UserCredit(user)
	if currentCredit.LT(totalCost) {
		return domain.InsufficientIncentiveCreditError{User: user, Required: totalCost, Available: currentCredit}
	}

	for _, r := range redemptions {
		available := l.PoolBalance(r.Denom)
		if available.LT(r.Amount) {
			return domain.InsufficientIncentivePoolError{Denom: r.Denom, Required: r.Amount, Available: available}
		}
	}

	updatedCredit := currentCredit.Sub(totalCost)
	if updatedCredit.IsZero() {
		delete(l.outstandingCredits, user)
	} else {
		l.outstandingCredits[user] = updatedCredit
	}
	l.totalCredits = l.totalCredits.Sub(totalCost)

	for _, r := range redemptions {
		_ = l.RemoveTokens(r.Denom, r.Amount)
	}
	return nil
}

// CreditUsers returns every user with an outstanding credit, sorted by
// address for deterministic iteration.
func (l *Ledger) CreditUsers() []string {
	users := make([]string, 0, len(l.outstandingCredits))
	for user := range l.outstandingCredits {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}
