// Package role holds the two privileged callers the engine recognizes:
// an admin, who can reconfigure pool structure and rebalancing, and a
// moderator, who can mark or unmark corrupted scopes.
package role

import "github.com/osmosis-labs/transmuter-engine/store"

const (
	adminKey     = "role/admin"
	moderatorKey = "role/moderator"
)

// Store reads and writes the admin/moderator addresses through a
// KVStore.
type Store struct {
	kv store.KVStore
}

// NewStore wraps kv as a role store.
func NewStore(kv store.KVStore) *Store {
	return &Store{kv: kv}
}

// SetAdmin assigns the admin address.
func (s *Store) SetAdmin(addr string) {
	s.kv.Set(adminKey, []byte(addr))
}

// SetModerator assigns the moderator address.
func (s *Store) SetModerator(addr string) {
	s.kv.Set(moderatorKey, []byte(addr))
}

// Admin returns the current admin address, if set.
func (s *Store) Admin() (string, bool) {
	v, ok := s.kv.Get(adminKey)
	return string(v), ok
}

// Moderator returns the current moderator address, if set.
func (s *Store) Moderator() (string, bool) {
	v, ok := s.kv.Get(moderatorKey)
	return string(v), ok
}

// IsAdmin reports whether addr is the configured admin.
func (s *Store) IsAdmin(addr string) bool {
	admin, ok := s.Admin()
	return ok && admin == addr
}

// IsModerator reports whether addr is the configured moderator. The
// admin is always implicitly a moderator.
func (s *Store) IsModerator(addr string) bool {
	if s.IsAdmin(addr) {
		return true
	}
	moderator, ok := s.Moderator()
	return ok && moderator == addr
}
