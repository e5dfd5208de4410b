package store

import "encoding/json"

// SaveJSON marshals v and stores it at key.
func SaveJSON(s KVStore, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.Set(key, b)
	return nil
}

// LoadJSON unmarshals the value at key into v. It reports whether key
// was present.
func LoadJSON(s KVStore, key string, v any) (bool, error) {
	b, ok := s.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, err
	}
	return true, nil
}
