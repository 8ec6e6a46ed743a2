// Package store provides the key-value repository every feature reads its
// records from. Each logical record is an independent key holding a JSON
// value; writes are last-write-wins with no cross-key guarantee.
package store

import (
	"encoding/json"
	"fmt"
)

// Store is the persistence contract. Implementations must treat values as
// opaque bytes and must not retain the slices passed to Set.
type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	// Keys lists every stored key, in no particular order.
	Keys() ([]string, error)
}

// Read unmarshals the record at key into T. The second return is false when
// the key does not exist.
func Read[T any](s Store, key string) (T, bool, error) {
	var v T
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("cannot decode record %q: %w", key, err)
	}
	return v, true, nil
}

// Write marshals v and stores it at key.
func Write[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot encode record %q: %w", key, err)
	}
	return s.Set(key, raw)
}
