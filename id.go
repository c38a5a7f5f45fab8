package graphview

import "hash/fnv"

// ID uniquely identifies a widget instance for state persistence.
// IDs are stable across frames for the same identity string, so two
// views updated with different identities never collide in the store.
type ID uint64

// NewID derives a stable ID from an identity string.
func NewID(identity string) ID {
	h := fnv.New64a()
	h.Write([]byte(identity))
	return ID(h.Sum64())
}
