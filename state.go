package graphview

// StateStore persists widget state between frames. The host owns the
// store and decides its lifetime.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is a simple in-memory StateStore implementation.
type MapStateStore map[ID]any

// Get retrieves a value from the store.
func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a value in the store.
func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

// Delete removes a value from the store.
func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState retrieves typed state from a store.
// Returns defaultVal if the state doesn't exist or has the wrong type.
func GetState[T any](store StateStore, id ID, defaultVal T) T {
	if v, ok := store.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores typed state in a store.
func SetState[T any](store StateStore, id ID, value T) {
	store.Set(id, value)
}

// DeleteState removes state from a store.
func DeleteState(store StateStore, id ID) {
	store.Delete(id)
}
