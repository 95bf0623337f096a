// Package cache provides the in-memory catalog cache used by the store.
package cache

// Key addresses one catalog.
type Key struct {
	Category string
	Locale   string
}

func (k Key) String() string {
	return k.Category + "@" + k.Locale
}

// Cache is the interface for catalog caching.
type Cache[V any] interface {
	// Get retrieves a cached value. Returns the zero value and false if not found.
	Get(key Key) (V, bool)

	// Set stores a value, replacing any previous one.
	Set(key Key, value V)

	// Delete drops the value for key.
	Delete(key Key)

	// Clear drops every value.
	Clear()
}
