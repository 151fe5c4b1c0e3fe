// Package storage provides durable key-value persistence for JSON
// payloads. The file-backed store is the default; a Postgres-backed store
// is available when a database URL is configured.
package storage

// Store is a durable key-value store. Payloads are serialized as JSON.
type Store interface {
	// Get decodes the payload stored under key into v. It reports false
	// when the key is absent or the stored payload cannot be decoded;
	// corrupt data is indistinguishable from missing data by design.
	Get(key string, v any) (bool, error)

	// Set serializes v and stores it under key, replacing any previous
	// payload atomically from the caller's point of view.
	Set(key string, v any) error

	// Remove deletes the payload under key. Removing an absent key is not
	// an error.
	Remove(key string) error

	// Clear deletes every payload in the store.
	Clear() error
}
