package ports

// ParamStore is the key-value capability behind a query string.
// It abstracts the browser's address bar so the cascade can be tested without one.
type ParamStore interface {
	// Get returns the raw value for key and whether it is present.
	Get(key string) (string, bool)
	// Set stores value under key, replacing any previous value.
	Set(key, value string)
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string)
}
