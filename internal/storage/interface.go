package storage

// Provider is a flat string key-value store holding client state.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Values
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Keys() ([]string, error)
	Clear() error

	// Utils
	GetConfigPath() string
}
