package storage

// Provider is the keyed persistence capability behind every feature view.
// Values are JSON documents; a key that was never written reads as missing.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Entries
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Remove(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
