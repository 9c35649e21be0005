package config

// StoreConfig holds settings for puzzle persistence.
type StoreConfig struct {
	// Dir is the directory of the file store. Empty selects the
	// in-memory store.
	Dir string
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{}
}

// InMemory reports whether puzzles live only for the life of the process.
func (s *StoreConfig) InMemory() bool {
	return s.Dir == ""
}
