// Package confstore is the process-wide key/value configuration
// namespace that theme activation merges into.
package confstore

import (
	"github.com/spf13/viper"
)

// Store wraps a dedicated viper instance. Keys are dotted
// ("theme.color"), so per-subsystem prefixes coexist without
// colliding; last write wins on a repeated key.
type Store struct {
	v *viper.Viper
}

// New returns an empty Store.
func New() *Store {
	return &Store{v: viper.New()}
}

// Set writes a value under a dotted key.
func (s *Store) Set(key string, value any) {
	s.v.Set(key, value)
}

// Get returns the value under key, or nil.
func (s *Store) Get(key string) any {
	return s.v.Get(key)
}

// GetString returns the value under key coerced to a string.
func (s *Store) GetString(key string) string {
	return s.v.GetString(key)
}

// IsSet reports whether key has a value.
func (s *Store) IsSet(key string) bool {
	return s.v.IsSet(key)
}

// Sub returns all settings below a prefix with the prefix stripped,
// or nil when the prefix holds nothing.
func (s *Store) Sub(prefix string) map[string]any {
	sub := s.v.Sub(prefix)
	if sub == nil {
		return nil
	}
	return sub.AllSettings()
}

// All returns every setting in the namespace.
func (s *Store) All() map[string]any {
	return s.v.AllSettings()
}
