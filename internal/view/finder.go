// Package view holds the ordered template search-path list the
// rendering engine resolves template names against.
package view

import (
	"os"
	"path/filepath"
	"sync"
)

// Finder is an ordered list of template search locations. Earlier
// locations win on name collision, so a prepended theme directory
// shadows the application defaults behind it.
type Finder struct {
	mu        sync.RWMutex
	locations []string
}

// NewFinder creates a Finder with the given initial locations,
// highest priority first.
func NewFinder(locations ...string) *Finder {
	f := &Finder{}
	f.locations = append(f.locations, locations...)
	return f
}

// Prepend inserts dir as the highest-priority search location. The
// relative order of the existing locations is preserved.
func (f *Finder) Prepend(dir string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locations = append([]string{dir}, f.locations...)
}

// Locations returns a snapshot of the search list, highest priority
// first.
func (f *Finder) Locations() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.locations))
	copy(out, f.locations)
	return out
}

// Lookup returns the full path of name in the first location that
// contains it.
func (f *Finder) Lookup(name string) (string, bool) {
	for _, loc := range f.Locations() {
		p := filepath.Join(loc, name)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}
