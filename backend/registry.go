package backend

import (
	"slices"
	"sync"

	"github.com/infinite-runner/gfx"
)

// Factory creates a new, uninitialized backend instance.
type Factory func() gfx.Backend

// registry holds registered backend factories.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for default selection (first available wins).
	// Desktop backends first, headless as the last resort.
	priority = []string{Raylib, SDL, Terminal, Headless}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in adapter packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a new instance of the named backend.
// Returns nil if the backend is not registered.
func Get(name string) gfx.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns a new instance of the best available backend by
// priority order. Returns nil if no backends are registered.
func Default() gfx.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range priority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b
			}
		}
	}

	// Fallback: first registered backend outside the priority list.
	for _, name := range availableLocked() {
		if b := backends[name](); b != nil {
			return b
		}
	}

	return nil
}

// availableLocked returns sorted names; callers hold registryMu.
func availableLocked() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
