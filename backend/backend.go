package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/infinite-runner/gfx"
)

// Registered backend names. An adapter registers under exactly one of
// these; Select and Get accept them case-sensitively.
const (
	Raylib   = "raylib"
	SDL      = "sdl"
	Terminal = "terminal"
	Headless = "headless"
)

// Common backend errors.
var (
	// ErrNoBackend is returned when no backend was compiled into the
	// binary. Rebuild with at least one backend tag (raylib, sdl,
	// term) or import backend/headless.
	ErrNoBackend = errors.New("backend: no backend available")

	// ErrUnknownBackend is returned when the requested name has no
	// registered backend.
	ErrUnknownBackend = errors.New("backend: unknown backend")

	// ErrInitFailed is returned by a backend whose native layer could
	// not be brought up and reported no more specific cause.
	ErrInitFailed = errors.New("backend: initialization failed")

	// ErrNotInitialized is returned when an operation that needs an
	// initialized backend runs before Init or after Shutdown.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Select resolves name to a registered backend and returns a fresh,
// uninitialized instance of it. An empty name selects the best
// available backend by priority (raylib, then sdl, then terminal,
// then headless).
//
// Select returns ErrNoBackend when nothing is registered at all, and
// ErrUnknownBackend when name does not match any registered backend.
func Select(name string) (gfx.Backend, error) {
	if len(Available()) == 0 {
		return nil, ErrNoBackend
	}
	if name == "" {
		b := Default()
		if b == nil {
			return nil, ErrNoBackend
		}
		gfx.Logger().Debug("backend selected", "name", b.Name(), "requested", "")
		return b, nil
	}
	b := Get(name)
	if b == nil {
		return nil, fmt.Errorf("%w %q (available: %s)",
			ErrUnknownBackend, name, strings.Join(Available(), ", "))
	}
	gfx.Logger().Debug("backend selected", "name", b.Name(), "requested", name)
	return b, nil
}
