// Package backend selects and instantiates graphics backends.
//
// Adapter packages (backend/raylib, backend/sdl, backend/headless,
// backend/terminal) register a factory from their init function, so a
// backend becomes available by importing its package. The desktop
// adapters additionally sit behind build tags because they need cgo
// and native libraries; see each adapter's package documentation.
//
// A program normally picks its backend once at startup and hands it
// to gfx.Open:
//
//	b, err := backend.Select(*backendFlag)
//	if err != nil {
//	    // no backend compiled in, or the name is unknown
//	}
//	win, err := gfx.Open(b, 800, 450, "Infinite Runner")
//
// Passing an empty name to Select picks the best registered backend
// by priority: raylib, then sdl, then terminal, then headless.
package backend
