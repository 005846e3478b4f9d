// Package gfx provides a small backend-swappable graphics layer for Go.
//
// # Overview
//
// gfx is the rendering shim for the Infinite Runner game. It exposes a
// fixed set of window and drawing operations through a single facade,
// gfx.Window, and forwards every call to whichever Backend the window
// was opened with. Game code depends only on this package; the native
// library behind it is chosen per binary.
//
// # Quick Start
//
//	import (
//		"github.com/infinite-runner/gfx"
//		"github.com/infinite-runner/gfx/backend"
//
//		_ "github.com/infinite-runner/gfx/backend/headless"
//	)
//
//	b, err := backend.Select("")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	win, err := gfx.Open(b, 800, 450, "Infinite Runner")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer win.Close()
//
//	for !win.ShouldClose() {
//		win.BeginFrame()
//		win.Clear(gfx.Color{R: 20, G: 30, B: 80, A: 255})
//		win.DrawRectangle(gfx.Rect(100, 100, 50, 50), gfx.Red)
//		win.EndFrame()
//	}
//
// # Backends
//
// Adapters live under backend/ and announce themselves to the backend
// registry when compiled in. The raylib and sdl adapters wrap native
// libraries and are gated behind the "raylib" and "sdl" build tags; the
// headless and terminal adapters are pure Go and register on import.
// A binary that links no adapter gets a typed error from the registry
// instead of a window.
//
// # Coordinate System
//
// All operations use a pixel coordinate space with the origin at the
// top-left corner, X increasing right and Y increasing down, matching
// every wrapped backend. Adapters that do not render pixels (terminal)
// scale this space onto their own grid.
//
// # Textures
//
// Texture handling is not implemented yet. LoadTexture returns the
// constant handle 1, and DrawTexture and UnloadTexture are no-ops in
// every adapter. The signatures are fixed now so game code can compile
// against them before the texture registry lands.
package gfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
