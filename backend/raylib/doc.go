// Package raylib adapts raylib as a graphics backend.
//
// The package compiles only with the raylib build tag, because
// raylib-go needs cgo and the native raylib libraries:
//
//	go build -tags raylib ./...
//
// Importing the package (under the tag) registers it under the name
// "raylib":
//
//	import _ "github.com/infinite-runner/gfx/backend/raylib"
//
// Raylib owns the window, frame pacing (Config.TargetFPS) and the
// close request: Escape or the window close button make ShouldClose
// report true. Text is drawn with raylib's built-in font at the
// requested pixel size.
package raylib
