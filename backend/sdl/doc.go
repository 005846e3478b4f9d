// Package sdl adapts SDL2 as a graphics backend.
//
// The package compiles only with the sdl build tag, because go-sdl2
// needs cgo and the native SDL2 and SDL2_gfx libraries:
//
//	go build -tags sdl ./...
//
// Importing the package (under the tag) registers it under the name
// "sdl":
//
//	import _ "github.com/infinite-runner/gfx/backend/sdl"
//
// Escape or the window's close button make ShouldClose report true.
// SDL2 has no frame pacing of its own, so Config.TargetFPS is
// ignored. Text is drawn with the SDL2_gfx 8x8 debug font; the
// requested pixel size is ignored.
package sdl
