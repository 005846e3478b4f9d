//go:build sdl

package main

// Compile the SDL2 backend in.
import _ "github.com/infinite-runner/gfx/backend/sdl"
