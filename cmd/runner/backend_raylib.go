//go:build raylib

package main

// Compile the raylib backend in.
import _ "github.com/infinite-runner/gfx/backend/raylib"
