//go:build headless

package main

// Compile the headless backend in.
import _ "github.com/infinite-runner/gfx/backend/headless"
