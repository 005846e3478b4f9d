//go:build term

package main

// Compile the terminal backend in.
import _ "github.com/infinite-runner/gfx/backend/terminal"
