//go:build raylib

package raylib

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/infinite-runner/gfx"
	"github.com/infinite-runner/gfx/backend"
)

func init() {
	backend.Register(backend.Raylib, func() gfx.Backend { return New() })
}

// Backend drives a raylib window. Raylib keeps its window state in
// library globals, so at most one Backend can be initialized at a time.
type Backend struct {
	open bool
}

var _ gfx.Backend = (*Backend)(nil)

// New returns an uninitialized raylib backend.
func New() *Backend { return &Backend{} }

// Name returns "raylib".
func (b *Backend) Name() string { return backend.Raylib }

// Init opens the window and applies the target frame rate.
func (b *Backend) Init(cfg gfx.Config) error {
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		rl.CloseWindow()
		return fmt.Errorf("%w: raylib window not ready", backend.ErrInitFailed)
	}
	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(int32(cfg.TargetFPS))
	}
	b.open = true
	gfx.Logger().Debug("raylib backend initialized",
		"width", cfg.Width, "height", cfg.Height, "fps", cfg.TargetFPS)
	return nil
}

// Shutdown closes the window. Safe to call twice.
func (b *Backend) Shutdown() {
	if !b.open {
		return
	}
	b.open = false
	rl.CloseWindow()
}

// ShouldClose reports raylib's close request, raised by Escape or the
// window close button. Raylib latches the flag, so it stays true.
func (b *Backend) ShouldClose() bool {
	if !b.open {
		return false
	}
	return rl.WindowShouldClose()
}

// BeginFrame starts a raylib drawing pass.
func (b *Backend) BeginFrame() {
	if !b.open {
		return
	}
	rl.BeginDrawing()
}

// EndFrame presents the frame and lets raylib pace to the target FPS.
func (b *Backend) EndFrame() {
	if !b.open {
		return
	}
	rl.EndDrawing()
}

// Clear fills the frame with c.
func (b *Backend) Clear(c gfx.Color) {
	if !b.open {
		return
	}
	rl.ClearBackground(rlColor(c))
}

// DrawRectangle fills rect with c.
func (b *Backend) DrawRectangle(rect gfx.Rectangle, c gfx.Color) {
	if !b.open {
		return
	}
	rl.DrawRectangleRec(rlRect(rect), rlColor(c))
}

// DrawTexture does nothing until the texture registry lands.
func (b *Backend) DrawTexture(id gfx.TextureID, dest gfx.Rectangle, tint gfx.Color) {}

// DrawText draws text with raylib's built-in font at the requested
// pixel size.
func (b *Backend) DrawText(text string, x, y, size int, c gfx.Color) {
	if !b.open {
		return
	}
	rl.DrawText(text, int32(x), int32(y), int32(size), rlColor(c))
}

// LoadTexture returns the placeholder handle without touching path.
func (b *Backend) LoadTexture(path string) gfx.TextureID {
	gfx.Logger().Debug("raylib texture load stubbed", "path", path)
	return gfx.PlaceholderTexture
}

// UnloadTexture does nothing; no texture was ever loaded.
func (b *Backend) UnloadTexture(id gfx.TextureID) {}

// rlColor converts a gfx color channel for channel.
func rlColor(c gfx.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// rlRect converts a gfx rectangle field for field.
func rlRect(r gfx.Rectangle) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.Width, r.Height)
}
