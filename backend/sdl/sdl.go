//go:build sdl

package sdl

import (
	"fmt"

	sdlgfx "github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/infinite-runner/gfx"
	"github.com/infinite-runner/gfx/backend"
)

func init() {
	backend.Register(backend.SDL, func() gfx.Backend { return New() })
}

// Backend drives an SDL2 window and renderer. The window, renderer
// and close latch are owned by the Backend instance, not by package
// globals, but SDL2 itself is process-wide, so at most one Backend
// can be initialized at a time.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	closing  bool
}

var _ gfx.Backend = (*Backend)(nil)

// New returns an uninitialized SDL backend.
func New() *Backend { return &Backend{} }

// Name returns "sdl".
func (b *Backend) Name() string { return backend.SDL }

// Init brings up the video subsystem, the window and the renderer.
// Each failure tears down whatever came up before it, so a failed
// Init leaves no SDL state behind. Config.TargetFPS is ignored.
func (b *Backend) Init(cfg gfx.Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl: init video: %w", err)
	}
	win, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl: create window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		if derr := win.Destroy(); derr != nil {
			gfx.Logger().Warn("sdl window destroy failed", "err", derr)
		}
		sdl.Quit()
		return fmt.Errorf("sdl: create renderer: %w", err)
	}
	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		gfx.Logger().Warn("sdl blend mode not set", "err", err)
	}

	b.window = win
	b.renderer = renderer
	b.closing = false
	gfx.Logger().Debug("sdl backend initialized",
		"width", cfg.Width, "height", cfg.Height)
	return nil
}

// Shutdown destroys the renderer, then the window, then shuts SDL
// down. Safe to call twice.
func (b *Backend) Shutdown() {
	if b.renderer == nil && b.window == nil {
		return
	}
	if b.renderer != nil {
		if err := b.renderer.Destroy(); err != nil {
			gfx.Logger().Warn("sdl renderer destroy failed", "err", err)
		}
		b.renderer = nil
	}
	if b.window != nil {
		if err := b.window.Destroy(); err != nil {
			gfx.Logger().Warn("sdl window destroy failed", "err", err)
		}
		b.window = nil
	}
	sdl.Quit()
}

// ShouldClose drains the event queue and reports whether a quit event
// arrived or Escape was pressed. Once true it stays true.
func (b *Backend) ShouldClose() bool {
	if b.renderer == nil {
		return b.closing
	}
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		b.handleEvent(ev)
	}
	return b.closing
}

// handleEvent latches the close flag on a quit event or Escape
// keydown. The flag is never cleared.
func (b *Backend) handleEvent(ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		b.closing = true
		gfx.Logger().Debug("sdl close requested", "event", "quit")
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
			b.closing = true
			gfx.Logger().Debug("sdl close requested", "event", "escape")
		}
	}
}

// BeginFrame is a no-op; SDL renderers have no frame boundary.
func (b *Backend) BeginFrame() {}

// EndFrame presents the renderer's back buffer.
func (b *Backend) EndFrame() {
	if b.renderer == nil {
		return
	}
	b.renderer.Present()
}

// Clear fills the frame with c.
func (b *Backend) Clear(c gfx.Color) {
	if b.renderer == nil {
		return
	}
	b.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	b.renderer.Clear()
}

// DrawRectangle fills rect with c, alpha-blended.
func (b *Backend) DrawRectangle(rect gfx.Rectangle, c gfx.Color) {
	if b.renderer == nil {
		return
	}
	b.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	b.renderer.FillRectF(frect(rect))
}

// DrawTexture does nothing until the texture registry lands.
func (b *Backend) DrawTexture(id gfx.TextureID, dest gfx.Rectangle, tint gfx.Color) {}

// DrawText draws text with the SDL2_gfx 8x8 font, top-left corner at
// (x, y). size is ignored; the font has one size.
func (b *Backend) DrawText(text string, x, y, size int, c gfx.Color) {
	if b.renderer == nil || text == "" {
		return
	}
	if !sdlgfx.StringRGBA(b.renderer, int32(x), int32(y), text, c.R, c.G, c.B, c.A) {
		gfx.Logger().Warn("sdl text draw failed", "text", text)
	}
}

// LoadTexture returns the placeholder handle without touching path.
func (b *Backend) LoadTexture(path string) gfx.TextureID {
	gfx.Logger().Debug("sdl texture load stubbed", "path", path)
	return gfx.PlaceholderTexture
}

// UnloadTexture does nothing; no texture was ever loaded.
func (b *Backend) UnloadTexture(id gfx.TextureID) {}

// frect converts a gfx rectangle field for field, keeping the float32
// values intact.
func frect(r gfx.Rectangle) *sdl.FRect {
	return &sdl.FRect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}
