package gfx

import "fmt"

// Window is the game-facing handle over an initialized backend. Every
// drawing operation forwards to the corresponding backend method with
// the arguments unchanged; the Window adds no validation or batching
// of its own.
//
// A Window is not safe for concurrent use. All calls, Open through
// Close, must come from the same goroutine.
type Window struct {
	backend Backend
	cfg     Config
}

// Open initializes b with the given dimensions and title and returns a
// Window bound to it. Options adjust the Config before it reaches the
// backend. If the backend fails to initialize, Open returns the
// wrapped error and no Window; the backend is responsible for
// releasing any partial state before reporting failure.
func Open(b Backend, width, height int, title string, opts ...Option) (*Window, error) {
	cfg := Config{
		Width:     width,
		Height:    height,
		Title:     title,
		TargetFPS: DefaultTargetFPS,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := b.Init(cfg); err != nil {
		return nil, fmt.Errorf("gfx: open %s window: %w", b.Name(), err)
	}
	Logger().Info("window opened",
		"backend", b.Name(),
		"width", cfg.Width,
		"height", cfg.Height,
		"title", cfg.Title)
	return &Window{backend: b, cfg: cfg}, nil
}

// Backend returns the backend driving this window.
func (w *Window) Backend() Backend { return w.backend }

// Width returns the window width in pixels as configured at Open.
func (w *Window) Width() int { return w.cfg.Width }

// Height returns the window height in pixels as configured at Open.
func (w *Window) Height() int { return w.cfg.Height }

// Title returns the window title as configured at Open.
func (w *Window) Title() string { return w.cfg.Title }

// ShouldClose reports whether the user asked to close the window, via
// the window manager or the backend's close key. Once true it stays
// true for the life of the window.
func (w *Window) ShouldClose() bool { return w.backend.ShouldClose() }

// BeginFrame starts a new frame. Call it once per iteration of the
// game loop, before any drawing.
func (w *Window) BeginFrame() { w.backend.BeginFrame() }

// EndFrame presents the frame started by BeginFrame.
func (w *Window) EndFrame() { w.backend.EndFrame() }

// Clear fills the entire frame with c.
func (w *Window) Clear(c Color) { w.backend.Clear(c) }

// DrawRectangle fills rect with c.
func (w *Window) DrawRectangle(rect Rectangle, c Color) {
	w.backend.DrawRectangle(rect, c)
}

// DrawTexture draws the texture id into dest, tinted with tint.
// Until the texture registry lands every backend treats this as a
// no-op; see LoadTexture.
func (w *Window) DrawTexture(id TextureID, dest Rectangle, tint Color) {
	w.backend.DrawTexture(id, dest, tint)
}

// DrawText draws text with its top-left corner at (x, y). size is the
// requested pixel height; backends with a fixed-size debug font ignore
// it.
func (w *Window) DrawText(text string, x, y, size int, c Color) {
	w.backend.DrawText(text, x, y, size, c)
}

// LoadTexture asks the backend to load the texture at path. Every
// backend currently returns PlaceholderTexture without touching the
// file; real loading arrives with the texture registry.
func (w *Window) LoadTexture(path string) TextureID {
	return w.backend.LoadTexture(path)
}

// UnloadTexture releases the texture id. Currently a no-op in every
// backend.
func (w *Window) UnloadTexture(id TextureID) {
	w.backend.UnloadTexture(id)
}

// Close shuts the backend down, destroying the window and its native
// resources. Backends tolerate repeated Shutdown calls, so closing an
// already closed Window is safe.
func (w *Window) Close() {
	w.backend.Shutdown()
	Logger().Info("window closed", "backend", w.backend.Name())
}
