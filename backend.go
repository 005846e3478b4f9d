package gfx

// Config carries the window parameters handed to a backend when it is
// initialized. A Config is built by Open from its arguments and
// options; backends must not mutate it.
type Config struct {
	// Width and Height are the window dimensions in pixels.
	Width, Height int

	// Title is the window title. Backends without a title bar ignore it.
	Title string

	// TargetFPS is the frame rate requested from the backend. Only
	// backends with their own pacing honor it (raylib); the others
	// render as fast as the caller drives them.
	TargetFPS int
}

// Backend is the interface every graphics adapter implements.
// It mirrors the facade operation for operation: Window forwards each
// call to exactly one backend method with the arguments unchanged.
//
// Backends own all of their native state (window handles, renderers,
// close flags) and release it in Shutdown. Only Init may fail; the
// per-frame operations have no error returns and must degrade to
// no-ops rather than panic if the backend cannot perform them.
//
// All methods are called from a single goroutine.
type Backend interface {
	// Name returns the backend identifier (e.g. "raylib", "sdl").
	Name() string

	// Init creates the window and any native resources.
	// It must clean up partial state before returning an error.
	Init(cfg Config) error

	// Shutdown destroys the window and releases native resources.
	// It is safe to call after a failed Init and safe to call twice.
	Shutdown()

	// ShouldClose reports whether the user asked to close the window.
	// Once it returns true it keeps returning true.
	ShouldClose() bool

	// BeginFrame starts a frame. Backends without an explicit frame
	// boundary treat it as a no-op.
	BeginFrame()

	// EndFrame presents the finished frame.
	EndFrame()

	// Clear fills the whole frame with a color.
	Clear(c Color)

	// DrawRectangle fills an axis-aligned rectangle with a color.
	DrawRectangle(rect Rectangle, c Color)

	// DrawTexture draws a loaded texture into dest, tinted.
	// Unimplemented in every adapter until the texture registry lands.
	DrawTexture(id TextureID, dest Rectangle, tint Color)

	// DrawText draws a line of text with its top-left corner at (x, y).
	// size is a pixel height hint; backends with a fixed-size debug
	// font ignore it.
	DrawText(text string, x, y, size int, c Color)

	// LoadTexture loads a texture and returns its handle.
	// Returns PlaceholderTexture until the texture registry lands.
	LoadTexture(path string) TextureID

	// UnloadTexture releases a texture handle. Currently a no-op.
	UnloadTexture(id TextureID)
}
