package headless

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/infinite-runner/gfx"
	"github.com/infinite-runner/gfx/backend"
)

func init() {
	backend.Register(backend.Headless, func() gfx.Backend { return New() })
}

// Backend renders into an in-memory RGBA frame instead of a window.
type Backend struct {
	frame  *image.RGBA
	frames int
}

var _ gfx.Backend = (*Backend)(nil)

// New returns an uninitialized headless backend.
func New() *Backend { return &Backend{} }

// Name returns "headless".
func (b *Backend) Name() string { return backend.Headless }

// Init allocates the frame buffer. Title and TargetFPS are ignored;
// there is no window and no pacing.
func (b *Backend) Init(cfg gfx.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: invalid frame size %dx%d",
			backend.ErrInitFailed, cfg.Width, cfg.Height)
	}
	b.frame = image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	b.frames = 0
	gfx.Logger().Debug("headless backend initialized",
		"width", cfg.Width, "height", cfg.Height)
	return nil
}

// Shutdown releases the frame buffer. Safe to call twice.
func (b *Backend) Shutdown() {
	b.frame = nil
}

// ShouldClose always reports false: a headless frame has no close
// button and no keyboard. Callers bound their loop by frame count.
func (b *Backend) ShouldClose() bool { return false }

// BeginFrame is a no-op; the frame buffer is always writable.
func (b *Backend) BeginFrame() {}

// EndFrame marks the frame as finished.
func (b *Backend) EndFrame() {
	if b.frame == nil {
		return
	}
	b.frames++
}

// Clear fills the whole frame with c, replacing alpha as well.
func (b *Backend) Clear(c gfx.Color) {
	if b.frame == nil {
		return
	}
	draw.Draw(b.frame, b.frame.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// DrawRectangle fills rect with c, alpha-blended over the frame.
// Rectangles with a non-positive width or height are skipped.
func (b *Backend) DrawRectangle(rect gfx.Rectangle, c gfx.Color) {
	if b.frame == nil || rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	r := image.Rect(int(rect.X), int(rect.Y),
		int(rect.X+rect.Width), int(rect.Y+rect.Height))
	draw.Draw(b.frame, r, image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
}

// DrawTexture does nothing until the texture registry lands.
func (b *Backend) DrawTexture(id gfx.TextureID, dest gfx.Rectangle, tint gfx.Color) {}

// DrawText renders text with the fixed 7x13 debug font, top-left
// corner at (x, y). size is ignored; the font has one size.
func (b *Backend) DrawText(text string, x, y, size int, c gfx.Color) {
	if b.frame == nil || text == "" {
		return
	}
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  b.frame,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

// LoadTexture returns the placeholder handle without touching path.
func (b *Backend) LoadTexture(path string) gfx.TextureID {
	gfx.Logger().Debug("headless texture load stubbed", "path", path)
	return gfx.PlaceholderTexture
}

// UnloadTexture does nothing; no texture was ever loaded.
func (b *Backend) UnloadTexture(id gfx.TextureID) {}

// Frame returns the backend's frame buffer, or nil before Init.
// The returned image is live storage, not a copy; it stays valid
// until the next Init or Shutdown.
func (b *Backend) Frame() *image.RGBA { return b.frame }

// Frames returns how many frames have been finished since Init.
func (b *Backend) Frames() int { return b.frames }

// Snapshot encodes the current frame as PNG.
func (b *Backend) Snapshot(w io.Writer) error {
	if b.frame == nil {
		return backend.ErrNotInitialized
	}
	return png.Encode(w, b.frame)
}
