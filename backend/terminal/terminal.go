package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/infinite-runner/gfx"
	"github.com/infinite-runner/gfx/backend"
)

func init() {
	backend.Register(backend.Terminal, func() gfx.Backend { return New() })
}

// Backend renders into a tcell screen, scaling logical pixel
// coordinates onto the terminal's cell grid.
type Backend struct {
	screen    tcell.Screen
	ownScreen bool
	running   bool
	closing   bool

	// Logical window size in pixels, from Init.
	width, height int
	// Cells per logical pixel, recomputed on terminal resize.
	scaleX, scaleY float64
}

var _ gfx.Backend = (*Backend)(nil)

// New returns a backend that allocates its own terminal screen at Init.
func New() *Backend { return &Backend{} }

// NewWithScreen returns a backend driving the given screen instead of
// allocating one. Used in tests with tcell.NewSimulationScreen; the
// screen must not be initialized yet.
func NewWithScreen(s tcell.Screen) *Backend {
	return &Backend{screen: s}
}

// Name returns "terminal".
func (b *Backend) Name() string { return backend.Terminal }

// Init takes over the terminal and computes the pixel-to-cell scale.
// Title and TargetFPS are ignored.
func (b *Backend) Init(cfg gfx.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: invalid window size %dx%d",
			backend.ErrInitFailed, cfg.Width, cfg.Height)
	}
	if b.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: create screen: %w", err)
		}
		b.screen = s
		b.ownScreen = true
	}
	if err := b.screen.Init(); err != nil {
		if b.ownScreen {
			b.screen = nil
		}
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	b.screen.SetStyle(tcell.StyleDefault)
	b.screen.HideCursor()

	b.running = true
	b.closing = false
	b.width = cfg.Width
	b.height = cfg.Height
	b.rescale()

	cols, rows := b.screen.Size()
	gfx.Logger().Debug("terminal backend initialized",
		"cols", cols, "rows", rows, "width", cfg.Width, "height", cfg.Height)
	return nil
}

// rescale recomputes the pixel-to-cell factors from the current
// terminal size.
func (b *Backend) rescale() {
	cols, rows := b.screen.Size()
	b.scaleX = float64(cols) / float64(b.width)
	b.scaleY = float64(rows) / float64(b.height)
}

// Shutdown restores the terminal. Safe to call twice.
func (b *Backend) Shutdown() {
	if !b.running {
		return
	}
	b.running = false
	b.screen.Fini()
	if b.ownScreen {
		b.screen = nil
	}
}

// ShouldClose drains pending input and reports whether Escape or
// Ctrl-C was pressed. Once true it stays true.
func (b *Backend) ShouldClose() bool {
	if !b.running {
		return b.closing
	}
	for b.screen.HasPendingEvent() {
		ev := b.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				b.closing = true
				gfx.Logger().Debug("terminal close requested", "key", ev.Name())
			}
		case *tcell.EventResize:
			b.screen.Sync()
			b.rescale()
		}
	}
	return b.closing
}

// BeginFrame is a no-op; cells are always writable.
func (b *Backend) BeginFrame() {}

// EndFrame flushes the cell buffer to the terminal.
func (b *Backend) EndFrame() {
	if !b.running {
		return
	}
	b.screen.Show()
}

// Clear fills every cell with c as background. Alpha is ignored.
func (b *Backend) Clear(c gfx.Color) {
	if !b.running {
		return
	}
	b.screen.Fill(' ', tcell.StyleDefault.Background(cellColor(c)))
}

// DrawRectangle fills the cell span covered by rect. A rectangle with
// positive size always covers at least one cell, so small game objects
// stay visible on coarse grids. Alpha is ignored.
func (b *Backend) DrawRectangle(rect gfx.Rectangle, c gfx.Color) {
	if !b.running || rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	x0 := b.cellX(rect.X)
	y0 := b.cellY(rect.Y)
	x1 := b.cellX(rect.X + rect.Width)
	y1 := b.cellY(rect.Y + rect.Height)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	style := tcell.StyleDefault.Background(cellColor(c))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawTexture does nothing until the texture registry lands.
func (b *Backend) DrawTexture(id gfx.TextureID, dest gfx.Rectangle, tint gfx.Color) {}

// DrawText writes text one rune per cell starting at the cell under
// (x, y), keeping each cell's existing background. size is ignored;
// the terminal has one font size. Wide runes occupy their first cell.
func (b *Backend) DrawText(text string, x, y, size int, c gfx.Color) {
	if !b.running || text == "" {
		return
	}
	cx := b.cellX(float32(x))
	cy := b.cellY(float32(y))
	fg := cellColor(c)
	for i, r := range []rune(text) {
		_, _, prev, _ := b.screen.GetContent(cx+i, cy)
		_, bg, _ := prev.Decompose()
		b.screen.SetContent(cx+i, cy, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
	}
}

// LoadTexture returns the placeholder handle without touching path.
func (b *Backend) LoadTexture(path string) gfx.TextureID {
	gfx.Logger().Debug("terminal texture load stubbed", "path", path)
	return gfx.PlaceholderTexture
}

// UnloadTexture does nothing; no texture was ever loaded.
func (b *Backend) UnloadTexture(id gfx.TextureID) {}

func (b *Backend) cellX(px float32) int { return int(float64(px) * b.scaleX) }
func (b *Backend) cellY(px float32) int { return int(float64(px) * b.scaleY) }

// cellColor maps a gfx color onto a tcell RGB color, dropping alpha.
func cellColor(c gfx.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
