package gfx

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
)

// recorderBackend captures every call made through the facade so tests
// can verify that Window forwards each operation to exactly one backend
// method with the arguments unchanged.
type recorderBackend struct {
	name      string
	initCfg   Config
	initErr   error
	closing   bool
	loadID    TextureID
	calls     []string
	shutdowns int
}

var _ Backend = (*recorderBackend)(nil)

func (r *recorderBackend) Name() string { return r.name }

func (r *recorderBackend) Init(cfg Config) error {
	r.initCfg = cfg
	r.calls = append(r.calls, "Init")
	return r.initErr
}

func (r *recorderBackend) Shutdown() {
	r.shutdowns++
	r.calls = append(r.calls, "Shutdown")
}

func (r *recorderBackend) ShouldClose() bool {
	r.calls = append(r.calls, "ShouldClose")
	return r.closing
}

func (r *recorderBackend) BeginFrame() { r.calls = append(r.calls, "BeginFrame") }
func (r *recorderBackend) EndFrame()   { r.calls = append(r.calls, "EndFrame") }

func (r *recorderBackend) Clear(c Color) {
	r.calls = append(r.calls, fmt.Sprintf("Clear(%v)", c))
}

func (r *recorderBackend) DrawRectangle(rect Rectangle, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("DrawRectangle(%v, %v)", rect, c))
}

func (r *recorderBackend) DrawTexture(id TextureID, dest Rectangle, tint Color) {
	r.calls = append(r.calls, fmt.Sprintf("DrawTexture(%d, %v, %v)", id, dest, tint))
}

func (r *recorderBackend) DrawText(text string, x, y, size int, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("DrawText(%q, %d, %d, %d, %v)", text, x, y, size, c))
}

func (r *recorderBackend) LoadTexture(path string) TextureID {
	r.calls = append(r.calls, fmt.Sprintf("LoadTexture(%q)", path))
	return r.loadID
}

func (r *recorderBackend) UnloadTexture(id TextureID) {
	r.calls = append(r.calls, fmt.Sprintf("UnloadTexture(%d)", id))
}

func TestOpenBuildsConfig(t *testing.T) {
	rb := &recorderBackend{name: "recorder"}
	win, err := Open(rb, 800, 450, "Infinite Runner")
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer win.Close()

	want := Config{Width: 800, Height: 450, Title: "Infinite Runner", TargetFPS: DefaultTargetFPS}
	if rb.initCfg != want {
		t.Errorf("Init received %+v, want %+v", rb.initCfg, want)
	}
}

func TestOpenAppliesOptions(t *testing.T) {
	rb := &recorderBackend{name: "recorder"}
	win, err := Open(rb, 320, 240, "tiny", WithTargetFPS(144))
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer win.Close()

	if rb.initCfg.TargetFPS != 144 {
		t.Errorf("Init received TargetFPS = %d, want 144", rb.initCfg.TargetFPS)
	}
}

func TestOpenInitError(t *testing.T) {
	initErr := errors.New("display not found")
	rb := &recorderBackend{name: "recorder", initErr: initErr}

	win, err := Open(rb, 800, 450, "Infinite Runner")
	if win != nil {
		t.Error("Open() returned a Window despite Init failure")
	}
	if err == nil {
		t.Fatal("Open() = nil error, want wrapped Init error")
	}
	if !errors.Is(err, initErr) {
		t.Errorf("errors.Is(err, initErr) = false for %v", err)
	}
	if !strings.Contains(err.Error(), "recorder") {
		t.Errorf("error %q does not name the backend", err)
	}
	// Open must not shut down a backend that never initialized; the
	// backend cleans up its own partial state.
	if rb.shutdowns != 0 {
		t.Errorf("Shutdown called %d times after failed Init, want 0", rb.shutdowns)
	}
}

func TestWindowForwardsOperations(t *testing.T) {
	rb := &recorderBackend{name: "recorder", loadID: PlaceholderTexture}
	win, err := Open(rb, 800, 450, "Infinite Runner")
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}

	// Drive one demo-shaped frame and assert the exact call sequence.
	win.BeginFrame()
	win.Clear(Color{R: 20, G: 30, B: 80, A: 255})
	win.DrawRectangle(Rect(100, 100, 50, 50), Red)
	win.DrawText("Infinite Runner - Press ESC to close", 10, 10, 20, White)
	win.EndFrame()

	id := win.LoadTexture("assets/player.png")
	if id != PlaceholderTexture {
		t.Errorf("LoadTexture() = %d, want %d", id, PlaceholderTexture)
	}
	win.DrawTexture(id, Rect(0, 0, 64, 64), White)
	win.UnloadTexture(id)

	if win.ShouldClose() {
		t.Error("ShouldClose() = true, backend never requested close")
	}
	win.Close()

	want := []string{
		"Init",
		"BeginFrame",
		"Clear({20 30 80 255})",
		"DrawRectangle({100 100 50 50}, {255 0 0 255})",
		`DrawText("Infinite Runner - Press ESC to close", 10, 10, 20, {255 255 255 255})`,
		"EndFrame",
		`LoadTexture("assets/player.png")`,
		"DrawTexture(1, {0 0 64 64}, {255 255 255 255})",
		"UnloadTexture(1)",
		"ShouldClose",
		"Shutdown",
	}
	if !slices.Equal(rb.calls, want) {
		t.Errorf("call sequence mismatch:\n got %q\nwant %q", rb.calls, want)
	}
}

func TestWindowShouldClosePassthrough(t *testing.T) {
	rb := &recorderBackend{name: "recorder"}
	win, err := Open(rb, 100, 100, "t")
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer win.Close()

	if win.ShouldClose() {
		t.Error("ShouldClose() = true before backend requested close")
	}
	rb.closing = true
	if !win.ShouldClose() {
		t.Error("ShouldClose() = false after backend requested close")
	}
}

func TestWindowAccessors(t *testing.T) {
	rb := &recorderBackend{name: "recorder"}
	win, err := Open(rb, 640, 360, "accessors")
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer win.Close()

	if got := win.Width(); got != 640 {
		t.Errorf("Width() = %d, want 640", got)
	}
	if got := win.Height(); got != 360 {
		t.Errorf("Height() = %d, want 360", got)
	}
	if got := win.Title(); got != "accessors" {
		t.Errorf("Title() = %q, want %q", got, "accessors")
	}
	if got := win.Backend(); got != Backend(rb) {
		t.Errorf("Backend() = %v, want the backend passed to Open", got)
	}
}

func TestWindowCloseForwards(t *testing.T) {
	rb := &recorderBackend{name: "recorder"}
	win, err := Open(rb, 100, 100, "t")
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}

	win.Close()
	win.Close()
	// The facade stays thin: each Close reaches the backend, which is
	// required to tolerate repeated Shutdown calls.
	if rb.shutdowns != 2 {
		t.Errorf("Shutdown called %d times after two Close calls, want 2", rb.shutdowns)
	}
}
