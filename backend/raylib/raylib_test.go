//go:build raylib

package raylib

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/infinite-runner/gfx"
	"github.com/infinite-runner/gfx/backend"
)

// Window tests need a display, so these cover registration and the
// value conversions that every draw call goes through.

func TestRegistersOnImport(t *testing.T) {
	if !backend.IsRegistered(backend.Raylib) {
		t.Fatal("raylib backend not registered after import")
	}
	b := backend.Get(backend.Raylib)
	if _, ok := b.(*Backend); !ok {
		t.Errorf("Get(raylib) = %T, want *raylib.Backend", b)
	}
}

func TestName(t *testing.T) {
	if got := New().Name(); got != backend.Raylib {
		t.Errorf("Name() = %q, want %q", got, backend.Raylib)
	}
}

func TestColorConversion(t *testing.T) {
	tests := []struct {
		name string
		c    gfx.Color
		want rl.Color
	}{
		{name: "white", c: gfx.White, want: rl.NewColor(255, 255, 255, 255)},
		{name: "clear color", c: gfx.Color{R: 20, G: 30, B: 80, A: 255}, want: rl.NewColor(20, 30, 80, 255)},
		{name: "translucent", c: gfx.Color{R: 255, A: 128}, want: rl.NewColor(255, 0, 0, 128)},
		{name: "transparent", c: gfx.Transparent, want: rl.NewColor(0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rlColor(tt.c); got != tt.want {
				t.Errorf("rlColor(%+v) = %+v, want %+v", tt.c, got, tt.want)
			}
		})
	}
}

func TestRectConversion(t *testing.T) {
	got := rlRect(gfx.Rect(100.5, 150.25, 80, 30))
	want := rl.NewRectangle(100.5, 150.25, 80, 30)
	if got != want {
		t.Errorf("rlRect() = %+v, want %+v", got, want)
	}
}

func TestOpsBeforeInitAreNoOps(t *testing.T) {
	b := New()
	// None of these may touch raylib before Init.
	b.BeginFrame()
	b.Clear(gfx.Black)
	b.DrawRectangle(gfx.Rect(0, 0, 1, 1), gfx.Red)
	b.DrawText("x", 0, 0, 10, gfx.White)
	b.EndFrame()
	b.Shutdown()
	if b.ShouldClose() {
		t.Error("ShouldClose() = true before Init")
	}
}
