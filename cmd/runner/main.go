// Command runner opens a window on the selected graphics backend and
// runs the Infinite Runner demo scene until the window is closed.
//
// Backends are compiled in with build tags (raylib, sdl, term,
// headless); a binary built without any backend tag exits with an
// error. Pick one at runtime with -backend, or leave it empty to use
// the best one compiled in.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/infinite-runner/gfx"
	"github.com/infinite-runner/gfx/backend"
)

func main() {
	var (
		backendName = flag.String("backend", "", "backend to use: raylib, sdl, terminal, headless (default: best available)")
		width       = flag.Int("width", 800, "window width in pixels")
		height      = flag.Int("height", 450, "window height in pixels")
		title       = flag.String("title", "Infinite Runner", "window title")
		fps         = flag.Int("fps", 60, "target frames per second (0 = uncapped)")
		frames      = flag.Int("frames", 0, "stop after this many frames (0 = run until closed; headless never closes on its own)")
		clearHex    = flag.String("clear", "#141e50", "clear color as hex RGB")
		snapshot    = flag.String("snapshot", "", "write the final frame as PNG to this file (headless backend only)")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	b, err := backend.Select(*backendName)
	if err != nil {
		if errors.Is(err, backend.ErrNoBackend) {
			log.Fatal("No graphics backend compiled in; rebuild with -tags raylib, sdl, term or headless")
		}
		log.Fatalf("Failed to select backend: %v", err)
	}
	fmt.Printf("Running with %s backend\n", b.Name())

	windowTitle := fmt.Sprintf("%s (%s backend)", *title, b.Name())
	win, err := gfx.Open(b, *width, *height, windowTitle, gfx.WithTargetFPS(*fps))
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}

	clear := gfx.Hex(*clearHex)
	for n := 0; !win.ShouldClose() && (*frames == 0 || n < *frames); n++ {
		win.BeginFrame()
		win.Clear(clear)

		// Placeholder scene: obstacles-to-be and debug text.
		win.DrawRectangle(gfx.Rect(100, 100, 50, 50), gfx.Red)
		win.DrawRectangle(gfx.Rect(200, 150, 80, 30), gfx.Green)
		win.DrawRectangle(gfx.Rect(350, 200, 100, 100), gfx.Blue)
		win.DrawText("Infinite Runner - Press ESC to close", 10, 10, 20, gfx.White)
		win.DrawText("WASD to test (placeholder)", 10, 40, 16, gfx.Gray)

		win.EndFrame()
	}

	if *snapshot != "" {
		if err := writeSnapshot(win, *snapshot); err != nil {
			win.Close()
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		fmt.Printf("Snapshot written to %s\n", *snapshot)
	}

	win.Close()
	fmt.Println("Game closed successfully")
}

// snapshotter is the optional backend capability behind -snapshot.
type snapshotter interface {
	Snapshot(w io.Writer) error
}

func writeSnapshot(win *gfx.Window, path string) error {
	s, ok := win.Backend().(snapshotter)
	if !ok {
		return fmt.Errorf("%s backend cannot snapshot frames", win.Backend().Name())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Snapshot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
