package gfx

import "testing"

func TestRect(t *testing.T) {
	r := Rect(100, 150, 80, 30)
	want := Rectangle{X: 100, Y: 150, Width: 80, Height: 30}
	if r != want {
		t.Errorf("Rect() = %+v, want %+v", r, want)
	}
}

func TestRectNoNormalization(t *testing.T) {
	// Negative sizes and off-screen origins are stored as given; it is
	// the backend's job to decide what to do with them.
	r := Rect(-10, -20, -50, 0)
	want := Rectangle{X: -10, Y: -20, Width: -50, Height: 0}
	if r != want {
		t.Errorf("Rect() = %+v, want %+v", r, want)
	}
}
