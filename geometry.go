package gfx

// Rectangle represents an axis-aligned rectangle by its top-left corner
// position and size, in pixels. Backends consume the float32 fields
// directly, so fractional positions survive the trip into libraries
// with float rectangle primitives.
type Rectangle struct {
	X, Y, Width, Height float32
}

// Rect is a convenience function to create a Rectangle.
func Rect(x, y, width, height float32) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}
