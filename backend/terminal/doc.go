// Package terminal renders the game into a text terminal using tcell.
//
// The logical pixel window requested at Init is mapped onto the
// terminal's cell grid: a rectangle covering the top-left quarter of
// an 800x450 window covers the top-left quarter of the terminal,
// whatever its size. Colors keep their RGB values (alpha is ignored)
// and rely on the terminal's color support for fidelity.
//
// Importing the package registers it under the name "terminal":
//
//	import _ "github.com/infinite-runner/gfx/backend/terminal"
//
// Pressing Escape or Ctrl-C requests close, which ShouldClose then
// reports forever. Text is drawn with the terminal's own font, one
// cell per rune; the requested pixel size is ignored.
package terminal
