// Package terminal sizes text output to the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"

	"lightcast/pkg/engine/world"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the current terminal width and height.
// Falls back to defaults if stdout is not a terminal.
func Size() (width, height int) {
	return SizeOf(int(os.Stdout.Fd()))
}

// SizeOf returns the size of the terminal behind fd, or the defaults
func SizeOf(fd int) (width, height int) {
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Viewport is a rectangular window onto a grid, in cells
type Viewport struct {
	X, Y          int
	Width, Height int
}

// ViewportAround returns a window of at most width×height cells centred on
// focus, shifted so it stays inside a gridWidth×gridHeight grid.
func ViewportAround(focus world.Point, width, height, gridWidth, gridHeight int) Viewport {
	width = min(max(width, 1), gridWidth)
	height = min(max(height, 1), gridHeight)

	x := clamp(focus.X-width/2, 0, gridWidth-width)
	y := clamp(focus.Y-height/2, 0, gridHeight-height)
	return Viewport{X: x, Y: y, Width: width, Height: height}
}

// FitTerminal is ViewportAround sized to the terminal, leaving reserveRows
// lines free for surrounding text.
func FitTerminal(focus world.Point, reserveRows, gridWidth, gridHeight int) Viewport {
	w, h := Size()
	return ViewportAround(focus, w, h-reserveRows, gridWidth, gridHeight)
}

// Contains reports whether x/y lies inside the viewport
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.Width && y >= v.Y && y < v.Y+v.Height
}

// Empty reports whether the viewport covers no cells
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
