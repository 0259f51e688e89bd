// Package core provides fundamental types and utilities for the clicker.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned region of the terminal, in cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks the rectangle by margin on every side.
// A margin larger than half a dimension collapses that dimension to zero.
func (r Rect) Inset(margin int) Rect {
	if r.W < 2*margin || r.H < 2*margin {
		return Rect{X: r.X + margin, Y: r.Y + margin}
	}
	return Rect{
		X: r.X + margin,
		Y: r.Y + margin,
		W: r.W - 2*margin,
		H: r.H - 2*margin,
	}
}

// SplitVertical splits the rectangle into a top and a bottom part.
// The top part receives percent of the height, rounded down.
func (r Rect) SplitVertical(percent int) (top, bottom Rect) {
	topH := r.H * Clamp(percent, 0, 100) / 100
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: topH}
	bottom = Rect{X: r.X, Y: r.Y + topH, W: r.W, H: r.H - topH}
	return top, bottom
}

// SplitMax lays out cells left to right, giving each at most its maximum width.
// Cells that do not fit are clipped to the remaining width, possibly zero.
func (r Rect) SplitMax(maxWidths ...int) []Rect {
	cells := make([]Rect, len(maxWidths))
	x := r.X
	for i, w := range maxWidths {
		w = Clamp(w, 0, r.Right()-x)
		cells[i] = Rect{X: x, Y: r.Y, W: w, H: r.H}
		x += w
	}
	return cells
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
