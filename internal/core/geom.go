// Package core provides the types shared by the game and the terminal
// platform: the screen buffer, input frames and pixel boxes.
// It has no Bubble Tea dependency.
package core

// Rect is an axis-aligned box in arena pixels. Boxes are half-open: a box
// at X with width W covers X..X+W-1, so boxes that only touch do not
// intersect.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a box with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first x past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first y past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two boxes share at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether the pixel (x, y) lies inside the box.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns the box moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// MoveTo returns the box with its top-left corner at (x, y).
func (r Rect) MoveTo(x, y int) Rect {
	r.X, r.Y = x, y
	return r
}

// Center returns the centre pixel, rounded towards the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
