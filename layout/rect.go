package layout

// Rect is an axis-aligned integer clip rectangle, half-open on the right
// and bottom edges
type Rect struct {
	Left, Top, Right, Bottom int
}

// RectOf builds a rect from an origin and size
func RectOf(x, y, w, h int) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Intersect returns the overlap of two rects; clip rectangles only ever
// shrink, never union
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
	return out
}

// Contains reports whether the cell at (x, y) is inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Area returns the number of cells covered
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return (r.Right - r.Left) * (r.Bottom - r.Top)
}
