package skin

// Point represents a 2D point or offset in integer pixels.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// PointF represents a 2D point in float64 coordinates.
// Text placement is fractional because shaped glyph advances are.
type PointF struct {
	X, Y float64
}

// PtF is a convenience function to create a PointF.
func PtF(x, y float64) PointF {
	return PointF{X: x, Y: y}
}

// Add returns the sum of two points.
func (p PointF) Add(q PointF) PointF {
	return PointF{X: p.X + q.X, Y: p.Y + q.Y}
}

// ToF converts an integer point to a PointF.
func (p Point) ToF() PointF {
	return PointF{X: float64(p.X), Y: float64(p.Y)}
}

// Size represents a 2D extent in integer pixels.
type Size struct {
	W, H int
}

// Sz is a convenience function to create a Size.
func Sz(w, h int) Size {
	return Size{W: w, H: h}
}

// Union returns the component-wise maximum of two sizes.
func (s Size) Union(t Size) Size {
	return Size{W: max(s.W, t.W), H: max(s.H, t.H)}
}

// Rect represents an axis-aligned rectangle in integer pixels.
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a rectangle from origin and extent.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// X2 returns the exclusive right edge.
func (r Rect) X2() int { return r.X + r.W }

// Y2 returns the exclusive bottom edge.
func (r Rect) Y2() int { return r.Y + r.H }

// IsEmpty reports whether the rectangle encloses no pixels.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Offset returns the rectangle translated by p.
func (r Rect) Offset(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}

// Shrink returns the rectangle reduced by a border on all four sides.
func (r Rect) Shrink(b Border) Rect {
	return Rect{
		X: r.X + b.Left,
		Y: r.Y + b.Top,
		W: r.W - b.Width(),
		H: r.H - b.Height(),
	}
}

// Intersect returns the intersection of two rectangles.
// The result is empty if they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x1 := max(r.X, s.X)
	y1 := max(r.Y, s.Y)
	x2 := min(r.X2(), s.X2())
	y2 := min(r.Y2(), s.Y2())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X2() && p.Y >= r.Y && p.Y < r.Y2()
}

// RectF represents an axis-aligned rectangle in float64 coordinates.
type RectF struct {
	X, Y, W, H float64
}

// Offset returns the rectangle translated by p.
func (r RectF) Offset(p PointF) RectF {
	return RectF{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}

// IsEmpty reports whether the rectangle encloses no area.
func (r RectF) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// ToF converts an integer rectangle to a RectF.
func (r Rect) ToF() RectF {
	return RectF{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Border represents per-side integer thicknesses.
type Border struct {
	Left, Top, Right, Bottom int
}

// NewBorder creates a border with the given side thicknesses.
func NewBorder(left, top, right, bottom int) Border {
	return Border{Left: left, Top: top, Right: right, Bottom: bottom}
}

// UniformBorder creates a border with the same thickness on every side.
func UniformBorder(v int) Border {
	return Border{Left: v, Top: v, Right: v, Bottom: v}
}

// Width returns the total horizontal thickness (left + right).
func (b Border) Width() int { return b.Left + b.Right }

// Height returns the total vertical thickness (top + bottom).
func (b Border) Height() int { return b.Top + b.Bottom }

// centerSpan returns the origin that centers an extent of the given
// length inside the span starting at x. The centering offset is rounded
// down to a multiple of the UI scale so centered sprites stay on the
// scale grid.
func centerSpan(x, size, length int) int {
	scale := UIScale()
	return x + (size-length)/scale/2*scale
}
