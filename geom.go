package rowan

import "math"

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// IntersectsCircle reports whether r and c overlap, by testing the circle
// center against the closest point on the rectangle.
func (r Rect) IntersectsCircle(c Circle) bool {
	cx := clamp(c.X, r.X, r.X+r.Width)
	cy := clamp(c.Y, r.Y, r.Y+r.Height)
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Edges returns the rectangle's four edges in top, right, bottom, left order.
func (r Rect) Edges() [4]Line {
	tl := Vec2{r.X, r.Y}
	tr := Vec2{r.X + r.Width, r.Y}
	br := Vec2{r.X + r.Width, r.Y + r.Height}
	bl := Vec2{r.X, r.Y + r.Height}
	return [4]Line{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}}
}

// Line is a segment between two points.
type Line struct {
	A, B Vec2
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return math.Hypot(l.B.X-l.A.X, l.B.Y-l.A.Y)
}

// Intersects reports whether the two segments cross or touch.
// Collinear overlapping segments are considered intersecting.
func (l Line) Intersects(other Line) bool {
	d1 := cross(other.A, other.B, l.A)
	d2 := cross(other.A, other.B, l.B)
	d3 := cross(l.A, l.B, other.A)
	d4 := cross(l.A, l.B, other.B)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear / endpoint-touching cases.
	return (d1 == 0 && onSegment(other.A, other.B, l.A)) ||
		(d2 == 0 && onSegment(other.A, other.B, l.B)) ||
		(d3 == 0 && onSegment(l.A, l.B, other.A)) ||
		(d4 == 0 && onSegment(l.A, l.B, other.B))
}

// IntersectsRect reports whether the segment touches the rectangle, either by
// crossing an edge or by lying entirely inside it.
func (l Line) IntersectsRect(r Rect) bool {
	if r.Contains(l.A.X, l.A.Y) || r.Contains(l.B.X, l.B.Y) {
		return true
	}
	for _, e := range r.Edges() {
		if l.Intersects(e) {
			return true
		}
	}
	return false
}

// IntersectsCircle reports whether the segment touches the circle, by testing
// the circle center against the closest point on the segment.
func (l Line) IntersectsCircle(c Circle) bool {
	dx := l.B.X - l.A.X
	dy := l.B.Y - l.A.Y
	lenSq := dx*dx + dy*dy

	t := 0.0
	if lenSq > 0 {
		t = clamp(((c.X-l.A.X)*dx+(c.Y-l.A.Y)*dy)/lenSq, 0, 1)
	}
	px := l.A.X + t*dx
	py := l.A.Y + t*dy
	ddx := c.X - px
	ddy := c.Y - py
	return ddx*ddx+ddy*ddy <= c.Radius*c.Radius
}

// Circle is a circle centered at (X, Y).
type Circle struct {
	X, Y, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c Circle) Contains(x, y float64) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Intersects reports whether the two circles overlap or touch.
func (c Circle) Intersects(other Circle) bool {
	dx := other.X - c.X
	dy := other.Y - c.Y
	rr := c.Radius + other.Radius
	return dx*dx+dy*dy <= rr*rr
}

// cross returns the z-component of (b-a) x (p-a).
func cross(a, b, p Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// onSegment reports whether p (known collinear with a-b) lies within the
// segment's bounding box.
func onSegment(a, b, p Vec2) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
