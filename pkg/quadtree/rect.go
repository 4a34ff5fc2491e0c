package quadtree

import "math"

// Point is a location in the plane. The coordinate system's orientation
// (y-up or y-down) is immaterial to every algorithm in this package; a
// caller need only be internally consistent about it.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle, W and H are ordinarily positive.
// Left/Right/Top/Bottom are derived so that Top <= Bottom and
// Left <= Right hold whenever W, H >= 0, regardless of which way up the
// caller's y axis runs.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns r's area. Non-finite W/H produce a non-finite area, which
// callers use to recognise degenerate rectangles (see Subdivide in
// node.go).
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Contains reports whether p lies within r, boundary inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect reports whether other lies entirely within r, boundary
// inclusive (r ⊇ other, non-strict per spec).
func (r Rect) ContainsRect(other Rect) bool {
	return r.Left() <= other.Left() && r.Right() >= other.Right() &&
		r.Top() <= other.Top() && r.Bottom() >= other.Bottom()
}

// Intersects reports whether r and other overlap, including along a
// shared edge (closed overlap).
func (r Rect) Intersects(other Rect) bool {
	if other.Right() < r.Left() || other.Left() > r.Right() {
		return false
	}
	if other.Bottom() < r.Top() || other.Top() > r.Bottom() {
		return false
	}
	return true
}

// quadrant names a child slot. The zero value is TL; order matches the
// fixed [4]NodeID slot layout every internal node uses.
type quadrant int

const (
	quadTL quadrant = iota
	quadTR
	quadBL
	quadBR
)

// Quarters splits r into four sub-rectangles at the given interior
// point, in [TL, TR, BL, BR] order. The caller picks mid -- the
// geometric midpoint for lazy Subdivide, or a data-chosen split point
// for bulk loading (see bulkload.go).
func (r Rect) Quarters(mid Point) [4]Rect {
	left, right := r.Left(), r.Right()
	top, bottom := r.Top(), r.Bottom()
	return [4]Rect{
		quadTL: {X: left, Y: top, W: mid.X - left, H: mid.Y - top},
		quadTR: {X: mid.X, Y: top, W: right - mid.X, H: mid.Y - top},
		quadBL: {X: left, Y: mid.Y, W: mid.X - left, H: bottom - mid.Y},
		quadBR: {X: mid.X, Y: mid.Y, W: right - mid.X, H: bottom - mid.Y},
	}
}

// isFinite reports whether both W and H are finite. A node whose
// rectangle fails this is treated as degenerate by Subdivide.
func (r Rect) isFinite() bool {
	return !math.IsNaN(r.W) && !math.IsInf(r.W, 0) &&
		!math.IsNaN(r.H) && !math.IsInf(r.H, 0)
}

// canSubdivide reports whether r is large enough, and finite enough, to
// subdivide -- the Degenerate-area guard of spec.md §4.3.
func (r Rect) canSubdivide() bool {
	return r.isFinite() && r.Area() >= MinSubdivideArea
}

// interior reports whether p lies strictly inside r on both axes --
// neither coincident with an edge. Used by the bulk loader to decide
// whether a data-chosen split point is usable (spec.md §4.5 step 5).
func (r Rect) interior(p Point) bool {
	return p.X > r.Left() && p.X < r.Right() && p.Y > r.Top() && p.Y < r.Bottom()
}
