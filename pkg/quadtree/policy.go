package quadtree

// Policy is the small, total predicate set spec.md §4.1 asks a geometry
// variant to supply. It is used as a Go type parameter (never stored as
// an interface value) so each instantiation of Tree[K, G, Q, P] gets its
// own specialised copy of the node logic -- the "static generic
// parameter, zero-cost monomorphisation" note of spec.md §9.
type Policy[G, Q any] interface {
	// FitsIn reports whether item (in its current geometry) lies
	// wholly inside nodeRect.
	FitsIn(nodeRect Rect, item G) bool

	// QueryContains reports whether q fully contains nodeRect, in
	// which case every item in that subtree matches without
	// per-item testing (the query-time half of "hoisting").
	QueryContains(q Q, nodeRect Rect) bool

	// QueryIntersects reports whether q overlaps nodeRect at all. A
	// false result only licenses pruning a subtree when PrunesQueries
	// is also true for this policy.
	QueryIntersects(q Q, nodeRect Rect) bool

	// QueryMatches reports whether item itself satisfies q.
	QueryMatches(q Q, item G) bool

	// MortonPoint returns item's representative point for Z-order
	// sorting during bulk load.
	MortonPoint(item G) Point

	// PrunesQueries reports whether QueryContains/QueryIntersects are
	// meaningful spatial predicates for this policy. RectPolicy and
	// PointPolicy both return true. PointInvPolicy returns false: its
	// QueryContains/QueryIntersects are unconditionally false per
	// spec.md's table (the inverted-containment query shape has no
	// fixed geometric extent to test a node's rectangle against), so
	// treating a false QueryIntersects as license to prune would
	// silently violate query soundness (spec.md §8 L1). See
	// DESIGN.md for the full resolution.
	PrunesQueries() bool
}

// RectPolicy indexes axis-aligned rectangles and queries them with
// another rectangle.
type RectPolicy struct{}

func (RectPolicy) FitsIn(nodeRect Rect, item Rect) bool           { return nodeRect.ContainsRect(item) }
func (RectPolicy) QueryContains(q Rect, nodeRect Rect) bool       { return q.ContainsRect(nodeRect) }
func (RectPolicy) QueryIntersects(q Rect, nodeRect Rect) bool     { return q.Intersects(nodeRect) }
func (RectPolicy) QueryMatches(q Rect, item Rect) bool            { return q.Intersects(item) }
func (RectPolicy) MortonPoint(item Rect) Point                    { return item.Center() }
func (RectPolicy) PrunesQueries() bool                            { return true }

// PointPolicy indexes points and queries them with a rectangle.
type PointPolicy struct{}

func (PointPolicy) FitsIn(nodeRect Rect, item Point) bool       { return nodeRect.Contains(item) }
func (PointPolicy) QueryContains(q Rect, nodeRect Rect) bool    { return q.ContainsRect(nodeRect) }
func (PointPolicy) QueryIntersects(q Rect, nodeRect Rect) bool  { return q.Intersects(nodeRect) }
func (PointPolicy) QueryMatches(q Rect, item Point) bool        { return q.Contains(item) }
func (PointPolicy) MortonPoint(item Point) Point                { return item }
func (PointPolicy) PrunesQueries() bool                         { return true }

// PointInvQuery is the query shape for PointInvPolicy: an arbitrary,
// caller-supplied predicate over points, with no fixed geometric extent
// the tree can test a node's rectangle against.
type PointInvQuery struct {
	Matches func(Point) bool
}

// NewRadiusQuery builds a PointInvQuery matching every point within
// radius of center -- the common case, and a convenience over writing
// the predicate out by hand.
func NewRadiusQuery(center Point, radius float64) PointInvQuery {
	r2 := radius * radius
	return PointInvQuery{
		Matches: func(p Point) bool {
			dx := p.X - center.X
			dy := p.Y - center.Y
			return dx*dx+dy*dy <= r2
		},
	}
}

// PointInvPolicy indexes points exactly as PointPolicy does (FitsIn is
// ordinary spatial containment -- items are placed in the tree
// normally) but queries them with an arbitrary predicate that cannot be
// tested against a node's rectangle, so every query degrades to a full
// scan: see PrunesQueries.
type PointInvPolicy struct{}

func (PointInvPolicy) FitsIn(nodeRect Rect, item Point) bool { return nodeRect.Contains(item) }
func (PointInvPolicy) QueryContains(q PointInvQuery, nodeRect Rect) bool {
	return false
}
func (PointInvPolicy) QueryIntersects(q PointInvQuery, nodeRect Rect) bool {
	return false
}
func (PointInvPolicy) QueryMatches(q PointInvQuery, item Point) bool {
	return q.Matches(item)
}
func (PointInvPolicy) MortonPoint(item Point) Point { return item }
func (PointInvPolicy) PrunesQueries() bool          { return false }
