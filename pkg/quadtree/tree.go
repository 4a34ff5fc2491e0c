package quadtree

// tree.go is the public facade: spec.md §4.2's Tree over a root node
// plus a payload->handle identity index. Grounded on the teacher's
// top-level root[K] wrapper around its node tree.
//
// K is the caller's stable item identity (typically a pointer to a
// small struct the caller owns, so mutating its geometry in place and
// then calling Move keeps working); G is the item's geometry type; Q
// is the query shape; P is the zero-sized Policy[G, Q] implementation.
// geomOf extracts an item's current geometry, used both at Add time
// and to refresh a handle before Move relocates it.
type Tree[K comparable, G any, Q any, P Policy[G, Q]] struct {
	arena   *nodeArena[K, G, Q, P]
	root    NodeID
	index   map[K]*Handle[K, G]
	geomOf  func(K) G
	rootBox Rect

	enableSparseRebuild bool
}

// Option configures a Tree at construction time.
type Option func(*options)

type options struct {
	sparseRebuild bool
}

// WithSparseRebuild enables the optional rebuild-via-bulk-load
// heuristic described in spec.md §4.4. Default false.
func WithSparseRebuild(enabled bool) Option {
	return func(o *options) { o.sparseRebuild = enabled }
}

// NewTree constructs an empty tree bounded by root, using geomOf to
// read an item's geometry.
func NewTree[K comparable, G any, Q any, P Policy[G, Q]](root Rect, geomOf func(K) G, opts ...Option) *Tree[K, G, Q, P] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := newArena[node[K, G, Q, P]]()
	rootID := newRootNode[K, G, Q, P](a, root)
	return &Tree[K, G, Q, P]{
		arena:               a,
		root:                rootID,
		index:               make(map[K]*Handle[K, G]),
		geomOf:              geomOf,
		rootBox:             root,
		enableSparseRebuild: o.sparseRebuild,
	}
}

// RectItem is a mutable wrapper for use as a Rect-geometry tree's item
// identity: mutate Rect in place, then call Tree.Move(item).
type RectItem struct {
	Rect Rect
}

// PointItem is a mutable wrapper for use as a Point-geometry tree's
// item identity (Point or PointInv variants): mutate Point in place,
// then call Tree.Move(item).
type PointItem struct {
	Point Point
}

// NewRectTree builds a tree indexing axis-aligned rectangles, queried
// by rectangle overlap.
func NewRectTree(root Rect, opts ...Option) *Tree[*RectItem, Rect, Rect, RectPolicy] {
	return NewTree[*RectItem, Rect, Rect, RectPolicy](root, func(it *RectItem) Rect { return it.Rect }, opts...)
}

// NewPointTree builds a tree indexing points, queried by rectangle
// overlap.
func NewPointTree(root Rect, opts ...Option) *Tree[*PointItem, Point, Rect, PointPolicy] {
	return NewTree[*PointItem, Point, Rect, PointPolicy](root, func(it *PointItem) Point { return it.Point }, opts...)
}

// NewPointInvTree builds a tree indexing points, queried by an
// arbitrary caller-supplied predicate (see PointInvQuery).
func NewPointInvTree(root Rect, opts ...Option) *Tree[*PointItem, Point, PointInvQuery, PointInvPolicy] {
	return NewTree[*PointItem, Point, PointInvQuery, PointInvPolicy](root, func(it *PointItem) Point { return it.Point }, opts...)
}

// Add creates a handle for item, inserts it, and records it in the
// identity index. An item whose geometry lies outside the root is
// accepted and retained at the root (I4).
func (t *Tree[K, G, Q, P]) Add(item K) *Handle[K, G] {
	h := &Handle[K, G]{item: item, geom: t.geomOf(item)}
	t.arena.Get(t.root).insert(t.root, h, t.arena)
	t.index[item] = h
	return h
}

// AddRange adds every item in items, equivalent to repeated Add.
func (t *Tree[K, G, Q, P]) AddRange(items []K) {
	for _, it := range items {
		t.Add(it)
	}
}

// AddBulk replaces the contents of an empty tree in one pass via
// Z-order bulk loading (spec.md §4.5). It returns ErrBulkLoadOnNonLeaf
// if the root is not an empty leaf.
func (t *Tree[K, G, Q, P]) AddBulk(items []K) error {
	root := t.arena.Get(t.root)
	if !root.isLeaf || len(root.bucket) != 0 {
		return ErrBulkLoadOnNonLeaf
	}

	handles := make([]*Handle[K, G], len(items))
	for i, it := range items {
		h := &Handle[K, G]{item: it, geom: t.geomOf(it)}
		handles[i] = h
		t.index[it] = h
	}

	var pol P
	bulkLoad(t.root, t.arena, handles, pol)
	return nil
}

// Remove deletes item from the tree, returning false if it was never
// present.
func (t *Tree[K, G, Q, P]) Remove(item K) bool {
	h, ok := t.index[item]
	if !ok {
		return false
	}
	t.arena.Get(h.owner).delete(h.owner, h, true, t.enableSparseRebuild, t.arena)
	delete(t.index, item)
	return true
}

// Move is called after the caller has mutated item's geometry in
// place. It refreshes the handle's cached geometry and relocates it.
// A no-op if item is not present.
func (t *Tree[K, G, Q, P]) Move(item K) {
	h, ok := t.index[item]
	if !ok {
		return
	}
	h.geom = t.geomOf(item)
	t.arena.Get(h.owner).relocate(h.owner, h, t.enableSparseRebuild, t.arena)
}

// Contains reports whether item is currently indexed.
func (t *Tree[K, G, Q, P]) Contains(item K) bool {
	_, ok := t.index[item]
	return ok
}

// Count returns the number of items currently indexed.
func (t *Tree[K, G, Q, P]) Count() int {
	return len(t.index)
}

// Len is an alias for Count, for container-type familiarity.
func (t *Tree[K, G, Q, P]) Len() int {
	return t.Count()
}

// Clear empties the tree. The root rectangle and facade are retained.
func (t *Tree[K, G, Q, P]) Clear() {
	t.arena = newArena[node[K, G, Q, P]]()
	t.root = newRootNode[K, G, Q, P](t.arena, t.rootBox)
	for k := range t.index {
		delete(t.index, k)
	}
}

// GetObjects returns every item matching q, in an unspecified but
// deterministic order.
func (t *Tree[K, G, Q, P]) GetObjects(q Q) []K {
	var out []K
	var pol P
	t.arena.Get(t.root).getObjects(t.arena, q, pol, func(k K) {
		out = append(out, k)
	})
	return out
}

// GetObjectsFunc calls put once per item matching q.
func (t *Tree[K, G, Q, P]) GetObjectsFunc(q Q, put func(K)) {
	var pol P
	t.arena.Get(t.root).getObjects(t.arena, q, pol, put)
}

// GetAllObjects calls put once per item in the tree, in an unspecified
// but deterministic order.
func (t *Tree[K, G, Q, P]) GetAllObjects(put func(K)) {
	t.arena.Get(t.root).getAllObjects(t.arena, put)
}

// EnumObjects returns a lazy cursor over every item matching q. A
// caller that stops early never pays for the unvisited remainder.
func (t *Tree[K, G, Q, P]) EnumObjects(q Q) *Cursor[K, G, Q, P] {
	return newCursor[K, G, Q, P](t.arena, t.root, q)
}

// Stats summarises the tree's current shape.
type Stats struct {
	Items    int
	Nodes    int
	MaxDepth int

	// MaxBucket is the largest bucket any single node holds at the
	// time of the call. It is recomputed on every call, so it drops
	// again as items are removed; no high-water mark is kept.
	MaxBucket int

	// RootOverflow is the number of items sitting directly in the
	// root's own bucket while the root is internal: items that fit
	// nowhere else, either because they lie outside the root's
	// rectangle (I4) or because their geometry straddles every split
	// all the way up.
	RootOverflow int
}

// Stats walks the tree aggregating node/item counts, depth, and bucket
// sizes, for diagnostics and shape-asserting tests.
func (t *Tree[K, G, Q, P]) Stats() Stats {
	s := Stats{Items: len(t.index)}
	var walk func(id NodeID, depth int)
	walk = func(id NodeID, depth int) {
		n := t.arena.Get(id)
		s.Nodes++
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		if len(n.bucket) > s.MaxBucket {
			s.MaxBucket = len(n.bucket)
		}
		if n.isLeaf {
			return
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(t.root, 0)

	root := t.arena.Get(t.root)
	if !root.isLeaf {
		s.RootOverflow = len(root.bucket)
	}
	return s
}
