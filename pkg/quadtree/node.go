package quadtree

// node.go implements the structural core: Insert, Delete, Relocate and
// cleaning (spec.md §4.3-§4.4). Grounded on the teacher's
// pkg/quadtree/{quadtree.go,internal_node.go} node type (rect/view,
// fixed-size bucket, isLeaf flag, leaf-fills-then-splits shape) and
// generalised from "points only, never deleted" to the full
// Insert/Delete/Relocate/Clean protocol.
//
// node carries all four of Tree's type parameters directly (not just
// K, G) so its methods can instantiate the zero-sized policy type P
// with `var pol P` instead of threading a Policy value through every
// call -- the Go shape of spec.md §9's "static generic parameter"
// design note.
type node[K any, G any, Q any, P Policy[G, Q]] struct {
	rect     Rect
	parent   NodeID
	children [4]NodeID
	bucket   []*Handle[K, G]
	isLeaf   bool
}

func noChildren() [4]NodeID {
	return [4]NodeID{nilNodeID, nilNodeID, nilNodeID, nilNodeID}
}

type nodeArena[K any, G any, Q any, P Policy[G, Q]] = arena[node[K, G, Q, P]]

// newRootNode allocates the root node of a fresh tree.
func newRootNode[K any, G any, Q any, P Policy[G, Q]](a *nodeArena[K, G, Q, P], rect Rect) NodeID {
	id, n := a.Alloc()
	n.rect = rect
	n.parent = nilNodeID
	n.children = noChildren()
	n.isLeaf = true
	return id
}

// isEmpty reports whether n has neither items nor children (I5).
func (n *node[K, G, Q, P]) isEmpty() bool {
	return len(n.bucket) == 0 && n.isLeaf
}

// placeDirect appends h to n's own bucket and updates h's owner. It
// never triggers subdivision -- callers that need Insert's capacity
// handling call insert instead.
func (n *node[K, G, Q, P]) placeDirect(self NodeID, h *Handle[K, G]) {
	h.owner = self
	n.bucket = append(n.bucket, h)
}

// destinationFor returns the unique child whose rectangle contains
// h.geom, or (nilNodeID, false) if h straddles the split (spec.md
// §4.3's "destinationFor").
func (n *node[K, G, Q, P]) destinationFor(h *Handle[K, G], a *nodeArena[K, G, Q, P], pol P) (NodeID, bool) {
	for _, c := range n.children {
		child := a.Get(c)
		if pol.FitsIn(child.rect, h.geom) {
			return c, true
		}
	}
	return nilNodeID, false
}

// subdivide turns a leaf into an internal node with four fresh leaf
// children, redistributing its current bucket. Refuses (leaving n an
// oversize leaf) when the rectangle is too small or non-finite --
// spec.md §4.3's degenerate-area guard.
func (n *node[K, G, Q, P]) subdivide(self NodeID, a *nodeArena[K, G, Q, P]) {
	if !n.rect.canSubdivide() {
		return
	}

	quarters := n.rect.Quarters(n.rect.Center())
	for i := range n.children {
		childID, child := a.Alloc()
		child.rect = quarters[i]
		child.parent = self
		child.children = noChildren()
		child.isLeaf = true
		n.children[i] = childID
	}
	n.isLeaf = false

	var pol P
	old := n.bucket
	n.bucket = nil
	for _, h := range old {
		if dest, ok := n.destinationFor(h, a, pol); ok {
			a.Get(dest).placeDirect(dest, h)
		} else {
			n.placeDirect(self, h) // straddler stays at this node
		}
	}
}

// insert places h somewhere in the subtree rooted at self, per spec.md
// §4.3. self must be an ancestor of (or equal to) the node h.geom
// naturally belongs under; the root is always a valid starting point
// since it tolerates out-of-bounds items (I4).
func (n *node[K, G, Q, P]) insert(self NodeID, h *Handle[K, G], a *nodeArena[K, G, Q, P]) {
	var pol P
	if !pol.FitsIn(n.rect, h.geom) {
		if !n.parent.IsNil() {
			a.Get(n.parent).insert(n.parent, h, a)
			return
		}
		// Root: accept regardless, per I4.
		n.placeDirect(self, h)
		return
	}

	if n.isLeaf && len(n.bucket) < BucketCap {
		n.placeDirect(self, h)
		return
	}

	if n.isLeaf {
		n.subdivide(self, a)
		if n.isLeaf {
			// Subdivide refused (degenerate rect): oversize leaf.
			n.placeDirect(self, h)
			return
		}
		// Falls through to the internal-node case below.
	}

	dest, ok := n.destinationFor(h, a, pol)
	if !ok {
		n.placeDirect(self, h) // straddler
		return
	}
	a.Get(dest).insert(dest, h, a)
}

// delete removes h from the bucket that actually holds it (forwarding
// to h.owner if called at a different node), swap-with-last, and
// optionally cleans upward from there. Matches spec.md §4.3's Delete.
// sparse controls whether the resulting cleanUpwards pass also applies
// the rebuild-when-sparse optimisation (WithSparseRebuild).
func (n *node[K, G, Q, P]) delete(self NodeID, h *Handle[K, G], clean bool, sparse bool, a *nodeArena[K, G, Q, P]) {
	if h.owner != self {
		a.Get(h.owner).delete(h.owner, h, clean, sparse, a)
		return
	}

	idx := -1
	for i, resident := range n.bucket {
		if resident == h {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic("quadtree: handle missing from its recorded owner's bucket")
	}
	last := len(n.bucket) - 1
	n.bucket[idx] = n.bucket[last]
	n.bucket[last] = nil
	n.bucket = n.bucket[:last]

	if clean {
		n.cleanUpwards(self, sparse, a)
	}
}

// locateHome finds, without mutating the tree, the node h.geom
// currently belongs in -- climbing to an ancestor when it no longer
// fits self, or descending via destinationFor when a child now fits a
// geometry change that previously straddled. Returns self when no
// relocation is needed.
func (n *node[K, G, Q, P]) locateHome(self NodeID, h *Handle[K, G], a *nodeArena[K, G, Q, P]) NodeID {
	var pol P
	if !pol.FitsIn(n.rect, h.geom) {
		if !n.parent.IsNil() {
			return a.Get(n.parent).locateHome(n.parent, h, a)
		}
		return self // root: nowhere else to go, stays (I4).
	}

	if n.isLeaf {
		return self
	}

	dest, ok := n.destinationFor(h, a, pol)
	if !ok {
		return self // straddler at this node
	}
	return a.Get(dest).locateHome(dest, h, a)
}

// relocate implements spec.md §4.3's Relocate: detach from the current
// owner, insert at the located home (which may itself subdivide), then
// clean upward from the *former* owner -- never the other order, since
// cleaning first could delete the very subtree chosen as the
// destination (spec.md §9).
func (n *node[K, G, Q, P]) relocate(self NodeID, h *Handle[K, G], sparse bool, a *nodeArena[K, G, Q, P]) {
	target := n.locateHome(self, h, a)
	if target == self {
		return
	}

	former := self
	a.Get(former).delete(former, h, false, sparse, a)
	a.Get(target).insert(target, h, a)
	a.Get(former).cleanUpwards(former, sparse, a)
}

// cleanThis is the single-step coalescence rule of spec.md §4.4. It is
// a no-op on a leaf. A lone non-empty child is hoisted only when it is
// a leaf; a lone internal child stays where it is, so the children of
// every internal node keep tiling its rectangle (I3). When sparse is
// true it additionally applies the
// rebuild-when-sparse optimisation: a subtree left standing after
// coalescence, but whose total item count has fallen to or below
// RebuildThreshold, is flattened and reloaded fresh via the bulk
// loader rather than carried forward node by node.
func (n *node[K, G, Q, P]) cleanThis(self NodeID, sparse bool, a *nodeArena[K, G, Q, P]) {
	if n.isLeaf {
		return
	}

	nonEmpty := -1
	count := 0
	for i, c := range n.children {
		if !a.Get(c).isEmpty() {
			count++
			nonEmpty = i
		}
	}

	switch count {
	case 0:
		for _, c := range n.children {
			a.Free(c)
		}
		n.children = noChildren()
		n.isLeaf = true

	case 1:
		child := a.Get(n.children[nonEmpty])
		if !child.isLeaf {
			break
		}

		childBucket := child.bucket
		for _, c := range n.children {
			a.Free(c) // the hoisted child and its three empty siblings
		}
		n.children = noChildren()
		n.isLeaf = true

		if len(n.bucket) == 0 {
			n.bucket = childBucket
			for _, h := range n.bucket {
				h.owner = self
			}
		} else {
			for _, h := range childBucket {
				n.insert(self, h, a)
			}
		}

	default:
		// count is 2 or 3: nothing to coalesce here.
	}

	if sparse && !n.isLeaf && n.countItems(a) <= RebuildThreshold {
		n.rebuildViaBulkLoad(self, a)
	}
}

// cleanUpwards applies cleanThis here and, if this node becomes empty,
// recurses to the parent (spec.md §4.4).
func (n *node[K, G, Q, P]) cleanUpwards(self NodeID, sparse bool, a *nodeArena[K, G, Q, P]) {
	n.cleanThis(self, sparse, a)
	if n.isEmpty() && !n.parent.IsNil() {
		a.Get(n.parent).cleanUpwards(n.parent, sparse, a)
	}
}

// countItems returns the number of items held anywhere in the subtree
// rooted at n.
func (n *node[K, G, Q, P]) countItems(a *nodeArena[K, G, Q, P]) int {
	count := len(n.bucket)
	if n.isLeaf {
		return count
	}
	for _, c := range n.children {
		count += a.Get(c).countItems(a)
	}
	return count
}

// collectHandles appends every handle held anywhere in the subtree
// rooted at n onto out.
func (n *node[K, G, Q, P]) collectHandles(a *nodeArena[K, G, Q, P], out *[]*Handle[K, G]) {
	*out = append(*out, n.bucket...)
	if n.isLeaf {
		return
	}
	for _, c := range n.children {
		a.Get(c).collectHandles(a, out)
	}
}

// freeChildren recursively frees every node beneath n and resets n to
// an empty leaf, without touching n itself.
func (n *node[K, G, Q, P]) freeChildren(a *nodeArena[K, G, Q, P]) {
	if n.isLeaf {
		return
	}
	for _, c := range n.children {
		a.Get(c).freeChildren(a)
		a.Free(c)
	}
	n.children = noChildren()
	n.isLeaf = true
}

// rebuildViaBulkLoad flattens the subtree rooted at self down to its
// items and reconstructs it from scratch through the Z-order bulk
// loader -- the rebuild-when-sparse optimisation referenced by
// spec.md §4.4 and exposed via WithSparseRebuild.
func (n *node[K, G, Q, P]) rebuildViaBulkLoad(self NodeID, a *nodeArena[K, G, Q, P]) {
	var handles []*Handle[K, G]
	n.collectHandles(a, &handles)
	n.freeChildren(a)
	n.bucket = nil

	var pol P
	bulkLoad(self, a, handles, pol)
}
