package quadtree

import "sort"

// bulkload.go implements the Z-order bulk loader of spec.md §4.5:
// sort every item by its Morton code, then recursively partition the
// sorted run into four contiguous quarters that line up with the
// [TL, TR, BL, BR] child order (the top two interleaved bits of a
// Morton code select exactly that quadrant), falling back to ordinary
// one-by-one Insert below a size or area cutoff.
//
// Grounded on the teacher's convertToInternal reinsert shape (a leaf
// becomes internal, then its residents are redistributed into the new
// children), here driven top-down from presorted data instead of
// bottom-up from a single overflowing bucket.

// bulkLoad fills the leaf at self with handles, subdividing
// recursively. handles must already be registered in the tree's
// identity index by the caller. A node that is no longer an empty leaf
// when its turn comes (an earlier sibling's items that did not fit
// their own quarter may have been inserted into it) takes its handles
// one by one through ordinary Insert instead of being partitioned.
func bulkLoad[K any, G any, Q any, P Policy[G, Q]](self NodeID, a *nodeArena[K, G, Q, P], handles []*Handle[K, G], pol P) {
	if len(handles) == 0 {
		return
	}

	n := a.Get(self)
	if len(handles) <= BulkLeafCutoff || !n.rect.canSubdivide() || !n.isEmpty() {
		for _, h := range handles {
			n.insert(self, h, a)
		}
		return
	}

	points := make([]Point, len(handles))
	for i, h := range handles {
		points[i] = pol.MortonPoint(h.geom)
	}
	bounds := boundsOf(points)
	codes := make([]uint32, len(handles))
	for i, p := range points {
		codes[i] = bounds.code(p)
	}

	order := make([]int, len(handles))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		oi, oj := order[i], order[j]
		if codes[oi] != codes[oj] {
			return codes[oi] < codes[oj]
		}
		return oi < oj // deterministic tie-break, substitutes for a stable sort
	})

	sorted := make([]*Handle[K, G], len(handles))
	for i, oi := range order {
		sorted[i] = handles[oi]
	}

	splitPoint := pol.MortonPoint(sorted[len(sorted)/2].geom)
	mid := n.rect.Center()
	if n.rect.interior(splitPoint) {
		mid = splitPoint
	}

	quarters := n.rect.Quarters(mid)
	for i := range n.children {
		childID, child := a.Alloc()
		child.rect = quarters[i]
		child.parent = self
		child.children = noChildren()
		child.isLeaf = true
		n.children[i] = childID
	}
	n.isLeaf = false

	base := len(sorted) / 4
	rem := len(sorted) % 4
	start := 0
	for i := 0; i < 4; i++ {
		size := base
		if i < rem {
			size++
		}
		bulkLoad(n.children[i], a, sorted[start:start+size], pol)
		start += size
	}
}
