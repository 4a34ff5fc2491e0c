package quadtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuerySoundnessAgainstBruteForce is the L1 property: every item
// whose geometry actually matches a query must be returned, and
// nothing else. Checked against a brute-force scan over the same
// items, across random insert/remove/move churn.
func TestQuerySoundnessAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bounds := Rect{X: 0, Y: 0, W: 500, H: 500}
	tree := NewRectTree(bounds)

	live := make([]*RectItem, 0, 300)
	for step := 0; step < 2000; step++ {
		switch {
		case len(live) < 300 && rng.Intn(3) != 0:
			it := &RectItem{Rect: randRect(rng, 500)}
			tree.Add(it)
			live = append(live, it)
		case len(live) > 0 && rng.Intn(2) == 0:
			idx := rng.Intn(len(live))
			it := live[idx]
			it.Rect = randRect(rng, 500)
			tree.Move(it)
		case len(live) > 0:
			idx := rng.Intn(len(live))
			it := live[idx]
			require.True(t, tree.Remove(it))
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		}
	}

	for q := 0; q < 50; q++ {
		query := randRect(rng, 500)

		var want []*RectItem
		for _, it := range live {
			if query.Intersects(it.Rect) {
				want = append(want, it)
			}
		}
		got := tree.GetObjects(query)

		assert.ElementsMatch(t, want, got, "query %+v mismatched brute-force scan", query)
	}
}

func randRect(rng *rand.Rand, span float64) Rect {
	x := rng.Float64() * span
	y := rng.Float64() * span
	w := 1 + rng.Float64()*span*0.1
	h := 1 + rng.Float64()*span*0.1
	return Rect{X: x, Y: y, W: w, H: h}
}

// TestMoveToSamePlaceIsIdempotent is the L2 property: moving an item
// to geometry it already occupies must not change the tree's reported
// contents.
func TestMoveToSamePlaceIsIdempotent(t *testing.T) {
	tree := NewRectTree(Rect{X: 0, Y: 0, W: 100, H: 100})
	item := &RectItem{Rect: Rect{X: 10, Y: 10, W: 5, H: 5}}
	tree.Add(item)

	before := tree.Stats()
	tree.Move(item) // geometry unchanged
	after := tree.Stats()

	assert.Equal(t, before, after)
	assert.True(t, tree.Contains(item))
}

// TestInsertRemoveRoundTrip is the L3 property: adding then removing
// an item returns the tree to an equivalent state.
func TestInsertRemoveRoundTrip(t *testing.T) {
	tree := NewRectTree(Rect{X: 0, Y: 0, W: 100, H: 100})

	base := make([]*RectItem, 0, 40)
	for i := 0; i < 40; i++ {
		it := &RectItem{Rect: Rect{X: float64(i % 10), Y: float64(i / 10), W: 0.5, H: 0.5}}
		base = append(base, it)
		tree.Add(it)
	}
	before := tree.Stats()

	extra := &RectItem{Rect: Rect{X: 50, Y: 50, W: 1, H: 1}}
	tree.Add(extra)
	require.True(t, tree.Remove(extra))

	after := tree.Stats()
	assert.Equal(t, before, after)

	ids := tree.GetAllObjectsSlice()
	assert.Len(t, ids, len(base))
}

func sortedRects(items []*RectItem) []Rect {
	out := make([]Rect, len(items))
	for i, it := range items {
		out[i] = it.Rect
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
