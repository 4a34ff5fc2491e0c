package quadtree

// morton.go implements the Z-order (Morton) curve used by the bulk
// loader (spec.md §4.5) to cluster spatially-near points into a single
// sort key before partitioning them into a tree.

// quantiseAxis maps v, known to lie in [lo, hi], onto the integer range
// [0, MortonQuantisation]. A degenerate (zero-width) axis quantises
// everything to 0.
func quantiseAxis(v, lo, hi float64) uint32 {
	extent := hi - lo
	if extent <= 0 {
		return 0
	}
	q := ((v - lo) / extent) * float64(MortonQuantisation)
	if q < 0 {
		q = 0
	}
	if q > float64(MortonQuantisation) {
		q = float64(MortonQuantisation)
	}
	return uint32(q)
}

// spread16 interleaves zero bits between each of v's low 16 bits, e.g.
// 0babcd -> 0b0a0b0c0d. It is the standard "magic numbers" bit-spreading
// trick for building Morton codes without a loop.
func spread16(v uint32) uint32 {
	v &= 0x0000FFFF
	v = (v | (v << 8)) & 0x00FF00FF
	v = (v | (v << 4)) & 0x0F0F0F0F
	v = (v | (v << 2)) & 0x33333333
	v = (v | (v << 1)) & 0x55555555
	return v
}

// mortonCode interleaves the bits of x and y (each a 16-bit quantised
// axis value) into a single 32-bit Z-order key, x in the even bit
// positions and y in the odd ones.
func mortonCode(x, y uint32) uint32 {
	return spread16(x) | (spread16(y) << 1)
}

// mortonBounds is the axis-aligned bounding box of a set of Morton
// representative points, used to quantise them before interleaving.
type mortonBounds struct {
	minX, minY, maxX, maxY float64
}

func boundsOf(points []Point) mortonBounds {
	b := mortonBounds{minX: points[0].X, maxX: points[0].X, minY: points[0].Y, maxY: points[0].Y}
	for _, p := range points[1:] {
		if p.X < b.minX {
			b.minX = p.X
		}
		if p.X > b.maxX {
			b.maxX = p.X
		}
		if p.Y < b.minY {
			b.minY = p.Y
		}
		if p.Y > b.maxY {
			b.maxY = p.Y
		}
	}
	return b
}

func (b mortonBounds) code(p Point) uint32 {
	x := quantiseAxis(p.X, b.minX, b.maxX)
	y := quantiseAxis(p.Y, b.minY, b.maxY)
	return mortonCode(x, y)
}
