package quadtree

// BucketCap is the number of items a leaf holds before Insert subdivides
// it. Once a node is internal, relocations may push its own bucket past
// this cap (see node.go) -- only Insert triggers a split.
const BucketCap = 10

// RebuildThreshold bounds the optional sparse-rebuild optimisation (see
// WithSparseRebuild). It is never consulted unless that option is set.
const RebuildThreshold = 22

// MinSubdivideArea is the smallest node area Subdivide will accept.
// Below it (or for non-finite areas) a node stays an oversize leaf.
const MinSubdivideArea = 0.01

// BulkLeafCutoff is the item count at or below which the bulk loader
// stops partitioning and inserts the remainder one at a time.
const BulkLeafCutoff = 8

// MortonQuantisation is the per-axis resolution used when quantising
// bulk-load points to 16-bit integers before interleaving.
const MortonQuantisation = 0xFFFF

// arenaSlabSize is the chunk size the node arena grows by. It has no
// effect on tree semantics, only on allocation batching.
const arenaSlabSize = 256
