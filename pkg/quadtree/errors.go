package quadtree

import "errors"

// ErrBulkLoadOnNonLeaf is returned by AddBulk when the target subtree is
// not an empty leaf. Bulk loading only makes sense as the very first
// population of a tree (or of a subtree being rebuilt by the sparse
// rebuild optimisation); calling it on a node that already has children
// or resident items is a programmer error in the caller.
var ErrBulkLoadOnNonLeaf = errors.New("quadtree: AddBulk called on a non-empty or already-subdivided node")
