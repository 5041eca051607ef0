package Trees

// A node in the trees.
// h is the height of the subtree rooted here and sz its number of nodes. The
// sentinel used instead of nil has both children pointing to itself and h=sz=0,
// so the bookkeeping of absent children needs no special case.
type node[K any, V any] struct {
	k     K
	v     V
	l, r  *node[K, V]
	h, sz uint
}

// update h and sz of n from its children.
// Time: O(1); Space: O(1)
func (n *node[K, V]) update() {
	n.h = max(n.l.h, n.r.h) + 1
	n.sz = n.l.sz + n.r.sz + 1
}

// rotateLeft performs a left rotation on n. The right child of *n becomes the
// root of the subtree. n is passed by reference in order to modify its content.
// Only the two nodes that changed children are updated.
// Time: O(1); Space: O(1)
func rotateLeft[K any, V any](n **node[K, V]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.update()
	rc.update()
	*n = rc
}

// rotateRight performs a right rotation on n, the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[K any, V any](n **node[K, V]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.update()
	lc.update()
	*n = lc
}
