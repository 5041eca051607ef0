package Trees

import "cmp"

// AVL is a binary search tree that keeps the heights of the 2 subtrees of every
// node within 1 of each other by rotating subtrees after every insertion and
// deletion. The height D is at most 1.44*log2(n+2).
// It shares lookups and traversals with BST and only replaces Insert and Delete.
type AVL[K any, V any] struct {
	base[K, V]
}

// NewAVL returns an empty AVL ordering keys with cmp.Compare.
func NewAVL[K cmp.Ordered, V any]() *AVL[K, V] {
	return NewAVLFunc[K, V](cmp.Compare[K])
}

// NewAVLFunc is the equivalence of NewBSTFunc.
func NewAVLFunc[K any, V any](compare func(a, b K) int) *AVL[K, V] {
	return &AVL[K, V]{makeBase[K, V](compare)}
}

// rebalance the node at *curPtr, whose subtrees are AVL trees with heights
// differing by at most 2. The balance is h(right)-h(left). A child that's heavy
// on its inner side is rotated first, turning the double rotation cases into
// single ones.
// Time: O(1)
func (u *AVL[K, V]) rebalance(curPtr **node[K, V]) {
	cur := *curPtr
	if b := int(cur.r.h) - int(cur.l.h); b >= 2 {
		if c := cur.r; c.l.h > c.r.h {
			rotateRight(&cur.r)
		}
		rotateLeft(curPtr)
	} else if b <= -2 {
		if c := cur.l; c.r.h > c.l.h {
			rotateLeft(&cur.l)
		}
		rotateRight(curPtr)
	} else {
		cur.update()
	}
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *AVL[K, V]) Insert(k K, v V) error {
	return u.insert(&u.root, k, v, u.rebalance)
}

// Delete [Tree.Delete]. Recursive.
// Time: O(D)
func (u *AVL[K, V]) Delete(k K) error {
	return u.remove(&u.root, k, u.rebalance)
}

// RangeBetween returns the values at the positions i to j, inclusive, of the
// in-order traversal. Positions past the end are dropped, so the result is empty
// when i>j or i>=Size().
// Time: O(D+j-i); Space: O(D+j-i)
func (u *AVL[K, V]) RangeBetween(i, j uint) []V {
	if i > j || i >= u.Size() {
		return []V{}
	}
	j = min(j, u.Size()-1)
	vs := make([]V, 0, j-i+1)
	for f := u.from(i); uint(len(vs)) <= j-i; {
		_, v, _ := f()
		vs = append(vs, v)
	}
	return vs
}

// FindMaxAndRemove removes the maximum key and returns it with its value.
// Returns EmptyTreeError if the tree is empty.
// Time: O(D)
func (u *AVL[K, V]) FindMaxAndRemove() (K, V, error) {
	k, v, ok := u.Maximum()
	if !ok {
		return k, v, &EmptyTreeError{}
	}
	return k, v, u.Delete(k)
}

func (u *AVL[K, V]) balanced(cur *node[K, V]) bool {
	if cur == u.nilPtr {
		return true
	}
	if b := int(cur.r.h) - int(cur.l.h); b > 1 || b < -1 {
		return false
	}
	return u.balanced(cur.l) && u.balanced(cur.r)
}

// Balanced returns whether every node satisfies the AVL property. Combine with
// Corrupt to also check the cached heights. Recursive.
// Time: O(n)
func (u *AVL[K, V]) Balanced() bool {
	return u.balanced(u.root)
}
