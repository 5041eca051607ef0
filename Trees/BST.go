package Trees

import "cmp"

// BST is an unbalanced binary search tree. Its height depends on the order of
// insertions: D is O(log n) for random orders and O(n) for sorted ones.
type BST[K any, V any] struct {
	base[K, V]
}

// NewBST returns an empty BST ordering keys with cmp.Compare.
func NewBST[K cmp.Ordered, V any]() *BST[K, V] {
	return NewBSTFunc[K, V](cmp.Compare[K])
}

// NewBSTFunc returns an empty BST ordering keys with compare, which returns a
// negative number, 0 or a positive number when a<b, a==b or a>b.
func NewBSTFunc[K any, V any](compare func(a, b K) int) *BST[K, V] {
	return &BST[K, V]{makeBase[K, V](compare)}
}

func (u *BST[K, V]) fix(curPtr **node[K, V]) {
	(*curPtr).update()
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BST[K, V]) Insert(k K, v V) error {
	return u.insert(&u.root, k, v, u.fix)
}

// Delete [Tree.Delete]. Recursive.
// Time: O(D)
func (u *BST[K, V]) Delete(k K) error {
	return u.remove(&u.root, k, u.fix)
}
