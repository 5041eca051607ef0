package Trees

import (
	"github.com/g-m-twostay/go-dsa/Queues"
)

// base holds what BST and AVL share: the nodes, lookups, traversals and order
// statistics. The trees differ only in how a node is fixed up after one of its
// subtrees changed, which insert and remove take as a parameter.
type base[K any, V any] struct {
	root   *node[K, V] //the root of the tree. It's nilPtr initially.
	nilPtr *node[K, V] //used instead of nil, see node.
	cmp    func(K, K) int
}

func makeBase[K any, V any](cmp func(K, K) int) base[K, V] {
	z := new(node[K, V])
	z.l, z.r = z, z
	return base[K, V]{z, z, cmp}
}

// insert k, v into the subtree rooting at *curPtr recursively, calling fix on
// every node of the path on the way back up. curPtr is passed by reference.
// Time: O(D)
func (u *base[K, V]) insert(curPtr **node[K, V], k K, v V, fix func(**node[K, V])) error {
	cur := *curPtr
	if cur == u.nilPtr {
		*curPtr = &node[K, V]{k, v, u.nilPtr, u.nilPtr, 1, 1}
		return nil
	}
	var err error
	if c := u.cmp(k, cur.k); c < 0 {
		err = u.insert(&cur.l, k, v, fix)
	} else if c > 0 {
		err = u.insert(&cur.r, k, v, fix)
	} else {
		return &DuplicateKeyError{k}
	}
	if err == nil {
		fix(curPtr)
	}
	return err
}

// remove k from the subtree rooting at *curPtr recursively, calling fix on
// every remaining node of the path on the way back up. A node with 2 children
// takes the key and value of its in-order successor, which is then removed from
// the right subtree.
// Time: O(D)
func (u *base[K, V]) remove(curPtr **node[K, V], k K, fix func(**node[K, V])) error {
	cur := *curPtr
	if cur == u.nilPtr {
		return &KeyNotFoundError{k}
	}
	var err error
	if c := u.cmp(k, cur.k); c < 0 {
		err = u.remove(&cur.l, k, fix)
	} else if c > 0 {
		err = u.remove(&cur.r, k, fix)
	} else if cur.l == u.nilPtr {
		*curPtr = cur.r
		return nil
	} else if cur.r == u.nilPtr {
		*curPtr = cur.l
		return nil
	} else {
		s := u.minimal(cur.r)
		cur.k, cur.v = s.k, s.v
		err = u.remove(&cur.r, s.k, fix)
	}
	if err == nil {
		fix(curPtr)
	}
	return err
}

// minimal node of the subtree rooting at cur, the leftmost one. cur mustn't be nilPtr.
// Time: O(D); Space: O(1)
func (u *base[K, V]) minimal(cur *node[K, V]) *node[K, V] {
	for cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur
}

// maximal is the mirror of minimal.
func (u *base[K, V]) maximal(cur *node[K, V]) *node[K, V] {
	for cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur
}

func (u *base[K, V]) find(k K) *node[K, V] {
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Search(k K) (V, error) {
	if n := u.find(k); n != nil {
		return n.v, nil
	}
	return *new(V), &KeyNotFoundError{k}
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Has(k K) bool {
	return u.find(k) != nil
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *base[K, V]) Size() uint {
	return u.root.sz
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u *base[K, V]) Height() uint {
	return u.root.h
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Minimum() (K, V, bool) {
	if u.root == u.nilPtr {
		return *new(K), *new(V), false
	}
	n := u.minimal(u.root)
	return n.k, n.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Maximum() (K, V, bool) {
	if u.root == u.nilPtr {
		return *new(K), *new(V), false
	}
	n := u.maximal(u.root)
	return n.k, n.v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Predecessor(k K) (K, V, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(k, cur.k) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.k, p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Successor(k K) (K, V, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(k, cur.k) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.k, p.v, p != u.nilPtr
}

// Select [Tree.Select]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Select(i uint) (K, V, bool) {
	for cur := u.root; cur != u.nilPtr; {
		if ls := cur.l.sz; i < ls {
			cur = cur.l
		} else if i > ls {
			i -= ls + 1
			cur = cur.r
		} else {
			return cur.k, cur.v, true
		}
	}
	return *new(K), *new(V), false
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *base[K, V]) RankOf(k K) (uint, bool) {
	var ra uint
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			ra += cur.l.sz + 1
			cur = cur.r
		} else {
			return ra + cur.l.sz, true
		}
	}
	return 0, false
}

// from returns the in-order iterator positioned at index i. The stack holds the
// nodes still to be visited whose right subtrees are unexplored.
// Time: O(D) to position, f(): amortized O(1). Space: O(D)
func (u *base[K, V]) from(i uint) func() (K, V, bool) {
	var st []*node[K, V]
	for cur := u.root; cur != u.nilPtr; {
		if ls := cur.l.sz; i < ls {
			st = append(st, cur)
			cur = cur.l
		} else if i > ls {
			i -= ls + 1
			cur = cur.r
		} else {
			st = append(st, cur)
			break
		}
	}
	return func() (k K, v V, ok bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for n := cur.r; n != u.nilPtr; n = n.l {
			st = append(st, n)
		}
		return cur.k, cur.v, true
	}
}

// InOrder [Tree.InOrder]
func (u *base[K, V]) InOrder() func() (K, V, bool) {
	return u.from(0)
}

// Keys in ascending order.
// Time: O(n)
func (u *base[K, V]) Keys() []K {
	ks := make([]K, 0, u.Size())
	for f := u.InOrder(); ; {
		k, _, ok := f()
		if !ok {
			return ks
		}
		ks = append(ks, k)
	}
}

// Values in ascending order of their keys.
// Time: O(n)
func (u *base[K, V]) Values() []V {
	vs := make([]V, 0, u.Size())
	for f := u.InOrder(); ; {
		_, v, ok := f()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

type levelItem[K any, V any] struct {
	n *node[K, V]
	d uint
}

// LevelOrder calls f on every node breadth first, left to right within a level.
// The root has depth 0. The traversal stops when f returns false.
// Time: O(n); Space: O(n)
func (u *base[K, V]) LevelOrder(f func(k K, v V, depth uint) bool) {
	if u.root == u.nilPtr {
		return
	}
	q := Queues.MakeArrayQueue[levelItem[K, V]](u.root.sz/2 + 1)
	for q.Push(levelItem[K, V]{u.root, 0}); !q.Empty(); {
		it, _ := q.Pop()
		if !f(it.n.k, it.n.v, it.d) {
			return
		}
		if it.n.l != u.nilPtr {
			q.Push(levelItem[K, V]{it.n.l, it.d + 1})
		}
		if it.n.r != u.nilPtr {
			q.Push(levelItem[K, V]{it.n.r, it.d + 1})
		}
	}
}

// corrupt checks the subtree rooting at cur recursively. lo and hi are the
// exclusive bounds of its keys, nil when unbounded.
func (u *base[K, V]) corrupt(cur *node[K, V], lo, hi *K) bool {
	if cur == u.nilPtr {
		return false
	}
	if lo != nil && u.cmp(*lo, cur.k) >= 0 || hi != nil && u.cmp(cur.k, *hi) >= 0 {
		return true
	}
	if cur.sz != cur.l.sz+cur.r.sz+1 || cur.h != max(cur.l.h, cur.r.h)+1 {
		return true
	}
	return u.corrupt(cur.l, lo, &cur.k) || u.corrupt(cur.r, &cur.k, hi)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *base[K, V]) Corrupt() bool {
	return u.nilPtr.l != u.nilPtr || u.nilPtr.r != u.nilPtr || u.nilPtr.sz != 0 || u.nilPtr.h != 0 ||
		u.corrupt(u.root, nil, nil)
}
