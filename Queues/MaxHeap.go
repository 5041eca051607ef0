package Queues

import "cmp"

// Pair is an item of a MaxHeap. Only Key takes part in comparisons.
type Pair[K cmp.Ordered, V any] struct {
	Key K
	Val V
}

// MaxHeap is a bounded binary max-heap of Pairs stored in a 1-indexed array:
// the children of slot k are 2k and 2k+1. It implements PriorityQueue.
// Pairs with equal keys leave in no particular order.
type MaxHeap[K cmp.Ordered, V any] struct {
	arr []Pair[K, V] //arr[0] is unused. len(arr)=Cap()+1
	n   uint
}

// NewMaxHeap returns an empty heap that can hold capacity Pairs. A capacity of 0 is raised to 1.
func NewMaxHeap[K cmp.Ordered, V any](capacity uint) *MaxHeap[K, V] {
	return &MaxHeap[K, V]{arr: make([]Pair[K, V], max(capacity, 1)+1)}
}

// BuildMaxHeap copies pairs into a new heap bottom-up: every parent from the last one
// up to the root is sunk once. The capacity is raised to len(pairs) if it's smaller.
// pairs is not modified.
// Time: O(len(pairs))
func BuildMaxHeap[K cmp.Ordered, V any](capacity uint, pairs []Pair[K, V]) *MaxHeap[K, V] {
	u := NewMaxHeap[K, V](max(capacity, uint(len(pairs))))
	copy(u.arr[1:], pairs)
	u.n = uint(len(pairs))
	for k := u.n / 2; k > 0; k-- {
		u.sink(k)
	}
	return u
}

func (u *MaxHeap[K, V]) Len() uint {
	return u.n
}

func (u *MaxHeap[K, V]) Cap() uint {
	return uint(len(u.arr)) - 1
}

func (u *MaxHeap[K, V]) Empty() bool {
	return u.n == 0
}

func (u *MaxHeap[K, V]) Full() bool {
	return u.n+1 == uint(len(u.arr))
}

// rise the item at k while it's larger than its parent.
// Time: O(log n)
func (u *MaxHeap[K, V]) rise(k uint) {
	item := u.arr[k]
	for ; k > 1 && item.Key > u.arr[k/2].Key; k /= 2 {
		u.arr[k] = u.arr[k/2]
	}
	u.arr[k] = item
}

// largestChild of k. The left child is chosen only when it's the only child or strictly
// larger than the right one. 1<=k<=n/2.
func (u *MaxHeap[K, V]) largestChild(k uint) uint {
	if l := 2 * k; l == u.n || u.arr[l].Key > u.arr[l+1].Key {
		return l
	} else {
		return l + 1
	}
}

// sink the item at k until no child is larger.
// Time: O(log n)
func (u *MaxHeap[K, V]) sink(k uint) {
	item := u.arr[k]
	for 2*k <= u.n {
		c := u.largestChild(k)
		if u.arr[c].Key <= item.Key {
			break
		}
		u.arr[k] = u.arr[c]
		k = c
	}
	u.arr[k] = item
}

// Add p to the heap. Returns FullQueueError if the heap is full.
// Time: O(log n)
func (u *MaxHeap[K, V]) Add(p Pair[K, V]) error {
	if u.Full() {
		return &FullQueueError{u.Cap()}
	}
	u.n++
	u.arr[u.n] = p
	u.rise(u.n)
	return nil
}

// GetMax removes and returns the Pair with the largest key. Returns EmptyQueueError
// if the heap is empty.
// Time: O(log n)
func (u *MaxHeap[K, V]) GetMax() (Pair[K, V], error) {
	if u.n == 0 {
		return Pair[K, V]{}, &EmptyQueueError{}
	}
	top := u.arr[1]
	u.arr[1] = u.arr[u.n]
	u.arr[u.n] = Pair[K, V]{}
	u.n--
	if u.n > 0 {
		u.sink(1)
	}
	return top, nil
}

// Peek at the largest Pair without removing it.
func (u *MaxHeap[K, V]) Peek() (Pair[K, V], bool) {
	return u.arr[1], u.n > 0
}
