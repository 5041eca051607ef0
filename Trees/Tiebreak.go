package Trees

import "cmp"

// Tiebreak is a composite key letting several values share the same Key in a
// tree: keys order by Key, then by ID. Callers pick IDs unique per Key, a
// counter is enough.
type Tiebreak[K cmp.Ordered] struct {
	Key K
	ID  uint64
}

// CompareTiebreak orders Tiebreak keys, for NewAVLFunc and NewBSTFunc.
func CompareTiebreak[K cmp.Ordered](a, b Tiebreak[K]) int {
	if c := cmp.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// NewAVLTiebreak returns an empty AVL keyed by Tiebreak[K].
func NewAVLTiebreak[K cmp.Ordered, V any]() *AVL[Tiebreak[K], V] {
	return NewAVLFunc[Tiebreak[K], V](CompareTiebreak[K])
}
