package Trees

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const bSize = 1 << 15

// compares with https://github.com/google/btree, https://github.com/petar/GoLLRB
// and the AVL tree of https://github.com/emirpasic/gods on the same permutations.

func BenchmarkAVL_Insert(b *testing.B) {
	var t *AVL[int, struct{}]
	for range b.N {
		t = NewAVL[int, struct{}]()
		for _, j := range rand.Perm(bSize) {
			t.Insert(j, struct{}{})
		}
	}
	b.Log(t.Height())
}

func BenchmarkBST_Insert(b *testing.B) {
	var t *BST[int, struct{}]
	for range b.N {
		t = NewBST[int, struct{}]()
		for _, j := range rand.Perm(bSize) {
			t.Insert(j, struct{}{})
		}
	}
	b.Log(t.Height())
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		t := btree.NewOrderedG[int](32)
		for _, j := range rand.Perm(bSize) {
			t.ReplaceOrInsert(j)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		t := llrb.New()
		for _, j := range rand.Perm(bSize) {
			t.ReplaceOrInsert(llrb.Int(j))
		}
	}
}

func BenchmarkGodsAVL_Insert(b *testing.B) {
	for range b.N {
		t := avltree.NewWithIntComparator()
		for _, j := range rand.Perm(bSize) {
			t.Put(j, struct{}{})
		}
	}
}

func BenchmarkAVL_Delete(b *testing.B) {
	var t Tree[int, struct{}]
	for range b.N {
		b.StopTimer()
		t = NewAVL[int, struct{}]()
		for _, j := range rand.Perm(bSize) {
			t.Insert(j, struct{}{})
		}
		b.StartTimer()
		for j := range bSize {
			t.Delete(j)
		}
	}
}

func BenchmarkLLRB_Delete(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := llrb.New()
		for _, j := range rand.Perm(bSize) {
			t.ReplaceOrInsert(llrb.Int(j))
		}
		b.StartTimer()
		for j := range bSize {
			t.Delete(llrb.Int(j))
		}
	}
}

func BenchmarkAVL_RangeBetween(b *testing.B) {
	t := NewAVL[int, int]()
	for _, j := range rand.Perm(bSize) {
		t.Insert(j, j)
	}
	b.ResetTimer()
	for range b.N {
		i := uint(rand.Intn(bSize))
		t.RangeBetween(i, i+64)
	}
}

func BenchmarkBTree_AscendRange(b *testing.B) {
	t := btree.NewOrderedG[int](32)
	for _, j := range rand.Perm(bSize) {
		t.ReplaceOrInsert(j)
	}
	b.ResetTimer()
	for range b.N {
		i := rand.Intn(bSize)
		vs := make([]int, 0, 65)
		t.AscendRange(i, i+65, func(v int) bool {
			vs = append(vs, v)
			return true
		})
	}
}
