package Maps

import (
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
)

const benchmarkItemCount = 1024

var benchKeys = func() []string {
	ks := make([]string, benchmarkItemCount)
	for i := range ks {
		ks[i] = strconv.Itoa(i)
	}
	return ks
}()

// compares with https://github.com/cornelk/hashmap and https://github.com/alphadose/haxmap, both
// concurrent, so the parallel benchmarks go through Synced and the single threaded ones
// through the bare table.
func setupHashMap(b *testing.B) *hashmap.Map[string, int] {
	b.Helper()
	m := hashmap.New[string, int]()
	for i, k := range benchKeys {
		m.Set(k, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[string, int] {
	b.Helper()
	m := haxmap.New[string, int]()
	for i, k := range benchKeys {
		m.Set(k, i)
	}
	return m
}

func setupSynced(b *testing.B, h Hasher) *Synced[int] {
	b.Helper()
	m := NewSynced[int](benchmarkItemCount, WithHasher(h))
	for i, k := range benchKeys {
		m.Set(k, i)
	}
	return m
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i, k := range benchKeys {
				if j, _ := m.Get(k); j != i {
					b.Fail()
				}
			}
		}
	})
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i, k := range benchKeys {
				if j, _ := m.Get(k); j != i {
					b.Fail()
				}
			}
		}
	})
}

func benchmarkReadSynced(b *testing.B, h Hasher) {
	m := setupSynced(b, h)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i, k := range benchKeys {
				if j, _ := m.Get(k); j != i {
					b.Fail()
				}
			}
		}
	})
}

func BenchmarkReadSyncedPolynomial(b *testing.B) {
	benchmarkReadSynced(b, Polynomial)
}

func BenchmarkReadSyncedXXHash(b *testing.B) {
	benchmarkReadSynced(b, XXHash)
}

func BenchmarkReadSyncedWithWrites(b *testing.B) {
	m := setupSynced(b, XXHash)
	var writer uintptr
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		// use 1 thread as writer
		if atomic.CompareAndSwapUintptr(&writer, 0, 1) {
			for pb.Next() {
				for i, k := range benchKeys {
					m.Set(k, i)
				}
			}
		} else {
			for pb.Next() {
				for i, k := range benchKeys {
					if j, _ := m.Get(k); j != i {
						b.Fail()
					}
				}
			}
		}
	})
}

func BenchmarkWriteHashMap(b *testing.B) {
	m := hashmap.New[string, int]()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i, k := range benchKeys {
			m.Set(k, i)
		}
	}
}

func BenchmarkWriteHaxMap(b *testing.B) {
	m := haxmap.New[string, int]()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i, k := range benchKeys {
			m.Set(k, i)
		}
	}
}

func BenchmarkWriteNative(b *testing.B) {
	m := make(map[string]int)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i, k := range benchKeys {
			m[k] = i
		}
	}
}

func benchmarkWriteLinearProbe(b *testing.B, h Hasher) {
	for n := 0; n < b.N; n++ {
		m := New[int](0, WithHasher(h))
		for i, k := range benchKeys {
			m.Set(k, i)
		}
	}
}

// includes every rehash from the smallest table.
func BenchmarkWriteLinearProbePolynomial(b *testing.B) {
	benchmarkWriteLinearProbe(b, Polynomial)
}

func BenchmarkWriteLinearProbeXXHash(b *testing.B) {
	benchmarkWriteLinearProbe(b, XXHash)
}

func BenchmarkDeleteLinearProbe(b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		m := New[int](benchmarkItemCount*2, WithHasher(XXHash))
		for i, k := range benchKeys {
			m.Set(k, i)
		}
		b.StartTimer()
		for _, k := range benchKeys {
			m.Delete(k)
		}
	}
}
