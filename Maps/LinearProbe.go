package Maps

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-dsa/Primes"
)

type slot[V any] struct {
	key  string
	val  V
	used bool
}

// Statistics of the insertions into a LinearProbe, including the ones made
// while rehashing.
type Statistics struct {
	Conflicts  uint //insertions that met at least one slot taken by another key.
	ProbeTotal uint //slots taken by other keys stepped over by all insertions.
	ProbeMax   uint //the most slots stepped over by a single insertion.
	Rehashes   uint
}

type config struct {
	size uint
	hash Hasher
}

type Option func(*config)

// WithSize sets the number of slots to n instead of the prime found from the
// expected size. n isn't checked for primality. 0 means no override.
func WithSize(n uint) Option {
	return func(c *config) {
		c.size = n
	}
}

// WithHasher replaces Polynomial.
func WithHasher(h Hasher) Option {
	return func(c *config) {
		c.hash = h
	}
}

// LinearProbe is a hash table with open addressing: a key lives in the first
// free slot found by stepping forward, wrapping around, from the slot its hash
// points to. The table is rehashed into a larger prime number of slots before an
// insertion whenever more than half of the slots are taken. Deletion shifts the
// following entries of the run back, so no tombstones are left behind.
// It implements Map. It isn't safe for concurrent use, see Synced.
type LinearProbe[V any] struct {
	slots []slot[V]
	count uint
	hash  Hasher
	stats Statistics
}

// New table expected to hold about expected keys. The number of slots is the
// smallest prime not less than expected, at least 2.
func New[V any](expected uint, opts ...Option) *LinearProbe[V] {
	c := config{hash: Polynomial}
	for _, o := range opts {
		o(&c)
	}
	if c.size == 0 {
		c.size = Primes.AtLeast(expected)
	}
	return &LinearProbe[V]{slots: make([]slot[V], c.size), hash: c.hash}
}

func (u *LinearProbe[V]) Size() uint {
	return u.count
}

// Cap is the current number of slots.
func (u *LinearProbe[V]) Cap() uint {
	return uint(len(u.slots))
}

func (u *LinearProbe[V]) Statistics() Statistics {
	return u.stats
}

// probe for the slot of key. When insert is true, the first free slot is returned
// if key is absent, and the statistics are counted. Otherwise it fails on a free slot.
// Time: O(len(key)+run length)
func (u *LinearProbe[V]) probe(key string, insert bool) (uint, error) {
	size := uint(len(u.slots))
	if insert && u.count == size {
		return 0, &TableFullError{key, size}
	}
	i := u.hash(key, size) % size
	var run uint
	for range size {
		if s := &u.slots[i]; !s.used {
			if insert {
				return i, nil
			}
			return 0, &KeyNotFoundError{key}
		} else if s.key == key {
			return i, nil
		} else if insert {
			if run == 0 {
				u.stats.Conflicts++
			}
			run++
			u.stats.ProbeTotal++
			u.stats.ProbeMax = max(u.stats.ProbeMax, run)
		}
		i = (i + 1) % size
	}
	return 0, &KeyNotFoundError{key}
}

// rehash into the next size of the prime sequence: starting from the current size,
// take the largest prime below the bound and double it, twice, until the result
// is larger than the current size. Entries are inserted again in slot order.
// Time: O(size*log(log(size))) for the sieve plus the insertions.
func (u *LinearProbe[V]) rehash() {
	u.stats.Rehashes++
	old := u.slots
	size := uint(len(old))
	it := Primes.NewIterator(max(size, 3), 2)
	it.Next()
	next, _ := it.Next()
	for next <= size {
		next, _ = it.Next()
	}
	u.slots, u.count = make([]slot[V], next), 0
	for _, s := range old {
		if s.used {
			u.Set(s.key, s.val)
		}
	}
}

// Set [Map.Set]. Rehashes first if more than half of the slots are taken.
// Overwriting a key doesn't change the size.
// Time: amortized O(len(key)) for a good hasher.
func (u *LinearProbe[V]) Set(key string, v V) error {
	if u.count > uint(len(u.slots))/2 {
		u.rehash()
	}
	i, err := u.probe(key, true)
	if err != nil {
		return err
	}
	if !u.slots[i].used {
		u.count++
	}
	u.slots[i] = slot[V]{key, v, true}
	return nil
}

// Get [Map.Get]
func (u *LinearProbe[V]) Get(key string) (V, error) {
	if i, err := u.probe(key, false); err != nil {
		return *new(V), err
	} else {
		return u.slots[i].val, nil
	}
}

// Has [Map.Has]
func (u *LinearProbe[V]) Has(key string) bool {
	_, err := u.probe(key, false)
	return err == nil
}

// Delete [Map.Delete]. The entries after the freed slot, up to the next free
// one, move back into the hole whenever the hole lies between their hashed slot
// and their current one, so every remaining key stays reachable.
// Time: O(run length)
func (u *LinearProbe[V]) Delete(key string) error {
	i, err := u.probe(key, false)
	if err != nil {
		return err
	}
	size := uint(len(u.slots))
	u.slots[i] = slot[V]{}
	u.count--
	for j := (i + 1) % size; u.slots[j].used; j = (j + 1) % size {
		h := u.hash(u.slots[j].key, size) % size
		if j > i && (h <= i || h > j) || j < i && h <= i && h > j {
			u.slots[i], u.slots[j] = u.slots[j], slot[V]{}
			i = j
		}
	}
	return nil
}

// Range calls f on every entry in slot order until f returns false.
// The table must not be modified during Range.
func (u *LinearProbe[V]) Range(f func(key string, v V) bool) {
	for i := range u.slots {
		if s := &u.slots[i]; s.used && !f(s.key, s.val) {
			return
		}
	}
}

// Keys [Map.Keys]
func (u *LinearProbe[V]) Keys() []string {
	ks := make([]string, 0, u.count)
	u.Range(func(k string, _ V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

// Values [Map.Values]
func (u *LinearProbe[V]) Values() []V {
	vs := make([]V, 0, u.count)
	u.Range(func(_ string, v V) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// String lists the entries in slot order, one "(key,value)" per line.
func (u *LinearProbe[V]) String() string {
	var sb strings.Builder
	u.Range(func(k string, v V) bool {
		fmt.Fprintf(&sb, "(%s,%v)\n", k, v)
		return true
	})
	return sb.String()
}
