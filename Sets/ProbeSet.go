package Sets

import "github.com/g-m-twostay/go-dsa/Maps"

// ProbeSet is a set of strings stored as the keys of a Maps.LinearProbe, so it
// grows and probes the same way. Not safe for concurrent use.
type ProbeSet struct {
	m *Maps.LinearProbe[struct{}]
}

// NewProbeSet takes the same arguments as Maps.New.
func NewProbeSet(expected uint, opts ...Maps.Option) ProbeSet {
	return ProbeSet{Maps.New[struct{}](expected, opts...)}
}

// Put [Set.Put]
func (u ProbeSet) Put(e string) bool {
	if u.m.Has(e) {
		return false
	}
	return u.m.Set(e, struct{}{}) == nil
}

// Has [Set.Has]
func (u ProbeSet) Has(e string) bool {
	return u.m.Has(e)
}

// Remove [Set.Remove]
func (u ProbeSet) Remove(e string) bool {
	return u.m.Delete(e) == nil
}

func (u ProbeSet) Size() uint {
	return u.m.Size()
}

// Take [Set.Take]. The element in the lowest slot is taken.
func (u ProbeSet) Take() (e string) {
	u.m.Range(func(k string, _ struct{}) bool {
		e = k
		return false
	})
	u.m.Delete(e)
	return
}

// Range [Set.Range] in slot order.
func (u ProbeSet) Range(f func(string) bool) {
	u.m.Range(func(k string, _ struct{}) bool {
		return f(k)
	})
}

// Statistics of the underlying table.
func (u ProbeSet) Statistics() Maps.Statistics {
	return u.m.Statistics()
}
