package Sets

type Set[E any] interface {
	//Put e, false if it was already in the set.
	Put(E) bool
	Has(E) bool
	//Remove e, false if it wasn't in the set.
	Remove(E) bool
	Size() uint
	//Take removes and returns some element. The set must not be empty.
	Take() E
	Range(func(E) bool)
}
