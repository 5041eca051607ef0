package Maps

import "fmt"

// Map is an associative container keyed by strings.
type Map[V any] interface {
	//Set the value under key, replacing any previous one.
	Set(key string, v V) error
	//Get the value under key. Fails with KeyNotFoundError.
	Get(key string) (V, error)
	Has(key string) bool
	//Delete key. Fails with KeyNotFoundError.
	Delete(key string) error
	//Keys in storage order, which is unrelated to insertion order.
	Keys() []string
	//Values in the same order as Keys.
	Values() []V
	Size() uint
}

// KeyNotFoundError is returned when reading or deleting an absent key.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found: %q", e.Key)
}

// TableFullError is returned when inserting into a table whose every slot is taken.
type TableFullError struct {
	Key string
	Cap uint
}

func (e *TableFullError) Error() string {
	return fmt.Sprintf("table full: no slot for %q among %d", e.Key, e.Cap)
}
