package Trees

import "fmt"

// Tree is an ordered map from unique keys to values implemented using linked nodes.
// Receivers that have a bool as the last return value use it to indicate whether
// the other return values are defined; when it's false they hold zero values.
// Receivers that can fail return one of the error types of this package.
// Methods implemented recursively are noted, otherwise methods are implemented iteratively.
type Tree[K any, V any] interface {
	//Insert v under k. Fails with DuplicateKeyError if k is already in the Tree;
	//equal keys are never merged.
	Insert(k K, v V) error
	//Delete k and its value. Fails with KeyNotFoundError if k isn't in the Tree.
	Delete(k K) error
	//Search for the value under k. Fails with KeyNotFoundError.
	Search(k K) (V, error)
	//Has key k.
	Has(k K) bool
	//Minimum key of the tree and its value.
	Minimum() (K, V, bool)
	//Maximum key of the tree and its value.
	Maximum() (K, V, bool)
	//Predecessor returns the greatest key less than k.
	Predecessor(k K) (K, V, bool)
	//Successor returns the smallest key greater than k.
	Successor(k K) (K, V, bool)
	//Select the key at position i of the in-order traversal.
	//0<=i<Size().
	Select(i uint) (K, V, bool)
	//RankOf k, the position of k in the in-order traversal, starting from 0.
	RankOf(k K) (uint, bool)
	//Size of the tree.
	Size() uint
	//Height of the tree. The height of an empty tree is 0 and of a single node 1.
	Height() uint
	//InOrder returns a closure f acting like an iterator over the keys in
	//ascending order. k, v, valid = f() is like calling "Next()": k and v are
	//meaningful only if valid is true, and once valid is false f is exhausted.
	//Each call to InOrder starts a fresh traversal. The tree must not be
	//modified while f is in use.
	InOrder() func() (K, V, bool)
	//Corrupt returns whether some node violates the ordering of keys or carries
	//wrong bookkeeping. This is to be distinguished from whether the tree is balanced.
	Corrupt() bool
}

// DuplicateKeyError is returned when inserting a key that's already present.
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}

// KeyNotFoundError is returned when deleting or searching an absent key.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}

// EmptyTreeError is returned by operations that need at least one node.
type EmptyTreeError struct {
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty."
}
