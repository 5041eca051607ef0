package Queues

import "fmt"

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

// PriorityQueue hands out its items largest first. Implementations may be bounded,
// in which case Add fails with FullQueueError.
type PriorityQueue[T any] interface {
	Add(item T) error
	GetMax() (T, error)
	Peek() (T, bool)
	Len() uint
	Empty() bool
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

// FullQueueError is returned when adding to a bounded queue that holds Cap items.
type FullQueueError struct {
	Cap uint
}

func (e *FullQueueError) Error() string {
	return fmt.Sprintf("Queue is Full: cannot Add beyond capacity %d.", e.Cap)
}
