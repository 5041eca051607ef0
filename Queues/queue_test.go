package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue(t *testing.T) {
	for _, initCap := range []uint{0, 1, 4} {
		q := MakeArrayQueue[int](initCap)
		if _, err := q.Pop(); err == nil {
			t.Errorf("pop from empty queue succeeded")
		}
		for i := 0; i < 100; i++ {
			q.Push(i)
			if i%3 == 0 {
				if _, err := q.Pop(); err != nil {
					t.Errorf("pop failed: %v", err)
				}
			}
		}
		q.Clear()
		if !q.Empty() || q.Size() != 0 {
			t.Errorf("queue not empty after Clear")
		}
		for i := 0; i < 50; i++ {
			q.Push(i)
		}
		for i := 0; i < 20; i++ {
			if v, _ := q.Pop(); v != i {
				t.Errorf("popped %d, want %d", v, i)
			}
		}
		for i := 50; i < 70; i++ {
			q.Push(i)
		}
		q.Shrink()
		if q.Peek() != 20 {
			t.Errorf("peek is %d, want 20", q.Peek())
		}
		for i := 20; i < 70; i++ {
			if v, err := q.Pop(); err != nil || v != i {
				t.Errorf("popped (%d, %v), want %d", v, err, i)
			}
		}
		var e *EmptyQueueError
		if _, err := q.Pop(); !errors.As(err, &e) {
			t.Errorf("pop from drained queue returned %v", err)
		}
	}
}
