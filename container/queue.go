package container

import (
	"unsafe"

	"github.com/joshuapare/slotkit/mem"
)

// Queue is a fixed-capacity, relocatable FIFO ring of T. Like Vec it is a
// flat struct over allocator-provided storage and follows the same
// two-phase construction protocol.
type Queue[T any] struct {
	data     mem.Pointer[T]
	start    uint64
	length   uint64
	capacity uint64
}

// NewQueue returns an uninitialized Queue skeleton with the given
// capacity. Init must be called exactly once before any other operation.
func NewQueue[T any](capacity uint64) Queue[T] {
	return Queue[T]{capacity: capacity}
}

// QueueMemorySize returns the exact byte count Init will request from its
// allocator for a Queue of the given capacity.
func QueueMemorySize[T any](capacity uint64) uint64 {
	return mem.SizeOf[T]() * capacity
}

// Init carves the ring storage out of a. It is called exactly once, after
// the Queue has reached its final location.
func (q *Queue[T]) Init(a mem.Allocator) error {
	p, err := a.Allocate(QueueMemorySize[T](q.capacity), mem.AlignOf[T]())
	if err != nil {
		return err
	}
	q.data.Set(p)
	return nil
}

// Push enqueues value and returns true, or returns false when full.
func (q *Queue[T]) Push(value T) bool {
	if q.length == q.capacity {
		return false
	}
	*q.at((q.start + q.length) % q.capacity) = value
	q.length++
	return true
}

// Pop dequeues the oldest value. The second return is false when empty.
func (q *Queue[T]) Pop() (T, bool) {
	if q.length == 0 {
		var zero T
		return zero, false
	}
	value := *q.at(q.start)
	q.start = (q.start + 1) % q.capacity
	q.length--
	return value, true
}

func (q *Queue[T]) at(i uint64) *T {
	return (*T)(unsafe.Add(q.data.Raw(), uintptr(i)*unsafe.Sizeof(*new(T))))
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() uint64 { return q.length }

// Capacity returns the fixed capacity.
func (q *Queue[T]) Capacity() uint64 { return q.capacity }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.length == 0 }

// IsFull reports whether Len has reached Capacity.
func (q *Queue[T]) IsFull() bool { return q.length == q.capacity }
