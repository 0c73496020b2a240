package container

import (
	"unsafe"

	"github.com/joshuapare/slotkit/mem"
)

// Vec is a fixed-capacity, relocatable sequence of T with indexed access.
// The element range lives wherever the allocator passed to Init placed
// it; the Vec itself holds only the capacity, length, and a self-relative
// pointer, so Vec and storage can be mapped at any address together.
type Vec[T any] struct {
	data     mem.Pointer[T]
	capacity uint64
	length   uint64
}

// NewVec returns an uninitialized Vec skeleton with the given capacity.
// Init must be called exactly once before any other operation.
func NewVec[T any](capacity uint64) Vec[T] {
	return Vec[T]{capacity: capacity}
}

// VecMemorySize returns the exact byte count Init will request from its
// allocator for a Vec of the given capacity.
func VecMemorySize[T any](capacity uint64) uint64 {
	return mem.SizeOf[T]() * capacity
}

// Init carves the element storage out of a. It is called exactly once,
// after the Vec has reached its final location.
func (v *Vec[T]) Init(a mem.Allocator) error {
	p, err := a.Allocate(VecMemorySize[T](v.capacity), mem.AlignOf[T]())
	if err != nil {
		return err
	}
	v.data.Set(p)
	return nil
}

// Push appends value and returns true, or returns false when full.
func (v *Vec[T]) Push(value T) bool {
	if v.length == v.capacity {
		return false
	}
	*v.At(v.length) = value
	v.length++
	return true
}

// At returns a pointer to element i. The caller keeps i < Len().
func (v *Vec[T]) At(i uint64) *T {
	return (*T)(unsafe.Add(v.data.Raw(), uintptr(i)*unsafe.Sizeof(*new(T))))
}

// Len returns the number of stored elements.
func (v *Vec[T]) Len() uint64 { return v.length }

// Capacity returns the fixed capacity.
func (v *Vec[T]) Capacity() uint64 { return v.capacity }

// IsFull reports whether Len has reached Capacity.
func (v *Vec[T]) IsFull() bool { return v.length == v.capacity }
