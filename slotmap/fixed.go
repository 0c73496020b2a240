package slotmap

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/slotkit/mem"
)

// engineAlign returns the strictest alignment the engine's storage
// requires: its backing elements are uint64 indices and slot[T] cells.
func engineAlign[T any]() uint64 {
	align := mem.AlignOf[slot[T]]()
	if a := mem.AlignOf[uint64](); a > align {
		align = a
	}
	return align
}

// PlacedSize returns the byte count Place needs for a map of the given
// capacity: worst-case base alignment headroom, the engine struct itself,
// and MemorySize of backing storage.
func PlacedSize[T any](capacity uint64) uint64 {
	align := engineAlign[T]()
	return (align - 1) + mem.AlignUp(mem.SizeOf[RelocatableSlotMap[T]](), align) + MemorySize[T](capacity)
}

// placement computes where the engine struct and its storage sit inside
// buf. The engine goes at the first aligned offset; storage follows
// immediately after the (aligned) struct.
func placement[T any](buf []byte, capacity uint64) (engine unsafe.Pointer, storage unsafe.Pointer, storageSize uint64, err error) {
	if !mem.ShareableOf[T]() {
		return nil, nil, 0, fmt.Errorf("%w: %T", ErrUnshareable, *new(T))
	}
	if len(buf) == 0 {
		return nil, nil, 0, fmt.Errorf("%w: empty buffer, need %d bytes", ErrBufferTooSmall, PlacedSize[T](capacity))
	}

	align := engineAlign[T]()
	base := unsafe.Pointer(unsafe.SliceData(buf))
	pad := mem.AlignUp(uint64(uintptr(base)), align) - uint64(uintptr(base))
	storageOff := pad + mem.AlignUp(mem.SizeOf[RelocatableSlotMap[T]](), align)
	need := storageOff + MemorySize[T](capacity)
	if uint64(len(buf)) < need {
		return nil, nil, 0, fmt.Errorf("%w: have %d bytes, need %d for capacity %d",
			ErrBufferTooSmall, len(buf), need, capacity)
	}

	return unsafe.Add(base, pad), unsafe.Add(base, storageOff), uint64(len(buf)) - storageOff, nil
}

// Place constructs a slot map of the given capacity inside buf: the
// engine struct is written at the start of the buffer and its backing
// storage is carved from the remainder. The result is one self-contained
// region with no external allocations, safe to hand to other processes
// that map the same bytes (they use Attach).
//
// buf is typically a shared-memory mapping (see the shm package) or any
// fresh Go allocation; its base must satisfy the element alignment,
// which both provide. Size it with PlacedSize. The returned map aliases
// buf: the caller keeps buf alive and unmoved for the map's lifetime.
func Place[T any](buf []byte, capacity uint64) (*RelocatableSlotMap[T], error) {
	enginePtr, storage, storageSize, err := placement[T](buf, capacity)
	if err != nil {
		return nil, err
	}

	m := (*RelocatableSlotMap[T])(enginePtr)
	*m = NewUninit[T](capacity)
	if err := m.Init(mem.NewBump(storage, storageSize)); err != nil {
		return nil, err
	}
	return m, nil
}

// Attach returns a view over a region previously populated by Place with
// the same element type and capacity. It performs no initialization; the
// expected capacity is cross-checked against what the placed engine
// records, which catches the most common mismatch between the placing
// and attaching sides. Attaching a region that was never placed is
// undefined, like any other use-before-init.
func Attach[T any](buf []byte, capacity uint64) (*RelocatableSlotMap[T], error) {
	enginePtr, _, _, err := placement[T](buf, capacity)
	if err != nil {
		return nil, err
	}

	m := (*RelocatableSlotMap[T])(enginePtr)
	if m.Capacity() != capacity {
		return nil, fmt.Errorf("%w: placed %d, want %d", ErrCapacityMismatch, m.Capacity(), capacity)
	}
	return m, nil
}

// FixedSlotMap bundles the engine together with its backing storage in
// one contiguous self-owned blob: no external allocation, fixed layout,
// copyable as raw bytes. It is the convenience form of Place for callers
// that want a self-contained value to move around (for example to memcpy
// into a transport buffer) without managing a buffer themselves.
type FixedSlotMap[T any] struct {
	blob []byte
	m    *RelocatableSlotMap[T]
}

// NewFixed creates an empty FixedSlotMap with the given fixed capacity.
// Panics if T contains Go pointers.
func NewFixed[T any](capacity uint64) *FixedSlotMap[T] {
	mem.MustBeShareable[T]()

	blob := make([]byte, PlacedSize[T](capacity))
	m, err := Place[T](blob, capacity)
	if err != nil {
		// blob is sized by PlacedSize; placement cannot fail
		panic(err)
	}
	return &FixedSlotMap[T]{blob: blob, m: m}
}

// OpenFixed wraps a blob previously produced by Bytes or CopyTo.
// The blob is aliased, not copied.
func OpenFixed[T any](blob []byte, capacity uint64) (*FixedSlotMap[T], error) {
	m, err := Attach[T](blob, capacity)
	if err != nil {
		return nil, err
	}
	return &FixedSlotMap[T]{blob: blob, m: m}, nil
}

// Bytes returns the raw self-contained representation. The slice aliases
// the live map; mutating the map changes the bytes and vice versa.
func (f *FixedSlotMap[T]) Bytes() []byte { return f.blob }

// CopyTo writes the raw representation into dst, which must hold at
// least len(Bytes()) bytes and start at an address aligned like any
// fresh Go allocation or page mapping. The copy is independent of the
// source and can be opened with OpenFixed.
func (f *FixedSlotMap[T]) CopyTo(dst []byte) error {
	if len(dst) < len(f.blob) {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(dst), len(f.blob))
	}
	copy(dst, f.blob)
	return nil
}

// Insert stores value under a fresh Key; false when full.
func (f *FixedSlotMap[T]) Insert(value T) (Key, bool) { return f.m.Insert(value) }

// InsertAt stores value under key; see RelocatableSlotMap.InsertAt.
func (f *FixedSlotMap[T]) InsertAt(key Key, value T) bool { return f.m.InsertAt(key, value) }

// Get returns a live pointer to the value under key; false when absent.
func (f *FixedSlotMap[T]) Get(key Key) (*T, bool) { return f.m.Get(key) }

// Contains reports whether key currently references a value.
func (f *FixedSlotMap[T]) Contains(key Key) bool { return f.m.Contains(key) }

// Remove clears the value under key; false when the key references
// nothing.
func (f *FixedSlotMap[T]) Remove(key Key) bool { return f.m.Remove(key) }

// Len returns the number of stored values.
func (f *FixedSlotMap[T]) Len() uint64 { return f.m.Len() }

// Capacity returns the fixed capacity.
func (f *FixedSlotMap[T]) Capacity() uint64 { return f.m.Capacity() }

// IsEmpty reports whether the container holds no values.
func (f *FixedSlotMap[T]) IsEmpty() bool { return f.m.IsEmpty() }

// IsFull reports whether Len has reached Capacity.
func (f *FixedSlotMap[T]) IsFull() bool { return f.m.IsFull() }

// Iter returns an iterator over all stored entries in ascending key
// order.
func (f *FixedSlotMap[T]) Iter() *Iter[T] { return f.m.Iter() }
