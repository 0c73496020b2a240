package slotmap

import (
	"unsafe"

	"github.com/joshuapare/slotkit/mem"
)

// noCopy triggers `go vet -copylocks` when a guarded struct is copied by
// value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// SlotMap is the heap-resident variant: same engine, backed by storage
// owned by the map itself and obtained from the process heap in one step.
// There is no two-phase protocol to drive and no relocation concern for
// the caller; use it whenever the map does not leave the process.
//
// A SlotMap is handed out by pointer and must not be copied: the engine
// addresses its arena through self-relative pointers.
type SlotMap[T any] struct {
	_     noCopy
	state RelocatableSlotMap[T]
	arena []byte
}

// New creates an empty SlotMap with the given fixed capacity. Panics if T
// contains Go pointers.
func New[T any](capacity uint64) *SlotMap[T] {
	mem.MustBeShareable[T]()

	m := &SlotMap[T]{state: NewUninit[T](capacity)}
	align := engineAlign[T]()
	size := MemorySize[T](capacity)

	// headroom so the arena can be aligned up to the strictest element
	// alignment regardless of where the slice lands
	m.arena = make([]byte, size+align)
	base := unsafe.Pointer(unsafe.SliceData(m.arena))
	pad := mem.AlignUp(uint64(uintptr(base)), align) - uint64(uintptr(base))

	if err := m.state.Init(mem.NewBump(unsafe.Add(base, pad), size)); err != nil {
		// the arena is sized by MemorySize; Init cannot run out
		panic(err)
	}
	return m
}

// Insert stores value under a fresh Key; false when full.
func (m *SlotMap[T]) Insert(value T) (Key, bool) { return m.state.Insert(value) }

// InsertAt stores value under key; see RelocatableSlotMap.InsertAt.
func (m *SlotMap[T]) InsertAt(key Key, value T) bool { return m.state.InsertAt(key, value) }

// Get returns a live pointer to the value under key; false when absent.
func (m *SlotMap[T]) Get(key Key) (*T, bool) { return m.state.Get(key) }

// Contains reports whether key currently references a value.
func (m *SlotMap[T]) Contains(key Key) bool { return m.state.Contains(key) }

// Remove clears the value under key; false when the key references
// nothing.
func (m *SlotMap[T]) Remove(key Key) bool { return m.state.Remove(key) }

// Len returns the number of stored values.
func (m *SlotMap[T]) Len() uint64 { return m.state.Len() }

// Capacity returns the fixed capacity.
func (m *SlotMap[T]) Capacity() uint64 { return m.state.Capacity() }

// IsEmpty reports whether the container holds no values.
func (m *SlotMap[T]) IsEmpty() bool { return m.state.IsEmpty() }

// IsFull reports whether Len has reached Capacity.
func (m *SlotMap[T]) IsFull() bool { return m.state.IsFull() }

// Iter returns an iterator over all stored entries in ascending key
// order.
func (m *SlotMap[T]) Iter() *Iter[T] { return m.state.Iter() }
