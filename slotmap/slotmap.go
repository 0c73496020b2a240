package slotmap

import (
	"github.com/joshuapare/slotkit/container"
	"github.com/joshuapare/slotkit/internal/log"
	"github.com/joshuapare/slotkit/mem"
)

// invalidIndex marks an indirection entry that references no data slot.
const invalidIndex = ^uint64(0)

// slot is one cell of the value storage: a value and its occupancy flag.
type slot[T any] struct {
	value    T
	occupied bool
}

// RelocatableSlotMap is the slot-map engine over relocatable storage.
// It is a flat struct of four fixed-capacity structures and can itself be
// placed inside a shared-memory region (see Place). Construction is two
// phase: NewUninit, then Init exactly once. All mutating and reading
// operations other than Len/Capacity/IsEmpty/IsFull require a completed
// Init; that precondition is by contract, not checked.
//
// The element type must be pointer-free (mem.Shareable): values live in
// arena memory the garbage collector does not scan and other processes
// may map.
type RelocatableSlotMap[T any] struct {
	idxToData container.Vec[uint64]
	idxFree   container.Queue[uint64]
	data      container.Vec[slot[T]]
	dataFree  container.Queue[uint64]
}

// NewUninit returns an engine skeleton for the given capacity. No storage
// is allocated; only capacities and unset self-relative pointers are
// recorded. Panics if T contains Go pointers.
func NewUninit[T any](capacity uint64) RelocatableSlotMap[T] {
	mem.MustBeShareable[T]()
	return RelocatableSlotMap[T]{
		idxToData: container.NewVec[uint64](capacity),
		idxFree:   container.NewQueue[uint64](capacity),
		data:      container.NewVec[slot[T]](capacity),
		dataFree:  container.NewQueue[uint64](capacity),
	}
}

// MemorySize returns the exact byte count Init will consume from a
// mem.BumpAllocator whose base satisfies the element alignments: the four
// backing structures in allocation order, including alignment padding
// between them. Callers embedding the engine in a larger layout reserve
// exactly this much.
func MemorySize[T any](capacity uint64) uint64 {
	var off uint64
	off = mem.AlignUp(off, mem.AlignOf[uint64]()) + container.VecMemorySize[uint64](capacity)
	off = mem.AlignUp(off, mem.AlignOf[uint64]()) + container.QueueMemorySize[uint64](capacity)
	off = mem.AlignUp(off, mem.AlignOf[slot[T]]()) + container.VecMemorySize[slot[T]](capacity)
	off = mem.AlignUp(off, mem.AlignOf[uint64]()) + container.QueueMemorySize[uint64](capacity)
	return off
}

// Init carves the four backing structures out of a in a fixed order and
// pre-fills them: every indirection entry invalid, both free queues
// holding 0..capacity. It is called exactly once, after the engine struct
// has reached its final location. On failure the returned *InitError
// names the structure that could not be placed and the engine must be
// discarded.
func (m *RelocatableSlotMap[T]) Init(a mem.Allocator) error {
	if err := m.idxToData.Init(a); err != nil {
		return m.initFailed(StructureIndexVec, err)
	}
	if err := m.idxFree.Init(a); err != nil {
		return m.initFailed(StructureIndexFreeQueue, err)
	}
	if err := m.data.Init(a); err != nil {
		return m.initFailed(StructureDataVec, err)
	}
	if err := m.dataFree.Init(a); err != nil {
		return m.initFailed(StructureDataFreeQueue, err)
	}

	for n := uint64(0); n < m.Capacity(); n++ {
		m.idxToData.Push(invalidIndex)
		m.data.Push(slot[T]{})
		m.idxFree.Push(n)
		m.dataFree.Push(n)
	}
	return nil
}

func (m *RelocatableSlotMap[T]) initFailed(st Structure, err error) error {
	log.Logger().Error().
		Stringer("structure", st).
		Uint64("capacity", m.Capacity()).
		Err(err).
		Msg("slotmap: init failed")
	return &InitError{Structure: st, Err: err}
}

// Insert stores value under a fresh Key. The second return is false when
// the container is full; nothing changes in that case.
func (m *RelocatableSlotMap[T]) Insert(value T) (Key, bool) {
	idx, ok := m.idxFree.Pop()
	if !ok {
		return 0, false
	}
	key := Key(idx)
	m.bind(key, value)
	return key, true
}

// InsertAt stores value under the given key and returns true. A key at or
// beyond the capacity is rejected with false and no side effects. If the
// key already references a value, that value is overwritten in place and
// the free lists are untouched.
//
// Inserting at a key that was never handed out by Insert binds a data
// slot but leaves the key index in the free-key queue, so a later Insert
// can return the same key; Len also does not count such entries. Use
// InsertAt to replace, not to claim fresh keys.
func (m *RelocatableSlotMap[T]) InsertAt(key Key, value T) bool {
	if uint64(key) >= m.Capacity() {
		return false
	}
	m.bind(key, value)
	return true
}

// bind routes value into the slot the key references, claiming a free
// data slot when the key is currently unbound. The caller has range
// checked the key.
func (m *RelocatableSlotMap[T]) bind(key Key, value T) {
	dataIdx := *m.idxToData.At(uint64(key))
	if dataIdx != invalidIndex {
		s := m.data.At(dataIdx)
		s.value = value
		return
	}

	n, ok := m.dataFree.Pop()
	if !ok {
		// a free key slot implies a free data slot
		panic("slotmap: no free data slot for a free key slot")
	}
	*m.idxToData.At(uint64(key)) = n
	s := m.data.At(n)
	s.value = value
	s.occupied = true
}

// Get returns a pointer to the value stored under key. The pointer is
// live: writing through it updates the stored value. The second return is
// false when the key references nothing, including out-of-range keys.
func (m *RelocatableSlotMap[T]) Get(key Key) (*T, bool) {
	if uint64(key) >= m.Capacity() {
		return nil, false
	}
	dataIdx := *m.idxToData.At(uint64(key))
	if dataIdx == invalidIndex {
		return nil, false
	}
	s := m.data.At(dataIdx)
	if !s.occupied {
		// idxToData and data correspond; an empty referenced slot means
		// the free-list bookkeeping is broken
		panic("slotmap: indirection entry references an empty data slot")
	}
	return &s.value, true
}

// Contains reports whether key currently references a value.
func (m *RelocatableSlotMap[T]) Contains(key Key) bool {
	if uint64(key) >= m.Capacity() {
		return false
	}
	return *m.idxToData.At(uint64(key)) != invalidIndex
}

// Remove clears the value stored under key and recycles both the data
// slot and the key index. It returns false, with no side effects, when
// the key references nothing.
func (m *RelocatableSlotMap[T]) Remove(key Key) bool {
	if uint64(key) >= m.Capacity() {
		return false
	}
	dataIdx := *m.idxToData.At(uint64(key))
	if dataIdx == invalidIndex {
		return false
	}

	s := m.data.At(dataIdx)
	*s = slot[T]{}
	m.dataFree.Push(dataIdx)
	m.idxFree.Push(uint64(key))
	*m.idxToData.At(uint64(key)) = invalidIndex
	return true
}

// Len returns the number of stored values.
func (m *RelocatableSlotMap[T]) Len() uint64 {
	return m.Capacity() - m.idxFree.Len()
}

// Capacity returns the fixed capacity.
func (m *RelocatableSlotMap[T]) Capacity() uint64 {
	return m.idxToData.Capacity()
}

// IsEmpty reports whether the container holds no values.
func (m *RelocatableSlotMap[T]) IsEmpty() bool { return m.Len() == 0 }

// IsFull reports whether Len has reached Capacity.
func (m *RelocatableSlotMap[T]) IsFull() bool { return m.Len() == m.Capacity() }
