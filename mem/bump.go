package mem

import (
	"fmt"
	"unsafe"
)

// BumpAllocator hands out successive ranges from a fixed arena using a
// simple bump pointer: the running offset is aligned up to the requested
// alignment, then advanced by the requested size. Nothing is ever
// reclaimed.
//
// Key characteristics:
//   - O(1) allocation, zero bookkeeping beyond one offset
//   - deterministic layout: for a fixed request sequence the consumed
//     byte count depends only on the requests, never on the base address
//   - no reclamation: the arena is released as a whole by its owner
//
// Determinism is load-bearing: it lets the containers precompute the
// exact arena size a request sequence will consume, so "exactly N bytes
// always succeeds, N-1 always fails" holds (see slotmap.MemorySize).
//
// The base address must satisfy every alignment that will be requested.
// Page-aligned mappings and Go heap allocations (8-byte aligned) cover
// all container element types. A request whose alignment the base cannot
// satisfy fails with ErrBadAlignment rather than silently skewing the
// layout.
type BumpAllocator struct {
	base unsafe.Pointer
	size uint64
	off  uint64
}

// NewBump creates a bump allocator over the size bytes starting at base.
// The caller keeps the arena alive for at least as long as the allocator
// and anything allocated from it.
func NewBump(base unsafe.Pointer, size uint64) *BumpAllocator {
	return &BumpAllocator{base: base, size: size}
}

// Allocate returns a pointer to size bytes aligned to align, or an error
// wrapping ErrOutOfMemory if the remaining arena cannot hold them.
func (b *BumpAllocator) Allocate(size, align uint64) (unsafe.Pointer, error) {
	if align == 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: %d is not a power of two", ErrBadAlignment, align)
	}
	if uint64(uintptr(b.base))&(align-1) != 0 {
		return nil, fmt.Errorf("%w: arena base %#x cannot serve alignment %d",
			ErrBadAlignment, uintptr(b.base), align)
	}

	off := AlignUp(b.off, align)
	end := off + size
	if end < off || end > b.size {
		return nil, fmt.Errorf("allocate %d bytes align %d: %w (used %d of %d)",
			size, align, ErrOutOfMemory, b.off, b.size)
	}

	b.off = end
	return unsafe.Add(b.base, off), nil
}

// Used returns the number of arena bytes consumed so far, including
// alignment padding.
func (b *BumpAllocator) Used() uint64 { return b.off }

// Size returns the total arena size in bytes.
func (b *BumpAllocator) Size() uint64 { return b.size }
