package mem

import (
	"errors"
	"unsafe"
)

var (
	// ErrOutOfMemory indicates the allocator cannot satisfy the request
	// from its remaining arena space.
	ErrOutOfMemory = errors.New("mem: out of memory")

	// ErrBadAlignment indicates the requested alignment is not a power of
	// two, or the allocator's base address cannot satisfy it.
	ErrBadAlignment = errors.New("mem: bad alignment")
)

// Allocator hands out byte ranges of a requested size and alignment.
//
// This is the only capability the relocatable containers need from their
// environment during initialization: the containers compute their exact
// layout up front (see their MemorySize functions) and request each
// backing range once, in a fixed order. An implementation that cannot
// satisfy a request returns an error wrapping ErrOutOfMemory; it must not
// hand out overlapping ranges.
//
// Implementations:
//   - BumpAllocator: deterministic bump-pointer layout over a fixed arena
type Allocator interface {
	// Allocate returns a pointer to size bytes aligned to align.
	// align must be a power of two. The range remains valid for the
	// lifetime of the underlying arena; there is no deallocation.
	Allocate(size, align uint64) (unsafe.Pointer, error)
}
