// Package mem provides the memory primitives the relocatable containers
// are built on: an allocator capability, a bump allocator over a fixed
// arena, a self-relative pointer, and alignment helpers.
//
// # Relocatable memory
//
// Structures that live inside a memory-mapped region shared by multiple
// processes cannot store absolute addresses: the same bytes are mapped at
// a different virtual address in every process. Instead, a Pointer stores
// the byte distance from its own address to its target. As long as the
// structure and its backing storage are moved together (they live in the
// same region), the distance stays valid under any mapping.
//
// # Allocation
//
// Allocator is the single capability the containers need from their
// environment: hand out a byte range of a given size and alignment, or
// fail. BumpAllocator implements it over a caller-supplied arena with a
// deterministic layout: the running offset is aligned up, then advanced.
// Nothing is ever reclaimed. This determinism is what makes exact
// memory-size precomputation possible (see slotmap.MemorySize).
//
// # GC visibility
//
// Arena memory is raw bytes as far as the Go runtime is concerned. A
// value stored there must therefore not contain Go pointers, or the
// garbage collector may reclaim what it references. Shareable reports
// whether a type is safe to store; the container constructors enforce it.
package mem
