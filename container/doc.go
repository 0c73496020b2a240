// Package container provides the fixed-capacity, relocatable building
// blocks the slot map is assembled from: an ordered sequence (Vec) and a
// FIFO ring (Queue).
//
// Both are flat structs holding only plain integers and a self-relative
// mem.Pointer, so they can be embedded in structures that live inside
// shared memory. Both follow the two-phase construction protocol:
//
//	v := container.NewVec[uint64](capacity) // skeleton, no storage
//	if err := v.Init(allocator); err != nil { ... }
//
// The skeleton records only the capacity; Init carves the backing element
// range out of the supplied allocator exactly once. Using any other
// operation before Init is a contract violation the caller must avoid —
// it is not a checked runtime error. VecMemorySize and QueueMemorySize
// report the exact byte count Init will request, so an enclosing layout
// can be budgeted up front.
//
// Neither type grows, shrinks, or synchronizes. Callers hand out the
// structs by reference only: copying a struct after Init detaches it from
// its storage (see mem.Pointer).
package container
