// Package slotmap provides a container that assigns a stable integer Key
// to every stored value: adding or removing other values never changes
// the keys of the remaining ones. Insert, lookup, and removal are O(1).
//
// # Variants
//
// Three variants share one engine and identical operation semantics:
//
//   - SlotMap: one-step construction on the process heap, for
//     single-process use.
//   - RelocatableSlotMap: two-phase construction against a caller
//     supplied allocator, for embedding inside a larger shared-memory
//     layout.
//   - FixedSlotMap: a self-contained blob holding engine and backing
//     storage in one allocation, copyable as raw bytes.
//
// # Layout
//
// The engine combines four fixed-capacity structures: an indirection
// sequence mapping key index to data slot, a value sequence, and two FIFO
// free queues recycling key and data slots. All four live in allocator
// provided storage addressed through self-relative pointers, so a placed
// engine remains valid at whatever address each process maps it.
//
// # Two-phase construction
//
//	m := slotmap.NewUninit[uint64](capacity)     // skeleton, no storage
//	err := m.Init(allocator)                     // carves MemorySize(capacity) bytes
//
// MemorySize reports the exact byte count Init consumes, so an enclosing
// shared-memory layout can reserve precisely that much. Calling any other
// operation before a successful Init is a contract violation the caller
// must avoid; it is deliberately not a checked runtime error. A failed
// Init identifies the backing structure that could not be placed and
// leaves the skeleton unusable — construct a fresh one instead of
// retrying.
//
// Place and Attach drive the same path against a raw byte buffer, putting
// the engine struct itself inside the buffer. That is the intended way to
// embed a map in a shared-memory segment (see the shm package).
//
// # Keys are recycled without generations
//
// A Key is a bare slot index. After Remove(k), a later Insert may hand
// out a key with the same numeric value for a different entry; a caller
// retaining k across that cycle cannot tell the two apart. Callers that
// need stale-handle detection must layer their own versioning on top.
//
// # Concurrency
//
// No variant locks or synchronizes. Every operation assumes exclusive
// access for its duration; sharing an instance across goroutines or
// processes requires external coordination chosen by the caller.
package slotmap
