package mem

import "unsafe"

// Pointer is a self-relative pointer to a T: instead of an absolute
// address it stores the byte distance from its own location to its
// target. A structure holding only self-relative pointers into its own
// backing region stays valid no matter where that region is mapped, and
// survives being copied as raw bytes as long as structure and target move
// together.
//
// The zero Pointer is unset. Set must be called after the Pointer has
// reached its final location relative to the target; moving the Pointer
// alone (for example by copying the struct that contains it onto the Go
// stack) invalidates the stored distance. Containers in this module only
// ever hand out their owning structs by reference for exactly this
// reason.
type Pointer[T any] struct {
	distance int64
}

// Set records the distance from p's own address to target.
// target must not be p itself (a zero distance means unset).
func (p *Pointer[T]) Set(target unsafe.Pointer) {
	p.distance = int64(uintptr(target)) - int64(uintptr(unsafe.Pointer(p)))
}

// IsSet reports whether Set has been called.
func (p *Pointer[T]) IsSet() bool { return p.distance != 0 }

// Get resolves the stored distance against p's current address.
// Calling Get on an unset Pointer is a bug in the caller; the result
// points at the Pointer itself and is never a valid T.
func (p *Pointer[T]) Get() *T {
	return (*T)(unsafe.Add(unsafe.Pointer(p), p.distance))
}

// Raw resolves the stored distance as an untyped pointer, for callers
// doing their own element arithmetic.
func (p *Pointer[T]) Raw() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(p), p.distance)
}
