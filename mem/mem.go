package mem

import "unsafe"

// Alignment and size utilities for arena layout.
// All alignments in this package are powers of two.

// AlignUp returns v aligned up to the next multiple of align.
// align must be a power of two.
//
// Example:
//
//	AlignUp(1, 8)  = 8
//	AlignUp(8, 8)  = 8
//	AlignUp(9, 8)  = 16
func AlignUp(v, align uint64) uint64 {
	return (v + align - 1) &^ (align - 1)
}

// SizeOf returns unsafe.Sizeof for T as a uint64.
func SizeOf[T any]() uint64 {
	var zero T
	return uint64(unsafe.Sizeof(zero))
}

// AlignOf returns unsafe.Alignof for T as a uint64.
func AlignOf[T any]() uint64 {
	var zero T
	return uint64(unsafe.Alignof(zero))
}
