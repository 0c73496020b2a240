package shm

import "errors"

var (
	// ErrUnsupported indicates the platform has no shared-memory
	// filesystem this package knows how to use.
	ErrUnsupported = errors.New("shm: not supported on this platform")

	// ErrEmptySegment indicates an existing segment with zero size,
	// which cannot be mapped.
	ErrEmptySegment = errors.New("shm: segment is empty")

	// ErrBadName indicates a segment name that is empty or would escape
	// the shared-memory directory.
	ErrBadName = errors.New("shm: bad segment name")
)
