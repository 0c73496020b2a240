package slotmap

import (
	"errors"
	"fmt"
)

var (
	// ErrUnshareable indicates the element type contains Go pointers and
	// cannot be stored in arena or shared memory (see mem.Shareable).
	ErrUnshareable = errors.New("slotmap: element type contains Go pointers")

	// ErrBufferTooSmall indicates a placement buffer cannot hold the
	// engine plus its backing storage for the requested capacity.
	ErrBufferTooSmall = errors.New("slotmap: buffer too small")

	// ErrCapacityMismatch indicates an Attach against a region whose
	// placed engine has a different capacity than expected.
	ErrCapacityMismatch = errors.New("slotmap: placed capacity does not match")
)

// Structure names one of the four backing structures the engine carves
// out of its allocator during Init, in allocation order.
type Structure uint8

const (
	// StructureIndexVec is the key-to-data-slot indirection sequence.
	StructureIndexVec Structure = iota + 1
	// StructureIndexFreeQueue is the free-key-slot FIFO.
	StructureIndexFreeQueue
	// StructureDataVec is the value storage sequence.
	StructureDataVec
	// StructureDataFreeQueue is the free-data-slot FIFO.
	StructureDataFreeQueue
)

func (s Structure) String() string {
	switch s {
	case StructureIndexVec:
		return "index vec"
	case StructureIndexFreeQueue:
		return "index free queue"
	case StructureDataVec:
		return "data vec"
	case StructureDataFreeQueue:
		return "data free queue"
	default:
		return fmt.Sprintf("structure(%d)", uint8(s))
	}
}

// InitError reports which backing structure Init could not place. The
// construction attempt is fatal: the skeleton must be discarded and
// rebuilt, never re-initialized.
type InitError struct {
	Structure Structure
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("slotmap: init: %s: %v", e.Structure, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
