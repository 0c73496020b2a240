//go:build !linux

package shm

// Segment is unavailable on this platform; every constructor returns
// ErrUnsupported. The containers themselves remain usable with any other
// page of memory the host can share.
type Segment struct{}

// Create is unsupported on this platform.
func Create(name string, size int) (*Segment, error) { return nil, ErrUnsupported }

// Open is unsupported on this platform.
func Open(name string) (*Segment, error) { return nil, ErrUnsupported }

// Bytes returns nil on this platform.
func (s *Segment) Bytes() []byte { return nil }

// Name returns the empty string on this platform.
func (s *Segment) Name() string { return "" }

// Size returns zero on this platform.
func (s *Segment) Size() int { return 0 }

// Close is a no-op on this platform.
func (s *Segment) Close() error { return nil }

// Unlink is a no-op on this platform.
func (s *Segment) Unlink() error { return ErrUnsupported }
