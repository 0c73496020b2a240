//go:build linux

package shm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// shmDir is the tmpfs the kernel exposes POSIX shared memory through.
const shmDir = "/dev/shm"

// Segment is a named shared-memory region mapped read-write so the
// containers inside it can be mutated in place.
type Segment struct {
	name string
	f    *os.File
	data []byte
}

func segmentPath(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\x00") {
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return filepath.Join(shmDir, name), nil
}

// Create makes a new segment of the given size and maps it. It fails if
// a segment with that name already exists, so two creators cannot
// silently share state they both believe they initialized.
func Create(name string, size int) (*Segment, error) {
	path, err := segmentPath(name)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("shm: create %q: size %d must be positive", name, size)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("shm: create %q: %w", name, err)
	}
	if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("shm: size %q to %d bytes: %w", name, size, err)
	}

	return mapSegment(name, f, size)
}

// Open maps an existing segment at its current size.
func Open(name string) (*Segment, error) {
	path, err := segmentPath(name)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("shm: open %q: %w", name, err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("shm: stat %q: %w", name, err)
	}
	if st.Size() == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("shm: open %q: %w", name, ErrEmptySegment)
	}

	return mapSegment(name, f, int(st.Size()))
}

func mapSegment(name string, f *os.File, size int) (*Segment, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("shm: mmap %q: %w", name, err)
	}
	return &Segment{name: name, f: f, data: data}, nil
}

// Bytes returns the mapped region. The slice is page-aligned and stays
// valid until Close. Writes land in the segment and are visible to every
// process that mapped it.
func (s *Segment) Bytes() []byte { return s.data }

// Name returns the segment name.
func (s *Segment) Name() string { return s.name }

// Size returns the mapped size in bytes.
func (s *Segment) Size() int { return len(s.data) }

// Close unmaps the region and closes the file. Pointers into Bytes are
// invalid afterwards. The segment itself persists until Unlink.
func (s *Segment) Close() error {
	if s.data == nil {
		return nil
	}
	err := unix.Munmap(s.data)
	s.data = nil
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("shm: close %q: %w", s.name, err)
	}
	return nil
}

// Unlink removes the segment name from the filesystem. Existing mappings
// keep working; the memory is released once the last one closes.
func (s *Segment) Unlink() error {
	path, err := segmentPath(s.name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("shm: unlink %q: %w", s.name, err)
	}
	return nil
}
