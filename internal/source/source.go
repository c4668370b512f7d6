//go:build darwin || linux

package source

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Source is a read-only, fixed-length view over a file's bytes. The
// mapping is immutable for the lifetime of the process, so it is safe
// to read from multiple goroutines without locking.
type Source struct {
	fd   int
	data []byte
	size int64
	name string
}

// Map opens path read-only, validates that it is a non-empty regular
// file and memory-maps it.
func Map(path string) (*Source, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("stating %s: %w", path, err)
	}
	if stat.Mode&unix.S_IFMT != unix.S_IFREG {
		unix.Close(fd)
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	if stat.Size == 0 {
		unix.Close(fd)
		return nil, fmt.Errorf("%s is empty", path)
	}

	data, err := unix.Mmap(fd, 0, int(stat.Size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("memory-mapping %s: %w", path, err)
	}

	return &Source{fd: fd, data: data, size: stat.Size, name: path}, nil
}

// FromBytes wraps an in-memory slice as a Source. Close is a no-op.
// The caller must not mutate b afterwards.
func FromBytes(name string, b []byte) *Source {
	return &Source{fd: -1, data: b, size: int64(len(b)), name: name}
}

// Bytes returns the full mapping for zero-copy reads.
func (s *Source) Bytes() []byte { return s.data }

// Size returns the length of the mapping in bytes.
func (s *Source) Size() int64 { return s.size }

// Name returns the path the source was mapped from.
func (s *Source) Name() string { return s.name }

// Chunk returns up to n bytes starting at off, clamped to the end of
// the source. A nil slice means off is at or past EOF.
func (s *Source) Chunk(off, n int64) []byte {
	if off < 0 || off >= s.size || n <= 0 {
		return nil
	}
	end := off + n
	if end > s.size {
		end = s.size
	}
	return s.data[off:end]
}

// Close releases the mapping and the file descriptor.
func (s *Source) Close() error {
	if s.fd < 0 {
		return nil
	}
	var firstErr error
	if err := unix.Munmap(s.data); err != nil {
		firstErr = fmt.Errorf("unmapping %s: %w", s.name, err)
	}
	if err := unix.Close(s.fd); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing %s: %w", s.name, err)
	}
	s.data = nil
	s.fd = -1
	return firstErr
}
