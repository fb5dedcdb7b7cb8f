//go:build unix

package eunix

import "golang.org/x/sys/unix"

// SockaddrUnix is the binary layout of a local (Unix domain) socket address:
// a 16-bit family followed by a fixed 108-byte path buffer. It has no
// behavior beyond its layout.
type SockaddrUnix struct {
	Family uint16
	Path   [108]byte
}

// NewSockaddrUnix returns the address of the socket at path. The path must
// leave room for a terminating NUL.
func NewSockaddrUnix(path string) (*SockaddrUnix, error) {
	sa := &SockaddrUnix{Family: unix.AF_UNIX}
	if len(path) >= len(sa.Path) {
		return nil, unix.ENAMETOOLONG
	}
	copy(sa.Path[:], path)
	return sa, nil
}

// PathString returns the path up to the first NUL.
func (sa *SockaddrUnix) PathString() string {
	for i, b := range sa.Path {
		if b == 0 {
			return string(sa.Path[:i])
		}
	}
	return string(sa.Path[:])
}
