//go:build unix

package eunix

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"src.ttyattr.dev/pkg/termios"
)

// Transport issues ioctl requests with the ioctl(2) system call. It
// implements termios.Transport.
type Transport struct {
	// Errno, if not nil, receives the error code of every failed request.
	Errno termios.ErrnoSink
}

var _ termios.Transport = Transport{}

// IoctlPtr implements termios.Transport.
//
// The kernel is trusted not to write through arg for requests that only read
// their argument, such as TCSETS.
func (t Transport) IoctlPtr(fd int, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return t.fail(errno)
	}
	return nil
}

// IoctlInt implements termios.Transport.
func (t Transport) IoctlInt(fd int, req uint, arg int) error {
	err := unix.IoctlSetInt(fd, req, arg)
	if errno, ok := err.(unix.Errno); ok {
		return t.fail(errno)
	}
	return err
}

func (t Transport) fail(errno unix.Errno) error {
	if t.Errno != nil {
		t.Errno.SetErrno(errno)
	}
	return errno
}
