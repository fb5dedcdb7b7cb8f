package termios

import (
	"fmt"
	"syscall"
)

// InvalidArgumentError is returned when an argument is rejected before any
// request reaches the device. It matches syscall.EINVAL under errors.Is.
type InvalidArgumentError struct {
	Op    string
	Arg   string
	Value int64
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid %s %d", e.Op, e.Arg, e.Value)
}

// Is reports whether target is EINVAL.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == syscall.EINVAL
}

// ErrnoSink receives the error code of a failed call. It takes the place of
// the process-wide errno: callers that want errno-style reporting pass one to
// a Controller, and read it back after a call returns an error.
type ErrnoSink interface {
	SetErrno(syscall.Errno)
}

// ErrnoSlot is an ErrnoSink that remembers the last code written to it. It is
// not safe for concurrent use.
type ErrnoSlot struct {
	errno syscall.Errno
}

// SetErrno implements ErrnoSink.
func (s *ErrnoSlot) SetErrno(e syscall.Errno) { s.errno = e }

// Errno returns the last code written.
func (s *ErrnoSlot) Errno() syscall.Errno { return s.errno }
