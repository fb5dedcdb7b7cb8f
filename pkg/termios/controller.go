package termios

import (
	"errors"
	"syscall"
	"unsafe"

	"src.ttyattr.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[termios] ")

// Transport issues device-control requests. It is the only way a Controller
// reaches a device.
type Transport interface {
	// IoctlPtr issues req on fd with a pointer argument.
	IoctlPtr(fd int, req uint, arg unsafe.Pointer) error
	// IoctlInt issues req on fd with an integer argument passed by value.
	IoctlInt(fd int, req uint, arg int) error
}

// Controller translates terminal operations into device-control requests.
// Every operation is a single round trip through Transport; a Controller
// keeps no state between calls.
type Controller struct {
	Transport Transport
	// Errno, if not nil, receives EINVAL when an argument is rejected
	// locally. It is only written to.
	Errno ErrnoSink
}

// SetInputSpeed is like a.SetInputSpeed, and also reports a rejected code to
// c.Errno.
func (c Controller) SetInputSpeed(a *Attrs, s Speed) error {
	return c.report(a.SetInputSpeed(s))
}

// SetOutputSpeed is like a.SetOutputSpeed, and also reports a rejected code to
// c.Errno.
func (c Controller) SetOutputSpeed(a *Attrs, s Speed) error {
	return c.report(a.SetOutputSpeed(s))
}

func (c Controller) report(err error) error {
	if err != nil && c.Errno != nil && errors.Is(err, syscall.EINVAL) {
		c.Errno.SetErrno(syscall.EINVAL)
	}
	return err
}
