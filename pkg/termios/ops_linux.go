//go:build linux

package termios

import "unsafe"

// GetAttr reads the attributes of the terminal referenced by fd.
func (c Controller) GetAttr(fd int) (Attrs, error) {
	var a Attrs
	err := c.Transport.IoctlPtr(fd, getAttrIOCTL, unsafe.Pointer(&a))
	if err != nil {
		logger.Debugw("get attributes failed", "fd", fd, "err", err)
		return Attrs{}, err
	}
	return a, nil
}

// SetAttr applies attrs to the terminal referenced by fd, at the time selected
// by act. An act other than TCSANOW, TCSADRAIN or TCSAFLUSH is rejected
// without touching the device.
//
// The transport receives a private copy of *attrs, so the caller's value is
// never modified.
func (c Controller) SetAttr(fd int, act Action, attrs *Attrs) error {
	if act < TCSANOW || act > TCSAFLUSH {
		return c.report(&InvalidArgumentError{"tcsetattr", "action", int64(act)})
	}
	payload := *attrs
	err := c.Transport.IoctlPtr(fd, setAttrIOCTL+uint(act), unsafe.Pointer(&payload))
	if err != nil {
		logger.Debugw("set attributes failed", "fd", fd, "action", act, "err", err)
	}
	return err
}

// Flush discards data written to fd but not transmitted, data received but
// not read, or both, as selected by queue.
func (c Controller) Flush(fd int, queue Queue) error {
	return c.Transport.IoctlInt(fd, flushIOCTL, int(queue))
}

// Drain waits until all output written to fd has been transmitted.
func (c Controller) Drain(fd int) error {
	return c.Transport.IoctlInt(fd, breakIOCTL, breakArgDrain)
}

// SendBreak transmits a break condition on fd. The duration of a non-zero
// break is implementation-defined, so duration is ignored and the default
// break is always sent.
func (c Controller) SendBreak(fd int, duration int) error {
	return c.Transport.IoctlInt(fd, breakIOCTL, breakArgBreak)
}

// Flow suspends or resumes transmission or reception on fd. The value of
// action must be one of the following:
//
//	TCOOFF  Suspend output.
//	TCOON   Restart suspended output.
//	TCIOFF  Transmit a STOP character (the XOFF in XON/XOFF).
//	TCION   Transmit a START character (the XON).
func (c Controller) Flow(fd int, action FlowAction) error {
	return c.Transport.IoctlInt(fd, flowIOCTL, int(action))
}
