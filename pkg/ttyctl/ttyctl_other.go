//go:build !linux

// Package ttyctl implements the ttyattr commands that inspect and change the
// attributes of a terminal device.
package ttyctl

import (
	"os"

	"github.com/pkg/errors"

	"src.ttyattr.dev/pkg/prog"
	"src.ttyattr.dev/pkg/termios"
)

// Program is the ttyctl subprogram. Terminal commands are only supported on
// Linux.
type Program struct {
	Transport termios.Transport
}

func (p *Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("no command given")
	}
	return errors.New("terminal commands are not supported on this platform")
}
