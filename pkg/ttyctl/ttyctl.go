//go:build linux

// Package ttyctl implements the ttyattr commands that inspect and change the
// attributes of a terminal device.
package ttyctl

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"src.ttyattr.dev/pkg/env"
	"src.ttyattr.dev/pkg/errutil"
	"src.ttyattr.dev/pkg/logutil"
	"src.ttyattr.dev/pkg/prog"
	"src.ttyattr.dev/pkg/store"
	"src.ttyattr.dev/pkg/sys"
	"src.ttyattr.dev/pkg/sys/eunix"
	"src.ttyattr.dev/pkg/termios"
)

var logger = logutil.GetLogger("[ttyctl] ")

// ErrNoDB is returned by commands that need the snapshot database when none is
// configured.
var ErrNoDB = errors.New("no snapshot database; use -db or $" + env.TTYATTR_DB)

// Program is the ttyctl subprogram. It runs when a command is given.
type Program struct {
	// Transport, if not nil, is used instead of eunix.Transport.
	Transport termios.Transport
}

type command struct {
	// Number of arguments accepted.
	minArgs, maxArgs int
	usage            string
	needsDev         bool
	needsDB          bool
	run              func(ctx *runCtx, args []string) error
}

// Arguments of set are unlimited.
const unlimited = -1

var commands = map[string]command{
	"show":      {0, 0, "show", true, false, show},
	"set":       {1, unlimited, "set SETTING...", true, false, set},
	"save":      {1, 1, "save NAME", true, true, save},
	"restore":   {1, 1, "restore NAME", true, true, restore},
	"snapshots": {0, 0, "snapshots", false, true, snapshots},
	"forget":    {1, 1, "forget NAME", false, true, forget},
	"undo":      {0, 0, "undo", true, true, undo},
	"apply":     {1, 1, "apply PROFILE", true, false, apply},
	"flush":     {1, 1, "flush in|out|both", true, false, flush},
	"drain":     {0, 0, "drain", true, false, drain},
	"break":     {0, 1, "break [DURATION]", true, false, sendBreak},
	"flow":      {1, 1, "flow ooff|oon|ioff|ion", true, false, flow},
}

// Everything a command needs.
type runCtx struct {
	fds   [3]*os.File
	flags *prog.Flags
	ctl   termios.Controller
	errno *termios.ErrnoSlot
	// The device, when the command needs one.
	dev *os.File
	fd  int
	// The store, when configured.
	st store.DBStore
}

func (p *Program) Run(fds [3]*os.File, f *prog.Flags, args []string) (err error) {
	if len(args) == 0 {
		return prog.BadUsage("no command given; known commands are " + commandNames())
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return prog.BadUsage("unknown command " + args[0])
	}
	cmdArgs := args[1:]
	if len(cmdArgs) < cmd.minArgs || (cmd.maxArgs != unlimited && len(cmdArgs) > cmd.maxArgs) {
		return prog.BadUsage("usage: ttyattr [flags] " + cmd.usage)
	}

	errno := &termios.ErrnoSlot{}
	transport := p.Transport
	if transport == nil {
		transport = eunix.Transport{Errno: errno}
	}
	ctx := &runCtx{
		fds: fds, flags: f, errno: errno,
		ctl: termios.Controller{Transport: transport, Errno: errno},
	}

	if cmd.needsDB && f.DB == "" {
		return ErrNoDB
	}
	if f.DB != "" {
		st, openErr := store.NewStore(f.DB)
		if openErr != nil {
			return openErr
		}
		ctx.st = st
		defer func() { err = errutil.Multi(err, st.Close()) }()
	}
	if cmd.needsDev {
		dev, openErr := openDevice(f.Dev)
		if openErr != nil {
			return openErr
		}
		ctx.dev, ctx.fd = dev, int(dev.Fd())
		defer func() { err = errutil.Multi(err, dev.Close()) }()
	}

	logger.Debugw("running command", "command", args[0], "args", cmdArgs, "dev", f.Dev)
	err = cmd.run(ctx, cmdArgs)
	if err != nil && errno.Errno() != 0 {
		logger.Debugw("command failed", "command", args[0], "errno", errno.Errno())
	}
	return err
}

func openDevice(name string) (*os.File, error) {
	dev, err := os.OpenFile(name, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, err
	}
	if !sys.IsATTY(dev.Fd()) {
		dev.Close()
		return nil, errors.Errorf("%s is not a terminal", name)
	}
	return dev, nil
}

func commandNames() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
