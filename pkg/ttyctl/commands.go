//go:build linux

package ttyctl

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"src.ttyattr.dev/pkg/profile"
	"src.ttyattr.dev/pkg/prog"
	"src.ttyattr.dev/pkg/termios"
)

var actions = map[string]termios.Action{
	"now":   termios.TCSANOW,
	"drain": termios.TCSADRAIN,
	"flush": termios.TCSAFLUSH,
}

var queues = map[string]termios.Queue{
	"in":   termios.TCIFLUSH,
	"out":  termios.TCOFLUSH,
	"both": termios.TCIOFLUSH,
}

var flowActions = map[string]termios.FlowAction{
	"ooff": termios.TCOOFF,
	"oon":  termios.TCOON,
	"ioff": termios.TCIOFF,
	"ion":  termios.TCION,
}

func set(ctx *runCtx, args []string) error {
	return ctx.modify(func(a *termios.Attrs) error { return a.Apply(args...) })
}

func apply(ctx *runCtx, args []string) error {
	if ctx.flags.Config == "" {
		return prog.BadUsage("apply needs a profile file; use -config")
	}
	cfg, err := profile.Load(ctx.flags.Config)
	if err != nil {
		return err
	}
	p, err := cfg.Profile(args[0])
	if err != nil {
		return err
	}
	return ctx.modify(p.Apply)
}

func save(ctx *runCtx, args []string) error {
	a, err := ctx.ctl.GetAttr(ctx.fd)
	if err != nil {
		return errors.Wrap(err, "get attributes")
	}
	return ctx.st.SaveAttrs(args[0], &a)
}

func restore(ctx *runCtx, args []string) error {
	saved, err := ctx.st.Attrs(args[0])
	if err != nil {
		return errors.Wrap(err, args[0])
	}
	return ctx.modify(func(a *termios.Attrs) error {
		*a = saved
		return nil
	})
}

func snapshots(ctx *runCtx, _ []string) error {
	names, err := ctx.st.AttrsNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(ctx.fds[1], name)
	}
	return nil
}

func forget(ctx *runCtx, args []string) error {
	return ctx.st.DelAttrs(args[0])
}

// The undo record is swapped with the current attributes, so a second undo
// reverts the first.
func undo(ctx *runCtx, _ []string) error {
	prev, err := ctx.st.Undo(ctx.flags.Dev)
	if err != nil {
		return errors.Wrap(err, "nothing to undo for "+ctx.flags.Dev)
	}
	return ctx.modify(func(a *termios.Attrs) error {
		*a = prev
		return nil
	})
}

func flush(ctx *runCtx, args []string) error {
	queue, ok := queues[args[0]]
	if !ok {
		return prog.BadUsage("flush takes in, out or both")
	}
	return errors.Wrap(ctx.ctl.Flush(ctx.fd, queue), "flush")
}

func drain(ctx *runCtx, _ []string) error {
	return errors.Wrap(ctx.ctl.Drain(ctx.fd), "drain")
}

func sendBreak(ctx *runCtx, args []string) error {
	duration := 0
	if len(args) > 0 {
		var err error
		duration, err = strconv.Atoi(args[0])
		if err != nil {
			return prog.BadUsage("invalid break duration " + args[0])
		}
	}
	return errors.Wrap(ctx.ctl.SendBreak(ctx.fd, duration), "break")
}

func flow(ctx *runCtx, args []string) error {
	action, ok := flowActions[args[0]]
	if !ok {
		return prog.BadUsage("flow takes ooff, oon, ioff or ion")
	}
	return errors.Wrap(ctx.ctl.Flow(ctx.fd, action), "flow")
}

// Reads the attributes of the device, lets f change them and applies the
// result at the time selected by -when. Once the device has accepted the new
// attributes, the old ones become the undo record when a store is configured;
// a failed change leaves the previous record alone.
func (ctx *runCtx) modify(f func(a *termios.Attrs) error) error {
	act, ok := actions[ctx.flags.When]
	if !ok {
		return prog.BadUsage("-when takes now, drain or flush")
	}
	old, err := ctx.ctl.GetAttr(ctx.fd)
	if err != nil {
		return errors.Wrap(err, "get attributes")
	}
	a := old
	if err := f(&a); err != nil {
		return err
	}
	if err := ctx.ctl.SetAttr(ctx.fd, act, &a); err != nil {
		return errors.Wrap(err, "set attributes")
	}
	if ctx.st != nil {
		return ctx.st.PutUndo(ctx.flags.Dev, &old)
	}
	return nil
}
