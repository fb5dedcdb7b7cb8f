// Package prog provides the entry point to ttyattr. The actual work is done by
// subprograms, which are tried in turn until one of them is suitable.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.ttyattr.dev/pkg/env"
	"src.ttyattr.dev/pkg/logutil"
)

// Flags keeps command-line flags.
type Flags struct {
	Log, LogLevel string

	Help, Version, BuildInfo, JSON, Color bool

	Dev, DB, When, Config string
}

// DefaultDev is the device operated on when -dev is not given.
const DefaultDev = "/dev/tty"

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("ttyattr", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.StringVar(&f.LogLevel, "log-level", "debug", "minimal level of log messages")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output in JSON; useful with -buildinfo and show")
	fs.BoolVar(&f.Color, "color", false, "highlight settings in effect in the output of show")

	fs.StringVar(&f.Dev, "dev", DefaultDev, "the terminal device to operate on")
	fs.StringVar(&f.DB, "db", os.Getenv(env.TTYATTR_DB), "path to the snapshot database; defaults to $"+env.TTYATTR_DB)
	fs.StringVar(&f.When, "when", "now", "when set takes effect: now, drain or flush")
	fs.StringVar(&f.Config, "config", os.Getenv(env.TTYATTR_CONFIG), "path to the profile file used by apply; defaults to $"+env.TTYATTR_CONFIG)

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: ttyattr [flags] command [args...]")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  show | set SETTING... | save NAME | restore NAME | snapshots")
	fmt.Fprintln(out, "  forget NAME | undo | apply PROFILE | flush in|out|both | drain")
	fmt.Fprintln(out, "  break [DURATION] | flow ooff|oon|ioff|ion")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. ttyattr defines -help, but not -h;
			// so this means that -h has been requested. Handle this by
			// printing the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	if err := logutil.SetLevel(f.LogLevel); err != nil {
		fmt.Fprintln(fds[2], "Warning: bad -log-level:", err)
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2], fs)
	case exitError:
		return err.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
