//go:build linux

package ttyctl

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/creack/pty"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"

	"src.ttyattr.dev/pkg/env"
	"src.ttyattr.dev/pkg/must"
	"src.ttyattr.dev/pkg/prog/progtest"
	"src.ttyattr.dev/pkg/sys/eunix"
	"src.ttyattr.dev/pkg/termios"
	"src.ttyattr.dev/pkg/testutil"
)

var (
	Test = progtest.Test
	That = progtest.That
)

type fixture struct {
	t   *testing.T
	pts *os.File
	dev string
	db  string
	ctl termios.Controller
}

func setup(t *testing.T) *fixture {
	_, pts := testutil.Pty(t)
	must.OK(pty.Setsize(pts, &pty.Winsize{Rows: 24, Cols: 80}))
	return &fixture{
		t: t, pts: pts, dev: pts.Name(),
		db:  filepath.Join(testutil.TempDir(t), "snapshots.db"),
		ctl: termios.Controller{Transport: eunix.Transport{}},
	}
}

func (fx *fixture) attrs() termios.Attrs {
	fx.t.Helper()
	a, err := fx.ctl.GetAttr(int(fx.pts.Fd()))
	if err != nil {
		fx.t.Fatalf("GetAttr -> %v", err)
	}
	return a
}

func (fx *fixture) setAttrs(a termios.Attrs) {
	fx.t.Helper()
	if err := fx.ctl.SetAttr(int(fx.pts.Fd()), termios.TCSANOW, &a); err != nil {
		fx.t.Fatalf("SetAttr -> %v", err)
	}
}

// Arguments for running cmd on the fixture's device, with its database.
func (fx *fixture) args(cmd ...string) []string {
	return append([]string{"-dev", fx.dev, "-db", fx.db}, cmd...)
}

func (fx *fixture) run(cmd ...string) {
	fx.t.Helper()
	exit, _, stderr := progtest.Run(&Program{}, fx.args(cmd...)...)
	if exit != 0 {
		fx.t.Fatalf("%v exits with %d, stderr %q", cmd, exit, stderr)
	}
}

func TestShow(t *testing.T) {
	fx := setup(t)
	Test(t, &Program{},
		That("-dev", fx.dev, "show").WritesStdoutContaining("rows 24; columns 80; line = 0;"),
		That("-dev", fx.dev, "show").WritesStdoutContaining("cc: intr = "),
		That("-dev", fx.dev, "show").WritesStdoutContaining("cflag: "),
		That("-dev", fx.dev, "-color", "show").WritesStdoutContaining("\x1b[32m"),
		That("-dev", fx.dev, "show", "extra").ExitsWith(2).
			WritesStderrContaining("usage: ttyattr [flags] show"),
	)
}

func TestShow_JSON(t *testing.T) {
	fx := setup(t)
	a := fx.attrs()
	a.SetEcho(false)
	a.Cc[termios.VINTR] = 3
	fx.setAttrs(a)

	exit, stdout, stderr := progtest.Run(&Program{}, "-dev", fx.dev, "-json", "show")
	if exit != 0 {
		t.Fatalf("exit %d, stderr %q", exit, stderr)
	}
	var r Report
	if err := json.Unmarshal([]byte(stdout), &r); err != nil {
		t.Fatalf("cannot parse output %q: %v", stdout, err)
	}
	if r.Rows != 24 || r.Columns != 80 {
		t.Errorf("size = %dx%d, want 24x80", r.Rows, r.Columns)
	}
	if r.Modes["echo"] || r.Lflag&termios.ECHO != 0 {
		t.Errorf("echo reported as set")
	}
	if r.CC["intr"] != "^C" {
		t.Errorf("intr = %q, want ^C", r.CC["intr"])
	}
	if want, _ := a.Cbaud().Rate(); r.Speed != want {
		t.Errorf("speed = %d, want %d", r.Speed, want)
	}
}

func TestSet(t *testing.T) {
	fx := setup(t)
	fx.run("set", "-echo", "-icanon", "min", "3")
	a := fx.attrs()
	if a.Lflag&(termios.ECHO|termios.ICANON) != 0 || a.Cc[termios.VMIN] != 3 {
		t.Errorf("after set, Lflag = %#o, VMIN = %d", a.Lflag, a.Cc[termios.VMIN])
	}

	fx.run("-when", "drain", "set", "echo")
	if fx.attrs().Lflag&termios.ECHO == 0 {
		t.Errorf("echo not set after set -when drain echo")
	}
	fx.run("-when", "flush", "set", "9600")
	a = fx.attrs()
	if got := a.Cbaud(); got != termios.B9600 {
		t.Errorf("speed = %v after set 9600", got)
	}

	Test(t, &Program{},
		That("-dev", fx.dev, "set").ExitsWith(2).
			WritesStderrContaining("usage: ttyattr [flags] set SETTING..."),
		That("-dev", fx.dev, "set", "bogus").ExitsWith(2).
			WritesStderr("unknown setting \"bogus\"\n"),
		That("-dev", fx.dev, "-when", "later", "set", "echo").ExitsWith(2).
			WritesStderrContaining("-when takes now, drain or flush"),
	)
}

func TestSaveRestore(t *testing.T) {
	fx := setup(t)
	a := fx.attrs()
	a.SetEcho(true)
	fx.setAttrs(a)

	fx.run("save", "cooked")
	fx.run("set", "raw")
	if fx.attrs().Lflag&termios.ECHO != 0 {
		t.Fatalf("echo still set in raw mode")
	}
	fx.run("restore", "cooked")
	if fx.attrs().Lflag&termios.ECHO == 0 {
		t.Errorf("echo not restored")
	}

	fx.run("save", "another")
	Test(t, &Program{},
		That(fx.args("snapshots")...).WritesStdout("another\ncooked\n"),
		That(fx.args("forget", "another")...).DoesNothing(),
		That(fx.args("snapshots")...).WritesStdout("cooked\n"),
		That(fx.args("restore", "another")...).ExitsWith(2).
			WritesStderr("another: no such snapshot\n"),
	)
}

func TestUndo(t *testing.T) {
	fx := setup(t)
	a := fx.attrs()
	a.SetEcho(true)
	fx.setAttrs(a)

	Test(t, &Program{},
		That(fx.args("undo")...).ExitsWith(2).
			WritesStderrContaining("nothing to undo for "+fx.dev),
	)

	fx.run("set", "-echo")
	fx.run("undo")
	if fx.attrs().Lflag&termios.ECHO == 0 {
		t.Errorf("echo not set after undo")
	}
	// A second undo reverts the first.
	fx.run("undo")
	if fx.attrs().Lflag&termios.ECHO != 0 {
		t.Errorf("echo set after second undo")
	}
}

func TestApply(t *testing.T) {
	testutil.Unsetenv(t, env.TTYATTR_CONFIG)
	fx := setup(t)
	config := filepath.Join(testutil.TempDir(t), "profiles.yaml")
	must.WriteFile(config, `
profiles:
  serial:
    speed: 115200
    settings: [raw, -echo]
    cc:
      time: 5
`)
	fx.run("-config", config, "apply", "serial")
	a := fx.attrs()
	if a.Cbaud() != termios.B115200 || a.Lflag&termios.ECHO != 0 || a.Cc[termios.VTIME] != 5 {
		t.Errorf("after apply, speed = %v, Lflag = %#o, VTIME = %d",
			a.Cbaud(), a.Lflag, a.Cc[termios.VTIME])
	}

	Test(t, &Program{},
		That("-dev", fx.dev, "apply", "serial").ExitsWith(2).
			WritesStderrContaining("apply needs a profile file; use -config"),
		That("-dev", fx.dev, "-config", config, "apply", "modem").ExitsWith(2).
			WritesStderr("modem: no such profile\n"),
	)
}

func TestLineControl(t *testing.T) {
	fx := setup(t)
	Test(t, &Program{},
		That("-dev", fx.dev, "flush", "in").DoesNothing(),
		That("-dev", fx.dev, "flush", "out").DoesNothing(),
		That("-dev", fx.dev, "flush", "both").DoesNothing(),
		That("-dev", fx.dev, "flush", "sideways").ExitsWith(2).
			WritesStderrContaining("flush takes in, out or both"),
		That("-dev", fx.dev, "drain").DoesNothing(),
		That("-dev", fx.dev, "break").DoesNothing(),
		That("-dev", fx.dev, "break", "250").DoesNothing(),
		That("-dev", fx.dev, "break", "long").ExitsWith(2).
			WritesStderrContaining("invalid break duration long"),
		That("-dev", fx.dev, "flow", "ooff").DoesNothing(),
		That("-dev", fx.dev, "flow", "oon").DoesNothing(),
		That("-dev", fx.dev, "flow", "sideways").ExitsWith(2).
			WritesStderrContaining("flow takes ooff, oon, ioff or ion"),
	)
}

func TestErrors(t *testing.T) {
	testutil.Unsetenv(t, env.TTYATTR_DB)
	testutil.Unsetenv(t, env.TTYATTR_CONFIG)
	Test(t, &Program{},
		That().ExitsWith(2).WritesStderrContaining("no command given"),
		That("frobnicate").ExitsWith(2).WritesStderrContaining("unknown command frobnicate"),
		That("-dev", os.DevNull, "show").ExitsWith(2).
			WritesStderr(os.DevNull+" is not a terminal\n"),
		That("-dev", "/nonexistent/tty", "drain").ExitsWith(2).
			WritesStderrContaining("no such file or directory"),
		That("snapshots").ExitsWith(2).
			WritesStderr("no snapshot database; use -db or $TTYATTR_DB\n"),
	)
}

// A recording transport sees the requests of commands without a real line
// discipline behind them.
type recordingTransport struct{ reqs []uint }

func (rt *recordingTransport) IoctlPtr(_ int, req uint, _ unsafe.Pointer) error {
	rt.reqs = append(rt.reqs, req)
	return nil
}

func (rt *recordingTransport) IoctlInt(_ int, req uint, _ int) error {
	rt.reqs = append(rt.reqs, req)
	return nil
}

func TestCustomTransport(t *testing.T) {
	fx := setup(t)
	tests := []struct {
		args []string
		want []uint
	}{
		{[]string{"set", "echo"}, []uint{unix.TCGETS, unix.TCSETS}},
		{[]string{"-when", "drain", "set", "echo"}, []uint{unix.TCGETS, unix.TCSETSW}},
		{[]string{"-when", "flush", "set", "echo"}, []uint{unix.TCGETS, unix.TCSETSF}},
		{[]string{"flush", "both"}, []uint{unix.TCFLSH}},
		{[]string{"drain"}, []uint{unix.TCSBRK}},
		{[]string{"break", "100"}, []uint{unix.TCSBRK}},
		{[]string{"flow", "ion"}, []uint{unix.TCXONC}},
	}
	for _, test := range tests {
		rt := &recordingTransport{}
		args := append([]string{"-dev", fx.dev}, test.args...)
		if exit, _, stderr := progtest.Run(&Program{Transport: rt}, args...); exit != 0 {
			t.Errorf("%v exits with %d, stderr %q", test.args, exit, stderr)
		}
		if diff := cmp.Diff(test.want, rt.reqs); diff != "" {
			t.Errorf("%v requests (-want +got):\n%s", test.args, diff)
		}
	}
}

// Fails every set request and passes everything else to the device.
type failingSetTransport struct{ eunix.Transport }

func (ft failingSetTransport) IoctlPtr(fd int, req uint, arg unsafe.Pointer) error {
	switch req {
	case unix.TCSETS, unix.TCSETSW, unix.TCSETSF:
		return unix.EIO
	}
	return ft.Transport.IoctlPtr(fd, req, arg)
}

func TestFailedChangeKeepsUndo(t *testing.T) {
	fx := setup(t)
	a := fx.attrs()
	a.SetEcho(true)
	fx.setAttrs(a)

	fx.run("set", "-echo")
	Test(t, &Program{Transport: failingSetTransport{}},
		That(fx.args("set", "-icrnl")...).ExitsWith(2).
			WritesStderrContaining("set attributes: input/output error"),
	)
	fx.run("undo")
	if fx.attrs().Lflag&termios.ECHO == 0 {
		t.Errorf("undo after a failed set did not restore echo")
	}
}
