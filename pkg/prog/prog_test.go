package prog_test

import (
	"os"
	"path/filepath"
	"testing"

	"src.ttyattr.dev/pkg/env"
	. "src.ttyattr.dev/pkg/prog"
	"src.ttyattr.dev/pkg/prog/progtest"
	"src.ttyattr.dev/pkg/testutil"
)

var (
	Test = progtest.Test
	That = progtest.That
)

func TestCommonFlagHandling(t *testing.T) {
	dir := testutil.InTempDir(t)

	Test(t, testProgram{},
		That("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		That("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		That("-help").
			WritesStdoutContaining("Usage: ttyattr [flags] command [args...]"),

		That("-log", "log.txt").DoesNothing(),
		That("-log-level", "bogus").
			WritesStderrContaining("Warning: bad -log-level:"),
	)

	if _, err := os.Stat(filepath.Join(dir, "log.txt")); err != nil {
		t.Errorf("log file does not exist: %v", err)
	}
}

func TestFlagDefaults(t *testing.T) {
	testutil.Setenv(t, env.TTYATTR_DB, "/tmp/snapshots.db")
	testutil.Unsetenv(t, env.TTYATTR_CONFIG)
	var got Flags
	Test(t, flagsProgram{&got}, That())
	want := Flags{LogLevel: "debug", Dev: DefaultDev, DB: "/tmp/snapshots.db", When: "now"}
	if got != want {
		t.Errorf("got flags %+v, want %+v", got, want)
	}
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		That().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		That().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true}),
		That().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		That().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		That().ExitsWith(2).WritesStderrContaining("lorem ipsum\n"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		That().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		That().ExitsWith(0),
	)
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	returnErr   error
}

func (p testProgram) Run(fds [3]*os.File, _ *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}

type flagsProgram struct{ f *Flags }

func (p flagsProgram) Run(_ [3]*os.File, f *Flags, _ []string) error {
	*p.f = *f
	return nil
}
