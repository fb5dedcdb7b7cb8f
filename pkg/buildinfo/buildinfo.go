// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.ttyattr.dev/pkg/buildinfo.Var=value" to "go build" or
// "go get".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"src.ttyattr.dev/pkg/prog"
)

// Version identifies the version of ttyattr. On development commits, it
// identifies the next release.
const Version = "0.3.0"

// VersionSuffix is appended to Version in the output of "ttyattr -version" and
// "ttyattr -buildinfo" to build the full version string. It can be overridden
// when building ttyattr.
var VersionSuffix = "-dev.unknown"

// Reproducible identifies whether the build is reproducible. It can be
// overridden when building ttyattr.
var Reproducible = "false"

// Type contains all the build information fields.
type Type struct {
	Version      string `json:"version"`
	GoVersion    string `json:"goversion"`
	Reproducible bool   `json:"reproducible"`
}

// Value returns the build information of the running program.
func Value() Type {
	return Type{
		Version:      Version + VersionSuffix,
		GoVersion:    runtime.Version(),
		Reproducible: Reproducible == "true",
	}
}

// Program is the buildinfo subprogram. It runs when -version or -buildinfo is
// given.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if !f.Version && !f.BuildInfo {
		return prog.ErrNotSuitable
	}
	if len(args) > 0 {
		return prog.BadUsage("arguments are not allowed with -version or -buildinfo")
	}
	v := Value()
	switch {
	case f.Version && f.JSON:
		fmt.Fprintln(fds[1], mustToJSON(v.Version))
	case f.Version:
		fmt.Fprintln(fds[1], v.Version)
	case f.JSON:
		fmt.Fprintln(fds[1], mustToJSON(v))
	default:
		fmt.Fprintln(fds[1], "Version:", v.Version)
		fmt.Fprintln(fds[1], "Go version:", v.GoVersion)
		fmt.Fprintln(fds[1], "Reproducible build:", v.Reproducible)
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
