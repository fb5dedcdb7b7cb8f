// Ttyattr inspects and changes the line-discipline attributes of terminal
// devices. Besides stty-style settings, it can keep named snapshots of a
// terminal's attributes, undo the last change, and apply profiles from a YAML
// file.
package main

import (
	"os"

	"src.ttyattr.dev/pkg/buildinfo"
	"src.ttyattr.dev/pkg/prog"
	"src.ttyattr.dev/pkg/ttyctl"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, &ttyctl.Program{})))
}
