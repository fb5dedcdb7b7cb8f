//go:build linux

package ttyctl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"src.ttyattr.dev/pkg/sys"
	"src.ttyattr.dev/pkg/termios"
)

// Report is the content of "show -json".
type Report struct {
	Speed   int               `json:"speed"`
	Rows    int               `json:"rows"`
	Columns int               `json:"columns"`
	Line    uint8             `json:"line"`
	Iflag   uint32            `json:"iflag"`
	Oflag   uint32            `json:"oflag"`
	Cflag   uint32            `json:"cflag"`
	Lflag   uint32            `json:"lflag"`
	Modes   map[string]bool   `json:"modes"`
	CC      map[string]string `json:"cc"`
}

var fields = []termios.Field{
	termios.InputModes, termios.OutputModes, termios.ControlModes, termios.LocalModes}

func show(ctx *runCtx, _ []string) error {
	a, err := ctx.ctl.GetAttr(ctx.fd)
	if err != nil {
		return errors.Wrap(err, "get attributes")
	}
	rows, cols := sys.WinSize(ctx.dev)
	if ctx.flags.JSON {
		return writeJSON(ctx.fds[1], &a, rows, cols)
	}
	writeText(ctx.fds[1], &a, rows, cols, ctx.flags.Color)
	return nil
}

func newReport(a *termios.Attrs, rows, cols int) *Report {
	speed, _ := a.Cbaud().Rate()
	r := &Report{
		Speed: speed, Rows: rows, Columns: cols, Line: a.Line,
		Iflag: a.Iflag, Oflag: a.Oflag, Cflag: a.Cflag, Lflag: a.Lflag,
		Modes: map[string]bool{}, CC: map[string]string{},
	}
	for _, s := range termios.Settings {
		r.Modes[s.Name] = a.In(s)
	}
	for _, cc := range a.ControlChars() {
		r.CC[cc.Name] = termios.FormatCC(cc.Index, cc.Value)
	}
	return r
}

func writeJSON(w io.Writer, a *termios.Attrs, rows, cols int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newReport(a, rows, cols))
}

// Writes the attributes in a format similar to "stty -a". With highlight,
// settings in effect are green and cleared ones are faint.
func writeText(w io.Writer, a *termios.Attrs, rows, cols int, highlight bool) {
	on, off := color.New(color.FgGreen), color.New(color.Faint)
	if highlight {
		on.EnableColor()
		off.EnableColor()
	} else {
		on.DisableColor()
		off.DisableColor()
	}

	speed, _ := a.Cbaud().Rate()
	fmt.Fprintf(w, "speed %d baud; rows %d; columns %d; line = %d;\n", speed, rows, cols, a.Line)
	var ccs []string
	for _, cc := range a.ControlChars() {
		ccs = append(ccs, fmt.Sprintf("%s = %s", cc.Name, termios.FormatCC(cc.Index, cc.Value)))
	}
	fmt.Fprintf(w, "cc: %s;\n", strings.Join(ccs, "; "))
	for _, f := range fields {
		names := a.SettingsIn(f)
		for i, name := range names {
			if strings.HasPrefix(name, "-") {
				names[i] = off.Sprint(name)
			} else {
				names[i] = on.Sprint(name)
			}
		}
		fmt.Fprintf(w, "%s: %s\n", f, strings.Join(names, " "))
	}
}
