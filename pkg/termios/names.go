package termios

import (
	"fmt"
	"strconv"
	"strings"
)

// Field identifies one of the four mode words of Attrs.
type Field int

// Mode words.
const (
	InputModes Field = iota
	OutputModes
	ControlModes
	LocalModes
)

var fieldNames = [...]string{"iflag", "oflag", "cflag", "lflag"}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

func (a *Attrs) word(f Field) *uint32 {
	switch f {
	case InputModes:
		return &a.Iflag
	case OutputModes:
		return &a.Oflag
	case ControlModes:
		return &a.Cflag
	default:
		return &a.Lflag
	}
}

// Setting is a named value for the bits of a mode word selected by Mask.
// Negatable settings are single bits and can be cleared with a leading "-".
// The others pick one value of a multi-bit field, such as cs8 of CSIZE, even
// when that value has all bits of the mask set.
type Setting struct {
	Name      string
	Field     Field
	Mask      uint32
	Value     uint32
	Negatable bool
}

func bit(name string, f Field, b uint32) Setting {
	return Setting{Name: name, Field: f, Mask: b, Value: b, Negatable: true}
}

func choice(name string, f Field, mask, value uint32) Setting {
	return Setting{Name: name, Field: f, Mask: mask, Value: value}
}

// Settings lists all known settings, in the order they are displayed.
var Settings = []Setting{
	bit("ignbrk", InputModes, IGNBRK),
	bit("brkint", InputModes, BRKINT),
	bit("ignpar", InputModes, IGNPAR),
	bit("parmrk", InputModes, PARMRK),
	bit("inpck", InputModes, INPCK),
	bit("istrip", InputModes, ISTRIP),
	bit("inlcr", InputModes, INLCR),
	bit("igncr", InputModes, IGNCR),
	bit("icrnl", InputModes, ICRNL),
	bit("iuclc", InputModes, IUCLC),
	bit("ixon", InputModes, IXON),
	bit("ixany", InputModes, IXANY),
	bit("ixoff", InputModes, IXOFF),
	bit("imaxbel", InputModes, IMAXBEL),
	bit("iutf8", InputModes, IUTF8),

	bit("opost", OutputModes, OPOST),
	bit("olcuc", OutputModes, OLCUC),
	bit("onlcr", OutputModes, ONLCR),
	bit("ocrnl", OutputModes, OCRNL),
	bit("onocr", OutputModes, ONOCR),
	bit("onlret", OutputModes, ONLRET),
	bit("ofill", OutputModes, OFILL),
	bit("ofdel", OutputModes, OFDEL),
	choice("vt0", OutputModes, VTDLY, VT0),
	choice("vt1", OutputModes, VTDLY, VT1),

	choice("cs5", ControlModes, CSIZE, CS5),
	choice("cs6", ControlModes, CSIZE, CS6),
	choice("cs7", ControlModes, CSIZE, CS7),
	choice("cs8", ControlModes, CSIZE, CS8),
	bit("cstopb", ControlModes, CSTOPB),
	bit("cread", ControlModes, CREAD),
	bit("parenb", ControlModes, PARENB),
	bit("parodd", ControlModes, PARODD),
	bit("cmspar", ControlModes, CMSPAR),
	bit("hupcl", ControlModes, HUPCL),
	bit("clocal", ControlModes, CLOCAL),
	bit("crtscts", ControlModes, CRTSCTS),

	bit("isig", LocalModes, ISIG),
	bit("icanon", LocalModes, ICANON),
	bit("echo", LocalModes, ECHO),
	bit("echoe", LocalModes, ECHOE),
	bit("echok", LocalModes, ECHOK),
	bit("echonl", LocalModes, ECHONL),
	bit("noflsh", LocalModes, NOFLSH),
	bit("tostop", LocalModes, TOSTOP),
	bit("echoctl", LocalModes, ECHOCTL),
	bit("echoprt", LocalModes, ECHOPRT),
	bit("echoke", LocalModes, ECHOKE),
	bit("flusho", LocalModes, FLUSHO),
	bit("pendin", LocalModes, PENDIN),
	bit("iexten", LocalModes, IEXTEN),
}

var settingByName = map[string]Setting{}

func init() {
	for _, s := range Settings {
		settingByName[s.Name] = s
	}
}

// LookupSetting finds a setting by name.
func LookupSetting(name string) (Setting, bool) {
	s, ok := settingByName[name]
	return s, ok
}

// CCNames maps control character names to their index in Attrs.Cc.
var CCNames = map[string]int{
	"intr":    VINTR,
	"quit":    VQUIT,
	"erase":   VERASE,
	"kill":    VKILL,
	"eof":     VEOF,
	"time":    VTIME,
	"min":     VMIN,
	"swtch":   VSWTC,
	"start":   VSTART,
	"stop":    VSTOP,
	"susp":    VSUSP,
	"eol":     VEOL,
	"rprnt":   VREPRINT,
	"discard": VDISCARD,
	"werase":  VWERASE,
	"lnext":   VLNEXT,
	"eol2":    VEOL2,
}

// ccOrder is the display order of CCNames.
var ccOrder = []string{
	"intr", "quit", "erase", "kill", "eof", "eol", "eol2", "swtch", "start",
	"stop", "susp", "rprnt", "werase", "lnext", "discard", "min", "time",
}

// In reports whether s is in effect in a.
func (a *Attrs) In(s Setting) bool {
	return *a.word(s.Field)&s.Mask == s.Value
}

// SettingsIn returns the names of settings of the given field. Settings not in
// effect are prefixed with "-" when they are negatable, and omitted otherwise.
func (a *Attrs) SettingsIn(f Field) []string {
	var names []string
	for _, s := range Settings {
		if s.Field != f {
			continue
		}
		switch {
		case a.In(s):
			names = append(names, s.Name)
		case s.Negatable:
			names = append(names, "-"+s.Name)
		}
	}
	return names
}

// ControlChar is a control character with its name.
type ControlChar struct {
	Name  string
	Index int
	Value uint8
}

// ControlChars returns the named control characters of a in display order.
func (a *Attrs) ControlChars() []ControlChar {
	ccs := make([]ControlChar, len(ccOrder))
	for i, name := range ccOrder {
		idx := CCNames[name]
		ccs[i] = ControlChar{name, idx, a.Cc[idx]}
	}
	return ccs
}

// FormatCC formats the value of a control character the way stty does.
// VMIN and VTIME are counts and are formatted as numbers.
func FormatCC(idx int, v uint8) string {
	switch {
	case idx == VMIN || idx == VTIME:
		return strconv.Itoa(int(v))
	case v == 0:
		return "<undef>"
	case v == 0x7f:
		return "^?"
	case v < 0x20:
		return "^" + string(rune(v+'@'))
	}
	return string(rune(v))
}

// ParseCC parses a control character value: "^X", "^?", "undef", "<undef>",
// a decimal or 0x-prefixed number, or a single character.
func ParseCC(idx int, s string) (uint8, error) {
	if idx == VMIN || idx == VTIME {
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid count %q", s)
		}
		return uint8(n), nil
	}
	switch {
	case s == "undef" || s == "<undef>" || s == "^-":
		return 0, nil
	case s == "^?":
		return 0x7f, nil
	case len(s) == 2 && s[0] == '^':
		c := s[1]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < '@' || c > '_' {
			return 0, fmt.Errorf("invalid control character %q", s)
		}
		return c - '@', nil
	case len(s) == 1:
		return s[0], nil
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid control character %q", s)
	}
	return uint8(n), nil
}

// Apply applies stty-style arguments to a. The arguments are processed from
// left to right and may be:
//
//   - A setting name such as "icrnl" or "cs8", or a single-bit setting name
//     prefixed with "-" to clear it.
//   - "raw", "cbreak", or "-raw" and "cooked", which undo raw mode.
//   - A control character name followed by its value, such as "intr ^C".
//   - A bit rate such as "115200", which sets both speeds and the CBAUD bits,
//     or "ispeed N" and "ospeed N" for a single direction.
//
// When an argument is invalid, a may have been partially modified.
func (a *Attrs) Apply(args ...string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		next := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("missing argument to %s", arg)
			}
			i++
			return args[i], nil
		}
		switch arg {
		case "raw":
			a.MakeRaw()
			continue
		case "-raw", "cooked":
			a.makeCooked()
			continue
		case "cbreak":
			a.MakeCbreak()
			continue
		case "ispeed", "ospeed":
			v, err := next()
			if err != nil {
				return err
			}
			s, err := parseRate(v)
			if err != nil {
				return err
			}
			if arg == "ispeed" {
				err = a.SetInputSpeed(s)
			} else {
				err = a.SetOutputSpeed(s)
			}
			if err != nil {
				return err
			}
			continue
		}
		if idx, ok := CCNames[arg]; ok {
			v, err := next()
			if err != nil {
				return err
			}
			c, err := ParseCC(idx, v)
			if err != nil {
				return err
			}
			a.Cc[idx] = c
			continue
		}
		if arg != "" && arg[0] >= '0' && arg[0] <= '9' {
			s, err := parseRate(arg)
			if err != nil {
				return err
			}
			if err := a.SetSpeed(s); err != nil {
				return err
			}
			continue
		}
		name, on := strings.TrimPrefix(arg, "-"), !strings.HasPrefix(arg, "-")
		s, ok := LookupSetting(name)
		if !ok {
			return fmt.Errorf("unknown setting %q", arg)
		}
		w := a.word(s.Field)
		switch {
		case on:
			*w = *w&^s.Mask | s.Value
		case s.Negatable:
			*w &^= s.Mask
		default:
			return fmt.Errorf("setting %q cannot be negated", name)
		}
	}
	return nil
}

// SetSpeed sets both speed codes and the CBAUD bits of Cflag.
func (a *Attrs) SetSpeed(s Speed) error {
	if err := a.SetInputSpeed(s); err != nil {
		return err
	}
	if err := a.SetOutputSpeed(s); err != nil {
		return err
	}
	return a.SetCbaud(s)
}

func (a *Attrs) makeCooked() {
	a.Iflag |= BRKINT | ICRNL | IXON
	a.Oflag |= OPOST
	a.Lflag |= ISIG | ICANON | ECHO | IEXTEN
}

func parseRate(s string) (Speed, error) {
	rate, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid bit rate %q", s)
	}
	sp, ok := SpeedForRate(rate)
	if !ok {
		return 0, fmt.Errorf("unsupported bit rate %d", rate)
	}
	return sp, nil
}
