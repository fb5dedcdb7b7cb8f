package termios

import (
	"errors"
	"syscall"
	"testing"

	"src.ttyattr.dev/pkg/tt"
)

var allSpeeds = []Speed{
	B0, B50, B75, B110, B134, B150, B200, B300, B600, B1200, B1800, B2400,
	B4800, B9600, B19200, B38400,
	B57600, B115200, B230400, B460800, B500000, B576000, B921600, B1000000,
	B1152000, B1500000, B2000000, B2500000, B3000000, B3500000, B4000000,
}

func TestValidSpeed(t *testing.T) {
	for _, s := range allSpeeds {
		if !ValidSpeed(s) {
			t.Errorf("ValidSpeed(%v) = false", s)
		}
	}
	for s := B0; s <= B38400; s++ {
		if !ValidSpeed(s) {
			t.Errorf("ValidSpeed(%#o) = false", uint32(s))
		}
	}
	for s := B57600; s <= B4000000; s++ {
		if !ValidSpeed(s) {
			t.Errorf("ValidSpeed(%#o) = false", uint32(s))
		}
	}
	for _, s := range []Speed{B38400 + 1, 0o10000, 0o10020, 0o37777777777} {
		if ValidSpeed(s) {
			t.Errorf("ValidSpeed(%#o) = true", uint32(s))
		}
	}
}

func TestSetSpeeds(t *testing.T) {
	for _, s := range allSpeeds {
		var a Attrs
		if err := a.SetInputSpeed(s); err != nil {
			t.Errorf("SetInputSpeed(%v) -> %v", s, err)
		}
		if err := a.SetOutputSpeed(s); err != nil {
			t.Errorf("SetOutputSpeed(%v) -> %v", s, err)
		}
		if a.InputSpeed() != s || a.OutputSpeed() != s {
			t.Errorf("after setting %v, speeds are %v and %v", s, a.InputSpeed(), a.OutputSpeed())
		}
	}
}

func TestSetSpeeds_Independent(t *testing.T) {
	var a Attrs
	a.SetInputSpeed(B115200)
	if a.InputSpeed() != B115200 {
		t.Errorf("InputSpeed() = %v, want B115200", a.InputSpeed())
	}
	if a.OutputSpeed() != B0 {
		t.Errorf("OutputSpeed() = %v, want B0", a.OutputSpeed())
	}
	if a.Cflag != 0 {
		t.Errorf("SetInputSpeed changed Cflag to %#o", a.Cflag)
	}
}

func TestSetSpeeds_Invalid(t *testing.T) {
	for _, s := range []Speed{B38400 + 1, 0o10000, 0o10020} {
		a := sampleAttrs()
		for _, set := range []func(Speed) error{a.SetInputSpeed, a.SetOutputSpeed} {
			err := set(s)
			if !errors.Is(err, syscall.EINVAL) {
				t.Errorf("setting %#o -> %v, want EINVAL", uint32(s), err)
			}
		}
		if a.InputSpeed() != B115200 || a.OutputSpeed() != B115200 {
			t.Errorf("rejected %#o changed speeds to %v, %v", uint32(s), a.InputSpeed(), a.OutputSpeed())
		}
	}
}

func TestRate(t *testing.T) {
	tt.Test(t, tt.Fn("Speed.Rate", Speed.Rate), tt.Table{
		tt.Args(B0).Rets(0, true),
		tt.Args(B50).Rets(50, true),
		tt.Args(B9600).Rets(9600, true),
		tt.Args(B38400).Rets(38400, true),
		tt.Args(B57600).Rets(57600, true),
		tt.Args(B115200).Rets(115200, true),
		tt.Args(B921600).Rets(921600, true),
		tt.Args(B4000000).Rets(4000000, true),
		tt.Args(Speed(0o10000)).Rets(0, false),
	})
	tt.Test(t, tt.Fn("SpeedForRate", SpeedForRate), tt.Table{
		tt.Args(0).Rets(B0, true),
		tt.Args(9600).Rets(B9600, true),
		tt.Args(57600).Rets(B57600, true),
		tt.Args(4000000).Rets(B4000000, true),
		tt.Args(12345).Rets(Speed(0), false),
	})
	for _, s := range allSpeeds {
		rate, _ := s.Rate()
		if back, _ := SpeedForRate(rate); back != s {
			t.Errorf("SpeedForRate(%v.Rate()) = %v", s, back)
		}
	}
}

func TestSpeedString(t *testing.T) {
	for s, want := range map[Speed]string{
		B9600:   "B9600",
		B115200: "B115200",
		0o10000: "Speed(010000)",
	} {
		if got := s.String(); got != want {
			t.Errorf("%#o.String() = %q, want %q", uint32(s), got, want)
		}
	}
}
