package termios

import "fmt"

// ValidSpeed reports whether s is one of the baud-rate codes. The codes form
// two disjoint blocks, and a value between them is rejected.
func ValidSpeed(s Speed) bool {
	return s <= B38400 || (B57600 <= s && s <= B4000000)
}

// InputSpeed returns the input speed code.
func (a *Attrs) InputSpeed() Speed { return a.ispeed }

// OutputSpeed returns the output speed code.
func (a *Attrs) OutputSpeed() Speed { return a.ospeed }

// SetInputSpeed sets the input speed code. An invalid code leaves a unchanged.
func (a *Attrs) SetInputSpeed(s Speed) error {
	if !ValidSpeed(s) {
		return &InvalidArgumentError{"cfsetispeed", "speed", int64(s)}
	}
	a.ispeed = s
	return nil
}

// SetOutputSpeed sets the output speed code. An invalid code leaves a
// unchanged.
func (a *Attrs) SetOutputSpeed(s Speed) error {
	if !ValidSpeed(s) {
		return &InvalidArgumentError{"cfsetospeed", "speed", int64(s)}
	}
	a.ospeed = s
	return nil
}

// Bit rates of the speed codes: first the low block, then the extended one.
var rates = [...]int{
	0, 50, 75, 110, 134, 150, 200, 300, 600, 1200, 1800, 2400, 4800, 9600, 19200, 38400,
	57600, 115200, 230400, 460800, 500000, 576000, 921600, 1000000,
	1152000, 1500000, 2000000, 2500000, 3000000, 3500000, 4000000,
}

const lowCodes = int(B38400) + 1

// Rate returns the bit rate selected by s.
func (s Speed) Rate() (int, bool) {
	switch {
	case s <= B38400:
		return rates[s], true
	case B57600 <= s && s <= B4000000:
		return rates[lowCodes+int(s-B57600)], true
	}
	return 0, false
}

// SpeedForRate returns the code selecting the given bit rate.
func SpeedForRate(rate int) (Speed, bool) {
	for i, r := range rates {
		if r != rate {
			continue
		}
		if i < lowCodes {
			return Speed(i), true
		}
		return B57600 + Speed(i-lowCodes), true
	}
	return 0, false
}

func (s Speed) String() string {
	if r, ok := s.Rate(); ok {
		return fmt.Sprintf("B%d", r)
	}
	return fmt.Sprintf("Speed(%#o)", uint32(s))
}
