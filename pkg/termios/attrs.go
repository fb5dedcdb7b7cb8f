// Package termios queries and modifies the line-discipline configuration of
// terminal devices.
//
// The Attrs type mirrors the libc struct termios byte for byte, so that it can
// be handed to the device unchanged. A Controller issues the device-control
// requests for getting and setting attributes, and for flushing, draining,
// breaking and flow control.
package termios

import (
	"encoding/binary"
	"fmt"
)

// Attrs is one terminal's line-discipline configuration.
//
// The field order and widths are a binary contract with the device layer:
// four 32-bit mode words, the line discipline byte, NCCS control characters,
// then the input and output speed codes. The zero value has every field zero.
type Attrs struct {
	Iflag uint32
	Oflag uint32
	Cflag uint32
	Lflag uint32
	Line  uint8
	Cc    [NCCS]uint8

	ispeed Speed
	ospeed Speed
}

// Size of the binary image of Attrs, including the padding after Cc.
const attrsSize = 60

// Copy returns a copy of a.
func (a *Attrs) Copy() *Attrs {
	v := *a
	return &v
}

// SetICanon sets the canonical flag.
func (a *Attrs) SetICanon(v bool) { setFlag(&a.Lflag, ICANON, v) }

// SetEcho sets the echo flag.
func (a *Attrs) SetEcho(v bool) { setFlag(&a.Lflag, ECHO, v) }

// SetICRNL sets the CRNL iflag bit.
func (a *Attrs) SetICRNL(v bool) { setFlag(&a.Iflag, ICRNL, v) }

// SetVTime sets the timeout in deciseconds for noncanonical read.
func (a *Attrs) SetVTime(v uint8) { a.Cc[VTIME] = v }

// SetVMin sets the minimal number of characters for noncanonical read.
func (a *Attrs) SetVMin(v uint8) { a.Cc[VMIN] = v }

// MakeRaw modifies a for raw mode: input is available byte by byte, echo and
// special character processing are off, and characters are 8 bits.
func (a *Attrs) MakeRaw() {
	a.Iflag &^= IGNBRK | BRKINT | PARMRK | ISTRIP | INLCR | IGNCR | ICRNL | IXON
	a.Oflag &^= OPOST
	a.Lflag &^= ECHO | ECHONL | ICANON | ISIG | IEXTEN
	a.Cflag &^= CSIZE | PARENB
	a.Cflag |= CS8
	a.Cc[VMIN] = 1
	a.Cc[VTIME] = 0
}

// MakeCbreak modifies a for cbreak mode: like raw mode, except that signal
// characters and output processing remain in effect.
func (a *Attrs) MakeCbreak() {
	a.Lflag &^= ECHO | ICANON
	a.Cc[VMIN] = 1
	a.Cc[VTIME] = 0
}

// Cbaud returns the speed code stored in the CBAUD bits of Cflag. This is
// where the Linux kernel keeps the line speed.
func (a *Attrs) Cbaud() Speed { return Speed(a.Cflag & CBAUD) }

// SetCbaud stores a speed code in the CBAUD bits of Cflag.
func (a *Attrs) SetCbaud(s Speed) error {
	if !ValidSpeed(s) {
		return &InvalidArgumentError{"cbaud", "speed", int64(s)}
	}
	a.Cflag = a.Cflag&^CBAUD | uint32(s)
	return nil
}

// MarshalBinary returns the 60-byte little-endian image of a. The padding
// between Cc and the speeds is zero.
func (a *Attrs) MarshalBinary() ([]byte, error) {
	buf := make([]byte, attrsSize)
	binary.LittleEndian.PutUint32(buf[0:], a.Iflag)
	binary.LittleEndian.PutUint32(buf[4:], a.Oflag)
	binary.LittleEndian.PutUint32(buf[8:], a.Cflag)
	binary.LittleEndian.PutUint32(buf[12:], a.Lflag)
	buf[16] = a.Line
	copy(buf[17:17+NCCS], a.Cc[:])
	binary.LittleEndian.PutUint32(buf[52:], uint32(a.ispeed))
	binary.LittleEndian.PutUint32(buf[56:], uint32(a.ospeed))
	return buf, nil
}

// UnmarshalBinary is the inverse of MarshalBinary. Speed codes are taken
// verbatim.
func (a *Attrs) UnmarshalBinary(data []byte) error {
	if len(data) != attrsSize {
		return fmt.Errorf("termios: bad attributes image length %d, want %d", len(data), attrsSize)
	}
	a.Iflag = binary.LittleEndian.Uint32(data[0:])
	a.Oflag = binary.LittleEndian.Uint32(data[4:])
	a.Cflag = binary.LittleEndian.Uint32(data[8:])
	a.Lflag = binary.LittleEndian.Uint32(data[12:])
	a.Line = data[16]
	copy(a.Cc[:], data[17:17+NCCS])
	a.ispeed = Speed(binary.LittleEndian.Uint32(data[52:]))
	a.ospeed = Speed(binary.LittleEndian.Uint32(data[56:]))
	return nil
}

func setFlag(flag *uint32, mask uint32, v bool) {
	if v {
		*flag |= mask
	} else {
		*flag &^= mask
	}
}
