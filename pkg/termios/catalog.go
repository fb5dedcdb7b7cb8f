package termios

// Number of control-character slots in Attrs.
const NCCS = 32

// Indices into Attrs.Cc.
const (
	VINTR    = 0
	VQUIT    = 1
	VERASE   = 2
	VKILL    = 3
	VEOF     = 4
	VTIME    = 5
	VMIN     = 6
	VSWTC    = 7
	VSTART   = 8
	VSTOP    = 9
	VSUSP    = 10
	VEOL     = 11
	VREPRINT = 12
	VDISCARD = 13
	VWERASE  = 14
	VLNEXT   = 15
	VEOL2    = 16
)

// Input modes (Attrs.Iflag).
const (
	IGNBRK  = 0o000001
	BRKINT  = 0o000002
	IGNPAR  = 0o000004
	PARMRK  = 0o000010
	INPCK   = 0o000020
	ISTRIP  = 0o000040
	INLCR   = 0o000100
	IGNCR   = 0o000200
	ICRNL   = 0o000400
	IUCLC   = 0o001000
	IXON    = 0o002000
	IXANY   = 0o004000
	IXOFF   = 0o010000
	IMAXBEL = 0o020000
	IUTF8   = 0o040000
)

// Output modes (Attrs.Oflag).
const (
	OPOST  = 0o000001
	OLCUC  = 0o000002
	ONLCR  = 0o000004
	OCRNL  = 0o000010
	ONOCR  = 0o000020
	ONLRET = 0o000040
	OFILL  = 0o000100
	OFDEL  = 0o000200

	VTDLY = 0o040000
	VT0   = 0o000000
	VT1   = 0o040000
)

// Control modes (Attrs.Cflag).
const (
	CSIZE  = 0o000060
	CS5    = 0o000000
	CS6    = 0o000020
	CS7    = 0o000040
	CS8    = 0o000060
	CSTOPB = 0o000100
	CREAD  = 0o000200
	PARENB = 0o000400
	PARODD = 0o001000
	HUPCL  = 0o002000
	CLOCAL = 0o004000

	// Linux-specific.
	CBAUD   = 0o010017
	CBAUDEX = 0o010000
	CMSPAR  = 0o10000000000
	CRTSCTS = 0o20000000000
)

// Local modes (Attrs.Lflag).
const (
	ISIG   = 0o000001
	ICANON = 0o000002
	ECHO   = 0o000010
	ECHOE  = 0o000020
	ECHOK  = 0o000040
	ECHONL = 0o000100
	NOFLSH = 0o000200
	TOSTOP = 0o000400
	IEXTEN = 0o100000

	// Linux-specific.
	ECHOCTL = 0o001000
	ECHOPRT = 0o002000
	ECHOKE  = 0o004000
	FLUSHO  = 0o010000
	PENDIN  = 0o040000
)

// Speed is a baud-rate code. It is an enumerated value, not a bit rate.
type Speed uint32

// Baud-rate codes. The first 16 are contiguous; the extended block starts
// after a gap.
const (
	B0     Speed = 0o000000
	B50    Speed = 0o000001
	B75    Speed = 0o000002
	B110   Speed = 0o000003
	B134   Speed = 0o000004
	B150   Speed = 0o000005
	B200   Speed = 0o000006
	B300   Speed = 0o000007
	B600   Speed = 0o000010
	B1200  Speed = 0o000011
	B1800  Speed = 0o000012
	B2400  Speed = 0o000013
	B4800  Speed = 0o000014
	B9600  Speed = 0o000015
	B19200 Speed = 0o000016
	B38400 Speed = 0o000017

	B57600   Speed = 0o010001
	B115200  Speed = 0o010002
	B230400  Speed = 0o010003
	B460800  Speed = 0o010004
	B500000  Speed = 0o010005
	B576000  Speed = 0o010006
	B921600  Speed = 0o010007
	B1000000 Speed = 0o010010
	B1152000 Speed = 0o010011
	B1500000 Speed = 0o010012
	B2000000 Speed = 0o010013
	B2500000 Speed = 0o010014
	B3000000 Speed = 0o010015
	B3500000 Speed = 0o010016
	B4000000 Speed = 0o010017
)

// FlowAction selects what Flow suspends or resumes.
type FlowAction int

// Flow actions, from bits/termios.h.
const (
	TCOOFF FlowAction = 0 // suspend output
	TCOON  FlowAction = 1 // restart suspended output
	TCIOFF FlowAction = 2 // transmit a STOP character
	TCION  FlowAction = 3 // transmit a START character
)

// Queue selects which queue Flush discards.
type Queue int

// Flush queue selectors.
const (
	TCIFLUSH  Queue = 0
	TCOFLUSH  Queue = 1
	TCIOFLUSH Queue = 2
)

// Action selects when SetAttr takes effect.
type Action int

// Attribute-set actions.
const (
	TCSANOW   Action = 0 // immediately
	TCSADRAIN Action = 1 // after pending output has been transmitted
	TCSAFLUSH Action = 2 // as TCSADRAIN, and discard pending input
)
