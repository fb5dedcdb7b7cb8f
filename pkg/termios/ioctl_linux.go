//go:build linux

package termios

import "golang.org/x/sys/unix"

const (
	getAttrIOCTL = unix.TCGETS
	// The request for SetAttr is setAttrIOCTL plus the Action.
	setAttrIOCTL = unix.TCSETS
	flushIOCTL   = unix.TCFLSH
	breakIOCTL   = unix.TCSBRK
	flowIOCTL    = unix.TCXONC
)

// Arguments to breakIOCTL. On Linux tcdrain is TCSBRK with a non-zero
// argument.
const (
	breakArgBreak = 0
	breakArgDrain = 1
)
