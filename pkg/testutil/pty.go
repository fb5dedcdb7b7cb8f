//go:build unix

package testutil

import (
	"os"

	"github.com/creack/pty"
)

// Pty opens a pseudo-terminal pair that is closed when the test finishes. The
// test is skipped if the system cannot allocate one.
func Pty(c CleanupSkipper) (ptm, pts *os.File) {
	ptm, pts, err := pty.Open()
	if err != nil {
		c.Skipf("cannot open pty: %v", err)
		return nil, nil
	}
	c.Cleanup(func() {
		pts.Close()
		ptm.Close()
	})
	return ptm, pts
}
