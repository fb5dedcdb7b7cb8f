// Package must wraps fallible calls so that tests can use their results
// directly. Every function panics on error.
//
// Outside tests, only use it where the error cannot happen.
package must

import (
	"os"
	"path/filepath"
)

// OK panics on a non-nil error.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 returns v, or panics on a non-nil error.
func OK1[T any](v T, err error) T {
	OK(err)
	return v
}

// OK2 returns v1 and v2, or panics on a non-nil error.
func OK2[T1, T2 any](v1 T1, v2 T2, err error) (T1, T2) {
	OK(err)
	return v1, v2
}

// Pipe returns the read and write ends of a new pipe. Tests use it to get a
// descriptor that is not a terminal.
func Pipe() (r, w *os.File) {
	return OK2(os.Pipe())
}

// Chdir changes the working directory.
func Chdir(dir string) {
	OK(os.Chdir(dir))
}

// WriteFile writes a file such as a profile, creating its parent directories
// first.
func WriteFile(filename, data string) {
	OK(os.MkdirAll(filepath.Dir(filename), 0700))
	OK(os.WriteFile(filename, []byte(data), 0600))
}
