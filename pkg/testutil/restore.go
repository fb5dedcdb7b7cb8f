package testutil

import "os"

// Set assigns v to *p, and puts the old value back when the test finishes.
func Set[T any](c Cleanuper, p *T, v T) {
	saved := *p
	c.Cleanup(func() { *p = saved })
	*p = v
}

// Setenv sets an environment variable for the duration of a test, and returns
// the value.
func Setenv(c Cleanuper, name, value string) string {
	restoreEnv(c, name)
	os.Setenv(name, value)
	return value
}

// Unsetenv removes an environment variable for the duration of a test.
func Unsetenv(c Cleanuper, name string) {
	restoreEnv(c, name)
	os.Unsetenv(name)
}

// Arranges for name to get back its current state, set or unset, when the
// test finishes.
func restoreEnv(c Cleanuper, name string) {
	if saved, ok := os.LookupEnv(name); ok {
		c.Cleanup(func() { os.Setenv(name, saved) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
}
