// Package testutil contains helpers shared by tests: temporary directories,
// restorable variables and environment, and pseudo-terminals.
//
// Helpers take the narrowest interface they need, so that they can be tested
// with fakes of *testing.T.
package testutil

// Cleanuper is the Cleanup part of testing.TB.
type Cleanuper interface {
	Cleanup(func())
}

// Skipper is the Skipf part of testing.TB.
type Skipper interface {
	Skipf(format string, args ...any)
}

// CleanupSkipper is satisfied by *testing.T and *testing.B.
type CleanupSkipper interface {
	Cleanuper
	Skipper
}
