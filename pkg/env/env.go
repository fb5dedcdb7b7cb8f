// Package env keeps names of environment variables with special significance to
// ttyattr.
package env

// Environment variables with special significance to ttyattr. Each of them
// supplies the default of a command-line flag.
const (
	// Default of -db.
	TTYATTR_DB = "TTYATTR_DB"
	// Default of -config.
	TTYATTR_CONFIG = "TTYATTR_CONFIG"
)
