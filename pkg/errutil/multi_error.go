// Package errutil contains utilities for combining errors.
package errutil

import (
	"errors"
	"strings"
)

// Multi combines errors into one. Nil arguments are dropped; if nothing is
// left, Multi returns nil, and if only one error is left, it is returned as is.
// Otherwise the result reports every message, and matches each of the combined
// errors under errors.Is and errors.As.
//
// Errors returned by Multi are flattened, so Multi(Multi(a, b), c) is the same
// as Multi(a, b, c).
func Multi(errs ...error) error {
	var combined multiError
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case multiError:
			combined = append(combined, err...)
		default:
			combined = append(combined, err)
		}
	}
	switch len(combined) {
	case 0:
		return nil
	case 1:
		return combined[0]
	}
	return combined
}

type multiError []error

func (me multiError) Error() string {
	msgs := make([]string, len(me))
	for i, err := range me {
		msgs[i] = err.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

// Unwrap returns the combined errors.
func (me multiError) Unwrap() []error { return me }

// Is reports whether any of the combined errors matches target.
func (me multiError) Is(target error) bool {
	for _, err := range me {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// As finds the first of the combined errors that matches target.
func (me multiError) As(target any) bool {
	for _, err := range me {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}
