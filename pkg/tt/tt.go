// Package tt supports table-driven tests with little boilerplate.
//
// A test table lists the arguments of each call and the return values it must
// produce:
//
//	tt.Test(t, tt.Fn("ParseCC", ParseCC), tt.Table{
//		tt.Args(VINTR, "^C").Rets(uint8(3), nil),
//		tt.Args(VINTR, "^1").Rets(uint8(0), tt.AnyError),
//	})
//
// Return values are compared with go-cmp, unless the wanted value is a
// Matcher.
package tt

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Table represents a test table.
type Table []*Case

// Case represents a test case. It is created by the Args function, and offers
// setters that augment and return itself; those calls can be chained like
// Args(...).Rets(...).
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value. Otherwise, cmp.Equal is used to determine matches.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name    string
	body    any
	argsFmt string
	opts    []cmp.Option
}

// Fn makes a new FnToTest with the given function name and body.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// ArgsFmt sets the string for formatting arguments in test error messages, and
// returns fn itself.
func (fn *FnToTest) ArgsFmt(s string) *FnToTest {
	fn.argsFmt = s
	return fn
}

// CmpOptions sets the options used when comparing return values, and returns
// fn itself.
func (fn *FnToTest) CmpOptions(opts ...cmp.Option) *FnToTest {
	fn.opts = opts
	return fn
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases.
func Test(t T, fn *FnToTest, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if diff := fn.diff(retsMatcher, rets); diff != "" {
				var args string
				if fn.argsFmt == "" {
					args = sprintCommaDelimited(test.args...)
				} else {
					args = fmt.Sprintf(fn.argsFmt, test.args...)
				}
				t.Errorf("%s(%s) returns (-Wanted +Actual):\n%s", fn.name, args, diff)
			}
		}
	}
}

func (fn *FnToTest) diff(matchers, actual []any) string {
	var sb strings.Builder
	for i, want := range matchers {
		if m, ok := want.(Matcher); ok {
			if !m.Match(actual[i]) {
				fmt.Fprintf(&sb, "#%d: %v does not match %v\n", i, actual[i], m)
			}
		} else if d := cmp.Diff(want, actual[i], fn.opts...); d != "" {
			fmt.Fprintf(&sb, "#%d:\n%s", i, d)
		}
	}
	return sb.String()
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }
func (anyMatcher) String() string      { return "any value" }

// AnyError is a Matcher that matches any non-nil error.
var AnyError Matcher = anyErrorMatcher{}

type anyErrorMatcher struct{}

func (anyErrorMatcher) Match(v RetValue) bool {
	err, ok := v.(error)
	return ok && err != nil
}

func (anyErrorMatcher) String() string { return "any error" }

// ErrorIs returns a Matcher that matches errors for which errors.Is(err,
// target) is true.
func ErrorIs(target error) Matcher { return errorIsMatcher{target} }

type errorIsMatcher struct{ target error }

func (m errorIsMatcher) Match(v RetValue) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, m.target)
}

func (m errorIsMatcher) String() string { return fmt.Sprintf("error that is %v", m.target) }

func sprintCommaDelimited(args ...any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, arg)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	fnType := reflect.TypeOf(fn)
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) is the zero Value, which cannot be passed to
			// Call. Use the zero value of the parameter type instead.
			argsReflect[i] = reflect.Zero(paramType(fnType, i))
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}

func paramType(fnType reflect.Type, i int) reflect.Type {
	if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}
	return fnType.In(i)
}
