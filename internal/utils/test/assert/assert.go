// Package assert is a go-cmp backed set of test assertions,
// modeled after the mongo-go-driver's `internal/testutil/assert` package.
package assert

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var cmpOpts sync.Map

var errorCompareOpts = cmp.Options{cmp.Comparer(func(e1, e2 error) bool {
	if e1 == nil || e2 == nil {
		return e1 == nil && e2 == nil
	}
	return e1.Error() == e2.Error()
})}

// RegisterOpts registers go-cmp options for a given type
// to be used when calling cmp.Diff or cmp.Equal
func RegisterOpts(t reflect.Type, opts ...cmp.Option) {
	cmpOpts.Store(t, cmp.Options(opts))
}

// Equal compares expected and actual for equality
// and fails the test if not
func Equal(t testing.TB, expected, actual interface{}) {
	t.Helper()
	switch expected.(type) {
	case string:
		Equalf(t, expected, actual, "failed to assert equals ( actual, expected )\n\t%q\n\t%q", actual, expected)
	default:
		Equalf(t, expected, actual, "failed to assert equals ( actual, expected )\n\t%T{%+v}\n\t%T{%+v}", actual, actual, expected, expected)
	}
}

// Equalf compares expected and actual for equality
// and fails the test with the provided formatted message if not
func Equalf(t testing.TB, expected, actual interface{}, format string, args ...interface{}) {
	t.Helper()
	if !cmp.Equal(expected, actual, getCmpOpts(expected)...) {
		t.Fatalf("\n"+format, args...)
	}
}

// NotEqualf compares expected and actual for inequality
// and fails the test with the provided formatted message if not
func NotEqualf(t testing.TB, expected, actual interface{}, format string, args ...interface{}) {
	t.Helper()
	if cmp.Equal(expected, actual, getCmpOpts(expected)...) {
		t.Fatalf("\n"+format, args...)
	}
}

// Match compares expected and actual and ensures there is no diff
// and fails the test with the reported differences if not
func Match(t testing.TB, expected, actual interface{}) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, getCmpOpts(expected)...); diff != "" {
		t.Fatalf("\nfailed to assert no diff:\n%s", diff)
	}
}

// True asserts that o is a boolean with value true
// and fails the test with the provided formatted message if not
func True(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	b, ok := o.(bool)
	if !ok || !b {
		t.Fatalf("\n"+format, args...)
	}
}

// False asserts that o is a boolean with value false
// and fails the test with the provided formatted message if not
func False(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	b, ok := o.(bool)
	if !ok || b {
		t.Fatalf("\n"+format, args...)
	}
}

// Nil asserts that o is nil and fails the test if not
func Nil(t testing.TB, o interface{}) {
	t.Helper()
	if !isNil(o) {
		t.Fatalf("\nfailed to assert nil: %T{%+v}", o, o)
	}
}

// NotNil asserts that o is not nil and fails the test if not
func NotNil(t testing.TB, o interface{}) {
	t.Helper()
	if isNil(o) {
		t.Fatalf("\nfailed to assert not nil: %T", o)
	}
}

// ErrorIs asserts that target is found in err's chain
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("\nfailed to assert error chain ( actual, expected )\n\t%v\n\t%v", err, target)
	}
}

// Contains asserts that s contains substr
func Contains(t testing.TB, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("\nfailed to assert contains ( actual, expected )\n\t%q\n\t%q", s, substr)
	}
}

func getCmpOpts(o interface{}) cmp.Options {
	if opts, ok := cmpOpts.Load(reflect.TypeOf(o)); ok {
		return opts.(cmp.Options)
	}
	if _, ok := o.(error); ok {
		return errorCompareOpts
	}
	return nil
}

func isNil(o interface{}) bool {
	if o == nil {
		return true
	}

	val := reflect.ValueOf(o)
	switch val.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return val.IsNil()
	default:
		return false
	}
}
