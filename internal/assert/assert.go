package assert

import (
	"fmt"
	"reflect"
	"regexp"
	"testing"
	"time"
)

func Equal[T comparable](t *testing.T, expected, got T) bool {
	t.Helper()
	return Equalf(t, expected, got, "Items was not equal")
}
func Equalf[T comparable](t *testing.T, expected, got T, format string, args ...any) bool {
	t.Helper()
	if expected != got {
		t.Logf(`
%s
Expected: %v
     Got: %v`, fmt.Sprintf(format, args...), expected, got)
		t.Fail()
		return false
	}
	return true
}

func EqualSlice[T comparable](t *testing.T, expected, got []T) bool {
	t.Helper()
	if len(expected) != len(got) {
		t.Errorf(`Expected %d elements, but got %d`, len(expected), len(got))
		return false
	}

	for i := range len(expected) {
		if !Equal(t, expected[i], got[i]) {
			return false
		}
	}

	return true
}

func EqualSliceFunc[T any](t *testing.T, expected, got []T, equal func(want, item T) bool) bool {
	t.Helper()
	if len(expected) != len(got) {
		t.Errorf(`Expected %d elements, but got %d`, len(expected), len(got))
		return false
	}

	for i := range len(expected) {
		if !equal(expected[i], got[i]) {
			return false
		}
	}

	return true
}

func DeepEqual(t *testing.T, expected, got any) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Logf(`
Items was not deep equal
Expected: %#v
     Got: %#v`, expected, got)
		t.Fail()
		return false
	}
	return true
}

func NotNil(t *testing.T, got any) bool {
	t.Helper()
	if got == nil || reflect.ValueOf(got).IsNil() {
		t.Logf("Expected a value, but got nil")
		t.Fail()
		return false
	}

	return true
}

func Nil(t *testing.T, got any) bool {
	t.Helper()
	if got == nil {
		return true
	}
	if !reflect.ValueOf(got).IsNil() {
		t.Logf("Expected nil, but got: %v", got)
		t.Fail()
		return false
	}

	return true
}

func Match[T ~string](t *testing.T, expectedRE string, got T) bool {
	t.Helper()
	re, err := regexp.Compile(expectedRE)
	if err != nil {
		t.Fatalf("unexpected regexp: %s", err)
		return false
	}

	match := re.MatchString(string(got))
	if !match {
		t.Logf(`
Must match %q
       Got %q`, expectedRE, got)
		t.Fail()
		return false
	}

	return true
}

func NotZero[T any](t *testing.T, got T) bool {
	t.Helper()
	if reflect.ValueOf(got).IsZero() {
		t.Logf("Value %T was zero: %v", got, got)
		t.Fail()
	}
	return true
}

func Truef(t *testing.T, got bool, format string, args ...any) bool {
	t.Helper()
	if !got {
		t.Log(fmt.Sprintf(format, args...))
		t.Fail()
		return false
	}
	return true
}

func TimeWithinWindow(t *testing.T, expected time.Time, got time.Time, window time.Duration) bool {
	var (
		from = expected.Add(-1 * window)
		to   = expected.Add(window)
	)

	if got.Before(from) {
		t.Logf("Time was before the window by %s", from.Sub(got))
		t.Fail()
	}

	if got.After(to) {
		t.Logf("Time was after the window by %s", got.Sub(to))
		t.Fail()
	}

	return true
}

func NoError(t *testing.T, got error) bool {
	t.Helper()
	if got != nil {
		t.Logf("Unexpected error: %s", got)
		t.Fail()
		return false
	}

	return true
}

func Error(t *testing.T, got error) bool {
	t.Helper()
	if got == nil {
		t.Logf("Expected error: %s", got)
		t.Fail()
		return false
	}

	return true
}
