// Package testutil provides assertion and cursor-driving helpers shared by
// the golazy test suites.
package testutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Puller is the subset of the cursor protocol the helpers need.
type Puller[T any] interface {
	Next() (T, bool, error)
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertErrorIs fails the test unless errors.Is(err, target)
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("got error %v, want %v", err, target)
	}
}

// AssertEqual fails the test if got != want
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertSliceEqual fails the test with a diff if got and want differ.
// A nil and an empty slice compare equal.
func AssertSliceEqual[T any](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// Drain pulls c until Done and returns the values. It fails the test on error
// or if more than limit values are produced, which guards against a cursor
// that never finishes.
func Drain[T any](t *testing.T, c Puller[T], limit int) []T {
	t.Helper()
	var out []T
	for {
		v, ok, err := c.Next()
		AssertNoError(t, err)
		if !ok {
			return out
		}
		out = append(out, v)
		if len(out) > limit {
			t.Fatalf("cursor produced more than %d values", limit)
		}
	}
}

// AssertDone advances c n times and fails unless every call reports Done.
func AssertDone[T any](t *testing.T, c Puller[T], n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		v, ok, err := c.Next()
		AssertNoError(t, err)
		if ok {
			t.Fatalf("advance %d after Done yielded %v", i+1, v)
		}
	}
}

// Counter wraps a callback and records how many times it ran.
type Counter[T, R any] struct {
	Calls int
	fn    func(T) R
}

// NewCounter creates a Counter around fn.
func NewCounter[T, R any](fn func(T) R) *Counter[T, R] {
	return &Counter[T, R]{fn: fn}
}

// Func returns the counting callback.
func (c *Counter[T, R]) Func() func(T) R {
	return func(v T) R {
		c.Calls++
		return c.fn(v)
	}
}
