package testutil

import (
	"testing"
)

type sliceCursor struct {
	values []int
	pos    int
}

func (s *sliceCursor) Next() (int, bool, error) {
	if s.pos >= len(s.values) {
		return 0, false, nil
	}
	s.pos++
	return s.values[s.pos-1], true, nil
}

func TestDrain(t *testing.T) {
	got := Drain[int](t, &sliceCursor{values: []int{1, 2, 3}}, 10)
	AssertSliceEqual(t, got, []int{1, 2, 3})
}

func TestAssertDone(t *testing.T) {
	c := &sliceCursor{}
	AssertDone[int](t, c, 3)
}

func TestAssertSliceEqualNilAndEmpty(t *testing.T) {
	AssertSliceEqual(t, nil, []string{})
}

func TestCounter(t *testing.T) {
	c := NewCounter(func(x int) int { return x * 2 })
	fn := c.Func()

	AssertEqual(t, fn(2), 4)
	AssertEqual(t, fn(5), 10)
	AssertEqual(t, c.Calls, 2)
}
