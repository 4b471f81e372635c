package lazy

import (
	"errors"
	"strconv"
	"testing"

	"github.com/vnykmshr/golazy/internal/testutil"
	gferrors "github.com/vnykmshr/golazy/pkg/common/errors"
)

func TestMap(t *testing.T) {
	c := Map(Of(1, 2, 3), func(x int) int { return x + 10 })

	testutil.AssertSliceEqual(t, testutil.Drain(t, c, 10), []int{11, 12, 13})
	testutil.AssertDone(t, c, 2)
}

func TestMapChangesType(t *testing.T) {
	c := Map(Of(1, 22), strconv.Itoa)
	testutil.AssertSliceEqual(t, testutil.Drain(t, c, 10), []string{"1", "22"})
}

func TestMapComposition(t *testing.T) {
	f := func(x int) int { return x * 3 }
	g := func(x int) int { return x - 1 }

	nested := testutil.Drain(t, Map(Map(RangeTo(6), f), g), 10)
	composed := testutil.Drain(t, Map(RangeTo(6), func(x int) int { return g(f(x)) }), 10)

	testutil.AssertSliceEqual(t, nested, composed)
}

func TestMapIsLazy(t *testing.T) {
	counter := testutil.NewCounter(func(x int) int { return x })
	c := Map(RangeTo(100), counter.Func())
	testutil.AssertEqual(t, counter.Calls, 0)

	c.Next()
	c.Next()
	testutil.AssertEqual(t, counter.Calls, 2)
}

func TestTryMap(t *testing.T) {
	c := TryMap(Of("1", "x", "3"), strconv.Atoi)

	v, ok, err := c.Next()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 1)

	_, ok, err = c.Next()
	testutil.AssertEqual(t, ok, false)
	testutil.AssertError(t, err)

	var opErr *gferrors.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	testutil.AssertEqual(t, opErr.Operation, "TryMap")

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Errorf("cause should be preserved, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	c := Filter(Of(1, 2, 3), func(x int) bool { return x > 2 })

	testutil.AssertSliceEqual(t, testutil.Drain(t, c, 10), []int{3})
	testutil.AssertDone(t, c, 2)
}

func TestFilterKeepsOrderAndNeverGrows(t *testing.T) {
	input := []int{5, 8, 1, 4, 9, 2, 6}
	got := testutil.Drain(t, Filter(Of(input...), func(x int) bool { return x%2 == 0 }), 100)

	testutil.AssertSliceEqual(t, got, []int{8, 4, 2, 6})
	if len(got) > len(input) {
		t.Errorf("filter produced %d values from %d", len(got), len(input))
	}
}

func TestFilterIsLazy(t *testing.T) {
	counter := testutil.NewCounter(func(x int) bool { return x%3 == 0 })
	c := Filter(Range(1, 100), counter.Func())
	testutil.AssertEqual(t, counter.Calls, 0)

	v, _, _ := c.Next()
	testutil.AssertEqual(t, v, 3)
	testutil.AssertEqual(t, counter.Calls, 3)
}

func TestTryFilter(t *testing.T) {
	bad := errors.New("negative")
	c := TryFilter(Of(2, 3, -1, 4), func(x int) (bool, error) {
		if x < 0 {
			return false, bad
		}
		return x%2 == 0, nil
	})

	v, ok, err := c.Next()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 2)

	_, _, err = c.Next()
	testutil.AssertErrorIs(t, err, bad)
}

func TestTouch(t *testing.T) {
	var seen []string
	c := Touch(Of("a", "b"), func(s string) { seen = append(seen, s) })
	testutil.AssertEqual(t, len(seen), 0)

	got := testutil.Drain(t, c, 10)
	testutil.AssertSliceEqual(t, got, []string{"a", "b"})
	testutil.AssertSliceEqual(t, seen, []string{"a", "b"})

	testutil.AssertDone(t, c, 2)
	testutil.AssertEqual(t, len(seen), 2)
}

func TestCallbackPanicPropagates(t *testing.T) {
	defer func() {
		if r := recover(); r != "bad value" {
			t.Errorf("recovered %v, want the callback panic", r)
		}
	}()

	c := Map(Of(1), func(int) int { panic("bad value") })
	c.Next()
	t.Fatal("Next should have panicked")
}
