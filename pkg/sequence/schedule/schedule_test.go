package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/golazy/internal/testutil"
	gferrors "github.com/vnykmshr/golazy/pkg/common/errors"
	"github.com/vnykmshr/golazy/pkg/sequence/lazy"
)

var start = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func takeTimes(t *testing.T, c *lazy.Cursor[time.Time], n int) []time.Time {
	t.Helper()
	return testutil.Drain(t, lazy.Take[time.Time](c, n), n)
}

func assertTimes(t *testing.T, got, want []time.Time) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d times, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("time %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTimesHourly(t *testing.T) {
	got := takeTimes(t, Times("0 * * * *", start), 3)
	assertTimes(t, got, []time.Time{
		time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC),
	})
}

func TestTimesSecondsField(t *testing.T) {
	got := takeTimes(t, Times("*/20 * * * * *", start), 3)
	assertTimes(t, got, []time.Time{
		start.Add(20 * time.Second),
		start.Add(40 * time.Second),
		start.Add(60 * time.Second),
	})
}

func TestTimesDescriptorAndTimeZone(t *testing.T) {
	got := takeTimes(t, Times("CRON_TZ=UTC @daily", start), 2)
	assertTimes(t, got, []time.Time{
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
	})
}

func TestTimesIsLazy(t *testing.T) {
	calls := 0
	sched := scheduleFunc(func(t time.Time) time.Time {
		calls++
		return t.Add(time.Minute)
	})

	c := FromSchedule(sched, start)
	testutil.AssertEqual(t, calls, 0)

	takeTimes(t, c, 2)
	testutil.AssertEqual(t, calls, 2)
}

func TestTimesInvalidExpression(t *testing.T) {
	c := Times("not a cron line", start)

	_, ok, err := c.Next()
	testutil.AssertEqual(t, ok, false)
	testutil.AssertError(t, err)

	var opErr *gferrors.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	testutil.AssertEqual(t, opErr.Operation, "Parse")
	testutil.AssertEqual(t, opErr.Context, "not a cron line")
}

func TestTimesEmptyExpression(t *testing.T) {
	_, _, err := Times("", start).Next()
	if !gferrors.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestTimesWithOptions(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	c := TimesWithOptions("0 0 * * *", start, Options{Location: tokyo, MaxRuns: 2})
	got := testutil.Drain(t, c, 5)
	assertTimes(t, got, []time.Time{
		time.Date(2024, 3, 2, 0, 0, 0, 0, tokyo),
		time.Date(2024, 3, 3, 0, 0, 0, 0, tokyo),
	})
	testutil.AssertDone(t, c, 2)
}

func TestTimesWithNegativeMaxRuns(t *testing.T) {
	_, _, err := TimesWithOptions("@hourly", start, Options{MaxRuns: -1}).Next()
	testutil.AssertErrorIs(t, err, gferrors.ErrInvalidConfiguration)
}

func TestBetween(t *testing.T) {
	until := start.Add(3 * time.Hour)
	got := testutil.Drain(t, Between("30 * * * *", start, until), 10)
	assertTimes(t, got, []time.Time{
		start.Add(time.Hour),
		start.Add(2 * time.Hour),
	})
}

func TestEvery(t *testing.T) {
	got := takeTimes(t, Every(90*time.Second, start), 2)
	assertTimes(t, got, []time.Time{
		start.Add(90 * time.Second),
		start.Add(180 * time.Second),
	})
}

func TestEveryRejectsNonPositive(t *testing.T) {
	c := Every(0, start)
	_, _, err := c.Next()
	testutil.AssertErrorIs(t, err, gferrors.ErrInvalidConfiguration)
}

func TestFromScheduleEnds(t *testing.T) {
	remaining := 2
	sched := scheduleFunc(func(t time.Time) time.Time {
		if remaining == 0 {
			return time.Time{}
		}
		remaining--
		return t.Add(time.Hour)
	})

	c := FromSchedule(sched, start)
	testutil.AssertEqual(t, len(testutil.Drain(t, c, 5)), 2)
	testutil.AssertDone(t, c, 2)
}

func TestFromScheduleNil(t *testing.T) {
	_, _, err := FromSchedule(nil, start).Next()
	testutil.AssertErrorIs(t, err, gferrors.ErrInvalidConfiguration)
}

type scheduleFunc func(time.Time) time.Time

func (f scheduleFunc) Next(t time.Time) time.Time { return f(t) }

var _ cron.Schedule = scheduleFunc(nil)
