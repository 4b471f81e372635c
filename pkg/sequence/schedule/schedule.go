package schedule

import (
	"time"

	"github.com/robfig/cron/v3"

	gferrors "github.com/vnykmshr/golazy/pkg/common/errors"
	"github.com/vnykmshr/golazy/pkg/common/validation"
	"github.com/vnykmshr/golazy/pkg/sequence/lazy"
)

// parser accepts five-field expressions, an optional leading seconds field
// and descriptors such as @hourly or @every 5m.
var parser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Options tunes the sequences built by TimesWithOptions.
type Options struct {
	// Location is the time zone the expression is evaluated in. Defaults to
	// the location of the start time. A CRON_TZ prefix in the expression
	// takes precedence.
	Location *time.Location

	// MaxRuns caps the number of activation times. Zero means unbounded.
	MaxRuns int
}

// scheduleSource walks a cron.Schedule forward from a start time.
type scheduleSource struct {
	sched cron.Schedule
	prev  time.Time
	err   error
	done  bool
}

func (s *scheduleSource) Next() (time.Time, bool, error) {
	if s.err != nil {
		return time.Time{}, false, s.err
	}
	if s.done {
		return time.Time{}, false, nil
	}
	next := s.sched.Next(s.prev)
	if next.IsZero() {
		// cron gives up after five years without a match.
		s.done = true
		return time.Time{}, false, nil
	}
	s.prev = next
	return next, true, nil
}

// FromSchedule returns the activation times of sched strictly after from, in
// order. The sequence ends only when sched reports no further activation.
func FromSchedule(sched cron.Schedule, from time.Time) *lazy.Cursor[time.Time] {
	return lazy.New[time.Time](&scheduleSource{
		sched: sched,
		prev:  from,
		err:   validation.ValidateNotNil("schedule", "schedule", sched),
	})
}

// Times parses expr and returns its activation times strictly after from.
// Parse failures are reported by the first Next as an OperationError.
func Times(expr string, from time.Time) *lazy.Cursor[time.Time] {
	return TimesWithOptions(expr, from, Options{})
}

// TimesWithOptions is Times with a time zone and a run cap.
func TimesWithOptions(expr string, from time.Time, opts Options) *lazy.Cursor[time.Time] {
	src := &scheduleSource{prev: from}
	if opts.Location != nil {
		src.prev = from.In(opts.Location)
	}

	if err := validation.ValidateNotEmpty("schedule", "expr", expr); err != nil {
		src.err = err
	} else if err := validation.ValidateNonNegative("schedule", "MaxRuns", opts.MaxRuns); err != nil {
		src.err = err
	} else if sched, err := parser.Parse(expr); err != nil {
		src.err = gferrors.NewOperationError("schedule", "Parse", err).WithContext(expr)
	} else {
		src.sched = sched
	}

	c := lazy.New[time.Time](src)
	if opts.MaxRuns > 0 {
		return lazy.Take[time.Time](c, opts.MaxRuns)
	}
	return c
}

// Between returns the activation times of expr after from and strictly
// before until.
func Between(expr string, from, until time.Time) *lazy.Cursor[time.Time] {
	return lazy.TakeWhile[time.Time](Times(expr, from), func(t time.Time) bool {
		return t.Before(until)
	})
}

// Every returns from+interval, from+2*interval and so on. cron rounds the
// interval up to whole seconds and aligns each step to a second boundary.
// A non-positive interval is reported by the first Next.
func Every(interval time.Duration, from time.Time) *lazy.Cursor[time.Time] {
	if interval <= 0 {
		err := gferrors.NewValidationError("schedule", "interval", interval, "must be positive").
			WithHint("use a duration of at least one second")
		return lazy.New[time.Time](&scheduleSource{err: err})
	}
	return FromSchedule(cron.Every(interval), from)
}
