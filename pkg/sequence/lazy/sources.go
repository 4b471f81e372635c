package lazy

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/vnykmshr/golazy/pkg/common/validation"
)

// Terminate is returned by a Generate step function to end the sequence.
// It is compared by identity, so it can never collide with a real failure.
var Terminate = errors.New("lazy: terminate")

// Number is the set of types Range can count over.
type Number interface {
	constraints.Integer | constraints.Float
}

// rangeSource emits an arithmetic progression towards an exclusive bound.
type rangeSource[N Number] struct {
	cur        N
	end        N
	step       N
	descending bool
	done       bool
	err        error
}

// Range returns start, start+step, ... while the value is below end, or
// above end when end < start. The step defaults to 1; its sign is ignored and
// taken from the direction of the range. Fractional steps are supported.
// A zero step fails on the first Next.
func Range[N Number](start, end N, step ...N) *Cursor[N] {
	s := N(1)
	if len(step) > 0 {
		s = step[0]
	}
	r := &rangeSource[N]{cur: start, end: end, descending: end < start}
	if err := validation.ValidateNonZero("lazy", "step", float64(s)); err != nil {
		r.err = err
		return New[N](r)
	}
	if s < 0 {
		s = -s
	}
	r.step = s
	r.done = start == end
	return New[N](r)
}

// RangeTo is Range(0, end, step...).
func RangeTo[N Number](end N, step ...N) *Cursor[N] {
	return Range(0, end, step...)
}

func (r *rangeSource[N]) Next() (N, bool, error) {
	if r.err != nil {
		return 0, false, r.err
	}
	if r.done {
		return 0, false, nil
	}
	v := r.cur
	// Distance checks instead of cur+step keep unsigned types from wrapping.
	if r.descending {
		if r.cur-r.end <= r.step {
			r.done = true
		} else {
			r.cur -= r.step
		}
	} else {
		if r.end-r.cur <= r.step {
			r.done = true
		} else {
			r.cur += r.step
		}
	}
	return v, true, nil
}

// generateSource unfolds a seed through a step function.
type generateSource[T any] struct {
	prev    T
	next    func(T) (T, error)
	limit   int
	count   int
	started bool
	done    bool
	err     error
}

// Generate returns seed, next(seed), next(next(seed)), ... The sequence ends
// when next returns Terminate or, if a limit is given, after limit values.
// Any other error from next is returned from that Next and every later one.
// Without a limit and without Terminate the sequence is infinite and must be
// bounded by the caller, for example with Take.
func Generate[T any](seed T, next func(T) (T, error), limit ...int) *Cursor[T] {
	g := &generateSource[T]{prev: seed, next: next, limit: -1}
	if len(limit) > 0 {
		g.limit = limit[0]
		g.err = validation.ValidateNonNegative("lazy", "limit", g.limit)
	}
	return New[T](g)
}

func (g *generateSource[T]) Next() (T, bool, error) {
	var zero T
	if g.err != nil {
		return zero, false, g.err
	}
	if g.done || (g.limit >= 0 && g.count >= g.limit) {
		g.done = true
		return zero, false, nil
	}
	if g.started {
		v, err := g.next(g.prev)
		if errors.Is(err, Terminate) {
			g.done = true
			return zero, false, nil
		}
		if err != nil {
			g.err = err
			return zero, false, err
		}
		g.prev = v
	}
	g.started = true
	g.count++
	return g.prev, true, nil
}

