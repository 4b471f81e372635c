package lazy

import (
	"github.com/vnykmshr/golazy/pkg/common/validation"
)

// skipSource drops a prefix on its first Next.
type skipSource[T any] struct {
	src     *Cursor[T]
	n       int
	skipped bool
	err     error
}

// Skip drops the first n values of seq and yields the rest. A shorter
// sequence simply yields nothing. A negative n fails on the first Next.
func Skip[T any](seq Sequence[T], n int) *Cursor[T] {
	return New[T](&skipSource[T]{
		src: Iter(seq),
		n:   n,
		err: validation.ValidateNonNegative("lazy", "n", n),
	})
}

func (s *skipSource[T]) Next() (T, bool, error) {
	var zero T
	if s.err != nil {
		return zero, false, s.err
	}
	for !s.skipped && s.n > 0 {
		_, ok, err := s.src.Next()
		if err != nil {
			return zero, false, err
		}
		s.n--
		if !ok {
			// The source ended inside the skipped prefix; report that end
			// instead of pulling past it.
			s.skipped = true
			return zero, false, nil
		}
	}
	s.skipped = true
	return s.src.Next()
}

// takeSource yields a bounded prefix.
type takeSource[T any] struct {
	src  *Cursor[T]
	left int
	err  error
}

// Take yields at most the first n values of seq. Once n values have been
// produced the source is not pulled again. A negative n fails on the first
// Next.
func Take[T any](seq Sequence[T], n int) *Cursor[T] {
	return New[T](&takeSource[T]{
		src:  Iter(seq),
		left: n,
		err:  validation.ValidateNonNegative("lazy", "n", n),
	})
}

func (t *takeSource[T]) Next() (T, bool, error) {
	var zero T
	if t.err != nil {
		return zero, false, t.err
	}
	if t.left <= 0 {
		return zero, false, nil
	}
	v, ok, err := t.src.Next()
	if err != nil {
		return zero, false, err
	}
	if !ok {
		t.left = 0
		return zero, false, nil
	}
	t.left--
	return v, true, nil
}

// Slice yields the values of seq with positions in [start, end). It is
// Take(Skip(seq, start), end-start); an end past the sequence yields fewer
// values. A negative start or an end before start fails on the first Next.
func Slice[T any](seq Sequence[T], start, end int) *Cursor[T] {
	if err := validation.ValidateNonNegative("lazy", "start", start); err != nil {
		return failed[T](err)
	}
	if err := validation.ValidateOrder("lazy", "start", "end", start, end); err != nil {
		return failed[T](err)
	}
	return Take[T](Skip(seq, start), end-start)
}

// takeFromSource drops values until the predicate first holds.
type takeFromSource[T any] struct {
	src   *Cursor[T]
	pred  func(T) bool
	found bool
}

// TakeFrom drops values until pred first holds, yields that value, and then
// yields everything after it without testing pred again. If pred never holds
// the whole source is consumed and nothing is yielded.
func TakeFrom[T any](seq Sequence[T], pred func(T) bool) *Cursor[T] {
	return New[T](&takeFromSource[T]{src: Iter(seq), pred: pred})
}

func (t *takeFromSource[T]) Next() (T, bool, error) {
	if t.found {
		return t.src.Next()
	}
	for {
		v, ok, err := t.src.Next()
		if err != nil || !ok {
			return v, false, err
		}
		if t.pred(v) {
			t.found = true
			return v, true, nil
		}
	}
}

// takeUntilSource stops after the first match.
type takeUntilSource[T any] struct {
	src  *Cursor[T]
	pred func(T) bool
	done bool
}

// TakeUntil yields values up to and including the first one for which pred
// holds, then is done. If pred never holds the whole sequence is yielded.
func TakeUntil[T any](seq Sequence[T], pred func(T) bool) *Cursor[T] {
	return New[T](&takeUntilSource[T]{src: Iter(seq), pred: pred})
}

func (t *takeUntilSource[T]) Next() (T, bool, error) {
	var zero T
	if t.done {
		return zero, false, nil
	}
	v, ok, err := t.src.Next()
	if err != nil {
		return zero, false, err
	}
	if !ok {
		t.done = true
		return zero, false, nil
	}
	if t.pred(v) {
		t.done = true
	}
	return v, true, nil
}

// takeWhileSource stops at the first value failing the predicate.
type takeWhileSource[T any] struct {
	src  *Cursor[T]
	pred func(T) bool
	done bool
}

// TakeWhile yields values while pred holds. The first value for which pred
// fails is consumed but not yielded, and the cursor is done from then on,
// even if later source values would satisfy pred.
func TakeWhile[T any](seq Sequence[T], pred func(T) bool) *Cursor[T] {
	return New[T](&takeWhileSource[T]{src: Iter(seq), pred: pred})
}

func (t *takeWhileSource[T]) Next() (T, bool, error) {
	var zero T
	if t.done {
		return zero, false, nil
	}
	v, ok, err := t.src.Next()
	if err != nil {
		return zero, false, err
	}
	if !ok || !t.pred(v) {
		t.done = true
		return zero, false, nil
	}
	return v, true, nil
}

// partitionSource materializes fixed-size chunks.
type partitionSource[T any] struct {
	src     *Cursor[T]
	size    int
	partial bool
	done    bool
	err     error
}

// Partition groups the values of seq into chunks of n. Each chunk is filled
// before it is yielded. A final chunk shorter than n is yielded only when
// includePartial is given as true and the chunk is not empty. A non-positive
// n fails on the first Next.
func Partition[T any](seq Sequence[T], n int, includePartial ...bool) *Cursor[[]T] {
	return New[[]T](&partitionSource[T]{
		src:     Iter(seq),
		size:    n,
		partial: len(includePartial) > 0 && includePartial[0],
		err:     validation.ValidatePositive("lazy", "size", n),
	})
}

func (p *partitionSource[T]) Next() ([]T, bool, error) {
	if p.err != nil {
		return nil, false, p.err
	}
	if p.done {
		return nil, false, nil
	}
	chunk := make([]T, 0, p.size)
	for len(chunk) < p.size {
		v, ok, err := p.src.Next()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			p.done = true
			if p.partial && len(chunk) > 0 {
				return chunk, true, nil
			}
			return nil, false, nil
		}
		chunk = append(chunk, v)
	}
	return chunk, true, nil
}

