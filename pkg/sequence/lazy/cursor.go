package lazy

import (
	"fmt"
	"iter"

	gferrors "github.com/vnykmshr/golazy/pkg/common/errors"
)

// ErrNotIterable is returned by the first Next of a cursor built from a value
// that cannot produce one.
var ErrNotIterable = gferrors.ErrNotIterable

// Source is the single-method protocol behind every Cursor.
//
// Next returns the next value and true, or the zero value and false once the
// sequence is done. A non-nil error means the pull chain failed.
type Source[T any] interface {
	Next() (T, bool, error)
}

// Sequence is anything that can produce a Cursor.
type Sequence[T any] interface {
	Cursor() *Cursor[T]
}

// Cursor is a stateful, single-pass pull handle over a Source.
//
// After Next reports done, every further call reports done again; Cycle is
// the only exception. A Cursor is also a Sequence whose Cursor method returns
// the receiver, so adaptors can wrap adaptors.
type Cursor[T any] struct {
	src Source[T]
}

// New wraps a Source in a Cursor.
func New[T any](src Source[T]) *Cursor[T] {
	return &Cursor[T]{src: src}
}

// Next advances the cursor.
func (c *Cursor[T]) Next() (T, bool, error) {
	return c.src.Next()
}

// Cursor returns the receiver.
func (c *Cursor[T]) Cursor() *Cursor[T] {
	return c
}

// All adapts the cursor for range-over-func.
func (c *Cursor[T]) All() iter.Seq2[T, error] {
	return All[T](c)
}

// List is a reusable Sequence backed by a slice. Every call to Cursor
// returns a new, independent cursor.
type List[T any] []T

// Of returns the given values as a List.
func Of[T any](values ...T) List[T] {
	return List[T](values)
}

// Cursor implements Sequence.
func (l List[T]) Cursor() *Cursor[T] {
	return New[T](&sliceSource[T]{slice: l})
}

// String is a reusable Sequence over the runes of a string.
type String string

// Cursor implements Sequence.
func (s String) Cursor() *Cursor[rune] {
	return New[rune](&sliceSource[rune]{slice: []rune(s)})
}

// Empty returns a cursor that is done from the start.
func Empty[T any]() *Cursor[T] {
	return New[T](&sliceSource[T]{})
}

// sliceSource walks a slice by index.
type sliceSource[T any] struct {
	slice []T
	index int
}

func (s *sliceSource[T]) Next() (T, bool, error) {
	if s.index >= len(s.slice) {
		var zero T
		return zero, false, nil
	}
	s.index++
	return s.slice[s.index-1], true, nil
}

// deferredSource asks its sequence for a cursor on the first Next.
type deferredSource[T any] struct {
	seq Sequence[T]
	cur *Cursor[T]
}

func (d *deferredSource[T]) Next() (T, bool, error) {
	if d.cur == nil {
		d.cur = d.seq.Cursor()
		d.seq = nil
		if d.cur == nil {
			d.cur = failed[T](ErrNotIterable)
		}
	}
	return d.cur.Next()
}

// errSource fails every Next with the same error.
type errSource[T any] struct {
	err error
}

func (e *errSource[T]) Next() (T, bool, error) {
	var zero T
	return zero, false, e.err
}

func failed[T any](err error) *Cursor[T] {
	return New[T](&errSource[T]{err: err})
}

// Iter coerces a Sequence to a Cursor. A Cursor is returned as is. Any other
// sequence is asked for its cursor on the first Next, not before. A nil
// sequence yields a cursor whose first Next fails with ErrNotIterable.
func Iter[T any](seq Sequence[T]) *Cursor[T] {
	switch s := seq.(type) {
	case nil:
		return failed[T](ErrNotIterable)
	case *Cursor[T]:
		if s == nil {
			return failed[T](ErrNotIterable)
		}
		return s
	default:
		return New[T](&deferredSource[T]{seq: s})
	}
}

// IterAny coerces an untyped value to a Cursor. It accepts a Sequence[any],
// a []any or a string (yielding runes). Any other value produces a cursor
// that fails with ErrNotIterable when first advanced.
func IterAny(v any) *Cursor[any] {
	switch x := v.(type) {
	case Sequence[any]:
		return Iter(x)
	case []any:
		return Iter[any](List[any](x))
	case string:
		return Map[rune, any](String(x), func(r rune) any { return r })
	default:
		err := gferrors.NewOperationError("lazy", "IterAny", ErrNotIterable).
			WithContext(fmt.Sprintf("%T", v))
		return failed[any](err)
	}
}

// Collect drains seq into a slice.
func Collect[T any](seq Sequence[T]) ([]T, error) {
	c := Iter(seq)
	var out []T
	for {
		v, ok, err := c.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// ForEach drains seq, calling fn once per value in order.
func ForEach[T any](seq Sequence[T], fn func(T)) error {
	c := Iter(seq)
	for {
		v, ok, err := c.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fn(v)
	}
}

// All adapts seq for range-over-func. A failure is yielded once with the
// zero value and ends the iteration.
func All[T any](seq Sequence[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		c := Iter(seq)
		for {
			v, ok, err := c.Next()
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok || !yield(v, nil) {
				return
			}
		}
	}
}
