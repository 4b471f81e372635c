package lazy

import (
	gferrors "github.com/vnykmshr/golazy/pkg/common/errors"
)

// mapSource transforms each value through fn.
type mapSource[T, U any] struct {
	src *Cursor[T]
	fn  func(T) (U, error)
}

// Map returns a cursor yielding fn(v) for every v of seq. fn runs once per
// value, only when the returned cursor is advanced.
func Map[T, U any](seq Sequence[T], fn func(T) U) *Cursor[U] {
	return New[U](&mapSource[T, U]{
		src: Iter(seq),
		fn:  func(v T) (U, error) { return fn(v), nil },
	})
}

// TryMap is Map with a fallible transform. An error from fn is wrapped in an
// OperationError and returned from Next.
func TryMap[T, U any](seq Sequence[T], fn func(T) (U, error)) *Cursor[U] {
	return New[U](&mapSource[T, U]{
		src: Iter(seq),
		fn: func(v T) (U, error) {
			u, err := fn(v)
			if err != nil {
				return u, gferrors.NewOperationError("lazy", "TryMap", err)
			}
			return u, nil
		},
	})
}

func (m *mapSource[T, U]) Next() (U, bool, error) {
	var zero U
	v, ok, err := m.src.Next()
	if err != nil || !ok {
		return zero, false, err
	}
	u, err := m.fn(v)
	if err != nil {
		return zero, false, err
	}
	return u, true, nil
}

// filterSource skips values failing pred.
type filterSource[T any] struct {
	src  *Cursor[T]
	pred func(T) (bool, error)
}

// Filter returns a cursor yielding only the values of seq for which pred
// holds. Values are pulled and tested one at a time.
func Filter[T any](seq Sequence[T], pred func(T) bool) *Cursor[T] {
	return New[T](&filterSource[T]{
		src:  Iter(seq),
		pred: func(v T) (bool, error) { return pred(v), nil },
	})
}

// TryFilter is Filter with a fallible predicate. An error from pred is
// wrapped in an OperationError and returned from Next.
func TryFilter[T any](seq Sequence[T], pred func(T) (bool, error)) *Cursor[T] {
	return New[T](&filterSource[T]{
		src: Iter(seq),
		pred: func(v T) (bool, error) {
			keep, err := pred(v)
			if err != nil {
				return false, gferrors.NewOperationError("lazy", "TryFilter", err)
			}
			return keep, nil
		},
	})
}

func (f *filterSource[T]) Next() (T, bool, error) {
	var zero T
	for {
		v, ok, err := f.src.Next()
		if err != nil || !ok {
			return zero, false, err
		}
		keep, err := f.pred(v)
		if err != nil {
			return zero, false, err
		}
		if keep {
			return v, true, nil
		}
	}
}

// touchSource observes each value.
type touchSource[T any] struct {
	src *Cursor[T]
	fn  func(T)
}

// Touch calls fn for every value of seq and passes the value on unchanged.
func Touch[T any](seq Sequence[T], fn func(T)) *Cursor[T] {
	return New[T](&touchSource[T]{src: Iter(seq), fn: fn})
}

func (t *touchSource[T]) Next() (T, bool, error) {
	v, ok, err := t.src.Next()
	if ok && err == nil {
		t.fn(v)
	}
	return v, ok, err
}

