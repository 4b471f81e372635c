package lazy

// Pair holds two values produced side by side by Zip or Combine.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Indexed is a value with its zero-based position, produced by Enumerate.
type Indexed[T any] struct {
	Value T
	Index int
}

// concatSource drains its sequences one after another.
type concatSource[T any] struct {
	pending []Sequence[T]
	cur     *Cursor[T]
	done    bool
}

// Concat yields every value of the first sequence, then of the second, and
// so on. A nil sequence in the list, including a nil *Cursor, ends the whole
// concatenation at that point, permanently and without error; sequences
// after it are never read.
func Concat[T any](seqs ...Sequence[T]) *Cursor[T] {
	return New[T](&concatSource[T]{pending: seqs})
}

func isNil[T any](seq Sequence[T]) bool {
	if seq == nil {
		return true
	}
	cur, ok := seq.(*Cursor[T])
	return ok && cur == nil
}

func (c *concatSource[T]) Next() (T, bool, error) {
	var zero T
	for !c.done {
		if c.cur == nil {
			if len(c.pending) == 0 || isNil(c.pending[0]) {
				c.done = true
				c.pending = nil
				break
			}
			c.cur = Iter(c.pending[0])
			c.pending = c.pending[1:]
		}
		v, ok, err := c.cur.Next()
		if err != nil {
			return zero, false, err
		}
		if ok {
			return v, true, nil
		}
		c.cur = nil
	}
	return zero, false, nil
}

// flattenSource drains each inner sequence before pulling the outer one.
type flattenSource[T any, S Sequence[T]] struct {
	outer *Cursor[S]
	inner *Cursor[T]
	done  bool
}

// Flatten removes exactly one level of nesting. Empty inner sequences are
// skipped.
func Flatten[T any, S Sequence[T]](seq Sequence[S]) *Cursor[T] {
	return New[T](&flattenSource[T, S]{outer: Iter(seq)})
}

func (f *flattenSource[T, S]) Next() (T, bool, error) {
	var zero T
	for !f.done {
		if f.inner == nil {
			s, ok, err := f.outer.Next()
			if err != nil {
				return zero, false, err
			}
			if !ok {
				f.done = true
				break
			}
			f.inner = Iter[T](s)
		}
		v, ok, err := f.inner.Next()
		if err != nil {
			return zero, false, err
		}
		if ok {
			return v, true, nil
		}
		f.inner = nil
	}
	return zero, false, nil
}

// enumerateSource numbers values.
type enumerateSource[T any] struct {
	src   *Cursor[T]
	index int
}

// Enumerate pairs each value of seq with its zero-based index.
func Enumerate[T any](seq Sequence[T]) *Cursor[Indexed[T]] {
	return New[Indexed[T]](&enumerateSource[T]{src: Iter(seq)})
}

func (e *enumerateSource[T]) Next() (Indexed[T], bool, error) {
	i := e.index
	e.index++
	v, ok, err := e.src.Next()
	if err != nil || !ok {
		return Indexed[T]{}, false, err
	}
	return Indexed[T]{Value: v, Index: i}, true, nil
}

// cycleSource replays its source one lap behind.
type cycleSource[T any] struct {
	src    *Cursor[T]
	record []T
}

// Cycle yields seq once, recording every value. When the lap ends it reports
// done for that lap only and rewinds to the recorded values, so each further
// drain yields the same values again. Unlike every other adaptor, Next may
// return a value after it has reported done.
func Cycle[T any](seq Sequence[T]) *Cursor[T] {
	return New[T](&cycleSource[T]{src: Iter(seq)})
}

func (c *cycleSource[T]) Next() (T, bool, error) {
	v, ok, err := c.src.Next()
	if err != nil {
		return v, false, err
	}
	if ok {
		c.record = append(c.record, v)
		return v, true, nil
	}
	c.src = New[T](&sliceSource[T]{slice: c.record})
	c.record = make([]T, 0, len(c.record))
	var zero T
	return zero, false, nil
}

// zipSource pulls both sides in lockstep.
type zipSource[A, B any] struct {
	a    *Cursor[A]
	b    *Cursor[B]
	done bool
}

// Zip pairs the values of a and b by position and stops as soon as either
// side is done.
func Zip[A, B any](a Sequence[A], b Sequence[B]) *Cursor[Pair[A, B]] {
	return New[Pair[A, B]](&zipSource[A, B]{a: Iter(a), b: Iter(b)})
}

func (z *zipSource[A, B]) Next() (Pair[A, B], bool, error) {
	if z.done {
		return Pair[A, B]{}, false, nil
	}
	va, ok, err := z.a.Next()
	if err != nil {
		return Pair[A, B]{}, false, err
	}
	if !ok {
		z.done = true
		return Pair[A, B]{}, false, nil
	}
	vb, ok, err := z.b.Next()
	if err != nil {
		return Pair[A, B]{}, false, err
	}
	if !ok {
		z.done = true
		return Pair[A, B]{}, false, nil
	}
	return Pair[A, B]{First: va, Second: vb}, true, nil
}

// combineSource walks b once per value of a.
type combineSource[A, B any] struct {
	a     *Cursor[A]
	b     *Cursor[B]
	cur   A
	ready bool
	done  bool
}

// Combine pairs every value of a with every value of b, a-major. b is
// replayed through Cycle, so it is read from its source only once. If either
// side is empty nothing is produced.
func Combine[A, B any](a Sequence[A], b Sequence[B]) *Cursor[Pair[A, B]] {
	return New[Pair[A, B]](&combineSource[A, B]{a: Iter(a), b: Cycle(b)})
}

func (c *combineSource[A, B]) Next() (Pair[A, B], bool, error) {
	if c.done {
		return Pair[A, B]{}, false, nil
	}
	if !c.ready {
		if err := c.advanceA(); err != nil || c.done {
			return Pair[A, B]{}, false, err
		}
	}
	vb, ok, err := c.b.Next()
	if err != nil {
		return Pair[A, B]{}, false, err
	}
	if !ok {
		// b finished a lap: move to the next a and start b over.
		if err := c.advanceA(); err != nil || c.done {
			return Pair[A, B]{}, false, err
		}
		vb, ok, err = c.b.Next()
		if err != nil {
			return Pair[A, B]{}, false, err
		}
		if !ok {
			c.done = true
			return Pair[A, B]{}, false, nil
		}
	}
	return Pair[A, B]{First: c.cur, Second: vb}, true, nil
}

func (c *combineSource[A, B]) advanceA() error {
	va, ok, err := c.a.Next()
	if err != nil {
		return err
	}
	if !ok {
		c.done = true
		return nil
	}
	c.cur = va
	c.ready = true
	return nil
}

