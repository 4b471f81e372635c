package chain

import (
	"iter"

	"github.com/vnykmshr/golazy/pkg/metrics"
	"github.com/vnykmshr/golazy/pkg/sequence/lazy"
	"github.com/vnykmshr/golazy/pkg/sequence/observe"
)

// Chain threads one current cursor through successive adaptors. Every
// type-preserving method replaces the current cursor with the adaptor applied
// to it and returns the same Chain, so calls compose left to right.
//
// A Chain is itself a cursor source: Next pulls from the current cursor.
type Chain[T any] struct {
	cursor *lazy.Cursor[T]
}

// From wraps seq in a new Chain.
func From[T any](seq lazy.Sequence[T]) *Chain[T] {
	return &Chain[T]{cursor: lazy.Iter(seq)}
}

// Map replaces each value with fn(value). Use the package-level Map to
// change the element type.
func (c *Chain[T]) Map(fn func(T) T) *Chain[T] {
	c.cursor = lazy.Map(c.cursor, fn)
	return c
}

// Filter keeps the values for which pred holds.
func (c *Chain[T]) Filter(pred func(T) bool) *Chain[T] {
	c.cursor = lazy.Filter(c.cursor, pred)
	return c
}

// Touch calls fn for every value without changing it.
func (c *Chain[T]) Touch(fn func(T)) *Chain[T] {
	c.cursor = lazy.Touch(c.cursor, fn)
	return c
}

// Concat appends seqs after the current values. A nil entry ends the
// concatenation at that point.
func (c *Chain[T]) Concat(seqs ...lazy.Sequence[T]) *Chain[T] {
	all := make([]lazy.Sequence[T], 0, len(seqs)+1)
	all = append(all, c.cursor)
	c.cursor = lazy.Concat(append(all, seqs...)...)
	return c
}

// Cycle replays the values lap after lap.
func (c *Chain[T]) Cycle() *Chain[T] {
	c.cursor = lazy.Cycle(c.cursor)
	return c
}

// Skip drops the first n values.
func (c *Chain[T]) Skip(n int) *Chain[T] {
	c.cursor = lazy.Skip(c.cursor, n)
	return c
}

// Take keeps at most n values.
func (c *Chain[T]) Take(n int) *Chain[T] {
	c.cursor = lazy.Take(c.cursor, n)
	return c
}

// Slice keeps the values with positions in [start, end).
func (c *Chain[T]) Slice(start, end int) *Chain[T] {
	c.cursor = lazy.Slice(c.cursor, start, end)
	return c
}

// TakeFrom drops values until pred first holds.
func (c *Chain[T]) TakeFrom(pred func(T) bool) *Chain[T] {
	c.cursor = lazy.TakeFrom(c.cursor, pred)
	return c
}

// TakeUntil keeps values up to and including the first match of pred.
func (c *Chain[T]) TakeUntil(pred func(T) bool) *Chain[T] {
	c.cursor = lazy.TakeUntil(c.cursor, pred)
	return c
}

// TakeWhile keeps values while pred holds.
func (c *Chain[T]) TakeWhile(pred func(T) bool) *Chain[T] {
	c.cursor = lazy.TakeWhile(c.cursor, pred)
	return c
}

// Instrument records pull metrics under name in reg.
func (c *Chain[T]) Instrument(name string, reg *metrics.Registry) *Chain[T] {
	c.cursor = observe.Instrument(c.cursor, name, reg)
	return c
}

// Log logs every step with cfg.
func (c *Chain[T]) Log(cfg observe.LogConfig) *Chain[T] {
	c.cursor = observe.Log(c.cursor, cfg)
	return c
}

// Next advances the current cursor.
func (c *Chain[T]) Next() (T, bool, error) {
	return c.cursor.Next()
}

// Cursor returns a cursor that pulls through the chain, including adaptors
// added after the call.
func (c *Chain[T]) Cursor() *lazy.Cursor[T] {
	return lazy.New[T](c)
}

// All adapts the chain for range-over-func.
func (c *Chain[T]) All() iter.Seq2[T, error] {
	return lazy.All[T](c)
}

// ForEach pulls the chain to completion, calling fn once per value in order.
func (c *Chain[T]) ForEach(fn func(T)) error {
	return lazy.ForEach[T](c, fn)
}

// Collect pulls the chain to completion and returns the values.
func (c *Chain[T]) Collect() ([]T, error) {
	return lazy.Collect[T](c)
}

// release hands the current cursor to a new chain and leaves c exhausted,
// so two chains never pull from the same cursor.
func (c *Chain[T]) release() *lazy.Cursor[T] {
	cur := c.cursor
	c.cursor = lazy.Empty[T]()
	return cur
}
