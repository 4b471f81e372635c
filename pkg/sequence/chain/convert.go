package chain

import (
	"github.com/vnykmshr/golazy/pkg/sequence/lazy"
)

// The operations below change the element type. Go methods cannot declare
// type parameters, so they take the chain as an argument. Each one moves the
// current cursor into the returned chain; the argument chain is exhausted
// afterwards.

// Map continues c with fn applied to every value.
func Map[T, U any](c *Chain[T], fn func(T) U) *Chain[U] {
	return &Chain[U]{cursor: lazy.Map(c.release(), fn)}
}

// Flatten continues c with its inner sequences flattened by one level.
func Flatten[T any, S lazy.Sequence[T]](c *Chain[S]) *Chain[T] {
	return &Chain[T]{cursor: lazy.Flatten[T, S](c.release())}
}

// Enumerate continues c with each value paired with its index.
func Enumerate[T any](c *Chain[T]) *Chain[lazy.Indexed[T]] {
	return &Chain[lazy.Indexed[T]]{cursor: lazy.Enumerate(c.release())}
}

// Zip continues c with its values paired positionally with other.
func Zip[A, B any](c *Chain[A], other lazy.Sequence[B]) *Chain[lazy.Pair[A, B]] {
	return &Chain[lazy.Pair[A, B]]{cursor: lazy.Zip(c.release(), other)}
}

// Combine continues c with every value paired with every value of other.
func Combine[A, B any](c *Chain[A], other lazy.Sequence[B]) *Chain[lazy.Pair[A, B]] {
	return &Chain[lazy.Pair[A, B]]{cursor: lazy.Combine(c.release(), other)}
}

// GroupBy continues c with contiguous runs sharing a label.
func GroupBy[T any, K comparable](c *Chain[T], classify func(T) K) *Chain[lazy.Group[K, T]] {
	return &Chain[lazy.Group[K, T]]{cursor: lazy.GroupBy(c.release(), classify)}
}

// Partition continues c with chunks of n values.
func Partition[T any](c *Chain[T], n int, includePartial ...bool) *Chain[[]T] {
	return &Chain[[]T]{cursor: lazy.Partition(c.release(), n, includePartial...)}
}
