/*
Package lazy provides a pull-based cursor protocol and a set of composable,
lazy sequence adaptors.

Core Concepts:

A Cursor is a stateful, single-pass handle with one operation, Next. Next
returns the next value and true, or false once the sequence is done. A
Sequence is anything that can produce a Cursor: a List, a String, a range,
or another Cursor (which produces itself).

Adaptors wrap sequences and return new cursors. Nothing happens when an
adaptor is built; values are pulled from upstream only when the returned
cursor is advanced, one upstream pull per downstream need.

	evens := lazy.Filter(lazy.RangeTo(10), func(x int) bool { return x%2 == 0 })
	squares := lazy.Map(evens, func(x int) int { return x * x })

	values, err := lazy.Collect(squares) // [0 4 16 36 64]

Adaptors:

  - Sources: Range, RangeTo, Generate, Of, Empty
  - Elementwise: Map, TryMap, Filter, TryFilter, Touch
  - Structural: Concat, Flatten, Enumerate, Cycle, Zip, Combine
  - Windowing: Skip, Take, Slice, TakeFrom, TakeUntil, TakeWhile, Partition
  - Aggregation: GroupBy

Done Is Sticky:

Once Next reports done, every further call reports done as well. Cycle is
the only exception: done ends a lap and the next call starts the sequence
over from a recording of the previous lap.

Errors:

Invalid arguments (a zero Range step, a negative Take count, a non-positive
Partition size) are reported by the first Next, not by the constructor.
Errors from TryMap and TryFilter callbacks are wrapped in an OperationError.
Panics in callbacks propagate unchanged; no adaptor recovers.

Infinite Sequences:

Generate without a limit and Cycle never finish on their own. Bound them
with Take, TakeWhile or TakeUntil:

	powers := lazy.Generate(1, func(x int) (int, error) { return x * 2, nil })
	first, _ := lazy.Collect(lazy.Take(powers, 5)) // [1 2 4 8 16]

Concurrency:

Cursors start no goroutines and are not safe for concurrent use.
*/
package lazy
