/*
Package golazy provides lazy, pull-based sequence transformation for Go.

Nothing is computed until a value is requested: every adaptor returns a
cursor that pulls from its inputs one element at a time.

Core (pkg/sequence/lazy):
  - Cursor protocol: Source, Cursor, Sequence, Iter, IterAny
  - Sources: Of, String, Range, RangeTo, Generate
  - Elementwise: Map, TryMap, Filter, TryFilter, Touch
  - Structural: Concat, Flatten, Enumerate, Cycle, Zip, Combine
  - Windowing: Skip, Take, Slice, TakeFrom, TakeUntil, TakeWhile, Partition
  - Aggregation: GroupBy
  - Drivers: Collect, ForEach, All

Composition (pkg/sequence/chain):
  - Chain: fluent builder over one current cursor

Observability (pkg/sequence/observe, pkg/metrics):
  - Instrument: Prometheus counters and pull latency per cursor
  - Log: slog-compatible logging of values, done and failures

Scheduling (pkg/sequence/schedule):
  - Times, Between, Every: cron activation times as sequences

Example usage:

	import (
		"github.com/vnykmshr/golazy/pkg/sequence/chain"
		"github.com/vnykmshr/golazy/pkg/sequence/lazy"
	)

	evens, err := chain.From(lazy.RangeTo(100)).
		Filter(func(x int) bool { return x%2 == 0 }).
		Take(5).
		Collect()

Cursors are single-threaded and single-pass. Errors from invalid arguments
are reported by the first Next, not at construction.
*/
package golazy
