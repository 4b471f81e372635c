package lazy

// Group is a run of consecutive values that share a label.
type Group[K comparable, T any] struct {
	Label  K
	Values []T
}

// groupSource holds the first value of the next run between calls.
type groupSource[T any, K comparable] struct {
	src      *Cursor[T]
	classify func(T) K
	pending  T
	label    K
	holding  bool
	done     bool
}

// GroupBy collects consecutive values of seq whose labels compare equal into
// one Group. Groups follow contiguity: a label that appears again after a
// different one starts a new Group.
func GroupBy[T any, K comparable](seq Sequence[T], classify func(T) K) *Cursor[Group[K, T]] {
	return New[Group[K, T]](&groupSource[T, K]{src: Iter(seq), classify: classify})
}

func (g *groupSource[T, K]) Next() (Group[K, T], bool, error) {
	if g.done {
		return Group[K, T]{}, false, nil
	}
	if !g.holding {
		v, ok, err := g.src.Next()
		if err != nil {
			return Group[K, T]{}, false, err
		}
		if !ok {
			g.done = true
			return Group[K, T]{}, false, nil
		}
		g.hold(v)
	}

	// The held value stays held until its group is emitted, so a failure
	// while scanning the run does not drop it.
	group := Group[K, T]{Label: g.label, Values: []T{g.pending}}
	for {
		v, ok, err := g.src.Next()
		if err != nil {
			return Group[K, T]{}, false, err
		}
		if !ok {
			g.holding = false
			g.done = true
			return group, true, nil
		}
		if label := g.classify(v); label != group.Label {
			g.pending, g.label, g.holding = v, label, true
			return group, true, nil
		}
		group.Values = append(group.Values, v)
	}
}

func (g *groupSource[T, K]) hold(v T) {
	g.pending = v
	g.label = g.classify(v)
	g.holding = true
}

