package derive

import (
	"cmp"
	"slices"
)

// tally accumulates values per name and remembers the order names were first seen.
type tally[V any] struct {
	names  []string
	values map[string]*V
}

func newTally[V any]() *tally[V] {
	return &tally[V]{values: make(map[string]*V)}
}

func (t *tally[V]) add(name string, update func(value *V)) {
	value, ok := t.values[name]
	if !ok {
		value = new(V)
		t.values[name] = value
		t.names = append(t.names, name)
	}

	update(value)
}

// sortedDesc builds one result per name and sorts by key descending. Ties keep first-seen order.
func sortedDesc[V any, R any, K cmp.Ordered](t *tally[V], build func(name string, value V) R, key func(R) K) []R {
	results := make([]R, 0, len(t.names))
	for _, name := range t.names {
		results = append(results, build(name, *t.values[name]))
	}

	slices.SortStableFunc(results, func(a, b R) int {
		return cmp.Compare(key(b), key(a))
	})

	return results
}
