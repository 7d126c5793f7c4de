package collections

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/hasbyte1/go-underscore/arr"
)

// sortEntry decorates a value with its criterion and original position.
// The position is the final tie-break, which makes the sort stable.
type sortEntry[T any, K cmp.Ordered] struct {
	value     T
	index     int
	criterion K
	defined   bool
}

// SortBy returns the values of c ordered by the criterion fn computes for
// each element. Elements with equal criteria keep their original relative
// order. The result is a sequence.
//
//	byAge := collections.SortBy(people, func(p Person, _ collections.Key) int { return p.Age })
func SortBy[T any, K cmp.Ordered](c *Collection[T], fn func(T, Key) K) *Collection[T] {
	return sortBy(c, func(v T, k Key) (K, bool) { return fn(v, k), true })
}

// SortByKey orders records by their value under key. Records without the key
// sort after every record that has it.
func SortByKey[V cmp.Ordered](c *Collection[map[string]V], key string) *Collection[map[string]V] {
	return sortBy(c, func(record map[string]V, _ Key) (V, bool) {
		v, ok := record[key]
		return v, ok
	})
}

func sortBy[T any, K cmp.Ordered](c *Collection[T], fn func(T, Key) (K, bool)) *Collection[T] {
	entries := make([]sortEntry[T, K], 0, c.Len())
	Each(c, func(v T, k Key, _ *Collection[T]) {
		criterion, ok := fn(v, k)
		entries = append(entries, sortEntry[T, K]{
			value:     v,
			index:     len(entries),
			criterion: criterion,
			defined:   ok,
		})
	})
	slices.SortFunc(entries, func(a, b sortEntry[T, K]) int {
		if a.defined != b.defined {
			if a.defined {
				return -1
			}
			return 1
		}
		if a.defined {
			if r := cmp.Compare(a.criterion, b.criterion); r != 0 {
				return r
			}
		}
		return cmp.Compare(a.index, b.index)
	})
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return &Collection[T]{shape: Sequence, items: out}
}

// Shuffle returns the values of c in a random order. See [arr.Shuffle],
// including its restriction on interface-typed values.
func Shuffle[T comparable](c *Collection[T]) *Collection[T] {
	return &Collection[T]{shape: Sequence, items: arr.Shuffle(c.Values())}
}

// ShuffleWith is [Shuffle] with an explicit random source.
func ShuffleWith[T comparable](c *Collection[T], rng *rand.Rand) *Collection[T] {
	return &Collection[T]{shape: Sequence, items: arr.ShuffleWith(c.Values(), rng)}
}
