package arr

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements. n may exceed len(items);
// n <= 0 yields an empty slice.
func FirstN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements in their original order.
func LastN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}

// IndexOf returns the index of the first occurrence of value, or -1.
//
// When T is an interface type such as any, every dynamic value must be
// comparable: a slice, map or func value panics at run time as it does
// with ==.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice keeping the first occurrence of every value.
//
// When T is an interface type such as any, every dynamic value must be
// comparable: a slice, map or func value panics at run time as it does
// with ==.
func Uniq[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Intersection returns the values of first that occur in every slice of
// others, in first's order and without duplicates.
//
//	Intersection([]int{1, 2, 3}, []int{2, 3, 4}) // → [2 3]
//
// Interface-typed values must be comparable at run time, as for [Uniq].
func Intersection[T comparable](first []T, others ...[]T) []T {
	sets := make([]map[T]struct{}, len(others))
	for i, other := range others {
		sets[i] = toSet(other)
	}
	out := make([]T, 0)
	for _, item := range Uniq(first) {
		if inAll(item, sets) {
			out = append(out, item)
		}
	}
	return out
}

// Difference returns the values of items that occur in none of others, in
// their original order and without duplicates.
//
//	Difference([]int{1, 2, 3}, []int{2}) // → [1 3]
//
// Interface-typed values must be comparable at run time, as for [Uniq].
func Difference[T comparable](items []T, others ...[]T) []T {
	excluded := make(map[T]struct{})
	for _, other := range others {
		for _, item := range other {
			excluded[item] = struct{}{}
		}
	}
	out := make([]T, 0)
	for _, item := range Uniq(items) {
		if _, found := excluded[item]; !found {
			out = append(out, item)
		}
	}
	return out
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func inAll[T comparable](item T, sets []map[T]struct{}) bool {
	for _, set := range sets {
		if _, ok := set[item]; !ok {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups the i-th elements of every argument into the i-th tuple.
// The result is as long as the longest argument; positions past the end of a
// shorter argument hold nil.
//
// Every argument must be a slice or an array; anything else returns an error
// wrapping [ErrNotSlice].
//
//	Zip([]int{1, 2}, []int{3, 4}, []int{5, 6}) // → [[1 3 5] [2 4 6]]
func Zip(arrays ...any) ([][]any, error) {
	values := make([]reflect.Value, len(arrays))
	longest := 0
	for i, a := range arrays {
		v := reflect.ValueOf(a)
		if a == nil || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
			return nil, fmt.Errorf("%w: argument %d is %T", ErrNotSlice, i, a)
		}
		values[i] = v
		if v.Len() > longest {
			longest = v.Len()
		}
	}
	out := make([][]any, longest)
	for i := range out {
		tuple := make([]any, len(values))
		for j, v := range values {
			if i < v.Len() {
				tuple[j] = v.Index(i).Interface()
			}
		}
		out[i] = tuple
	}
	return out, nil
}

// Flatten flattens nested []any values depth-first into a single slice.
// With shallow set, only one level of nesting is removed.
//
//	Flatten([]any{1, []any{2, []any{3, []any{4}}}}, false) // → [1 2 3 4]
//	Flatten([]any{1, []any{2, []any{3}}}, true)             // → [1 2 [3]]
func Flatten(items []any, shallow bool) []any {
	out := make([]any, 0, len(items))
	var flatten func(items []any, depth int)
	flatten = func(items []any, depth int) {
		for _, item := range items {
			nested, ok := item.([]any)
			if !ok || (shallow && depth > 0) {
				out = append(out, item)
				continue
			}
			flatten(nested, depth+1)
		}
	}
	flatten(items, 0)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly ordered copy of items using the global random
// source. See [ShuffleWith].
func Shuffle[T comparable](items []T) []T {
	return ShuffleWith(items, nil)
}

// ShuffleWith returns a randomly ordered copy of items drawn from rng (the
// global source when rng is nil).
//
// Whenever items can be arranged in more than one distinguishable order the
// result differs from the input: identical permutations are drawn again.
// Slices of fewer than two elements, or whose elements are all equal, are
// returned as a plain copy.
//
// When T is an interface type such as any, every dynamic value must be
// comparable: a slice, map or func value panics at run time as it does
// with ==.
func ShuffleWith[T comparable](items []T, rng *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	if !hasDistinct(items) {
		return out
	}
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	for slices.Equal(out, items) {
		shuffle(len(out), swap)
	}
	return out
}

func hasDistinct[T comparable](items []T) bool {
	for _, item := range items[min(1, len(items)):] {
		if item != items[0] {
			return true
		}
	}
	return false
}
