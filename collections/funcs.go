package collections

import (
	"math"
	"reflect"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/funcs"
)

// This file contains the derived collection operations. Every function here
// iterates through [Each] and never inspects the shape of its input itself;
// shape-preserving results are built with emptyLike + add.

// Map applies fn to every element and returns a collection of the same shape:
// a sequence for a sequence, a mapping with the same keys for a mapping.
//
//	collections.Map(collections.New(1, 2, 3),
//	    func(n int, _ collections.Key) int { return n * 2 }) // → [2 4 6]
func Map[T, U any](c *Collection[T], fn func(T, Key) U) *Collection[U] {
	out := emptyLike[T, U](c)
	Each(c, func(v T, k Key, _ *Collection[T]) {
		out.add(k, fn(v, k))
	})
	return out
}

// Filter returns the elements for which fn returns true. Sequences keep
// their relative order and are re-indexed; mappings keep their keys.
func Filter[T any](c *Collection[T], fn func(T, Key) bool) *Collection[T] {
	out := emptyLike[T, T](c)
	Each(c, func(v T, k Key, _ *Collection[T]) {
		if fn(v, k) {
			out.add(k, v)
		}
	})
	return out
}

// Reject is the complement of [Filter].
func Reject[T any](c *Collection[T], fn func(T, Key) bool) *Collection[T] {
	return Filter(c, func(v T, k Key) bool { return !fn(v, k) })
}

// Reduce folds c from the left without an initial accumulator: the first
// element seeds the accumulator and is not passed through fn.
// The boolean is false when c is empty and there is nothing to return.
//
//	sum, _ := collections.Reduce(collections.New(1, 2, 3),
//	    func(acc, n int, _ collections.Key) int { return acc + n }) // → 6
func Reduce[T any](c *Collection[T], fn func(acc, v T, k Key) T) (T, bool) {
	var acc T
	seeded := false
	Each(c, func(v T, k Key, _ *Collection[T]) {
		if !seeded {
			acc, seeded = v, true
			return
		}
		acc = fn(acc, v, k)
	})
	return acc, seeded
}

// ReduceFrom folds c from the left starting at initial.
//
//	collections.ReduceFrom(collections.New(1, 2, 3),
//	    func(acc, n int, _ collections.Key) int { return acc + n }, 10) // → 16
func ReduceFrom[T, U any](c *Collection[T], fn func(acc U, v T, k Key) U, initial U) U {
	acc := initial
	Each(c, func(v T, k Key, _ *Collection[T]) {
		acc = fn(acc, v, k)
	})
	return acc
}

// Contains reports whether some element equals target.
// The whole collection is visited; a match is carried through the fold.
//
// When T is an interface type such as any, every dynamic value must be
// comparable: a slice, map or func value panics at run time as it does
// with ==.
func Contains[T comparable](c *Collection[T], target T) bool {
	return ReduceFrom(c, func(found bool, v T, _ Key) bool {
		if found {
			return true
		}
		return v == target
	}, false)
}

// Every reports whether fn holds for all elements. A nil fn tests the
// truthiness of the elements themselves. An empty collection yields true.
func Every[T any](c *Collection[T], fn func(T) bool) bool {
	if fn == nil {
		fn = func(v T) bool { return Truthy(funcs.Identity(v)) }
	}
	return ReduceFrom(c, func(all bool, v T, _ Key) bool {
		return all && fn(v)
	}, true)
}

// Some reports whether fn holds for at least one element. A nil fn tests the
// truthiness of the elements themselves. It is defined as the negation of
// [Every] with a negated predicate.
func Some[T any](c *Collection[T], fn func(T) bool) bool {
	if fn == nil {
		fn = func(v T) bool { return Truthy(funcs.Identity(v)) }
	}
	return !Every(c, func(v T) bool { return !fn(v) })
}

// Truthy reports whether v counts as true when no predicate is supplied:
// nil, false, NaN and zero values are false; everything else is true.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0 && !math.IsNaN(b)
	case float32:
		return b != 0 && !math.IsNaN(float64(b))
	}
	return !reflect.ValueOf(v).IsZero()
}

// Pluck maps every record to its value under key. Records missing the key
// yield the zero value.
//
//	names := collections.Pluck(users, "name")
func Pluck[V any](c *Collection[map[string]V], key string) *Collection[V] {
	return Map(c, func(record map[string]V, _ Key) V {
		return record[key]
	})
}

// PluckPath is [Pluck] for nested records addressed with dot notation
// ("user.address.city"). Missing paths yield nil.
func PluckPath(c *Collection[map[string]any], path string) *Collection[any] {
	return Map(c, func(record map[string]any, _ Key) any {
		return arr.Get(record, path)
	})
}

// Uniq returns the values of c keeping the first occurrence of each distinct
// value, in order of first occurrence. The result is a sequence.
//
// When T is an interface type such as any, every dynamic value must be
// comparable: a slice, map or func value panics at run time as it does
// with ==.
func Uniq[T comparable](c *Collection[T]) *Collection[T] {
	seen := make(map[T]struct{}, c.Len())
	out := make([]T, 0, c.Len())
	Each(c, func(v T, _ Key, _ *Collection[T]) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	})
	return &Collection[T]{shape: Sequence, items: out}
}
