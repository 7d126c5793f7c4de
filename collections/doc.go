// Package collections provides generic operations that work uniformly over
// ordered sequences and string-keyed mappings.
//
// # Overview
//
// A [Collection][T] is a tagged union: it holds either a sequence ([]T) or a
// mapping (an insertion-ordered string → T map). [Each] is the single
// iteration primitive; it is the only function that looks at the tag. Every
// other operation is written on top of it:
//
//	seq := collections.New(1, 2, 3)
//	obj := collections.FromMap(map[string]int{"a": 1, "b": 2})
//
//	double := func(n int, _ collections.Key) int { return n * 2 }
//	collections.Map(seq, double) // → [2,4,6]
//	collections.Map(obj, double) // → {"a":2,"b":4}
//
// # Shapes
//
// [Map], [Filter], [Reject] and [InvokeMethod] preserve the shape of their
// input: mappings keep their keys, sequences are re-indexed. [SortBy],
// [SortByKey], [Uniq] and [Shuffle] always produce sequences.
//
// # Immutability
//
// No function in this package mutates its input. Constructors copy the slice
// or map they are given.
//
// # Folding
//
// [Reduce] seeds the accumulator with the first element; [ReduceFrom] takes
// an explicit initial value:
//
//	sum, _ := collections.Reduce(seq, func(acc, n int, _ collections.Key) int { return acc + n })     // 6
//	sum10 := collections.ReduceFrom(seq, func(acc, n int, _ collections.Key) int { return acc + n }, 10) // 16
//
// [Contains], [Every] and [Some] are folds as well.
package collections
