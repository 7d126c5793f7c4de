// Package arr provides standalone generic helpers for plain Go slices, plus
// dot-notation reads from nested map[string]any records.
//
// # Slice helpers
//
// The helpers operate on []T directly and never modify their input:
//
//	arr.FirstN([]int{1, 2, 3}, 2)                         // → [1 2]
//	arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4})     // → [2 3]
//	arr.Difference([]int{1, 2, 3}, []int{2})             // → [1 3]
//	arr.Flatten([]any{1, []any{2, []any{3}}}, true)      // → [1 2 [3]]
//
// [Zip] and [Flatten] work on untyped values because their inputs are
// heterogeneous; [Zip] reports non-slice arguments with [ErrNotSlice].
//
// # Dot-notation access
//
//	arr.Get(m, "user.address.city")  // → "London"
//	arr.Has(m, "user.name")          // → true
package arr
