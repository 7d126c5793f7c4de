package funcs

// Identity returns v unchanged. It is the default predicate of the
// collection folds that take an optional one.
func Identity[T any](v T) T { return v }
