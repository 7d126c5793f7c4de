package arr

import "errors"

// Sentinel errors returned by array operations.
var (
	// ErrNotSlice is returned by Zip when an argument is not a slice or an
	// array.
	ErrNotSlice = errors.New("arr: argument is not a slice or array")
)
