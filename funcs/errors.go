package funcs

import "errors"

// Sentinel errors returned by decorators.
//
// Use [errors.Is] for comparisons:
//
//	_, err := memo.Invoke(args)
//	if errors.Is(err, funcs.ErrUnserializableArgs) {
//	    // args contain a cycle, a func or a channel
//	}
var (
	// ErrUnserializableArgs is returned by Memoize wrappers when the argument
	// list cannot be encoded into a cache key.
	ErrUnserializableArgs = errors.New("funcs: arguments cannot be serialized into a cache key")
)
