package collections

import "errors"

// Sentinel errors returned by collection operations.
var (
	// ErrInvokeArguments is returned by InvokeMethod when the resolved
	// callable cannot accept the supplied arguments.
	ErrInvokeArguments = errors.New("collections: arguments do not match the invoked function")
)
