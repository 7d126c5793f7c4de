package collections

// Enumerable is the read-only surface of [Collection][T].
//
// Accept Enumerable in your own functions when all you need is to look at the
// elements; every derived operation in this package still requires the
// concrete *Collection because it builds a new one of the same shape.
type Enumerable[T any] interface {
	// Shape reports whether the elements form a sequence or a mapping.
	Shape() Shape

	// Len returns the number of elements.
	Len() int

	// Keys returns the element keys in iteration order.
	Keys() []Key

	// Values returns a copy of the element values in iteration order.
	Values() []T

	// Get returns the element addressed by k and whether it exists.
	Get(k Key) (T, bool)
}

var _ Enumerable[int] = (*Collection[int])(nil)
