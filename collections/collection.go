package collections

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Shape tags which variant a [Collection] holds.
type Shape int

const (
	// Sequence is an ordered, index-addressable list of values.
	Sequence Shape = iota
	// Mapping is an insertion-ordered set of string keys to values.
	Mapping
)

// String returns "sequence" or "mapping".
func (s Shape) String() string {
	if s == Mapping {
		return "mapping"
	}
	return "sequence"
}

// Key identifies an element during iteration.
//
// Sequence elements are addressed by Index. Mapping entries are addressed by
// Name and carry an Index of -1, so the key [Each] hands out for an entry
// equals [NameKey] of its name.
type Key struct {
	Index int
	Name  string
	named bool
}

// IndexKey returns the key of the i-th element of a sequence.
func IndexKey(i int) Key { return Key{Index: i} }

// NameKey returns the key of a mapping entry.
func NameKey(name string) Key { return Key{Index: -1, Name: name, named: true} }

// IsName reports whether k addresses a mapping entry.
func (k Key) IsName() bool { return k.named }

// String returns the name for mapping keys and the decimal index otherwise.
func (k Key) String() string {
	if k.named {
		return k.Name
	}
	return strconv.Itoa(k.Index)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordered mapping
// ─────────────────────────────────────────────────────────────────────────────

// OrderedMap is a string-keyed map that remembers insertion order.
// It is the storage behind mapping-shaped collections. The zero value is an
// empty map ready to use.
type OrderedMap[T any] struct {
	keys   []string
	values map[string]T
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[T any]() *OrderedMap[T] {
	return &OrderedMap[T]{values: make(map[string]T)}
}

// Set stores value under key. A new key is appended to the iteration order;
// an existing key keeps its position.
func (m *OrderedMap[T]) Set(key string, value T) {
	if m.values == nil {
		m.values = make(map[string]T)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (m *OrderedMap[T]) Get(key string) (T, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap[T]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[T]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *OrderedMap[T]) Len() int { return len(m.keys) }

func (m *OrderedMap[T]) clone() *OrderedMap[T] {
	out := &OrderedMap[T]{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]T, len(m.values)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Collection
// ─────────────────────────────────────────────────────────────────────────────

// Collection is either a sequence or a mapping of T.
//
// Every operation in this package reads a Collection and builds a new one;
// none of them mutate their input.
//
//	seq := collections.New(1, 2, 3)
//	obj := collections.FromMap(map[string]int{"a": 1, "b": 2})
//
//	collections.Map(seq, double) // sequence [2 4 6]
//	collections.Map(obj, double) // mapping {a:2 b:4}
type Collection[T any] struct {
	shape   Shape
	items   []T
	entries *OrderedMap[T]
}

// New creates a sequence from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a sequence from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{shape: Sequence, items: dst}
}

// FromMap creates a mapping from a Go map. Go maps have no order, so the keys
// are iterated in ascending order.
func FromMap[T any](m map[string]T) *Collection[T] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := NewOrderedMap[T]()
	for _, k := range keys {
		entries.Set(k, m[k])
	}
	return &Collection[T]{shape: Mapping, entries: entries}
}

// FromOrderedMap creates a mapping that iterates in m's insertion order.
// m is copied.
func FromOrderedMap[T any](m *OrderedMap[T]) *Collection[T] {
	return &Collection[T]{shape: Mapping, entries: m.clone()}
}

// Empty creates an empty sequence of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{shape: Sequence, items: []T{}}
}

// emptyLike returns an empty collection with the same shape as c.
func emptyLike[T, U any](c *Collection[T]) *Collection[U] {
	if c.shape == Mapping {
		return &Collection[U]{shape: Mapping, entries: NewOrderedMap[U]()}
	}
	return &Collection[U]{shape: Sequence, items: make([]U, 0, len(c.items))}
}

// add appends v to a sequence or stores it under k in a mapping.
func (c *Collection[T]) add(k Key, v T) {
	if c.shape == Mapping {
		c.entries.Set(k.Name, v)
		return
	}
	c.items = append(c.items, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Shape returns the variant held by c.
func (c *Collection[T]) Shape() Shape { return c.shape }

// IsSequence reports whether c is a sequence.
func (c *Collection[T]) IsSequence() bool { return c.shape == Sequence }

// IsMapping reports whether c is a mapping.
func (c *Collection[T]) IsMapping() bool { return c.shape == Mapping }

// Len returns the number of elements.
func (c *Collection[T]) Len() int {
	if c.shape == Mapping {
		return c.entries.Len()
	}
	return len(c.items)
}

// Values returns a copy of the values in iteration order.
func (c *Collection[T]) Values() []T {
	out := make([]T, 0, c.Len())
	Each(c, func(v T, _ Key, _ *Collection[T]) {
		out = append(out, v)
	})
	return out
}

// Keys returns the keys of c in iteration order.
func (c *Collection[T]) Keys() []Key {
	out := make([]Key, 0, c.Len())
	Each(c, func(_ T, k Key, _ *Collection[T]) {
		out = append(out, k)
	})
	return out
}

// Get returns the element addressed by k together with a presence flag.
// Index keys address sequences and name keys address mappings.
func (c *Collection[T]) Get(k Key) (T, bool) {
	var zero T
	if c.shape == Mapping {
		if !k.named {
			return zero, false
		}
		return c.entries.Get(k.Name)
	}
	if k.named || k.Index < 0 || k.Index >= len(c.items) {
		return zero, false
	}
	return c.items[k.Index], true
}

// ToMap returns the entries of a mapping as a Go map. A sequence is returned
// keyed by the decimal index.
func (c *Collection[T]) ToMap() map[string]T {
	out := make(map[string]T, c.Len())
	Each(c, func(v T, k Key, _ *Collection[T]) {
		out[k.String()] = v
	})
	return out
}

// ToJSON serialises a sequence as a JSON array and a mapping as a JSON object.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	if c.shape == Mapping {
		return json.Marshal(c.ToMap())
	}
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.Values())
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key, c) once per element: in index order for a
// sequence, in insertion order for a mapping.
//
// Each is the only place that distinguishes the two shapes; every other
// collection operation is built on it.
func Each[T any](c *Collection[T], fn func(T, Key, *Collection[T])) {
	if c.shape == Mapping {
		for _, name := range c.entries.keys {
			fn(c.entries.values[name], NameKey(name), c)
		}
		return
	}
	for i, item := range c.items {
		fn(item, Key{Index: i}, c)
	}
}
