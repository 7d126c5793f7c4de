package funcs

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// memoTable is the unbounded result cache shared by [Memoized] and
// [MemoizedArgs]. Concurrent misses on one key are collapsed into a single
// computation.
type memoTable[R any] struct {
	logger *zap.Logger
	group  singleflight.Group

	mu      sync.RWMutex
	entries map[string]R
}

// box lets a nil interface result travel through singleflight's any.
type box[R any] struct{ v R }

func newMemoTable[R any](logger *zap.Logger) *memoTable[R] {
	return &memoTable[R]{logger: logger, entries: make(map[string]R)}
}

func (t *memoTable[R]) load(key string, compute func() R) R {
	t.mu.RLock()
	v, ok := t.entries[key]
	t.mu.RUnlock()
	if ok {
		t.logger.Debug("memoize: hit", zap.String("key", key))
		return v
	}

	res, _, shared := t.group.Do(key, func() (any, error) {
		// Another caller may have stored the result while we waited.
		t.mu.RLock()
		if v, ok := t.entries[key]; ok {
			t.mu.RUnlock()
			return box[R]{v}, nil
		}
		t.mu.RUnlock()

		v := compute()

		t.mu.Lock()
		t.entries[key] = v
		t.mu.Unlock()
		return box[R]{v}, nil
	})
	t.logger.Debug("memoize: miss", zap.String("key", key), zap.Bool("shared", shared))
	return res.(box[R]).v
}

func (t *memoTable[R]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// ─────────────────────────────────────────────────────────────────────────────
// Single argument
// ─────────────────────────────────────────────────────────────────────────────

// Memoized is the wrapper returned by [Memoize].
type Memoized[A, R any] struct {
	fn    func(A) R
	table *memoTable[R]
}

// Memoize wraps fn with a cache keyed on the structure of its argument.
//
// Two calls whose arguments are deeply equal share a cache entry even if
// they are distinct values in memory. Equality is structural at every
// level: dynamic types, unexported fields and the exact bytes of strings
// all take part. Use a struct to pass several arguments. The cache grows with every distinct argument and is never
// evicted.
//
//	fib := funcs.Memoize(slowFib)
//	n, err := fib.Invoke(40)
//
// fn must not call the same wrapper with the same argument, or it will wait
// on itself.
func Memoize[A, R any](fn func(A) R, opts ...Option) *Memoized[A, R] {
	o := buildOptions(opts)
	return &Memoized[A, R]{fn: fn, table: newMemoTable[R](o.Logger)}
}

// Invoke returns the cached result for arg, calling the wrapped function on
// a miss. An error wrapping [ErrUnserializableArgs] is returned, and nothing
// is cached or called, when arg cannot be encoded into a key.
func (m *Memoized[A, R]) Invoke(arg A) (R, error) {
	key, err := argumentKey(arg)
	if err != nil {
		m.table.logger.Warn("memoize: cannot build cache key", zap.Error(err))
		var zero R
		return zero, err
	}
	return m.table.load(key, func() R { return m.fn(arg) }), nil
}

// Len returns the number of cached results.
func (m *Memoized[A, R]) Len() int { return m.table.len() }

// ─────────────────────────────────────────────────────────────────────────────
// Variadic arguments
// ─────────────────────────────────────────────────────────────────────────────

// MemoizedArgs is the wrapper returned by [MemoizeArgs].
type MemoizedArgs[R any] struct {
	fn    func(...any) R
	table *memoTable[R]
}

// MemoizeArgs is [Memoize] for functions taking a dynamic argument list. The
// key covers the whole list: its length and the type and structure of every
// argument, nested values included.
func MemoizeArgs[R any](fn func(...any) R, opts ...Option) *MemoizedArgs[R] {
	o := buildOptions(opts)
	return &MemoizedArgs[R]{fn: fn, table: newMemoTable[R](o.Logger)}
}

// Invoke returns the cached result for args, calling the wrapped function on
// a miss. See [Memoized.Invoke] for the error contract.
func (m *MemoizedArgs[R]) Invoke(args ...any) (R, error) {
	key, err := argumentKey(args)
	if err != nil {
		m.table.logger.Warn("memoize: cannot build cache key", zap.Error(err))
		var zero R
		return zero, err
	}
	return m.table.load(key, func() R { return m.fn(args...) }), nil
}

// Len returns the number of cached results.
func (m *MemoizedArgs[R]) Len() int { return m.table.len() }
