package object_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underscore/object"
)

func sameMap[K comparable, V any](t *testing.T, want, got map[K]V) {
	t.Helper()
	assert.Equal(t, reflect.ValueOf(want).Pointer(), reflect.ValueOf(got).Pointer(), "expected the target map to be returned")
}

func TestExtend(t *testing.T) {
	target := map[string]int{"a": 1, "b": 2}
	got := object.Extend(target, map[string]int{"b": 20, "c": 30})

	sameMap(t, target, got)
	assert.Equal(t, map[string]int{"a": 1, "b": 20, "c": 30}, target)
}

func TestExtendLaterSourcesWin(t *testing.T) {
	target := map[string]string{}
	object.Extend(target,
		map[string]string{"k": "first", "x": "1"},
		map[string]string{"k": "second"},
		map[string]string{"k": "third"},
	)
	assert.Equal(t, map[string]string{"k": "third", "x": "1"}, target)
}

func TestExtendNoSources(t *testing.T) {
	target := map[string]int{"a": 1}
	sameMap(t, target, object.Extend(target))
	assert.Equal(t, map[string]int{"a": 1}, target)
}

func TestExtendNilTarget(t *testing.T) {
	got := object.Extend[string, int](nil, map[string]int{"a": 1})
	assert.Equal(t, map[string]int{"a": 1}, got)
}

func TestExtendDoesNotModifySources(t *testing.T) {
	src := map[string]int{"a": 1}
	object.Extend(map[string]int{"a": 0, "b": 2}, src)
	assert.Equal(t, map[string]int{"a": 1}, src)
}

func TestDefaults(t *testing.T) {
	target := map[string]any{"flavor": "chocolate"}
	got := object.Defaults(target, map[string]any{"flavor": "vanilla", "sprinkles": "lots"})

	sameMap(t, target, got)
	assert.Equal(t, map[string]any{"flavor": "chocolate", "sprinkles": "lots"}, target)
}

func TestDefaultsFirstSourceWins(t *testing.T) {
	target := map[string]int{}
	object.Defaults(target,
		map[string]int{"a": 1},
		map[string]int{"a": 2, "b": 2},
		map[string]int{"b": 3, "c": 3},
	)
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, target)
}

func TestDefaultsKeepsZeroValues(t *testing.T) {
	// A key present with a zero value is still present.
	target := map[string]int{"retries": 0}
	object.Defaults(target, map[string]int{"retries": 3})
	assert.Equal(t, map[string]int{"retries": 0}, target)
}

func TestDefaultsNilTarget(t *testing.T) {
	got := object.Defaults[string, int](nil, map[string]int{"a": 1}, map[string]int{"a": 2})
	assert.Equal(t, map[string]int{"a": 1}, got)
}
