package collections_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underscore/collections"
)

func double(n int, _ collections.Key) int { return n * 2 }

func sum(acc, n int, _ collections.Key) int { return acc + n }

func isEven(n int, _ collections.Key) bool { return n%2 == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Map / Filter / Reject
// ─────────────────────────────────────────────────────────────────────────────

func TestMapSequence(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), double)
	assert.True(t, got.IsSequence())
	assert.Equal(t, []int{2, 4, 6}, got.Values())
}

func TestMapMapping(t *testing.T) {
	got := collections.Map(collections.FromMap(map[string]int{"a": 1, "b": 2}), double)
	assert.True(t, got.IsMapping())
	assert.Equal(t, map[string]int{"a": 2, "b": 4}, got.ToMap())
}

func TestMapChangesType(t *testing.T) {
	got := collections.Map(ints(1, 2), func(n int, k collections.Key) string {
		return k.String() + ":" + strconv.Itoa(n)
	})
	assert.Equal(t, []string{"0:1", "1:2"}, got.Values())
}

func TestFilterSequenceReindexes(t *testing.T) {
	got := collections.Filter(ints(1, 2, 3, 4, 5, 6), isEven)
	assert.Equal(t, []int{2, 4, 6}, got.Values())
	v, ok := got.Get(collections.IndexKey(0))
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestFilterMappingKeepsKeys(t *testing.T) {
	got := collections.Filter(collections.FromMap(map[string]int{"a": 1, "b": 2, "c": 4}), isEven)
	assert.Equal(t, map[string]int{"b": 2, "c": 4}, got.ToMap())
}

func TestReject(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, collections.Reject(ints(1, 2, 3, 4, 5, 6), isEven).Values())

	got := collections.Reject(collections.FromMap(map[string]int{"a": 1, "b": 2}), isEven)
	assert.Equal(t, map[string]int{"a": 1}, got.ToMap())
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduce
// ─────────────────────────────────────────────────────────────────────────────

func TestReduceSeedsWithFirstElement(t *testing.T) {
	var seen []int
	got, ok := collections.Reduce(ints(1, 2, 3), func(acc, n int, _ collections.Key) int {
		seen = append(seen, n)
		return acc + n
	})
	assert.True(t, ok)
	assert.Equal(t, 6, got)
	assert.Equal(t, []int{2, 3}, seen, "first element only seeds the accumulator")
}

func TestReduceEmpty(t *testing.T) {
	got, ok := collections.Reduce(collections.Empty[int](), sum)
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestReduceZeroIsStillAValue(t *testing.T) {
	// A falsy first element still seeds the accumulator.
	got, ok := collections.Reduce(ints(0, 5), sum)
	assert.True(t, ok)
	assert.Equal(t, 5, got)
}

func TestReduceFrom(t *testing.T) {
	assert.Equal(t, 16, collections.ReduceFrom(ints(1, 2, 3), sum, 10))
	assert.Equal(t, 10, collections.ReduceFrom(collections.Empty[int](), sum, 10))
}

func TestReduceFromMappingOrder(t *testing.T) {
	got := collections.ReduceFrom(letters(), func(acc string, _ int, k collections.Key) string {
		return acc + k.Name
	}, "")
	assert.Equal(t, "bac", got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Contains / Every / Some
// ─────────────────────────────────────────────────────────────────────────────

func TestContains(t *testing.T) {
	assert.True(t, collections.Contains(ints(1, 2, 3), 2))
	assert.False(t, collections.Contains(ints(1, 2, 3), 9))
	assert.False(t, collections.Contains(collections.Empty[int](), 0))
	assert.True(t, collections.Contains(letters(), 3))
}

func TestEvery(t *testing.T) {
	assert.True(t, collections.Every(ints(2, 4), func(n int) bool { return n%2 == 0 }))
	assert.False(t, collections.Every(ints(2, 3), func(n int) bool { return n%2 == 0 }))
	assert.True(t, collections.Every(collections.Empty[int](), func(int) bool { return false }))
}

func TestEveryStopsCallingAfterFailure(t *testing.T) {
	calls := 0
	collections.Every(ints(1, 2, 3), func(n int) bool {
		calls++
		return n > 1
	})
	assert.Equal(t, 1, calls)
}

func TestEveryDefaultsToTruthiness(t *testing.T) {
	assert.True(t, collections.Every(ints(1, 2, 3), nil))
	assert.False(t, collections.Every(ints(1, 0, 3), nil))
	assert.False(t, collections.Every(collections.New("a", ""), nil))
}

func TestSome(t *testing.T) {
	assert.True(t, collections.Some(ints(1, 2, 3), func(n int) bool { return n > 2 }))
	assert.False(t, collections.Some(ints(1, 2, 3), func(n int) bool { return n > 3 }))
	assert.False(t, collections.Some(collections.Empty[int](), nil))
	assert.True(t, collections.Some(collections.New(0, 0, 7), nil))
	assert.False(t, collections.Some(collections.New(false, false), nil))
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero int", 0, false},
		{"int", 3, true},
		{"empty string", "", false},
		{"string", "x", true},
		{"NaN", math.NaN(), false},
		{"float", 0.5, true},
		{"nil slice", []int(nil), false},
		{"empty slice", []int{}, true},
		{"zero struct", struct{ A int }{}, false},
		{"nil pointer", (*int)(nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collections.Truthy(tt.v))
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Pluck
// ─────────────────────────────────────────────────────────────────────────────

func TestPluck(t *testing.T) {
	people := collections.New(
		map[string]string{"name": "moe", "age": "40"},
		map[string]string{"name": "larry"},
	)
	assert.Equal(t, []string{"moe", "larry"}, collections.Pluck(people, "name").Values())
	assert.Equal(t, []string{"40", ""}, collections.Pluck(people, "age").Values())
}

func TestPluckMappingKeepsKeys(t *testing.T) {
	byID := collections.FromMap(map[string]map[string]int{
		"x": {"score": 1},
		"y": {"score": 2},
	})
	assert.Equal(t, map[string]int{"x": 1, "y": 2}, collections.Pluck(byID, "score").ToMap())
}

func TestPluckPath(t *testing.T) {
	users := collections.New(
		map[string]any{"address": map[string]any{"city": "London"}},
		map[string]any{"address": map[string]any{}},
	)
	assert.Equal(t, []any{"London", nil}, collections.PluckPath(users, "address.city").Values())
}

// ─────────────────────────────────────────────────────────────────────────────
// Uniq
// ─────────────────────────────────────────────────────────────────────────────

func TestUniq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, collections.Uniq(ints(1, 2, 2, 3, 1)).Values())
}

func TestUniqMappingProducesSequence(t *testing.T) {
	got := collections.Uniq(collections.FromMap(map[string]int{"a": 1, "b": 1, "c": 2}))
	assert.True(t, got.IsSequence())
	assert.Equal(t, []int{1, 2}, got.Values())
}

func TestUniqInterfaceValues(t *testing.T) {
	got := collections.Uniq(collections.New[any](1, "1", 1, 1.0, "1"))
	assert.Equal(t, []any{1, "1", 1.0}, got.Values())

	assert.Panics(t, func() {
		collections.Uniq(collections.New[any](1, []int{1}, 1))
	})
	assert.Panics(t, func() {
		collections.Contains(collections.New[any]([]int{1}), any([]int{1}))
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Immutability
// ─────────────────────────────────────────────────────────────────────────────

func TestOperationsDoNotMutateInput(t *testing.T) {
	c := ints(3, 1, 2, 1)
	obj := letters()

	collections.Map(c, double)
	collections.Filter(c, isEven)
	collections.Reduce(c, sum)
	collections.SortBy(c, func(n int, _ collections.Key) int { return n })
	collections.Uniq(c)
	collections.Shuffle(c)
	collections.Map(obj, double)
	collections.Filter(obj, isEven)

	assert.Equal(t, []int{3, 1, 2, 1}, c.Values())
	assert.Equal(t, []int{2, 1, 3}, obj.Values())
}
