package arr

import "strings"

// Dot-notation access for nested map[string]any records.
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Get(m, "user.address.city") → "London"
//	Has(m, "user.email")        → false

// Get retrieves a value from m using a dot-notation path.
// Returns def[0] (or nil) when the path does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, path string, def ...any) any {
	if v, ok := lookup(m, strings.Split(path, ".")); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation path exists in m.
func Has(m map[string]any, path string) bool {
	_, ok := lookup(m, strings.Split(path, "."))
	return ok
}

func lookup(m map[string]any, segments []string) (any, bool) {
	val, ok := m[segments[0]]
	if !ok {
		return nil, false
	}
	if len(segments) == 1 {
		return val, true
	}
	nested, ok := val.(map[string]any)
	if !ok {
		return nil, false
	}
	return lookup(nested, segments[1:])
}
