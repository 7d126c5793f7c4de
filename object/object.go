package object

// Extend copies every entry of sources into target, left to right, so later
// sources overwrite earlier ones and target's own values. target is modified
// in place and returned.
//
// A nil target cannot be written to; a new map is allocated and returned in
// its place.
//
//	obj := map[string]int{"a": 1}
//	object.Extend(obj, map[string]int{"a": 2, "b": 3}) // obj → {a:2 b:3}
func Extend[K comparable, V any](target map[K]V, sources ...map[K]V) map[K]V {
	if target == nil {
		target = make(map[K]V)
	}
	for _, src := range sources {
		for k, v := range src {
			target[k] = v
		}
	}
	return target
}

// Defaults fills in the keys missing from target with values from sources.
// Keys already present in target are never overwritten; among sources, the
// first one that provides a key wins. target is modified in place and
// returned.
//
//	opts := map[string]int{"retries": 5}
//	object.Defaults(opts, map[string]int{"retries": 3, "timeout": 30})
//	// opts → {retries:5 timeout:30}
func Defaults[K comparable, V any](target map[K]V, sources ...map[K]V) map[K]V {
	if target == nil {
		target = make(map[K]V)
	}
	for _, src := range sources {
		for k, v := range src {
			if _, ok := target[k]; !ok {
				target[k] = v
			}
		}
	}
	return target
}
