// Package object provides shallow merges of Go maps.
//
// Unlike the rest of this module, both functions intentionally mutate and
// return their first argument:
//
//	cfg := map[string]any{"host": "localhost"}
//	object.Extend(cfg, overrides)   // overrides win
//	object.Defaults(cfg, fallbacks) // existing keys win
package object
