// Package sanitize reconciles arbitrary decoded values (typically the result
// of json.Unmarshal into any) against a default-shaped template, so that the
// value handed to domain logic always has the template's exact shape.
package sanitize

import "reflect"

// Sanitize returns a value with the exact shape of defaults, taking values
// from input where present and valid and falling back to defaults otherwise.
// It dispatches on the template's shape class:
//
//   - sequence defaults: input is returned verbatim if it is a non-empty
//     sequence, else defaults is returned verbatim. Elements are not
//     sanitized; sequence handling is deliberately shallow.
//   - string-keyed mapping defaults: every key of defaults is sanitized
//     recursively against input's value at that key. The template's key-set is
//     authoritative; keys on input that the template does not know are dropped.
//   - anything else is a leaf: input is returned if it is non-nil, else
//     defaults.
//
// Sanitize never fails and never mutates defaults. Templates are assumed to be
// finite and acyclic (statically authored shapes); there is no cycle guard.
func Sanitize(input, defaults any) any {
	dv := reflect.ValueOf(defaults)
	switch dv.Kind() {
	case reflect.Slice, reflect.Array:
		return sanitizeSequence(input, defaults)
	case reflect.Map:
		if dv.Type().Key().Kind() == reflect.String {
			return sanitizeMapping(input, dv)
		}
		return sanitizeLeaf(input, defaults)
	default:
		return sanitizeLeaf(input, defaults)
	}
}

// sanitizeSequence keeps a non-empty input sequence as-is. An empty sequence
// is treated the same as a missing value and replaced by the default
// wholesale, so callers cannot pass an explicitly empty list through. That
// asymmetry is load-bearing for existing consumers; do not "fix" it here.
func sanitizeSequence(input, defaults any) any {
	iv := reflect.ValueOf(input)
	if (iv.Kind() == reflect.Slice || iv.Kind() == reflect.Array) && iv.Len() > 0 {
		return input
	}
	return defaults
}

// sanitizeMapping assembles a fresh map with exactly the template's keys. A
// key absent on input recurses with a nil candidate, which degrades to the
// leaf rule and substitutes the whole default subtree at that key.
func sanitizeMapping(input any, dv reflect.Value) any {
	out := make(map[string]any, dv.Len())

	iv := reflect.ValueOf(input)
	inputIsMap := iv.Kind() == reflect.Map && iv.Type().Key().Kind() == reflect.String

	iter := dv.MapRange()
	for iter.Next() {
		key := iter.Key().String()

		var candidate any
		if inputIsMap {
			if mv := iv.MapIndex(reflect.ValueOf(key).Convert(iv.Type().Key())); mv.IsValid() {
				candidate = mv.Interface()
			}
		}
		out[key] = Sanitize(candidate, iter.Value().Interface())
	}
	return out
}

// sanitizeLeaf keeps any defined, non-null input — including falsy values
// like 0, "" and false.
func sanitizeLeaf(input, defaults any) any {
	if input == nil {
		return defaults
	}
	return input
}
