package dotpath

import (
	"math"
	"strings"
)

// Resolve walks a nested structure of map[string]any and []any nodes along a
// dot-notation path and returns the value found there. The boolean reports
// whether the path resolved; a false result stands in for the "not found"
// sentinel and never carries a value.
//
// Sequences fan out: when a slice is met before the path is exhausted, the
// remaining path is resolved against every element independently, falsy and
// unresolved results are dropped, nested slice results are flattened one
// level, and the collected values come back as a []any. Resolving "city"
// against a slice of address maps therefore yields a flat slice of city
// values.
//
// A nil data argument, a path with an empty segment (leading, trailing, or
// doubled dot), a missing key, or a fan-out that collects nothing all resolve
// to not found. An empty path returns data unchanged. Malformed input never
// raises an error.
func Resolve(data any, path string) (any, bool) {
	if data == nil {
		return nil, false
	}
	if path == "" {
		return data, true
	}

	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, false
		}
	}

	return resolve(data, segments)
}

// Exists reports whether the path resolves to a value.
func Exists(data any, path string) bool {
	_, ok := Resolve(data, path)
	return ok
}

func resolve(node any, segments []string) (any, bool) {
	if len(segments) == 0 {
		return node, true
	}

	switch n := node.(type) {
	case []any:
		// Fan out: resolve the remaining path against every element, keep
		// truthy hits, flatten nested slice results one level.
		out := make([]any, 0, len(n))
		for _, element := range n {
			v, ok := resolve(element, segments)
			if !ok || isFalsy(v) {
				continue
			}
			if nested, isSlice := v.([]any); isSlice {
				out = append(out, nested...)
			} else {
				out = append(out, v)
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true

	case map[string]any:
		v, ok := n[segments[0]]
		if !ok {
			return nil, false
		}
		// The final segment returns the value as-is, even when it is itself
		// a slice.
		if len(segments) == 1 {
			return v, true
		}
		return resolve(v, segments[1:])

	default:
		// Scalar (or nil) with path left to walk.
		return nil, false
	}
}

// isFalsy mirrors JavaScript truthiness for the values a decoded document can
// hold: nil, false, the empty string, numeric zero, and NaN are falsy; empty
// maps and slices are not.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case int:
		return x == 0
	case int8:
		return x == 0
	case int16:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	case uint:
		return x == 0
	case uint8:
		return x == 0
	case uint16:
		return x == 0
	case uint32:
		return x == 0
	case uint64:
		return x == 0
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	case float64:
		return x == 0 || math.IsNaN(x)
	}
	return false
}
