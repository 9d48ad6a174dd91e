// Package normalize rewrites empty values inside nested map and slice
// structures, typically ahead of persistence or serialization where "" and
// nil should look the same.
//
// # Usage
//
//	import "github.com/dmitrymomot/morph/pkg/normalize"
//
//	out, err := normalize.EmptyValues(map[string]any{
//		"name": "",
//		"age":  25,
//	})
//	// out == map[string]any{"name": nil, "age": 25}
//
// With options:
//
//	out, _ = normalize.EmptyValues(
//		map[string]any{"tags": []any{}},
//		normalize.ProcessEmptyArrays(true),
//		normalize.ReplaceWith("n/a"),
//	)
//	// out == map[string]any{"tags": "n/a"}
//
// A caller-supplied predicate replaces the built-in rule entirely:
//
//	out, _ = normalize.EmptyValues(
//		map[string]any{"count": 0},
//		normalize.EmptyFunc(func(v any) bool { return v == 0 }),
//	)
//	// out == map[string]any{"count": nil}
//
// The transformation copies; the input structure is never mutated. Running it
// twice with the same options is a no-op, since replaced values are not empty
// under the built-in rule.
package normalize
