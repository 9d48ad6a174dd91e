// Package dotpath resolves dot-notation paths against nested map and slice
// structures, the shape produced by decoding JSON into any.
//
// # Usage
//
//	import "github.com/dmitrymomot/morph/pkg/dotpath"
//
//	data := map[string]any{
//		"user": map[string]any{
//			"name": "John",
//			"addresses": []any{
//				map[string]any{"city": "NY"},
//				map[string]any{"city": "LA"},
//			},
//		},
//	}
//
//	v, ok := dotpath.Resolve(data, "user.name")
//	// v == "John", ok == true
//
//	v, ok = dotpath.Resolve(data, "user.addresses.city")
//	// v == []any{"NY", "LA"}, ok == true
//
// # Fan-out
//
// When the resolver meets a slice before the path is exhausted, it maps the
// remaining path over every element, drops falsy and unresolved results,
// flattens nested slices one level, and returns the survivors as a []any.
// A fan-out that collects nothing resolves to not found.
//
// # Not found
//
// Missing keys, malformed paths (any empty segment), nil data, and scalars
// met mid-path all resolve to (nil, false). The resolver never returns an
// error: degraded input degrades to not found.
package dotpath
