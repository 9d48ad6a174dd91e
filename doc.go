// Package morph is a small toolkit for shaping loosely structured data.
//
// The toolkit is a collection of independent, stateless transformation
// packages. Each one does a single focused job and can be used on its own:
//
//   - pkg/slug – URL-safe slug generation from free text
//   - pkg/dotpath – dot-notation value resolution over nested maps and slices
//   - pkg/extract – numeric extraction from free text
//   - pkg/normalize – recursive empty-value replacement in nested structures
//   - pkg/replacer – multi-pattern literal string substitution
//
// The packages share a common configuration convention: every operation that
// accepts options takes functional options with documented defaults, resolved
// once at call entry. None of the packages performs I/O, keeps state, or
// depends on another.
//
// The root package provides generic pipeline combinators for chaining
// transformations:
//
//	clean := morph.Compose(
//		strings.TrimSpace,
//		strings.ToLower,
//	)
//
//	out := clean("  Mixed CASE Input ") // "mixed case input"
//
// # Thread Safety
//
// Every function in this module reads only its own arguments and allocates
// fresh output, so concurrent use requires no coordination.
package morph
