// Package replacer performs multi-pattern literal substitution over strings
// in a single pass, the usual shape of lightweight template filling.
//
// # Usage
//
//	import "github.com/dmitrymomot/morph/pkg/replacer"
//
//	out, err := replacer.Replace("Hello :name!", map[string]any{
//		":name": "John",
//	})
//	// out == "Hello John!"
//
// Values may be strings, numbers, or booleans:
//
//	out, _ = replacer.Replace("qty: :n, ok: :ok", map[string]any{
//		":n":  3,
//		":ok": true,
//	})
//	// out == "qty: 3, ok: true"
//
// # Options
//
// Matching is case-insensitive and replaces every occurrence by default;
// IgnoreCase(false) and ReplaceAll(false) narrow both. EscapeRegex(false)
// switches keys from literal substrings to raw pattern fragments — with that
// option a syntactically invalid key (a bare "+", say) fails the call with
// ErrInvalidPattern, which is the documented cost of disabling escaping.
//
// # Determinism
//
// Keys are combined longest-first into one alternation, so a longer literal
// always beats its own prefix and results do not depend on map iteration
// order.
package replacer
