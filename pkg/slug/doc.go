// Package slug generates URL-safe tokens from free text.
//
// The generator lowercases the input, strips every character that is not an
// ASCII letter, digit, underscore, or space, and collapses each run of spaces
// into a single separator. With default options the output alphabet is
// exactly [a-z0-9_-].
//
// Basic usage:
//
//	import "github.com/dmitrymomot/morph/pkg/slug"
//
//	s := slug.Make("Hello World")
//	// Output: "hello-world"
//
//	s = slug.Make("Price is $99.99")
//	// Output: "price-is-9999"
//
// With options:
//
//	s = slug.Make("Product Name", slug.Separator("_"))
//	// Output: "product_name"
//
//	s = slug.Make("Product Name", slug.Lowercase(false))
//	// Output: "Product-Name"
//
// # Edge separators
//
// Stripping happens before space collapsing, so a space run at either edge of
// the stripped text produces an edge separator:
//
//	slug.Make("! hello")  // "-hello"
//	slug.Make("hello !")  // "hello-"
//
// This is deliberate and documented rather than corrected; callers that need
// trimmed output can wrap Make with strings.Trim.
//
// # Thread Safety
//
// Make is pure and allocates fresh output, so it is safe for concurrent use.
package slug
