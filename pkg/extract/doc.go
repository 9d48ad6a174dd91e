// Package extract pulls numeric values out of free text.
//
// Number finds every digit run in a string, concatenates the matched text,
// and parses the result as one number:
//
//	import "github.com/dmitrymomot/morph/pkg/extract"
//
//	n := extract.Number("Price is $123.45")
//	// n == 12345 (decimals off by default, so "123" and "45" concatenate)
//
//	n = extract.Number("Price is $123.45", extract.AllowDecimals(true))
//	// n == 123.45
//
//	n = extract.Number("No numbers here", extract.DefaultValue(-1))
//	// n == -1
//
// Concatenation of separate matches into one number (rather than a list or a
// sum) is the documented contract; see Number for details.
//
// Digits is the raw building block: it strips everything but decimal digits,
// which is the usual first step for phone numbers and similar identifiers.
package extract
