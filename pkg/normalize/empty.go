package normalize

import "strings"

// Option configures empty-value replacement behavior.
type Option func(*config)

// config holds the configuration for empty-value replacement.
type config struct {
	replaceWith        any
	trimStrings        bool
	processEmptyArrays bool
	emptyFunc          func(any) bool
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		replaceWith:        nil,
		trimStrings:        true,
		processEmptyArrays: false,
		emptyFunc:          nil,
	}
}

// ReplaceWith sets the value substituted for every empty value.
// Default is nil.
func ReplaceWith(v any) Option {
	return func(c *config) {
		c.replaceWith = v
	}
}

// TrimStrings controls whether strings are trimmed before the built-in
// emptiness check. Default is true, so "   " counts as empty.
func TrimStrings(enabled bool) Option {
	return func(c *config) {
		c.trimStrings = enabled
	}
}

// ProcessEmptyArrays controls whether zero-length slices count as empty
// under the built-in rule. Default is false.
func ProcessEmptyArrays(enabled bool) Option {
	return func(c *config) {
		c.processEmptyArrays = enabled
	}
}

// EmptyFunc installs a caller-supplied emptiness predicate. When set it alone
// decides emptiness for every checked value, including inside recursive
// descent; the built-in string and slice rules do not apply at all.
func EmptyFunc(fn func(any) bool) Option {
	return func(c *config) {
		c.emptyFunc = fn
	}
}

// EmptyValues walks a nested map[string]any / []any structure and returns a
// copy with every empty value replaced. The input is never mutated.
//
// Under the built-in rule a value is empty when it is a string equal to ""
// (after trimming unless disabled) or, with ProcessEmptyArrays, a zero-length
// slice. Numbers, booleans, nil, and maps are never empty, which also makes
// the transformation idempotent: replaced values are not empty on a second
// pass.
//
// The whole input is checked first; an input that is itself empty returns the
// replacement directly. Anything other than a map[string]any or []any input
// fails with ErrInvalidInput.
func EmptyValues(input any, opts ...Option) (any, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	switch input.(type) {
	case map[string]any, []any:
	default:
		return nil, ErrInvalidInput
	}

	return transform(input, cfg), nil
}

// transform handles a value known to be a map or slice: whole-value emptiness
// first, then per-entry treatment.
func transform(v any, cfg *config) any {
	if cfg.isEmpty(v) {
		return cfg.replaceWith
	}

	switch n := v.(type) {
	case []any:
		out := make([]any, len(n))
		for i, element := range n {
			out[i] = transformValue(element, cfg)
		}
		return out

	case map[string]any:
		out := make(map[string]any, len(n))
		for k, value := range n {
			out[k] = transformValue(value, cfg)
		}
		return out

	default:
		return v
	}
}

// transformValue recurses into non-nil maps and slices; scalars are only
// checked for emptiness, never descended into.
func transformValue(v any, cfg *config) any {
	switch v.(type) {
	case map[string]any, []any:
		return transform(v, cfg)
	default:
		if cfg.isEmpty(v) {
			return cfg.replaceWith
		}
		return v
	}
}

// isEmpty applies the caller-supplied predicate when present, otherwise the
// built-in rule.
func (c *config) isEmpty(v any) bool {
	if c.emptyFunc != nil {
		return c.emptyFunc(v)
	}

	switch x := v.(type) {
	case string:
		if c.trimStrings {
			return strings.TrimSpace(x) == ""
		}
		return x == ""
	case []any:
		return c.processEmptyArrays && len(x) == 0
	}

	return false
}
