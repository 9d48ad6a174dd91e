package slug

import "strings"

// Option configures the slug generation behavior.
type Option func(*config)

// config holds the configuration for slug generation.
type config struct {
	separator string
	lowercase bool
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// Separator sets the separator used to join word runs.
// Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls whether the slug should be converted to lowercase.
// Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// Make creates a URL-safe slug from the input string.
//
// The input is lowercased, every character that is not an ASCII letter, digit,
// underscore, or space is stripped, and each run of spaces is collapsed into a
// single separator (default "-"). Space runs at the edges of the stripped text
// still produce an edge separator; Make deliberately performs no edge cleanup,
// so "! hello" yields "-hello".
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var b strings.Builder
	b.Grow(len(s))

	pendingSpace := false

	for _, r := range s {
		if r == ' ' {
			pendingSpace = true
			continue
		}

		if !isWordChar(r) {
			continue
		}

		if pendingSpace {
			b.WriteString(cfg.separator)
			pendingSpace = false
		}

		if cfg.lowercase && r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}

	// A trailing space run still becomes a separator.
	if pendingSpace {
		b.WriteString(cfg.separator)
	}

	return b.String()
}

// isWordChar reports whether r survives stripping: ASCII letters, digits,
// and underscore.
func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}
