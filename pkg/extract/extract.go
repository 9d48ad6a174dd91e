package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled match patterns for every option combination.
var (
	digitRunRegex      = regexp.MustCompile(`\d+`)
	signedRunRegex     = regexp.MustCompile(`-?\d+`)
	decimalRunRegex    = regexp.MustCompile(`\d+(?:\.\d+)?`)
	signedDecimalRegex = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

	// Longest numeric prefix of the concatenated match text, mirroring
	// parseInt/parseFloat prefix semantics when several matches glue into
	// text that is no longer a single well-formed number.
	numberPrefixRegex = regexp.MustCompile(`^-?\d+(?:\.\d+)?`)

	nonDigitRegex = regexp.MustCompile(`\D`)
)

// Option configures number extraction behavior.
type Option func(*config)

// config holds the configuration for number extraction.
type config struct {
	allowDecimals bool
	allowNegative bool
	defaultValue  float64
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		allowDecimals: false,
		allowNegative: false,
		defaultValue:  0,
	}
}

// AllowDecimals controls whether a decimal fraction is part of a match.
// Default is false, so "123.45" matches as the two runs "123" and "45".
func AllowDecimals(enabled bool) Option {
	return func(c *config) {
		c.allowDecimals = enabled
	}
}

// AllowNegative controls whether a leading minus sign is part of a match.
// Default is false.
func AllowNegative(enabled bool) Option {
	return func(c *config) {
		c.allowNegative = enabled
	}
}

// DefaultValue sets the value returned when the input is blank or holds no
// matches. Default is 0.
func DefaultValue(v float64) Option {
	return func(c *config) {
		c.defaultValue = v
	}
}

// Number pulls every numeric run out of free text and assembles them into a
// single number.
//
// All non-overlapping matches are concatenated, not summed: "order 12 of 34"
// extracts 1234. This keeps the common case ("Price is $123.45" without
// decimals gives 12345) cheap and is the documented contract; callers that
// need the runs separately can match them with their own pattern.
//
// The concatenated text is parsed as a float when decimals are allowed,
// otherwise as a base-10 integer; a digit run too long for int64 degrades to
// float precision instead of failing. Blank input and inputs without a single
// match return the configured default.
func Number(s string, opts ...Option) float64 {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if strings.TrimSpace(s) == "" {
		return cfg.defaultValue
	}

	matches := matchPattern(cfg).FindAllString(s, -1)
	if len(matches) == 0 {
		return cfg.defaultValue
	}

	joined := strings.Join(matches, "")

	// Several matches can glue into text that is not one well-formed number
	// ("-1-2", "1.52.5"); parse the longest valid prefix like parseInt does.
	token := numberPrefixRegex.FindString(joined)
	if token == "" {
		return cfg.defaultValue
	}

	if cfg.allowDecimals {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return cfg.defaultValue
		}
		return f
	}

	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return float64(n)
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return cfg.defaultValue
	}
	return f
}

// Digits strips everything but decimal digits from a string.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

func matchPattern(cfg *config) *regexp.Regexp {
	switch {
	case cfg.allowDecimals && cfg.allowNegative:
		return signedDecimalRegex
	case cfg.allowDecimals:
		return decimalRunRegex
	case cfg.allowNegative:
		return signedRunRegex
	default:
		return digitRunRegex
	}
}
