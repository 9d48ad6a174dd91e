package replacer

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Option configures string replacement behavior.
type Option func(*config)

// config holds the configuration for string replacement.
type config struct {
	ignoreCase  bool
	replaceAll  bool
	escapeRegex bool
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		ignoreCase:  true,
		replaceAll:  true,
		escapeRegex: true,
	}
}

// IgnoreCase controls case-insensitive matching. Default is true.
func IgnoreCase(enabled bool) Option {
	return func(c *config) {
		c.ignoreCase = enabled
	}
}

// ReplaceAll controls whether every occurrence is replaced or only the first.
// Default is true.
func ReplaceAll(enabled bool) Option {
	return func(c *config) {
		c.replaceAll = enabled
	}
}

// EscapeRegex controls whether replacement keys are quoted so pattern
// metacharacters match literally. Default is true. When disabled, keys are
// used as raw pattern fragments and an unparsable key fails the whole call
// with ErrInvalidPattern; that trade-off is the caller's.
func EscapeRegex(enabled bool) Option {
	return func(c *config) {
		c.escapeRegex = enabled
	}
}

// Replace substitutes every occurrence of any replacement key in text with
// that key's value, in a single pass over the input.
//
// Replacement values may be strings, numbers, or booleans; anything else
// fails with ErrInvalidReplacement. Empty text or an empty replacement map
// returns text unchanged.
//
// All keys are combined into one alternation pattern, longest key first, so
// a longer literal always wins over its own prefix and the combined pattern
// is deterministic regardless of map iteration order. With case-insensitive
// matching (the default), each match resolves its replacement by exact key
// lookup first, then by case-folded lookup; on a case-insensitive key
// collision the longest key (ties broken lexicographically) wins. A match
// that resolves to no key is left unchanged.
func Replace(text string, replacements map[string]any, opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if text == "" || len(replacements) == 0 {
		return text, nil
	}

	values := make(map[string]string, len(replacements))
	keys := make([]string, 0, len(replacements))
	for k, v := range replacements {
		s, err := stringify(v)
		if err != nil {
			return "", fmt.Errorf("%w (key %q)", err, k)
		}
		values[k] = s
		keys = append(keys, k)
	}

	// Longest first keeps "name" from shadowing "nameplate" in the
	// alternation; the secondary ordering makes collision resolution stable.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	var folded map[string]string
	if cfg.ignoreCase {
		folded = make(map[string]string, len(keys))
		for _, k := range keys {
			lk := strings.ToLower(k)
			if _, exists := folded[lk]; !exists {
				folded[lk] = values[k]
			}
		}
	}

	fragments := make([]string, len(keys))
	for i, k := range keys {
		if cfg.escapeRegex {
			fragments[i] = regexp.QuoteMeta(k)
		} else {
			fragments[i] = k
		}
	}

	pattern := "(?:" + strings.Join(fragments, "|") + ")"
	if cfg.ignoreCase {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	resolve := func(match string) (string, bool) {
		if v, ok := values[match]; ok {
			return v, true
		}
		if cfg.ignoreCase {
			if v, ok := folded[strings.ToLower(match)]; ok {
				return v, true
			}
		}
		return "", false
	}

	if cfg.replaceAll {
		return re.ReplaceAllStringFunc(text, func(match string) string {
			if v, ok := resolve(match); ok {
				return v
			}
			return match
		}), nil
	}

	loc := re.FindStringIndex(text)
	if loc == nil {
		return text, nil
	}
	match := text[loc[0]:loc[1]]
	v, ok := resolve(match)
	if !ok {
		return text, nil
	}
	return text[:loc[0]] + v + text[loc[1]:], nil
}

// stringify renders a replacement value the way text templating expects:
// strings verbatim, numbers in their shortest form, booleans as true/false.
func stringify(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	}
	return "", ErrInvalidReplacement
}
