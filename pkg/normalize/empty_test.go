package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/morph/pkg/normalize"
)

func TestEmptyValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		opts     []normalize.Option
		expected any
	}{
		{
			name:     "empty string replaced with nil",
			input:    map[string]any{"name": "", "age": 25},
			expected: map[string]any{"name": nil, "age": 25},
		},
		{
			name:     "whitespace-only string is empty by default",
			input:    map[string]any{"note": "   \t"},
			expected: map[string]any{"note": nil},
		},
		{
			name:     "trimming disabled keeps whitespace-only strings",
			input:    map[string]any{"note": "   "},
			opts:     []normalize.Option{normalize.TrimStrings(false)},
			expected: map[string]any{"note": "   "},
		},
		{
			name:     "empty slice kept by default",
			input:    map[string]any{"tags": []any{}},
			expected: map[string]any{"tags": []any{}},
		},
		{
			name:     "empty slice replaced when processing arrays",
			input:    map[string]any{"tags": []any{}},
			opts:     []normalize.Option{normalize.ProcessEmptyArrays(true)},
			expected: map[string]any{"tags": nil},
		},
		{
			name:     "custom replacement value",
			input:    map[string]any{"name": ""},
			opts:     []normalize.Option{normalize.ReplaceWith("n/a")},
			expected: map[string]any{"name": "n/a"},
		},
		{
			name:     "numbers booleans and nil are never empty",
			input:    map[string]any{"count": 0, "ok": false, "missing": nil},
			expected: map[string]any{"count": 0, "ok": false, "missing": nil},
		},
		{
			name: "nested structures preserved",
			input: map[string]any{
				"user": map[string]any{"name": "", "city": "NY"},
				"list": []any{map[string]any{"v": " "}, "", 5},
			},
			expected: map[string]any{
				"user": map[string]any{"name": nil, "city": "NY"},
				"list": []any{map[string]any{"v": nil}, nil, 5},
			},
		},
		{
			name: "nested empty slices replaced when processing arrays",
			input: map[string]any{
				"outer": []any{[]any{}, "x"},
			},
			opts: []normalize.Option{normalize.ProcessEmptyArrays(true)},
			expected: map[string]any{
				"outer": []any{nil, "x"},
			},
		},
		{
			name:     "slice input",
			input:    []any{"", "keep", ""},
			expected: []any{nil, "keep", nil},
		},
		{
			name:     "custom predicate decides alone",
			input:    map[string]any{"count": 0, "name": ""},
			opts:     []normalize.Option{normalize.EmptyFunc(func(v any) bool { return v == 0 })},
			expected: map[string]any{"count": nil, "name": ""},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := normalize.EmptyValues(tt.input, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEmptyValuesTopLevelEmpty(t *testing.T) {
	t.Parallel()

	// An input that is itself empty returns the replacement directly.
	result, err := normalize.EmptyValues([]any{}, normalize.ProcessEmptyArrays(true))
	require.NoError(t, err)
	assert.Nil(t, result)

	result, err = normalize.EmptyValues(
		[]any{},
		normalize.ProcessEmptyArrays(true),
		normalize.ReplaceWith("gone"),
	)
	require.NoError(t, err)
	assert.Equal(t, "gone", result)
}

func TestEmptyValuesInvalidInput(t *testing.T) {
	t.Parallel()

	for _, input := range []any{"text", 42, true, nil, map[int]string{1: "x"}} {
		result, err := normalize.EmptyValues(input)
		assert.ErrorIs(t, err, normalize.ErrInvalidInput)
		assert.Nil(t, result)
	}
}

func TestEmptyValuesIdempotent(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"name":  "",
		"tags":  []any{},
		"inner": map[string]any{"v": "  "},
	}
	opts := []normalize.Option{normalize.ProcessEmptyArrays(true)}

	once, err := normalize.EmptyValues(input, opts...)
	require.NoError(t, err)

	twice, err := normalize.EmptyValues(once, opts...)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestEmptyValuesDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"name": "",
		"list": []any{"", "keep"},
	}

	_, err := normalize.EmptyValues(input)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"name": "",
		"list": []any{"", "keep"},
	}, input)
}
