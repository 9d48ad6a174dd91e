package normalize

import "errors"

var ErrInvalidInput = errors.New("normalize: input must be a map[string]any or []any")
