package replacer

import "errors"

var (
	ErrInvalidReplacement = errors.New("replacer: replacement value must be a string, number, or boolean")
	ErrInvalidPattern     = errors.New("replacer: replacement keys form an invalid pattern")
)
