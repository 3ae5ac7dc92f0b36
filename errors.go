package htable

import "errors"

var (
	ErrNilValue   = errors.New("value must not be nil")
	ErrInvalidKey = errors.New("key must not contain NUL bytes")
	ErrAllocation = errors.New("failed to allocate slots")
)
