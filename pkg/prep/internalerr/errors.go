package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNotFound       = errors.New("not found")
	ErrLengthMismatch = errors.New("length mismatch")
)
