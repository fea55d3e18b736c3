package highlight

import "errors"

var (
	ErrNotFound         = errors.New("highlighter not found")
	ErrDuplicateName    = errors.New("highlighter name already in use")
	ErrInvalidName      = errors.New("invalid highlighter name")
	ErrInvalidPattern   = errors.New("invalid pattern")
	ErrInvalidPriority  = errors.New("priority must be a positive integer")
	ErrBuiltinReadOnly  = errors.New("built-in highlighters cannot be removed")
	ErrUnknownThreshold = errors.New("unknown threshold")
	ErrInvalidThreshold = errors.New("invalid threshold")
)
