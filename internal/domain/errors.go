package domain

import "errors"

var (
	ErrInvalidPayload    = errors.New("payload is not a collection of the expected shape")
	ErrUnsupportedFormat = errors.New("unsupported source format")
	ErrEmptySource       = errors.New("source unit is empty")
	ErrFileTooLarge      = errors.New("file exceeds maximum allowed size")
)
