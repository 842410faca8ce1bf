package assistant

import "errors"

var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrUnavailable   = errors.New("assistant unavailable")
)
