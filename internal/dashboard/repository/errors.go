package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToCount  = errors.New("failed to count records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrNotFound       = errors.New("record not found")
	ErrInvalidColumn  = errors.New("invalid column")
)
