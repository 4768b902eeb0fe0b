package repository

import "errors"

var (
	ErrFailedToGet  = errors.New("failed to get record")
	ErrFailedToList = errors.New("failed to list records")
)
