package internal

import "errors"

var (
	ErrReceiptInvalid = errors.New("receipt is invalid")
	ErrNotFound       = errors.New("receipt not found")
	ErrDuplicateID    = errors.New("receipt id is already taken")
)
