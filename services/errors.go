package services

import "errors"

var (
	// ErrItemNotFound is returned when a key has no record in the store
	ErrItemNotFound = errors.New("item not found")

	// ErrConditionFailed is returned by conditional writes when the
	// condition did not hold (the key already exists)
	ErrConditionFailed = errors.New("conditional write failed")

	// ErrAlreadyClaimed is the expected business outcome when an item
	// was claimed first by someone else. It is not a failure.
	ErrAlreadyClaimed = errors.New("item already claimed")
)
