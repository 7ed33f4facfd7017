package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrInvalidPayload = errors.New("invalid task payload")
)
