package domain

import "errors"

// Domain errors.
var (
	ErrUnmatchedNotFound = errors.New("unmatched message not found")
	ErrInvalidPayload    = errors.New("invalid backend error payload")
	ErrNotifierDisabled  = errors.New("notifier is not configured")
)
