package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRetryable         = errors.New("notification is not in a retryable state")
	ErrInvalidChannel       = errors.New("invalid channel")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrUnauthorized         = errors.New("unauthorized")
)
