package alertfeed

import "errors"

var (
	ErrAlertNotFound = errors.New("alert not found")
	ErrInvalidType   = errors.New("invalid alert type")
	ErrUnauthorized  = errors.New("unauthorized")
)
