package scope

import "errors"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("secret key cannot be empty")
)
