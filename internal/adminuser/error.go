package adminuser

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)
