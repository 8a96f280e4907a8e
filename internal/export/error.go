package export

import "errors"

var (
	ErrNoRows       = errors.New("no notifications match the export filter")
	ErrUnauthorized = errors.New("unauthorized")
)
