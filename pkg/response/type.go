package response

import (
	"notification-admin/pkg/errors"
)

// Resp is the JSON envelope for every API response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain sentinel errors to HTTP errors.
type ErrorMapping map[error]*errors.HTTPError
