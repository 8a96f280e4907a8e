package errors

import "net/http"

// NewHTTPError returns a new HTTPError. The response status code equals the code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: code,
	}
}

// NewUnauthorizedHTTPError returns a 401 Unauthorized error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusUnauthorized,
		Message:    MessageUnauthorized,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewForbiddenHTTPError returns a 403 Forbidden error.
func NewForbiddenHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusForbidden,
		Message:    MessageForbidden,
		StatusCode: http.StatusForbidden,
	}
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return e.Message
}
