package errors

// ValidationError is an error with a field and a list of messages.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationErrorCollector collects multiple validation errors.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

// PermissionError is an error raised when the caller's role does not allow an action.
type PermissionError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// HTTPError represents an HTTP error with status code and message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}
