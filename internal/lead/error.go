package lead

import "errors"

var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrEmailExists  = errors.New("a lead with this email already exists")
)
