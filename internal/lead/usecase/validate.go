package usecase

import (
	"regexp"
	"strings"

	"notification-admin/internal/lead"
	pkgErrors "notification-admin/pkg/errors"
)

const (
	maxNameLen    = 100
	maxMessageLen = 1000
)

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// E.164: plus sign, then up to 15 digits starting with a non-zero.
	phoneRegexp = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

func validateCreateInput(ip lead.CreateInput) error {
	collector := pkgErrors.NewValidationErrorCollector()

	name := strings.TrimSpace(ip.Name)
	if name == "" {
		collector.Add(pkgErrors.NewValidationError(400, "name", "is required"))
	} else if len(name) > maxNameLen {
		collector.Add(pkgErrors.NewValidationError(400, "name", "must be at most 100 characters"))
	}

	email := strings.TrimSpace(ip.Email)
	if email == "" {
		collector.Add(pkgErrors.NewValidationError(400, "email", "is required"))
	} else if !emailRegexp.MatchString(email) {
		collector.Add(pkgErrors.NewValidationError(400, "email", "invalid email format"))
	}

	if ip.Phone != "" && !phoneRegexp.MatchString(ip.Phone) {
		collector.Add(pkgErrors.NewValidationError(400, "phone", "must be in E.164 format"))
	}

	if len(ip.Message) > maxMessageLen {
		collector.Add(pkgErrors.NewValidationError(400, "message", "must be at most 1000 characters"))
	}

	if collector.HasError() {
		return collector
	}
	return nil
}
