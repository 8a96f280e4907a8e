package http

import (
	"net/http"

	"notification-admin/internal/lead"
	pkgErrors "notification-admin/pkg/errors"
	"notification-admin/pkg/response"
)

var (
	errInvalidBody    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Request body must be valid JSON")
	errInvalidRequest = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request")
)

var errMapping = response.ErrorMapping{
	lead.ErrLeadNotFound: pkgErrors.NewHTTPError(http.StatusNotFound, "Lead not found"),
	lead.ErrEmailExists:  pkgErrors.NewHTTPError(http.StatusConflict, "A lead with this email already exists"),
}
