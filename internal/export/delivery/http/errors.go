package http

import (
	"net/http"

	"notification-admin/internal/export"
	pkgErrors "notification-admin/pkg/errors"
	"notification-admin/pkg/response"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Request body must be valid JSON")

var errMapping = response.ErrorMapping{
	export.ErrNoRows:       pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "No notifications match the export filter"),
	export.ErrUnauthorized: pkgErrors.NewForbiddenHTTPError(),
}
