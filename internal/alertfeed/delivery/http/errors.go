package http

import (
	"net/http"

	"notification-admin/internal/alertfeed"
	pkgErrors "notification-admin/pkg/errors"
	"notification-admin/pkg/response"
)

var errInvalidRequest = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request")

var errMapping = response.ErrorMapping{
	alertfeed.ErrAlertNotFound: pkgErrors.NewHTTPError(http.StatusNotFound, "Alert not found"),
	alertfeed.ErrInvalidType:   pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid alert type"),
	alertfeed.ErrUnauthorized:  pkgErrors.NewForbiddenHTTPError(),
}
