package http

import (
	"net/http"

	"notification-admin/internal/notification"
	pkgErrors "notification-admin/pkg/errors"
	"notification-admin/pkg/response"
)

var errInvalidRequest = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request")

var errMapping = response.ErrorMapping{
	notification.ErrNotificationNotFound: pkgErrors.NewHTTPError(http.StatusNotFound, "Notification not found"),
	notification.ErrNotRetryable:         pkgErrors.NewHTTPError(http.StatusConflict, "Only failed notifications can be retried"),
	notification.ErrInvalidChannel:       pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid channel"),
	notification.ErrInvalidStatus:        pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid status"),
	notification.ErrUnauthorized:         pkgErrors.NewForbiddenHTTPError(),
}
