package http

import (
	"github.com/gin-gonic/gin"

	"notification-admin/pkg/response"
	"notification-admin/pkg/scope"
)

// Get returns a filtered, paginated page of delivery notifications.
// @Summary List delivery notifications
// @Tags Notification
// @Param channel query string false "Channel filter (email, sms, webhook)"
// @Param status query string false "Status filter (pending, sent, failed, retrying)"
// @Param lead_id query string false "Lead ID filter"
// @Param start_date query string false "RFC3339 lower bound on created_at"
// @Param end_date query string false "RFC3339 upper bound on created_at"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} getNotificationsResp
// @Router /notifications [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	ip, err := h.processGetRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Get(ctx, sc, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.Get.uc.Get: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.d)
		return
	}

	response.OK(c, newGetNotificationsResp(out))
}

// Detail returns one delivery notification by ID.
// @Summary Get a delivery notification
// @Tags Notification
// @Param id path string true "Notification ID"
// @Success 200 {object} notificationResp
// @Router /notifications/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	n, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.Detail.uc.Detail: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.d)
		return
	}

	response.OK(c, newNotificationResp(n))
}

// Retry re-queues a failed delivery notification.
// @Summary Retry a failed delivery
// @Tags Notification
// @Param id path string true "Notification ID"
// @Success 200 {object} notificationResp
// @Router /notifications/{id}/retry [POST]
func (h *Handler) Retry(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	n, err := h.uc.Retry(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.Retry.uc.Retry: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.d)
		return
	}

	response.OK(c, newNotificationResp(n))
}
