package http

import (
	"github.com/gin-gonic/gin"

	"notification-admin/pkg/response"
	"notification-admin/pkg/scope"
)

// Get returns a filtered, paginated page of admin alerts with the global
// unread count.
// @Summary List admin alerts
// @Tags Alert
// @Param type query string false "Alert type filter"
// @Param unread_only query bool false "Only unread alerts"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} getAlertsResp
// @Router /alerts [GET]
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
		h.l.Errorf(ctx, "internal.alertfeed.delivery.http.Get.uc.Get: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.d)
		return
	}

	response.OK(c, newGetAlertsResp(out))
}

// MarkRead marks one alert as read. Marking an already-read alert is a no-op.
// @Summary Mark an alert read
// @Tags Alert
// @Param id path string true "Alert ID"
// @Success 200 {object} alertResp
// @Router /alerts/{id}/read [PATCH]
func (h *Handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	alert, err := h.uc.MarkRead(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.alertfeed.delivery.http.MarkRead.uc.MarkRead: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.d)
		return
	}

	response.OK(c, newAlertResp(alert))
}

// MarkAllRead marks every unread alert as read.
// @Summary Mark all alerts read
// @Tags Alert
// @Success 200 {object} markAllReadResp
// @Router /alerts/read-all [PATCH]
func (h *Handler) MarkAllRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	count, err := h.uc.MarkAllRead(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.alertfeed.delivery.http.MarkAllRead.uc.MarkAllRead: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.d)
		return
	}

	response.OK(c, markAllReadResp{MarkedCount: count})
}
