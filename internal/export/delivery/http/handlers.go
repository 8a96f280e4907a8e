package http

import (
	"github.com/gin-gonic/gin"

	"notification-admin/internal/export"
	"notification-admin/pkg/response"
	"notification-admin/pkg/scope"
)

type exportNotificationsResp struct {
	ObjectName  string `json:"object_name"`
	DownloadURL string `json:"download_url"`
	RowCount    int    `json:"row_count"`
}

func newExportNotificationsResp(out export.ExportOutput) exportNotificationsResp {
	return exportNotificationsResp{
		ObjectName:  out.ObjectName,
		DownloadURL: out.DownloadURL,
		RowCount:    out.RowCount,
	}
}

// ExportNotifications exports filtered delivery notifications to CSV in
// object storage and returns a presigned download link.
// @Summary Export notifications to CSV
// @Tags Notification
// @Param body body exportNotificationsReq false "Export filter"
// @Success 200 {object} exportNotificationsResp
// @Router /notifications/export [POST]
func (h *Handler) ExportNotifications(c *gin.Context) {
	ctx := c.Request.Context()

	ip, err := h.processExportRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.ExportNotifications(ctx, sc, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.export.delivery.http.ExportNotifications.uc.ExportNotifications: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.d)
		return
	}

	response.OK(c, newExportNotificationsResp(out))
}
