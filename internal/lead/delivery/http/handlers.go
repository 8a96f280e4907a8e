package http

import (
	"github.com/gin-gonic/gin"

	"notification-admin/pkg/response"
	"notification-admin/pkg/scope"
)

// Create captures a landing-page lead submission.
// @Summary Capture a lead
// @Tags Lead
// @Param body body createLeadReq true "Lead submission"
// @Success 200 {object} createLeadResp
// @Router /leads [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	ip, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	created, err := h.uc.Create(ctx, sc, ip)
	if err != nil {
		h.l.Warnf(ctx, "internal.lead.delivery.http.Create.uc.Create: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.d)
		return
	}

	response.OK(c, createLeadResp{
		LeadID:  created.ID,
		Message: "Thank you for your submission",
	})
}

// Get returns a filtered, paginated page of leads.
// @Summary List leads
// @Tags Lead
// @Param email query string false "Exact email filter"
// @Param utm_source query string false "UTM source filter"
// @Param q query string false "Search in name or email"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} getLeadsResp
// @Router /leads [GET]
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
		h.l.Errorf(ctx, "internal.lead.delivery.http.Get.uc.Get: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.d)
		return
	}

	response.OK(c, newGetLeadsResp(out))
}

// Detail returns one lead by ID.
// @Summary Get a lead
// @Tags Lead
// @Param id path string true "Lead ID"
// @Success 200 {object} leadResp
// @Router /leads/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	l, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.lead.delivery.http.Detail.uc.Detail: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.d)
		return
	}

	response.OK(c, newLeadResp(l))
}
