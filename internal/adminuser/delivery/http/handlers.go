package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"notification-admin/internal/adminuser"
	pkgErrors "notification-admin/pkg/errors"
	"notification-admin/pkg/response"
)

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

type userResp struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

var (
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "username and password are required")

	errMapping = response.ErrorMapping{
		adminuser.ErrInvalidCredentials: pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid username or password"),
	}
)

// Login authenticates an admin user and returns a JWT.
// @Summary Log in
// @Tags Auth
// @Param body body loginReq true "Credentials"
// @Success 200 {object} loginResp
// @Router /auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody, nil)
		return
	}

	out, err := h.uc.Login(ctx, adminuser.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.l.Warnf(ctx, "internal.adminuser.delivery.http.Login.uc.Login: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.d)
		return
	}

	response.OK(c, loginResp{
		Token: out.Token,
		User: userResp{
			ID:        out.User.ID,
			Username:  out.User.Username,
			Role:      out.User.Role,
			CreatedAt: out.User.CreatedAt.Format(time.RFC3339),
		},
	})
}
