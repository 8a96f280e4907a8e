package adminuser

import "notification-admin/internal/model"

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token string
	User  model.AdminUser
}
