package usecase

import (
	"context"

	"notification-admin/internal/adminuser"
	"notification-admin/internal/adminuser/repository"
	"notification-admin/pkg/encrypter"
	"notification-admin/pkg/scope"
)

func (uc *usecase) Login(ctx context.Context, ip adminuser.LoginInput) (adminuser.LoginOutput, error) {
	user, err := uc.repo.GetByUsername(ctx, ip.Username)
	if err != nil {
		if err == repository.ErrNotFound {
			return adminuser.LoginOutput{}, adminuser.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.adminuser.usecase.Login.repo.GetByUsername: %v", err)
		return adminuser.LoginOutput{}, err
	}

	if !encrypter.CheckPasswordHash(ip.Password, user.PasswordHash) {
		return adminuser.LoginOutput{}, adminuser.ErrInvalidCredentials
	}

	token, err := uc.jwtMgr.CreateToken(scope.Payload{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.adminuser.usecase.Login.jwtMgr.CreateToken: %v", err)
		return adminuser.LoginOutput{}, err
	}

	user.PasswordHash = ""

	return adminuser.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}
