package service

import (
	"context"
	"time"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  string
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  jwtSecret,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.AccessRepository().FindDashboardUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to load user", err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, serverutils.NewUnauthorizedError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorizedError("invalid credentials")
	}

	claims := jwt.MapClaims{
		"user_id": user.UserId.String(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to sign token", err)
	}

	return &dto.LoginResponse{
		Token: signed,
		User: dto.LoginUser{
			Id:    user.UserId,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
