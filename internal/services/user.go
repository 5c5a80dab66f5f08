package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/config"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
)

type UserService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type userService struct {
	security config.Security
}

func NewUserService(security config.Security) UserService {
	return &userService{security: security}
}

// Login checks the admin credential pair against the configured account and
// issues a signed session token. The storefront has a single admin account;
// there is no user table.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	if req.Username != s.security.AdminUsername {
		return nil, errors.UnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.security.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.UnauthorizedError("Invalid credentials")
	}

	expiresAt := time.Now().Add(s.security.TokenTTL)

	claims := &models.Claims{
		Username: req.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.security.JWTKey))
	if err != nil {
		return nil, errors.InternalError("Failed to issue token").WithError(err)
	}

	return &models.LoginResponse{Token: signed, ExpiresAt: expiresAt.Unix()}, nil
}
