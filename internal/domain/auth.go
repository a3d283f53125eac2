package domain

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Nome     string `json:"nome"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

// TokenClaims is the payload of an issued bearer token. NomeCompleto is only
// present when the account has a display name.
type TokenClaims struct {
	Email        string `json:"email"`
	UserName     string `json:"name"`
	NomeCompleto string `json:"nomeCompleto,omitempty"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
}
