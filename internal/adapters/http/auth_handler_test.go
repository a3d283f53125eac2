package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"clienteapi/internal/domain"
	"clienteapi/internal/logger"
)

type stubAuthService struct {
	loginCalls int
}

func (s *stubAuthService) Register(context.Context, domain.RegisterRequest) error { return nil }

func (s *stubAuthService) Login(context.Context, domain.LoginRequest) (*domain.AuthResponse, error) {
	s.loginCalls++
	return &domain.AuthResponse{Token: "tok"}, nil
}

type stubLimiter struct {
	allow bool
	err   error
}

func (s *stubLimiter) Allow(context.Context, string) (bool, error) { return s.allow, s.err }

func postLogin(h *AuthHandler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"a@b.com","password":"secret1"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLogin_RateLimited(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, &stubLimiter{allow: false}, logger.Nop())

	rec := postLogin(h)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Zero(t, svc.loginCalls, "a throttled request must not reach the credential check")
}

func TestLogin_LimiterFailureFailsOpen(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, &stubLimiter{err: errors.New("redis down")}, logger.Nop())

	rec := postLogin(h)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.loginCalls)
}

func TestLogin_NoLimiterConfigured(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, nil, logger.Nop())

	rec := postLogin(h)

	assert.Equal(t, http.StatusOK, rec.Code)
}
