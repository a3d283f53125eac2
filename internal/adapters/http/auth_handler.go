package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"clienteapi/internal/domain"
	"clienteapi/internal/logger"
)

// LoginLimiter throttles login attempts. A nil limiter means no throttling.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type AuthHandler struct {
	svc     domain.AuthService
	limiter LoginLimiter
	log     logger.Logger
}

func NewAuthHandler(svc domain.AuthService, limiter LoginLimiter, log logger.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, limiter: limiter, log: log}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := ValidateStruct(&req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if err := h.svc.Register(r.Context(), req); err != nil {
		if errors.Is(err, domain.ErrUserEmailAlreadyExists) {
			writeValidationErrors(w, map[string]string{"email": "email already registered"})
			return
		}

		h.log.Error("auth: register failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "user registered successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := ValidateStruct(&req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if h.limiter != nil {
		key := clientIP(r) + ":" + req.Email
		ok, err := h.limiter.Allow(r.Context(), key)
		if err != nil {
			// Limiter trouble must not lock everyone out.
			h.log.Warn("auth: rate limiter unavailable", "error", err)
		} else if !ok {
			writeMessage(w, http.StatusTooManyRequests, "too many login attempts")
			return
		}
	}

	res, err := h.svc.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		h.log.Error("auth: login failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
