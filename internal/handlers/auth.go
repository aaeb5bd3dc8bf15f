package handlers

import (
	"net/http"
	"time"

	"github.com/AlenaMolokova/masterdata/internal/constants"
	"github.com/AlenaMolokova/masterdata/internal/middleware"
	"github.com/AlenaMolokova/masterdata/internal/session"
	"github.com/AlenaMolokova/masterdata/internal/utils"
	"go.uber.org/zap"
)

type credentialsRequest struct {
	Login    string `json:"login" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

type AuthHandler struct {
	service      AuthService
	secureCookie bool
	log          *zap.Logger
}

func NewAuthHandler(service AuthService, secureCookie bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, secureCookie: secureCookie, log: log}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeRequest(w, r, h.log, &req) {
		return
	}
	token, claims, err := h.service.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.setSession(w, token, claims)
	w.WriteHeader(http.StatusOK)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeRequest(w, r, h.log, &req) {
		return
	}
	token, claims, err := h.service.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.setSession(w, token, claims)
	w.WriteHeader(http.StatusOK)
	h.log.Info("user authenticated", zap.String("login", claims.Login))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r)
	if !ok {
		utils.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.service.Logout(r.Context(), claims); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) setSession(w http.ResponseWriter, token string, claims *session.Claims) {
	cookie := &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
	if claims != nil && claims.ExpiresAt != nil {
		cookie.Expires = claims.ExpiresAt.Time
		cookie.MaxAge = int(time.Until(claims.ExpiresAt.Time).Seconds())
	}
	w.Header().Set("Authorization", "Bearer "+token)
	http.SetCookie(w, cookie)
}
