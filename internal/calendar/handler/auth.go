package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"planfit/internal/calendar"
	apperrors "planfit/pkg/errors"
	httputil "planfit/pkg/http"
	"planfit/pkg/logger"
)

// AuthHandler drives the per-user OAuth consent flow. The user ID rides in
// the OAuth state parameter so the callback can associate the granted
// credentials with the right account.
type AuthHandler struct {
	google *calendar.GoogleClient
	log    *logger.Logger
}

func NewAuthHandler(google *calendar.GoogleClient, log *logger.Logger) *AuthHandler {
	return &AuthHandler{google: google, log: log}
}

func (h *AuthHandler) AuthURL(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := h.userID(w, ps)
	if !ok {
		return
	}

	url := h.google.AuthCodeURL(strconv.FormatInt(userID, 10))
	if err := httputil.WriteSuccess(w, map[string]string{"auth_url": url}); err != nil {
		h.log.Error("failed to write success response", "handler", "AuthURL", "error", err)
	}
}

func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	if errMsg := query.Get("error"); errMsg != "" {
		h.writeError(w, "Callback", apperrors.InvalidInput("Authorization was denied"))
		return
	}

	userID, err := strconv.ParseInt(query.Get("state"), 10, 64)
	if err != nil || userID <= 0 {
		h.writeError(w, "Callback", apperrors.InvalidInput("Invalid state parameter"))
		return
	}

	code := query.Get("code")
	if code == "" {
		h.writeError(w, "Callback", apperrors.InvalidInput("Missing authorization code"))
		return
	}

	if err := h.google.Exchange(r.Context(), userID, code); err != nil {
		h.log.Error("OAuth code exchange failed", "user_id", userID, "error", err)
		h.writeError(w, "Callback", apperrors.Internal("Failed to complete authorization", err))
		return
	}

	h.log.Info("Calendar authorized", "user_id", userID)
	if err := httputil.WriteSuccess(w, map[string]string{"status": "authorized"}); err != nil {
		h.log.Error("failed to write success response", "handler", "Callback", "error", err)
	}
}

func (h *AuthHandler) Revoke(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := h.userID(w, ps)
	if !ok {
		return
	}

	if err := h.google.Revoke(r.Context(), userID); err != nil {
		h.writeError(w, "Revoke", err)
		return
	}

	h.log.Info("Calendar authorization revoked", "user_id", userID)
	if err := httputil.WriteSuccess(w, map[string]string{"status": "revoked"}); err != nil {
		h.log.Error("failed to write success response", "handler", "Revoke", "error", err)
	}
}

func (h *AuthHandler) userID(w http.ResponseWriter, ps httprouter.Params) (int64, bool) {
	userID, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil || userID <= 0 {
		h.writeError(w, "userID", apperrors.InvalidInput("Invalid user ID"))
		return 0, false
	}
	return userID, true
}

func (h *AuthHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/users/:id/calendar/auth", h.AuthURL)
	router.DELETE("/api/v1/users/:id/calendar/auth", h.Revoke)
	router.GET("/api/v1/calendar/oauth/callback", h.Callback)
}
