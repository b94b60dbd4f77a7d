package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"planfit/internal/profiles/service"
	apperrors "planfit/pkg/errors"
	httputil "planfit/pkg/http"
	"planfit/pkg/logger"
)

type profileRequest struct {
	Description string `json:"description"`
}

type ProfileHandler struct {
	service service.UserProfileService
	log     *logger.Logger
}

func NewProfileHandler(svc service.UserProfileService, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{service: svc, log: log}
}

func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := h.userID(w, ps)
	if !ok {
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Put", apperrors.InvalidInput("Invalid request body"))
		return
	}

	profile, err := h.service.BuildFromDescription(r.Context(), userID, req.Description)
	if err != nil {
		h.writeError(w, "Put", err)
		return
	}

	if err := httputil.WriteSuccess(w, profile); err != nil {
		h.log.Error("failed to write success response", "handler", "Put", "error", err)
	}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := h.userID(w, ps)
	if !ok {
		return
	}

	profile, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.writeError(w, "Get", err)
		return
	}

	if err := httputil.WriteSuccess(w, profile); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "error", err)
	}
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := h.userID(w, ps)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{"status": "deleted"}); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "error", err)
	}
}

func (h *ProfileHandler) userID(w http.ResponseWriter, ps httprouter.Params) (int64, bool) {
	userID, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil || userID <= 0 {
		h.writeError(w, "userID", apperrors.InvalidInput("Invalid user ID"))
		return 0, false
	}
	return userID, true
}

func (h *ProfileHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *ProfileHandler) RegisterRoutes(router *httprouter.Router) {
	router.PUT("/api/v1/users/:id/profile", h.Put)
	router.GET("/api/v1/users/:id/profile", h.Get)
	router.DELETE("/api/v1/users/:id/profile", h.Delete)
}
