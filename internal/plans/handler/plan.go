package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"planfit/internal/plans/service"
	apperrors "planfit/pkg/errors"
	httputil "planfit/pkg/http"
	"planfit/pkg/logger"
)

type PlanHandler struct {
	service service.WorkoutPlanService
	log     *logger.Logger
}

func NewPlanHandler(svc service.WorkoutPlanService, log *logger.Logger) *PlanHandler {
	return &PlanHandler{service: svc, log: log}
}

func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := h.userID(w, ps)
	if !ok {
		return
	}

	plan, err := h.service.Generate(r.Context(), userID)
	if err != nil {
		h.writeError(w, "Generate", err)
		return
	}

	if err := httputil.WriteCreated(w, plan); err != nil {
		h.log.Error("failed to write created response", "handler", "Generate", "error", err)
	}
}

func (h *PlanHandler) GetLatest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := h.userID(w, ps)
	if !ok {
		return
	}

	plan, err := h.service.GetLatest(r.Context(), userID)
	if err != nil {
		h.writeError(w, "GetLatest", err)
		return
	}

	if err := httputil.WriteSuccess(w, plan); err != nil {
		h.log.Error("failed to write success response", "handler", "GetLatest", "error", err)
	}
}

func (h *PlanHandler) userID(w http.ResponseWriter, ps httprouter.Params) (int64, bool) {
	userID, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil || userID <= 0 {
		h.writeError(w, "userID", apperrors.InvalidInput("Invalid user ID"))
		return 0, false
	}
	return userID, true
}

func (h *PlanHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *PlanHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/users/:id/plan", h.Generate)
	router.GET("/api/v1/users/:id/plan", h.GetLatest)
}
