package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"planfit/internal/scheduling/service"
	"planfit/internal/scheduling/validator"
	apperrors "planfit/pkg/errors"
	httputil "planfit/pkg/http"
	"planfit/pkg/logger"
	"planfit/pkg/model"
)

// PlanSource loads a stored workout plan for commit requests.
type PlanSource interface {
	GetByID(ctx context.Context, planID string) (*model.WorkoutPlan, error)
}

type SchedulingHandler struct {
	service   service.SchedulerService
	plans     PlanSource
	validator *validator.SchedulingValidator
	log       *logger.Logger
}

func NewSchedulingHandler(
	svc service.SchedulerService,
	plans PlanSource,
	v *validator.SchedulingValidator,
	log *logger.Logger,
) *SchedulingHandler {
	return &SchedulingHandler{
		service:   svc,
		plans:     plans,
		validator: v,
		log:       log,
	}
}

func (h *SchedulingHandler) Suggest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := h.userID(w, ps)
	if !ok {
		return
	}

	var req model.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Suggest", apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.validator.ValidateSuggest(&req); err != nil {
		h.writeError(w, "Suggest", apperrors.Validation(err.Error(), nil))
		return
	}

	available, err := h.service.Suggest(r.Context(), userID, req.Slots, req.LookaheadDays)
	if err != nil {
		h.writeError(w, "Suggest", err)
		return
	}

	if err := httputil.WriteSuccess(w, model.SuggestResponse{Available: available}); err != nil {
		h.log.Error("failed to write success response", "handler", "Suggest", "error", err)
	}
}

func (h *SchedulingHandler) Commit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := h.userID(w, ps)
	if !ok {
		return
	}

	var req model.CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Commit", apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.validator.ValidateCommit(&req); err != nil {
		h.writeError(w, "Commit", apperrors.Validation(err.Error(), nil))
		return
	}

	plan, err := h.plans.GetByID(r.Context(), req.PlanID)
	if err != nil {
		h.writeError(w, "Commit", err)
		return
	}
	if plan.UserID != userID {
		h.writeError(w, "Commit", apperrors.NotFoundWithID("workout plan", req.PlanID))
		return
	}

	eventIDs, err := h.service.Commit(r.Context(), userID, req.Slots, plan)
	if err != nil {
		h.writeError(w, "Commit", err)
		return
	}

	if err := httputil.WriteCreated(w, model.CommitResponse{EventIDs: eventIDs}); err != nil {
		h.log.Error("failed to write created response", "handler", "Commit", "error", err)
	}
}

func (h *SchedulingHandler) userID(w http.ResponseWriter, ps httprouter.Params) (int64, bool) {
	raw := ps.ByName("id")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		h.writeError(w, "userID", apperrors.InvalidInput("Invalid user ID"))
		return 0, false
	}
	return userID, true
}

func (h *SchedulingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *SchedulingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/users/:id/schedule/suggestions", h.Suggest)
	router.POST("/api/v1/users/:id/schedule/commitments", h.Commit)
}
