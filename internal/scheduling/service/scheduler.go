package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"planfit/internal/calendar"
	schederrors "planfit/internal/scheduling/errors"
	"planfit/pkg/config"
	apperrors "planfit/pkg/errors"
	"planfit/pkg/kafka"
	"planfit/pkg/locks"
	"planfit/pkg/model"
)

const (
	eventSummary = "Workout Session"

	// EventWorkoutScheduled is published after a batch commit succeeds.
	EventWorkoutScheduled = "workout.scheduled"

	rollbackTimeout = 30 * time.Second
)

type SchedulerService interface {
	// Suggest returns the preferred slots that do not collide with the
	// user's existing calendar events, preserving input order. An empty
	// result is a valid answer, distinct from a query failure.
	Suggest(ctx context.Context, userID int64, preferred []model.TimeSlot, lookaheadDays int) ([]model.TimeSlot, error)

	// Commit writes one calendar event per confirmed slot, all or nothing.
	// On a partial failure every event created so far is deleted again and
	// a *schederrors.CommitError is returned.
	Commit(ctx context.Context, userID int64, confirmed []model.TimeSlot, plan *model.WorkoutPlan) ([]string, error)
}

// Publisher is the subset of the Kafka producer the scheduler needs.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type schedulerService struct {
	provider  calendar.Provider
	locks     *locks.Registry
	publisher Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewSchedulerService(
	provider calendar.Provider,
	registry *locks.Registry,
	publisher Publisher,
	cfg *config.Config,
) SchedulerService {
	return &schedulerService{
		provider:  provider,
		locks:     registry,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *schedulerService) Suggest(ctx context.Context, userID int64, preferred []model.TimeSlot, lookaheadDays int) ([]model.TimeSlot, error) {
	if lookaheadDays <= 0 {
		lookaheadDays = s.cfg.LookaheadDays
	}

	mu := s.locks.Acquire(userID)
	mu.Lock()
	defer mu.Unlock()

	timeMin := s.now().UTC()
	timeMax := timeMin.AddDate(0, 0, lookaheadDays)

	busy, err := s.provider.QueryBusy(ctx, userID, timeMin, timeMax)
	if err != nil {
		if errors.Is(err, calendar.ErrNotAuthorized) {
			return nil, apperrors.CalendarNotAuthorized(userID)
		}
		s.cfg.Log.Error("Calendar query failed", "user_id", userID, "error", err)
		return nil, apperrors.CalendarQuery(userID, err)
	}

	available := FilterAvailable(preferred, busy)
	s.cfg.Log.Info("Slot suggestion completed",
		"user_id", userID,
		"preferred", len(preferred),
		"busy", len(busy),
		"available", len(available),
	)
	return available, nil
}

func (s *schedulerService) Commit(ctx context.Context, userID int64, confirmed []model.TimeSlot, plan *model.WorkoutPlan) ([]string, error) {
	if plan == nil {
		return nil, apperrors.Precondition(schederrors.ErrMissingPlan.Error())
	}
	if len(confirmed) != len(plan.Workouts) {
		return nil, apperrors.Precondition(fmt.Sprintf(
			"%s: %d slots for %d workout days",
			schederrors.ErrSlotCountMismatch.Error(), len(confirmed), len(plan.Workouts),
		))
	}

	mu := s.locks.Acquire(userID)
	mu.Lock()
	eventIDs, err := s.insertBatch(ctx, userID, confirmed, plan)
	mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.cfg.Log.Info("Workout batch committed",
		"user_id", userID,
		"plan_id", plan.ID,
		"events", len(eventIDs),
	)
	s.publishScheduled(ctx, userID, plan, confirmed, eventIDs)
	return eventIDs, nil
}

// insertBatch creates the events in slot order. The caller holds the
// user's lock for the whole call.
func (s *schedulerService) insertBatch(ctx context.Context, userID int64, confirmed []model.TimeSlot, plan *model.WorkoutPlan) ([]string, error) {
	eventIDs := make([]string, 0, len(confirmed))
	for i, slot := range confirmed {
		slot = slot.Normalize()
		body := model.EventBody{
			Summary:         eventSummary,
			Description:     FormatWorkoutDescription(plan.Workouts[i]),
			Start:           slot.Start,
			End:             slot.End,
			Timezone:        s.cfg.CalendarTZ,
			ReminderMinutes: s.cfg.ReminderMinutes,
		}

		eventID, err := s.provider.InsertEvent(ctx, userID, body)
		if err != nil {
			s.cfg.Log.Error("Event insert failed, rolling back batch",
				"user_id", userID,
				"plan_id", plan.ID,
				"index", i,
				"created_so_far", len(eventIDs),
				"error", err,
			)
			rollbackFailures := s.rollback(ctx, userID, eventIDs)

			var primary error
			if errors.Is(err, calendar.ErrNotAuthorized) {
				primary = apperrors.CalendarNotAuthorized(userID)
			} else {
				primary = apperrors.CalendarWrite(userID, i, err)
			}
			return nil, &schederrors.CommitError{
				UserID:           userID,
				FailedIndex:      i,
				Err:              primary,
				RollbackFailures: rollbackFailures,
			}
		}
		eventIDs = append(eventIDs, eventID)
	}
	return eventIDs, nil
}

// rollback deletes the already-created events, best effort. It runs on a
// detached context so an expired request deadline cannot strand events.
func (s *schedulerService) rollback(ctx context.Context, userID int64, eventIDs []string) []schederrors.RollbackFailure {
	if len(eventIDs) == 0 {
		return nil
	}
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	var failures []schederrors.RollbackFailure
	for _, id := range eventIDs {
		if err := s.provider.DeleteEvent(rbCtx, userID, id); err != nil {
			s.cfg.Log.Error("Rollback delete failed, event may remain on calendar",
				"user_id", userID,
				"event_id", id,
				"error", err,
			)
			failures = append(failures, schederrors.RollbackFailure{EventID: id, Err: err})
		}
	}
	return failures
}

// publishScheduled emits the workout.scheduled event. Publish failures are
// logged only; the commit has already succeeded.
func (s *schedulerService) publishScheduled(ctx context.Context, userID int64, plan *model.WorkoutPlan, slots []model.TimeSlot, eventIDs []string) {
	if s.publisher == nil {
		return
	}
	msg := kafka.NewMessage().
		WithKey(fmt.Sprintf("%d", userID)).
		WithEventType(EventWorkoutScheduled).
		WithSource("planner").
		WithValue(map[string]any{
			"user_id":   userID,
			"plan_id":   plan.ID,
			"slots":     slots,
			"event_ids": eventIDs,
		}).
		Build()
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish scheduled event", "user_id", userID, "error", err)
	}
}
