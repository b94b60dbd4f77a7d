package validator

import (
	"testing"
	"time"

	"planfit/pkg/logger"
	"planfit/pkg/model"
)

func newTestValidator() *SchedulingValidator {
	v := NewSchedulingValidator(logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	}))
	v.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return v
}

func futureSlot(day int) model.TimeSlot {
	start := time.Date(2025, 6, day, 9, 0, 0, 0, time.UTC)
	return model.TimeSlot{Start: start, End: start.Add(time.Hour)}
}

func TestValidateSuggest_Valid(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateSuggest(&model.SuggestRequest{
		Slots:         []model.TimeSlot{futureSlot(2), futureSlot(3)},
		LookaheadDays: 14,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSuggest_EmptySlots(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateSuggest(&model.SuggestRequest{Slots: []model.TimeSlot{}})
	if err == nil {
		t.Fatal("expected error for empty slot list")
	}
}

func TestValidateSuggest_InvertedSlot(t *testing.T) {
	v := newTestValidator()

	s := futureSlot(2)
	err := v.ValidateSuggest(&model.SuggestRequest{
		Slots: []model.TimeSlot{{Start: s.End, End: s.Start}},
	})
	if err == nil {
		t.Fatal("expected error for slot with end before start")
	}
}

func TestValidateSuggest_PastSlot(t *testing.T) {
	v := newTestValidator()

	start := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	err := v.ValidateSuggest(&model.SuggestRequest{
		Slots: []model.TimeSlot{{Start: start, End: start.Add(time.Hour)}},
	})
	if err == nil {
		t.Fatal("expected error for slot in the past")
	}
}

func TestValidateCommit_RequiresPlanID(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateCommit(&model.CommitRequest{
		Slots: []model.TimeSlot{futureSlot(2)},
	})
	if err == nil {
		t.Fatal("expected error for missing plan id")
	}

	err = v.ValidateCommit(&model.CommitRequest{
		PlanID: "not-a-uuid",
		Slots:  []model.TimeSlot{futureSlot(2)},
	})
	if err == nil {
		t.Fatal("expected error for malformed plan id")
	}

	err = v.ValidateCommit(&model.CommitRequest{
		PlanID: "7b51b7f0-48ad-4f0e-9a43-0e077a31cb3e",
		Slots:  []model.TimeSlot{futureSlot(2)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
