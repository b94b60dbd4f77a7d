package service

import (
	"context"
	"errors"
	"testing"

	profileserrors "planfit/internal/profiles/errors"
	"planfit/internal/profiles/repository"
	"planfit/internal/profiles/validator"
	"planfit/pkg/config"
	apperrors "planfit/pkg/errors"
	"planfit/pkg/logger"
	"planfit/pkg/model"
)

type mockProfileRepository struct {
	upsertFunc func(ctx context.Context, profile *model.UserProfile) error
	findFunc   func(ctx context.Context, userID int64) (*model.UserProfile, error)
	deleteFunc func(ctx context.Context, userID int64) error
	upserted   *model.UserProfile
}

func (m *mockProfileRepository) Upsert(ctx context.Context, profile *model.UserProfile) error {
	m.upserted = profile
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) FindByID(ctx context.Context, userID int64) (*model.UserProfile, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepository) Delete(ctx context.Context, userID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID)
	}
	return nil
}

type mockCompleter struct {
	reply string
	err   error
}

func (m *mockCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	return m.reply, m.err
}

func (m *mockCompleter) Chat(ctx context.Context, userID int64, system, user string) (string, error) {
	return m.reply, m.err
}

func newTestService(repo repository.UserProfileRepository, completer *mockCompleter) UserProfileService {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	cfg := &config.Config{Log: log}
	return NewUserProfileService(repo, completer, validator.NewProfileValidator(log), cfg)
}

const validReply = `{
	"fitness_level": "Intermediate",
	"goals": ["strength", "endurance"],
	"available_equipment": ["Dumbbells", "dumbbells", "pull-up bar"],
	"workout_duration_minutes": 45,
	"workout_days_per_week": 3,
	"medical_limitations": []
}`

func TestBuildFromDescription_ParsesAndStores(t *testing.T) {
	repo := &mockProfileRepository{}
	svc := newTestService(repo, &mockCompleter{reply: validReply})

	profile, err := svc.BuildFromDescription(context.Background(), 42, "I lift twice a week and want to get stronger")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.FitnessLevel != model.DifficultyIntermediate {
		t.Errorf("expected intermediate level, got %q", profile.FitnessLevel)
	}
	if len(profile.Goals) != 2 {
		t.Errorf("expected 2 goals, got %d", len(profile.Goals))
	}
	if len(profile.AvailableEquipment) != 2 {
		t.Errorf("expected duplicate equipment collapsed, got %v", profile.AvailableEquipment)
	}
	if repo.upserted == nil {
		t.Fatal("expected profile to be stored")
	}
	if repo.upserted.UserID != 42 {
		t.Errorf("expected stored profile for user 42, got %d", repo.upserted.UserID)
	}
}

func TestBuildFromDescription_StripsCodeFence(t *testing.T) {
	repo := &mockProfileRepository{}
	svc := newTestService(repo, &mockCompleter{reply: "```json\n" + validReply + "\n```"})

	_, err := svc.BuildFromDescription(context.Background(), 42, "some description")
	if err != nil {
		t.Fatalf("unexpected error for fenced reply: %v", err)
	}
}

func TestBuildFromDescription_EmptyDescription(t *testing.T) {
	svc := newTestService(&mockProfileRepository{}, &mockCompleter{reply: validReply})

	_, err := svc.BuildFromDescription(context.Background(), 42, "   \n\t ")
	if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestBuildFromDescription_UnparseableReply(t *testing.T) {
	svc := newTestService(&mockProfileRepository{}, &mockCompleter{reply: "sorry, I cannot help with that"})

	_, err := svc.BuildFromDescription(context.Background(), 42, "some description")
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBuildFromDescription_InvalidExtractedValues(t *testing.T) {
	reply := `{
		"fitness_level": "superhuman",
		"goals": ["strength"],
		"available_equipment": ["barbell"],
		"workout_duration_minutes": 45,
		"workout_days_per_week": 3,
		"medical_limitations": []
	}`
	svc := newTestService(&mockProfileRepository{}, &mockCompleter{reply: reply})

	_, err := svc.BuildFromDescription(context.Background(), 42, "some description")
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation error for out-of-range level, got %v", err)
	}
}

func TestBuildFromDescription_CompletionFailure(t *testing.T) {
	svc := newTestService(&mockProfileRepository{}, &mockCompleter{err: errors.New("rate limited")})

	_, err := svc.BuildFromDescription(context.Background(), 42, "some description")
	if !apperrors.HasCode(err, apperrors.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockProfileRepository{
		findFunc: func(ctx context.Context, userID int64) (*model.UserProfile, error) {
			return nil, profileserrors.ErrNotFound
		},
	}
	svc := newTestService(repo, &mockCompleter{})

	_, err := svc.Get(context.Background(), 42)
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
