package service

import (
	"context"
	"testing"

	planserrors "planfit/internal/plans/errors"
	"planfit/internal/plans/validator"
	profileserrors "planfit/internal/profiles/errors"
	"planfit/pkg/config"
	apperrors "planfit/pkg/errors"
	"planfit/pkg/logger"
	"planfit/pkg/model"
)

type mockPlanRepository struct {
	replaced   *model.WorkoutPlan
	replaceErr error
	byID       map[string]*model.WorkoutPlan
}

func (m *mockPlanRepository) Replace(ctx context.Context, plan *model.WorkoutPlan) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced = plan
	return nil
}

func (m *mockPlanRepository) FindByID(ctx context.Context, planID string) (*model.WorkoutPlan, error) {
	if plan, ok := m.byID[planID]; ok {
		return plan, nil
	}
	return nil, planserrors.ErrNotFound
}

func (m *mockPlanRepository) FindLatestByUser(ctx context.Context, userID int64) (*model.WorkoutPlan, error) {
	return nil, planserrors.ErrNotFound
}

type mockProfileRepository struct {
	profile *model.UserProfile
}

func (m *mockProfileRepository) Upsert(ctx context.Context, profile *model.UserProfile) error {
	return nil
}

func (m *mockProfileRepository) FindByID(ctx context.Context, userID int64) (*model.UserProfile, error) {
	if m.profile == nil {
		return nil, profileserrors.ErrNotFound
	}
	return m.profile, nil
}

func (m *mockProfileRepository) Delete(ctx context.Context, userID int64) error {
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

func testProfile() *model.UserProfile {
	return &model.UserProfile{
		UserID:                 42,
		FitnessLevel:           model.DifficultyBeginner,
		Goals:                  []model.WorkoutGoal{model.GoalStrength},
		AvailableEquipment:     []string{"bodyweight"},
		WorkoutDurationMinutes: 45,
		WorkoutDaysPerWeek:     2,
	}
}

const exerciseJSON = `{
	"name": "Push Up",
	"muscle_group": "Chest",
	"difficulty": "Beginner",
	"equipment": "bodyweight",
	"instructions": ["Keep your back straight."],
	"sets": 3,
	"reps": 12,
	"rest_between_sets": 60
}`

func planReply(days int) string {
	workouts := "["
	for i := 0; i < days; i++ {
		if i > 0 {
			workouts += ","
		}
		workouts += "[" + exerciseJSON + "]"
	}
	workouts += "]"
	return `{"duration_weeks": 4, "notes": "Start light.", "workouts": ` + workouts + `}`
}

func newTestService(repo *mockPlanRepository, profiles *mockProfileRepository, completer *mockCompleter) WorkoutPlanService {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	cfg := &config.Config{Log: log}
	return NewWorkoutPlanService(repo, profiles, completer, validator.NewPlanValidator(log), cfg)
}

func TestGenerate_StoresValidPlan(t *testing.T) {
	repo := &mockPlanRepository{}
	svc := newTestService(repo, &mockProfileRepository{profile: testProfile()}, &mockCompleter{reply: planReply(2)})

	plan, err := svc.Generate(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.UserID != 42 {
		t.Errorf("expected plan for user 42, got %d", plan.UserID)
	}
	if len(plan.Workouts) != 2 {
		t.Errorf("expected 2 workout days, got %d", len(plan.Workouts))
	}
	if plan.ID == "" {
		t.Error("expected generated plan ID")
	}
	if plan.Workouts[0][0].Exercise.MuscleGroup != model.MuscleChest {
		t.Errorf("expected muscle group normalized to lowercase, got %q", plan.Workouts[0][0].Exercise.MuscleGroup)
	}
	if repo.replaced == nil {
		t.Fatal("expected plan to be stored")
	}
}

func TestGenerate_TruncatesExtraDays(t *testing.T) {
	repo := &mockPlanRepository{}
	svc := newTestService(repo, &mockProfileRepository{profile: testProfile()}, &mockCompleter{reply: planReply(5)})

	plan, err := svc.Generate(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Workouts) != 2 {
		t.Errorf("expected plan capped at 2 training days, got %d", len(plan.Workouts))
	}
}

func TestGenerate_RequiresProfile(t *testing.T) {
	svc := newTestService(&mockPlanRepository{}, &mockProfileRepository{}, &mockCompleter{reply: planReply(2)})

	_, err := svc.Generate(context.Background(), 42)
	if !apperrors.HasCode(err, apperrors.CodePrecondition) {
		t.Fatalf("expected precondition error without profile, got %v", err)
	}
}

func TestGenerate_UnparseableReply(t *testing.T) {
	svc := newTestService(&mockPlanRepository{}, &mockProfileRepository{profile: testProfile()}, &mockCompleter{reply: "I suggest you rest instead"})

	_, err := svc.Generate(context.Background(), 42)
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGenerate_RejectsEmptyWorkouts(t *testing.T) {
	reply := `{"duration_weeks": 4, "workouts": []}`
	svc := newTestService(&mockPlanRepository{}, &mockProfileRepository{profile: testProfile()}, &mockCompleter{reply: reply})

	_, err := svc.Generate(context.Background(), 42)
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation error for empty plan, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&mockPlanRepository{}, &mockProfileRepository{}, &mockCompleter{})

	_, err := svc.GetByID(context.Background(), "7b51b7f0-48ad-4f0e-9a43-0e077a31cb3e")
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
