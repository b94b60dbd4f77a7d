package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"planfit/internal/llm"
	planserrors "planfit/internal/plans/errors"
	"planfit/internal/plans/repository"
	"planfit/internal/plans/validator"
	profileserrors "planfit/internal/profiles/errors"
	profilesrepo "planfit/internal/profiles/repository"
	"planfit/pkg/config"
	apperrors "planfit/pkg/errors"
	"planfit/pkg/model"
)

const planSystemPrompt = `You are a certified fitness coach. Design a weekly workout plan for the user described below.
Respond with a single JSON object and nothing else:
{
  "duration_weeks": integer between 1 and 52,
  "notes": optional string with overall guidance,
  "workouts": array with exactly one entry per training day, each entry an array of exercises:
    {
      "name": string,
      "muscle_group": one of "chest", "back", "legs", "shoulders", "arms", "core", "full_body",
      "difficulty": one of "beginner", "intermediate", "advanced",
      "equipment": string, "bodyweight" when none is needed,
      "instructions": array of short instruction strings,
      "sets": integer between 1 and 20,
      "reps": integer between 1 and 100,
      "rest_between_sets": rest in seconds between 0 and 600
    }
}
Only use equipment the user has. Respect every medical limitation. Match the exercise difficulty to the user's fitness level and keep each day within the user's session length.`

type WorkoutPlanService interface {
	// Generate builds a plan from the user's stored profile and replaces
	// any previous plan.
	Generate(ctx context.Context, userID int64) (*model.WorkoutPlan, error)
	GetByID(ctx context.Context, planID string) (*model.WorkoutPlan, error)
	GetLatest(ctx context.Context, userID int64) (*model.WorkoutPlan, error)
}

type workoutPlanService struct {
	repo      repository.WorkoutPlanRepository
	profiles  profilesrepo.UserProfileRepository
	completer llm.Completer
	validator *validator.PlanValidator
	cfg       *config.Config
}

func NewWorkoutPlanService(
	repo repository.WorkoutPlanRepository,
	profiles profilesrepo.UserProfileRepository,
	completer llm.Completer,
	v *validator.PlanValidator,
	cfg *config.Config,
) WorkoutPlanService {
	return &workoutPlanService{
		repo:      repo,
		profiles:  profiles,
		completer: completer,
		validator: v,
		cfg:       cfg,
	}
}

// generatedPlan is the shape the model is asked to produce.
type generatedPlan struct {
	DurationWeeks int                   `json:"duration_weeks"`
	Notes         string                `json:"notes"`
	Workouts      [][]generatedExercise `json:"workouts"`
}

type generatedExercise struct {
	Name            string   `json:"name"`
	MuscleGroup     string   `json:"muscle_group"`
	Difficulty      string   `json:"difficulty"`
	Equipment       string   `json:"equipment"`
	Instructions    []string `json:"instructions"`
	Sets            int      `json:"sets"`
	Reps            int      `json:"reps"`
	RestBetweenSets int      `json:"rest_between_sets"`
}

func (s *workoutPlanService) Generate(ctx context.Context, userID int64) (*model.WorkoutPlan, error) {
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileserrors.ErrNotFound) {
			return nil, apperrors.Precondition(planserrors.ErrNoProfile.Error())
		}
		return nil, apperrors.Internal("Failed to load profile", err)
	}

	reply, err := s.completer.Complete(ctx, planSystemPrompt, describeProfile(profile))
	if err != nil {
		s.cfg.Log.Error("Plan generation request failed", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to generate workout plan", err)
	}

	var generated generatedPlan
	if err := json.Unmarshal([]byte(llm.ExtractJSON(reply)), &generated); err != nil {
		s.cfg.Log.Warn("Model reply was not valid JSON", "user_id", userID, "error", err)
		return nil, apperrors.Validation(planserrors.ErrUnparseablePlan.Error(), nil)
	}

	plan := s.toPlan(userID, profile, &generated)
	if err := s.validator.Validate(plan); err != nil {
		s.cfg.Log.Warn("Generated plan failed validation", "user_id", userID, "error", err)
		return nil, apperrors.Validation(err.Error(), nil)
	}

	if err := s.repo.Replace(ctx, plan); err != nil {
		s.cfg.Log.Error("Failed to store workout plan", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to store workout plan", err)
	}

	s.cfg.Log.Info("Workout plan generated",
		"user_id", userID,
		"plan_id", plan.ID,
		"days", len(plan.Workouts),
	)
	return plan, nil
}

func (s *workoutPlanService) GetByID(ctx context.Context, planID string) (*model.WorkoutPlan, error) {
	plan, err := s.repo.FindByID(ctx, planID)
	if err != nil {
		switch {
		case errors.Is(err, planserrors.ErrNotFound):
			return nil, apperrors.NotFoundWithID("workout plan", planID)
		case errors.Is(err, planserrors.ErrInvalidID):
			return nil, apperrors.InvalidInput(err.Error())
		}
		return nil, apperrors.Internal("Failed to load workout plan", err)
	}
	return plan, nil
}

func (s *workoutPlanService) GetLatest(ctx context.Context, userID int64) (*model.WorkoutPlan, error) {
	plan, err := s.repo.FindLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, planserrors.ErrNotFound) {
			return nil, apperrors.NotFound("workout plan")
		}
		return nil, apperrors.Internal("Failed to load workout plan", err)
	}
	return plan, nil
}

// toPlan converts the model output, truncating extra days so the plan
// never exceeds the profile's training frequency.
func (s *workoutPlanService) toPlan(userID int64, profile *model.UserProfile, generated *generatedPlan) *model.WorkoutPlan {
	days := generated.Workouts
	if len(days) > profile.WorkoutDaysPerWeek {
		days = days[:profile.WorkoutDaysPerWeek]
	}

	workouts := make([][]model.WorkoutExercise, 0, len(days))
	for _, day := range days {
		exercises := make([]model.WorkoutExercise, 0, len(day))
		for _, ge := range day {
			exercises = append(exercises, model.WorkoutExercise{
				Exercise: model.Exercise{
					Name:         ge.Name,
					MuscleGroup:  model.MuscleGroup(strings.ToLower(ge.MuscleGroup)),
					Difficulty:   model.Difficulty(strings.ToLower(ge.Difficulty)),
					Equipment:    ge.Equipment,
					Instructions: ge.Instructions,
				},
				Sets:            ge.Sets,
				Reps:            ge.Reps,
				RestBetweenSets: ge.RestBetweenSets,
			})
		}
		workouts = append(workouts, exercises)
	}

	return &model.WorkoutPlan{
		ID:            uuid.New().String(),
		UserID:        userID,
		DurationWeeks: generated.DurationWeeks,
		Workouts:      workouts,
		Notes:         generated.Notes,
	}
}

func describeProfile(p *model.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fitness level: %s\n", p.FitnessLevel)

	goals := make([]string, 0, len(p.Goals))
	for _, g := range p.Goals {
		goals = append(goals, string(g))
	}
	fmt.Fprintf(&b, "Goals: %s\n", strings.Join(goals, ", "))
	fmt.Fprintf(&b, "Available equipment: %s\n", strings.Join(p.AvailableEquipment, ", "))
	fmt.Fprintf(&b, "Session length: %d minutes\n", p.WorkoutDurationMinutes)
	fmt.Fprintf(&b, "Training days per week: %d\n", p.WorkoutDaysPerWeek)
	if len(p.MedicalLimitations) > 0 {
		fmt.Fprintf(&b, "Medical limitations: %s\n", strings.Join(p.MedicalLimitations, ", "))
	}
	if p.AdditionalInfo != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", p.AdditionalInfo)
	}
	return b.String()
}
