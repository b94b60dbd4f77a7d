package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"planfit/internal/llm"
	profileserrors "planfit/internal/profiles/errors"
	"planfit/internal/profiles/repository"
	"planfit/internal/profiles/validator"
	"planfit/pkg/config"
	apperrors "planfit/pkg/errors"
	"planfit/pkg/model"
	"planfit/pkg/sanitizer"
)

const maxDescriptionLen = 2000

const profileSystemPrompt = `You are a fitness assistant that extracts a structured training profile from a user's free-text description.
Respond with a single JSON object and nothing else, using exactly these keys:
  "fitness_level": one of "beginner", "intermediate", "advanced"
  "goals": array with one or more of "strength", "weight_loss", "muscle_gain", "endurance", "flexibility"
  "available_equipment": array of strings, use "bodyweight" when the user has no equipment
  "workout_duration_minutes": integer between 10 and 240
  "workout_days_per_week": integer between 1 and 7
  "medical_limitations": array of strings, empty if none
If the user corrects something they said earlier, use the corrected value.
If you cannot infer a field, pick a sensible conservative default.`

type UserProfileService interface {
	// BuildFromDescription turns a free-text self description into a
	// structured profile and stores it. Follow-up messages refine the
	// previous answer through the conversation window.
	BuildFromDescription(ctx context.Context, userID int64, description string) (*model.UserProfile, error)
	Get(ctx context.Context, userID int64) (*model.UserProfile, error)
	Delete(ctx context.Context, userID int64) error
}

type userProfileService struct {
	repo      repository.UserProfileRepository
	completer llm.Completer
	validator *validator.ProfileValidator
	cfg       *config.Config
}

func NewUserProfileService(
	repo repository.UserProfileRepository,
	completer llm.Completer,
	v *validator.ProfileValidator,
	cfg *config.Config,
) UserProfileService {
	return &userProfileService{
		repo:      repo,
		completer: completer,
		validator: v,
		cfg:       cfg,
	}
}

// extractedProfile is the shape the model is asked to produce.
type extractedProfile struct {
	FitnessLevel           string   `json:"fitness_level"`
	Goals                  []string `json:"goals"`
	AvailableEquipment     []string `json:"available_equipment"`
	WorkoutDurationMinutes int      `json:"workout_duration_minutes"`
	WorkoutDaysPerWeek     int      `json:"workout_days_per_week"`
	MedicalLimitations     []string `json:"medical_limitations"`
}

func (s *userProfileService) BuildFromDescription(ctx context.Context, userID int64, description string) (*model.UserProfile, error) {
	description = sanitizer.NormalizeFreeText(description, maxDescriptionLen)
	if description == "" {
		return nil, apperrors.InvalidInput("Description cannot be empty")
	}

	reply, err := s.completer.Chat(ctx, userID, profileSystemPrompt, description)
	if err != nil {
		s.cfg.Log.Error("Profile extraction request failed", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to analyze description", err)
	}

	var extracted extractedProfile
	if err := json.Unmarshal([]byte(llm.ExtractJSON(reply)), &extracted); err != nil {
		s.cfg.Log.Warn("Model reply was not valid JSON", "user_id", userID, "error", err)
		return nil, apperrors.Validation(profileserrors.ErrUnparseableProfile.Error(), nil)
	}

	profile := s.toProfile(userID, &extracted, description)
	if err := s.validator.Validate(profile); err != nil {
		return nil, apperrors.Validation(err.Error(), nil)
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		s.cfg.Log.Error("Failed to store user profile", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to store profile", err)
	}

	s.cfg.Log.Info("User profile updated",
		"user_id", userID,
		"fitness_level", profile.FitnessLevel,
		"days_per_week", profile.WorkoutDaysPerWeek,
	)
	return profile, nil
}

func (s *userProfileService) Get(ctx context.Context, userID int64) (*model.UserProfile, error) {
	profile, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileserrors.ErrNotFound) {
			return nil, apperrors.NotFound("user profile")
		}
		return nil, apperrors.Internal("Failed to load profile", err)
	}
	return profile, nil
}

func (s *userProfileService) Delete(ctx context.Context, userID int64) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, profileserrors.ErrNotFound) {
			return apperrors.NotFound("user profile")
		}
		return apperrors.Internal("Failed to delete profile", err)
	}
	s.cfg.Log.Info("User profile deleted", "user_id", userID)
	return nil
}

func (s *userProfileService) toProfile(userID int64, extracted *extractedProfile, description string) *model.UserProfile {
	goals := make([]model.WorkoutGoal, 0, len(extracted.Goals))
	for _, g := range extracted.Goals {
		goals = append(goals, model.WorkoutGoal(strings.ToLower(sanitizer.TrimAndNormalize(g))))
	}

	limitations := make([]string, 0, len(extracted.MedicalLimitations))
	for _, l := range extracted.MedicalLimitations {
		if normalized := sanitizer.TrimAndNormalize(l); normalized != "" {
			limitations = append(limitations, normalized)
		}
	}

	return &model.UserProfile{
		UserID:                 userID,
		FitnessLevel:           model.Difficulty(strings.ToLower(sanitizer.TrimAndNormalize(extracted.FitnessLevel))),
		Goals:                  goals,
		AvailableEquipment:     sanitizer.NormalizeEquipmentList(extracted.AvailableEquipment),
		WorkoutDurationMinutes: extracted.WorkoutDurationMinutes,
		WorkoutDaysPerWeek:     extracted.WorkoutDaysPerWeek,
		MedicalLimitations:     limitations,
		AdditionalInfo:         description,
		CreatedAt:              time.Now().UTC(),
	}
}
