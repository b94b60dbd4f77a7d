package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	profileserrors "planfit/internal/profiles/errors"
	"planfit/pkg/config"
	"planfit/pkg/model"
)

const CollectionName = "user_profiles"

type UserProfileRepository interface {
	Upsert(ctx context.Context, profile *model.UserProfile) error
	FindByID(ctx context.Context, userID int64) (*model.UserProfile, error)
	Delete(ctx context.Context, userID int64) error
}

type mongoUserProfileRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoUserProfileRepository(cfg *config.Config) UserProfileRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoUserProfileRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoUserProfileRepository) Upsert(ctx context.Context, profile *model.UserProfile) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	profile.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"fitness_level":            profile.FitnessLevel,
			"goals":                    profile.Goals,
			"available_equipment":      profile.AvailableEquipment,
			"workout_duration_minutes": profile.WorkoutDurationMinutes,
			"workout_days_per_week":    profile.WorkoutDaysPerWeek,
			"medical_limitations":      profile.MedicalLimitations,
			"additional_info":          profile.AdditionalInfo,
			"updated_at":               profile.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	_, err := r.collection.UpdateByID(ctx, profile.UserID, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert user profile: %w", err)
	}
	return nil
}

func (r *mongoUserProfileRepository) FindByID(ctx context.Context, userID int64) (*model.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var profile model.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, profileserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user profile: %w", err)
	}
	return &profile, nil
}

func (r *mongoUserProfileRepository) Delete(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete user profile: %w", err)
	}
	if result.DeletedCount == 0 {
		return profileserrors.ErrNotFound
	}
	return nil
}
