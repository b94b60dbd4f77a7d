package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	planserrors "planfit/internal/plans/errors"
	"planfit/pkg/config"
	mongotx "planfit/pkg/db/mongo"
	"planfit/pkg/model"
)

const CollectionName = "workout_plans"

type WorkoutPlanRepository interface {
	// Replace stores the plan and removes the user's previous plans in a
	// single transaction, so each user has at most one active plan.
	Replace(ctx context.Context, plan *model.WorkoutPlan) error
	FindByID(ctx context.Context, planID string) (*model.WorkoutPlan, error)
	FindLatestByUser(ctx context.Context, userID int64) (*model.WorkoutPlan, error)
}

type mongoWorkoutPlanRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoWorkoutPlanRepository(cfg *config.Config) WorkoutPlanRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoWorkoutPlanRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

func (r *mongoWorkoutPlanRepository) Replace(ctx context.Context, plan *model.WorkoutPlan) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	plan.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	return r.txManager.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		_, err := r.collection.DeleteMany(sessCtx, bson.M{
			"user_id": plan.UserID,
			"_id":     bson.M{"$ne": plan.ID},
		})
		if err != nil {
			return fmt.Errorf("failed to remove previous plans: %w", err)
		}
		if _, err := r.collection.InsertOne(sessCtx, plan); err != nil {
			return fmt.Errorf("failed to store workout plan: %w", err)
		}
		return nil
	})
}

func (r *mongoWorkoutPlanRepository) FindByID(ctx context.Context, planID string) (*model.WorkoutPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	if _, err := uuid.Parse(planID); err != nil {
		return nil, fmt.Errorf("%w: %s", planserrors.ErrInvalidID, planID)
	}

	var plan model.WorkoutPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": planID}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, planserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workout plan: %w", err)
	}
	return &plan, nil
}

func (r *mongoWorkoutPlanRepository) FindLatestByUser(ctx context.Context, userID int64) (*model.WorkoutPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var plan model.WorkoutPlan
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, planserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workout plan: %w", err)
	}
	return &plan, nil
}
