package model

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type WorkoutGoal string

const (
	GoalStrength    WorkoutGoal = "strength"
	GoalWeightLoss  WorkoutGoal = "weight_loss"
	GoalMuscleGain  WorkoutGoal = "muscle_gain"
	GoalEndurance   WorkoutGoal = "endurance"
	GoalFlexibility WorkoutGoal = "flexibility"
)

type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleLegs      MuscleGroup = "legs"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleCore      MuscleGroup = "core"
	MuscleFullBody  MuscleGroup = "full_body"
)

type Exercise struct {
	Name            string      `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Description     string      `json:"description,omitempty" bson:"description,omitempty"`
	MuscleGroup     MuscleGroup `json:"muscle_group" bson:"muscle_group" validate:"required,oneof=chest back legs shoulders arms core full_body"`
	Difficulty      Difficulty  `json:"difficulty" bson:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Equipment       string      `json:"equipment" bson:"equipment" validate:"required"`
	VideoURL        string      `json:"video_url,omitempty" bson:"video_url,omitempty" validate:"omitempty,url"`
	ImageURL        string      `json:"image_url,omitempty" bson:"image_url,omitempty" validate:"omitempty,url"`
	Instructions    []string    `json:"instructions" bson:"instructions"`
	DurationMinutes int         `json:"duration_minutes,omitempty" bson:"duration_minutes,omitempty" validate:"omitempty,min=1"`
}

type WorkoutExercise struct {
	Exercise        Exercise `json:"exercise" bson:"exercise" validate:"required"`
	Sets            int      `json:"sets" bson:"sets" validate:"required,min=1,max=20"`
	Reps            int      `json:"reps" bson:"reps" validate:"required,min=1,max=100"`
	RestBetweenSets int      `json:"rest_between_sets" bson:"rest_between_sets" validate:"min=0,max=600"`
	Notes           string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

type UserProfile struct {
	UserID                  int64         `json:"user_id" bson:"_id" validate:"required"`
	FitnessLevel            Difficulty    `json:"fitness_level" bson:"fitness_level" validate:"required,oneof=beginner intermediate advanced"`
	Goals                   []WorkoutGoal `json:"goals" bson:"goals" validate:"required,min=1,dive,oneof=strength weight_loss muscle_gain endurance flexibility"`
	AvailableEquipment      []string      `json:"available_equipment" bson:"available_equipment" validate:"required,min=1"`
	WorkoutDurationMinutes  int           `json:"workout_duration_minutes" bson:"workout_duration_minutes" validate:"required,min=10,max=240"`
	WorkoutDaysPerWeek      int           `json:"workout_days_per_week" bson:"workout_days_per_week" validate:"required,min=1,max=7"`
	MedicalLimitations      []string      `json:"medical_limitations,omitempty" bson:"medical_limitations,omitempty"`
	AdditionalInfo          string        `json:"additional_info,omitempty" bson:"additional_info,omitempty"`
	CreatedAt               time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at" bson:"updated_at"`
}

// WorkoutPlan is an ordered sequence of per-day exercise lists. Workouts[i]
// maps to exactly one confirmed TimeSlot at commit time.
type WorkoutPlan struct {
	ID            string              `json:"id" bson:"_id" validate:"required,uuid4"`
	UserID        int64               `json:"user_id" bson:"user_id" validate:"required"`
	DurationWeeks int                 `json:"duration_weeks" bson:"duration_weeks" validate:"required,min=1,max=52"`
	Workouts      [][]WorkoutExercise `json:"workouts" bson:"workouts" validate:"required,min=1,dive,required,min=1"`
	Notes         string              `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at" bson:"created_at"`
}
