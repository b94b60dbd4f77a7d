package errors

import "errors"

var (
	ErrNotFound = errors.New("workout plan not found")

	ErrInvalidID = errors.New("invalid workout plan ID format")

	ErrNoProfile = errors.New("a user profile is required to generate a plan")

	ErrUnparseablePlan = errors.New("could not extract a workout plan from the model reply")
)
