package errors

import (
	"errors"
	"fmt"
)

var (
	ErrSlotCountMismatch = errors.New("confirmed slot count does not match plan workout days")

	ErrMissingPlan = errors.New("a workout plan is required to commit slots")

	ErrInvalidTimeRange = errors.New("slot end time must be after start time")
)

// RollbackFailure records a compensating delete that did not succeed.
// The event it names may still exist on the user's calendar.
type RollbackFailure struct {
	EventID string
	Err     error
}

// CommitError is returned when a batch commit fails partway through.
// Err is the insert failure that aborted the batch, FailedIndex is the
// position of the slot that could not be written, and RollbackFailures
// lists any already-created events that could not be deleted again.
type CommitError struct {
	UserID           int64
	FailedIndex      int
	Err              error
	RollbackFailures []RollbackFailure
}

func (e *CommitError) Error() string {
	if len(e.RollbackFailures) == 0 {
		return fmt.Sprintf("commit failed for user %d at slot %d: %v", e.UserID, e.FailedIndex, e.Err)
	}
	return fmt.Sprintf("commit failed for user %d at slot %d (%d rollback deletes also failed): %v",
		e.UserID, e.FailedIndex, len(e.RollbackFailures), e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
