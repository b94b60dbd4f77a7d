package calendar

import (
	"context"
	"errors"
	"time"

	"planfit/pkg/model"
)

// ErrNotAuthorized is returned when no valid credentials exist for a user.
// The caller is expected to send the user through the auth flow.
var ErrNotAuthorized = errors.New("no calendar credentials for user")

// Provider is the external calendar boundary the scheduling core consumes.
// QueryBusy is read-only and called once per suggestion request; InsertEvent
// and DeleteEvent are the write pair the batch committer drives. All three
// may block on the network and honor ctx cancellation.
type Provider interface {
	QueryBusy(ctx context.Context, userID int64, timeMin, timeMax time.Time) ([]model.BusyInterval, error)
	InsertEvent(ctx context.Context, userID int64, body model.EventBody) (string, error)
	DeleteEvent(ctx context.Context, userID int64, eventID string) error
}
