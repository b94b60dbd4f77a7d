package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"planfit/pkg/config"
	"planfit/pkg/logger"
	"planfit/pkg/model"
)

// GoogleClient implements Provider on the Google Calendar v3 API with
// per-user OAuth tokens from a TokenStore. Expired access tokens are
// refreshed transparently by the oauth2 token source and the refreshed
// token is persisted for the next call.
type GoogleClient struct {
	oauthCfg   *oauth2.Config
	tokens     TokenStore
	calendarID string
	log        *logger.Logger
}

func NewGoogleClient(cfg *config.Config, tokens TokenStore) *GoogleClient {
	return &GoogleClient{
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{gcal.CalendarScope},
			Endpoint:     google.Endpoint,
		},
		tokens:     tokens,
		calendarID: cfg.CalendarID,
		log:        cfg.Log,
	}
}

// AuthCodeURL returns the consent-screen URL for the re-authentication flow.
func (c *GoogleClient) AuthCodeURL(state string) string {
	return c.oauthCfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for a token and persists it.
func (c *GoogleClient) Exchange(ctx context.Context, userID int64, code string) error {
	tok, err := c.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchanging authorization code: %w", err)
	}
	if err := c.tokens.Save(ctx, userID, tok); err != nil {
		return fmt.Errorf("saving calendar token: %w", err)
	}
	c.log.Info("Calendar authorized", "user_id", userID)
	return nil
}

// Revoke drops the stored credentials for a user.
func (c *GoogleClient) Revoke(ctx context.Context, userID int64) error {
	return c.tokens.Delete(ctx, userID)
}

func (c *GoogleClient) service(ctx context.Context, userID int64) (*gcal.Service, oauth2.TokenSource, *oauth2.Token, error) {
	tok, err := c.tokens.Get(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	ts := c.oauthCfg.TokenSource(ctx, tok)
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, nil, nil, err
	}
	return svc, ts, tok, nil
}

// persistRefreshed stores the token back if the token source rotated it.
func (c *GoogleClient) persistRefreshed(ctx context.Context, userID int64, ts oauth2.TokenSource, old *oauth2.Token) {
	fresh, err := ts.Token()
	if err != nil || fresh.AccessToken == old.AccessToken {
		return
	}
	if err := c.tokens.Save(ctx, userID, fresh); err != nil {
		c.log.Warn("Failed to persist refreshed calendar token", "user_id", userID, "error", err)
	}
}

func (c *GoogleClient) QueryBusy(ctx context.Context, userID int64, timeMin, timeMax time.Time) ([]model.BusyInterval, error) {
	svc, ts, tok, err := c.service(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer c.persistRefreshed(ctx, userID, ts, tok)

	events, err := svc.Events.List(c.calendarID).
		TimeMin(timeMin.UTC().Format(time.RFC3339)).
		TimeMax(timeMax.UTC().Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w", err)
	}

	busy := make([]model.BusyInterval, 0, len(events.Items))
	for _, ev := range events.Items {
		start, err := parseEventTime(ev.Start)
		if err != nil {
			c.log.Warn("Skipping event with unparseable start", "event_id", ev.Id, "error", err)
			continue
		}
		end, err := parseEventTime(ev.End)
		if err != nil {
			c.log.Warn("Skipping event with unparseable end", "event_id", ev.Id, "error", err)
			continue
		}
		busy = append(busy, model.BusyInterval{Start: start.UTC(), End: end.UTC()})
	}
	return busy, nil
}

func (c *GoogleClient) InsertEvent(ctx context.Context, userID int64, body model.EventBody) (string, error) {
	svc, ts, tok, err := c.service(ctx, userID)
	if err != nil {
		return "", err
	}
	defer c.persistRefreshed(ctx, userID, ts, tok)

	overrides := make([]*gcal.EventReminder, 0, len(body.ReminderMinutes))
	for _, mins := range body.ReminderMinutes {
		overrides = append(overrides, &gcal.EventReminder{
			Method:  "popup",
			Minutes: int64(mins),
		})
	}

	event := &gcal.Event{
		Summary:     body.Summary,
		Description: body.Description,
		Start: &gcal.EventDateTime{
			DateTime: body.Start.Format(time.RFC3339),
			TimeZone: body.Timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: body.End.Format(time.RFC3339),
			TimeZone: body.Timezone,
		},
		Reminders: &gcal.EventReminders{
			UseDefault:      false,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("inserting calendar event: %w", err)
	}
	return created.Id, nil
}

func (c *GoogleClient) DeleteEvent(ctx context.Context, userID int64, eventID string) error {
	svc, ts, tok, err := c.service(ctx, userID)
	if err != nil {
		return err
	}
	defer c.persistRefreshed(ctx, userID, ts, tok)

	if err := svc.Events.Delete(c.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("deleting calendar event %s: %w", eventID, err)
	}
	return nil
}

// parseEventTime handles both timed (dateTime) and all-day (date) events.
func parseEventTime(edt *gcal.EventDateTime) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("event time is missing")
	}
	if edt.DateTime != "" {
		return time.Parse(time.RFC3339, edt.DateTime)
	}
	return time.Parse("2006-01-02", edt.Date)
}
