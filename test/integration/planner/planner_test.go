package planner

import (
	"net/http"
	"testing"
	"time"

	"planfit/pkg/model"
	"planfit/test/integration/testutil"
)

func futureSlot(daysAhead int) model.TimeSlot {
	start := time.Now().UTC().AddDate(0, 0, daysAhead).Truncate(time.Hour)
	return model.TimeSlot{Start: start, End: start.Add(time.Hour)}
}

func TestHealthEndpoints(t *testing.T) {
	client := testutil.NewTestEnv().Setup(t)

	resp := client.GET(t, "/health")
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	resp = client.GET(t, "/ready")
	testutil.AssertStatusCode(t, resp, http.StatusOK)
}

func TestSuggest_RejectsMalformedRequests(t *testing.T) {
	client := testutil.NewTestEnv().Setup(t)

	resp := client.POST(t, "/api/v1/users/abc/schedule/suggestions", model.SuggestRequest{
		Slots: []model.TimeSlot{futureSlot(1)},
	})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)

	resp = client.POST(t, "/api/v1/users/7001/schedule/suggestions", model.SuggestRequest{})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)

	inverted := futureSlot(1)
	resp = client.POST(t, "/api/v1/users/7001/schedule/suggestions", model.SuggestRequest{
		Slots: []model.TimeSlot{{Start: inverted.End, End: inverted.Start}},
	})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}

func TestSuggest_UnauthorizedCalendar(t *testing.T) {
	client := testutil.NewTestEnv().Setup(t)

	// User 7002 never completed the OAuth flow.
	resp := client.POST(t, "/api/v1/users/7002/schedule/suggestions", model.SuggestRequest{
		Slots: []model.TimeSlot{futureSlot(1)},
	})
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	testutil.AssertContains(t, resp, "CALENDAR_NOT_AUTHORIZED")
}

func TestCommit_UnknownPlan(t *testing.T) {
	client := testutil.NewTestEnv().Setup(t)

	resp := client.POST(t, "/api/v1/users/7003/schedule/commitments", model.CommitRequest{
		PlanID: "7b51b7f0-48ad-4f0e-9a43-0e077a31cb3e",
		Slots:  []model.TimeSlot{futureSlot(1)},
	})
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}

func TestProfile_UnknownUser(t *testing.T) {
	client := testutil.NewTestEnv().Setup(t)

	resp := client.GET(t, "/api/v1/users/999999999/profile")
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}

func TestCalendarAuth_ReturnsConsentURL(t *testing.T) {
	client := testutil.NewTestEnv().Setup(t)

	resp := client.GET(t, "/api/v1/users/7004/calendar/auth")
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertContains(t, resp, "auth_url")
}
