package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("token exchange failed")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if wrapped.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "resource not found",
			},
			expected: "NOT_FOUND: resource not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeCalendarQuery,
				Message: "failed to query calendar availability",
				Err:     errors.New("connection reset"),
			},
			expected: "CALENDAR_QUERY_FAILED: failed to query calendar availability (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Wrap(originalErr, CodeInternal, "wrapped", http.StatusInternalServerError)

	unwrapped := errors.Unwrap(appErr)
	if unwrapped != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestCalendarQuery_CarriesUserContext(t *testing.T) {
	cause := errors.New("status 503")
	err := CalendarQuery(42, cause)

	if err.Code != CodeCalendarQuery {
		t.Errorf("expected code %s, got %s", CodeCalendarQuery, err.Code)
	}
	if err.Details["user_id"] != int64(42) {
		t.Errorf("expected user_id detail 42, got %v", err.Details["user_id"])
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected CalendarQuery to wrap the cause")
	}
}

func TestCalendarWrite_CarriesFailingIndex(t *testing.T) {
	err := CalendarWrite(7, 3, errors.New("insert failed"))

	if err.Details["index"] != 3 {
		t.Errorf("expected index detail 3, got %v", err.Details["index"])
	}
	if err.Details["user_id"] != int64(7) {
		t.Errorf("expected user_id detail 7, got %v", err.Details["user_id"])
	}
}

func TestHasCode(t *testing.T) {
	if !HasCode(Precondition("slot count mismatch"), CodePrecondition) {
		t.Errorf("expected HasCode to match precondition error")
	}
	if HasCode(errors.New("plain"), CodePrecondition) {
		t.Errorf("expected HasCode to reject plain errors")
	}
}

func TestAsAppError_WrapsUnknownErrors(t *testing.T) {
	plain := errors.New("boom")
	appErr := AsAppError(plain)

	if appErr.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, appErr.Code)
	}
	if appErr.Err != plain {
		t.Errorf("expected original error to be preserved")
	}
}
