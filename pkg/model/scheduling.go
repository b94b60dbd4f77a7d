package model

// SuggestRequest asks which of the preferred slots are still free.
type SuggestRequest struct {
	Slots         []TimeSlot `json:"slots" validate:"required,min=1,max=50,dive"`
	LookaheadDays int        `json:"lookahead_days,omitempty" validate:"omitempty,min=1,max=60"`
}

// CommitRequest books one calendar event per confirmed slot, matched
// positionally against the plan's workout days.
type CommitRequest struct {
	PlanID string     `json:"plan_id" validate:"required,uuid4"`
	Slots  []TimeSlot `json:"slots" validate:"required,min=1,max=50,dive"`
}

// SuggestResponse lists the conflict-free slots in request order.
type SuggestResponse struct {
	Available []TimeSlot `json:"available"`
}

// CommitResponse lists the created calendar event IDs in slot order.
type CommitResponse struct {
	EventIDs []string `json:"event_ids"`
}
