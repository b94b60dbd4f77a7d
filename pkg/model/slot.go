package model

import "time"

// TimeSlot is a half-open time window [Start, End). Instants are expected to
// be UTC-normalized before they reach the scheduling core; Normalize is the
// boundary helper for that.
type TimeSlot struct {
	Start time.Time `json:"start" bson:"start" validate:"required"`
	End   time.Time `json:"end" bson:"end" validate:"required,gtfield=Start"`
}

// Normalize returns the slot with both instants converted to UTC.
func (s TimeSlot) Normalize() TimeSlot {
	return TimeSlot{Start: s.Start.UTC(), End: s.End.UTC()}
}

func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// BusyInterval is an externally-booked period on the user's calendar.
// It is read-only and fetched fresh on every suggestion call.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
