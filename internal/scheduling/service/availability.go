package service

import (
	"planfit/pkg/model"
)

// SlotAvailable reports whether candidate overlaps none of the busy
// intervals. Intervals are half-open: a candidate that starts exactly
// when a busy interval ends, or ends exactly when one starts, is free.
// All times are compared in UTC regardless of input location.
func SlotAvailable(candidate model.TimeSlot, busy []model.BusyInterval) bool {
	start := candidate.Start.UTC()
	end := candidate.End.UTC()
	for _, b := range busy {
		if start.Before(b.End.UTC()) && end.After(b.Start.UTC()) {
			return false
		}
	}
	return true
}

// FilterAvailable returns the candidates that do not collide with any
// busy interval, in their original order and normalized to UTC.
func FilterAvailable(candidates []model.TimeSlot, busy []model.BusyInterval) []model.TimeSlot {
	available := make([]model.TimeSlot, 0, len(candidates))
	for _, c := range candidates {
		if SlotAvailable(c, busy) {
			available = append(available, c.Normalize())
		}
	}
	return available
}
