package service

import (
	"testing"
	"time"

	"planfit/pkg/model"
)

func slot(start, end string) model.TimeSlot {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		panic(err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		panic(err)
	}
	return model.TimeSlot{Start: s, End: e}
}

func busy(start, end string) model.BusyInterval {
	s := slot(start, end)
	return model.BusyInterval{Start: s.Start, End: s.End}
}

func TestSlotAvailable_NoBusyIntervals(t *testing.T) {
	candidate := slot("2025-06-02T09:00:00Z", "2025-06-02T10:00:00Z")

	if !SlotAvailable(candidate, nil) {
		t.Error("expected candidate to be available with no busy intervals")
	}
	if !SlotAvailable(candidate, []model.BusyInterval{}) {
		t.Error("expected candidate to be available with empty busy list")
	}
}

func TestSlotAvailable_ExactCollision(t *testing.T) {
	// Monday 9-10 is booked; same Monday slot collides, Tuesday does not.
	booked := []model.BusyInterval{busy("2025-06-02T09:00:00Z", "2025-06-02T10:00:00Z")}

	monday := slot("2025-06-02T09:00:00Z", "2025-06-02T10:00:00Z")
	tuesday := slot("2025-06-03T09:00:00Z", "2025-06-03T10:00:00Z")

	if SlotAvailable(monday, booked) {
		t.Error("expected Monday slot to collide with identical busy interval")
	}
	if !SlotAvailable(tuesday, booked) {
		t.Error("expected Tuesday slot to be free")
	}
}

func TestSlotAvailable_TouchingEndpointsAreFree(t *testing.T) {
	booked := []model.BusyInterval{busy("2025-06-02T09:00:00Z", "2025-06-02T10:00:00Z")}

	before := slot("2025-06-02T08:00:00Z", "2025-06-02T09:00:00Z")
	after := slot("2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z")

	if !SlotAvailable(before, booked) {
		t.Error("slot ending exactly when busy interval starts must be free")
	}
	if !SlotAvailable(after, booked) {
		t.Error("slot starting exactly when busy interval ends must be free")
	}
}

func TestSlotAvailable_PartialOverlaps(t *testing.T) {
	booked := []model.BusyInterval{busy("2025-06-02T09:00:00Z", "2025-06-02T10:00:00Z")}

	cases := []struct {
		name      string
		candidate model.TimeSlot
	}{
		{"overlaps start", slot("2025-06-02T08:30:00Z", "2025-06-02T09:30:00Z")},
		{"overlaps end", slot("2025-06-02T09:30:00Z", "2025-06-02T10:30:00Z")},
		{"inside busy", slot("2025-06-02T09:15:00Z", "2025-06-02T09:45:00Z")},
		{"contains busy", slot("2025-06-02T08:00:00Z", "2025-06-02T11:00:00Z")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if SlotAvailable(tc.candidate, booked) {
				t.Errorf("expected %v-%v to collide", tc.candidate.Start, tc.candidate.End)
			}
		})
	}
}

func TestSlotAvailable_NormalizesTimezones(t *testing.T) {
	// 11:00+02:00 is 09:00 UTC, colliding with the booked 9-10 UTC window.
	booked := []model.BusyInterval{busy("2025-06-02T09:00:00Z", "2025-06-02T10:00:00Z")}
	candidate := slot("2025-06-02T11:00:00+02:00", "2025-06-02T12:00:00+02:00")

	if SlotAvailable(candidate, booked) {
		t.Error("expected offset candidate to collide after UTC normalization")
	}

	// 12:00+02:00 is 10:00 UTC, touching the busy end, so it is free.
	touching := slot("2025-06-02T12:00:00+02:00", "2025-06-02T13:00:00+02:00")
	if !SlotAvailable(touching, booked) {
		t.Error("expected offset touching candidate to be free")
	}
}

func TestFilterAvailable_PreservesOrder(t *testing.T) {
	booked := []model.BusyInterval{busy("2025-06-03T09:00:00Z", "2025-06-03T10:00:00Z")}
	candidates := []model.TimeSlot{
		slot("2025-06-04T09:00:00Z", "2025-06-04T10:00:00Z"),
		slot("2025-06-03T09:00:00Z", "2025-06-03T10:00:00Z"),
		slot("2025-06-02T09:00:00Z", "2025-06-02T10:00:00Z"),
	}

	got := FilterAvailable(candidates, booked)
	if len(got) != 2 {
		t.Fatalf("expected 2 available slots, got %d", len(got))
	}
	if !got[0].Start.Equal(candidates[0].Start) || !got[1].Start.Equal(candidates[2].Start) {
		t.Error("expected available slots in original candidate order")
	}
}

func TestFilterAvailable_AllBusyReturnsEmptyNotNil(t *testing.T) {
	booked := []model.BusyInterval{busy("2025-06-02T00:00:00Z", "2025-06-09T00:00:00Z")}
	candidates := []model.TimeSlot{
		slot("2025-06-02T09:00:00Z", "2025-06-02T10:00:00Z"),
		slot("2025-06-03T09:00:00Z", "2025-06-03T10:00:00Z"),
	}

	got := FilterAvailable(candidates, booked)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no available slots, got %d", len(got))
	}
}
