package model

import "time"

// EventBody is the structured calendar event sent to the external provider.
// Fields are enumerated explicitly so a typo cannot silently drop data at
// the provider boundary.
type EventBody struct {
	Summary         string
	Description     string
	Start           time.Time
	End             time.Time
	Timezone        string
	ReminderMinutes []int
}
