package service

import (
	"fmt"
	"strings"

	"planfit/pkg/model"
)

// FormatWorkoutDescription renders a day's exercise list as the plain-text
// body of the calendar event. One bullet per exercise, with set/rep counts,
// rest, equipment, instructions and any reference links.
func FormatWorkoutDescription(exercises []model.WorkoutExercise) string {
	var b strings.Builder
	b.WriteString("Today's Workout:\n")
	for _, we := range exercises {
		b.WriteString("\n")
		fmt.Fprintf(&b, "• %s\n", we.Exercise.Name)
		fmt.Fprintf(&b, "  - %d sets of %d reps\n", we.Sets, we.Reps)
		if we.RestBetweenSets > 0 {
			fmt.Fprintf(&b, "  - Rest: %d seconds between sets\n", we.RestBetweenSets)
		}
		if we.Exercise.Equipment != "" {
			fmt.Fprintf(&b, "  - Equipment: %s\n", we.Exercise.Equipment)
		}
		if len(we.Exercise.Instructions) > 0 {
			fmt.Fprintf(&b, "  - Instructions: %s\n", strings.Join(we.Exercise.Instructions, " "))
		}
		if we.Exercise.ImageURL != "" {
			fmt.Fprintf(&b, "  - Image: %s\n", we.Exercise.ImageURL)
		}
		if we.Exercise.VideoURL != "" {
			fmt.Fprintf(&b, "  - Video: %s\n", we.Exercise.VideoURL)
		}
		if we.Exercise.Difficulty != "" {
			fmt.Fprintf(&b, "  - Difficulty: %s\n", we.Exercise.Difficulty)
		}
		if we.Notes != "" {
			fmt.Fprintf(&b, "  - Notes: %s\n", we.Notes)
		}
	}
	return b.String()
}
