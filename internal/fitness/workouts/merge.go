package workouts

import (
	"time"

	"github.com/2beens/liftstats/internal/strength"
)

const DateLayout = "2006-01-02"

// Day drops the clock and the location of t, keeping only the calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// MergeLogs appends the incoming exercises to the existing log of the same
// day. Entries are kept in the order they were logged; nothing is deduplicated.
func MergeLogs(existing, incoming strength.WorkoutLog) strength.WorkoutLog {
	merged := existing
	merged.Date = Day(existing.Date)
	merged.Exercises = make([]strength.Exercise, 0, len(existing.Exercises)+len(incoming.Exercises))
	merged.Exercises = append(merged.Exercises, existing.Exercises...)
	merged.Exercises = append(merged.Exercises, incoming.Exercises...)
	return merged
}
