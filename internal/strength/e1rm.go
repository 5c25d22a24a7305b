package strength

import (
	"sort"
	"time"
)

// SixWeekWindowDays is the length of the rolling e1RM window, in days.
const SixWeekWindowDays = 6 * 7

// E1RMSummary is the rolling-average estimated one-rep-max of a group of
// exercises. Weight is expressed in Unit, which is the unit of the most
// recent qualifying entry.
type E1RMSummary struct {
	ExerciseKey  string     `json:"exerciseKey"`
	ExerciseName string     `json:"exerciseName"`
	Weight       float64    `json:"weight"`
	Unit         WeightUnit `json:"unit"`
	Sessions     int        `json:"sessions"`
	Entries      int        `json:"entries"`
}

// EstimateOneRepMax uses the Epley formula: weight * (1 + reps/30).
func EstimateOneRepMax(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30)
}

func qualifies(ex Exercise) bool {
	return ex.Sets >= 1 && ex.Reps >= 1 && ex.Weight > 0
}

// SixWeekAvgE1RM averages the e1RM of every qualifying entry logged between
// now minus six weeks and now (both days inclusive).
func SixWeekAvgE1RM(logs []WorkoutLog, keys KeySet, lib *Library, now time.Time) (E1RMSummary, bool) {
	to := dayOf(now)
	from := to.AddDate(0, 0, -SixWeekWindowDays)
	return AvgE1RM(logs, keys, lib, from, to)
}

// AvgE1RM is SixWeekAvgE1RM over an arbitrary [from, to] day range.
// Entries count individually, they are not averaged per session first.
func AvgE1RM(logs []WorkoutLog, keys KeySet, lib *Library, from, to time.Time) (E1RMSummary, bool) {
	from, to = dayOf(from), dayOf(to)

	var (
		sumKg    float64
		entries  int
		latest   Exercise
		sessions = make(map[time.Time]struct{})
	)

	for _, log := range chronological(logs) {
		day := dayOf(log.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		for _, ex := range log.Exercises {
			if !qualifies(ex) || !keys.Contains(lib.Key(ex.Name)) {
				continue
			}
			sumKg += EstimateOneRepMax(ToKg(ex.Weight, ex.WeightUnit), ex.Reps)
			entries++
			latest = ex
			sessions[day] = struct{}{}
		}
	}

	if entries == 0 {
		return E1RMSummary{}, false
	}

	unit := latest.WeightUnit.normalized()
	return E1RMSummary{
		ExerciseKey:  lib.Key(latest.Name),
		ExerciseName: lib.DisplayName(latest.Name),
		Weight:       FromKg(sumKg/float64(entries), unit),
		Unit:         unit,
		Sessions:     len(sessions),
		Entries:      entries,
	}, true
}

type SeriesMetric string

const (
	MetricE1RM   SeriesMetric = "e1rm"
	MetricVolume SeriesMetric = "volume"
)

func (m SeriesMetric) IsValid() bool {
	return m == MetricE1RM || m == MetricVolume
}

// SessionPoint is one session's value in kilograms (best e1RM or total volume).
type SessionPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// SessionSeries returns one point per session that contains any of the
// exercises, oldest first. Sessions where nothing qualifies keep a zero value
// so that the series length still reflects the number of sessions.
func SessionSeries(logs []WorkoutLog, keys KeySet, lib *Library, metric SeriesMetric) []SessionPoint {
	var points []SessionPoint
	for _, log := range chronological(logs) {
		matched := false
		value := 0.0
		for _, ex := range log.Exercises {
			if !keys.Contains(lib.Key(ex.Name)) {
				continue
			}
			matched = true
			if !qualifies(ex) {
				continue
			}
			weightKg := ToKg(ex.Weight, ex.WeightUnit)
			switch metric {
			case MetricVolume:
				value += float64(ex.Sets*ex.Reps) * weightKg
			default:
				if e1rm := EstimateOneRepMax(weightKg, ex.Reps); e1rm > value {
					value = e1rm
				}
			}
		}
		if matched {
			points = append(points, SessionPoint{
				Date:  dayOf(log.Date),
				Value: value,
			})
		}
	}
	return points
}

// chronological returns the logs sorted oldest first without touching the input.
func chronological(logs []WorkoutLog) []WorkoutLog {
	sorted := make([]WorkoutLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dayOf(sorted[i].Date).Before(dayOf(sorted[j].Date))
	})
	return sorted
}
