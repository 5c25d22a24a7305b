package workouts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/liftstats/internal/strength"
)

var ErrInvalidWorkoutLog = errors.New("invalid workout log")

// Validate checks a workout log before it is stored. It also normalizes
// exercise names and units in place.
func Validate(log *strength.WorkoutLog) error {
	if log.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidWorkoutLog)
	}
	if log.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidWorkoutLog)
	}
	if len(log.Exercises) == 0 {
		return fmt.Errorf("%w: no exercises", ErrInvalidWorkoutLog)
	}

	for i := range log.Exercises {
		ex := &log.Exercises[i]
		ex.Name = strings.TrimSpace(ex.Name)
		if ex.Name == "" {
			return fmt.Errorf("%w: exercise %d has no name", ErrInvalidWorkoutLog, i)
		}
		if ex.Category != "" && !ex.Category.IsValid() {
			return fmt.Errorf("%w: exercise [%s] has unknown category [%s]", ErrInvalidWorkoutLog, ex.Name, ex.Category)
		}
		if ex.Sets < 0 || ex.Reps < 0 || ex.Weight < 0 {
			return fmt.Errorf("%w: exercise [%s] has negative sets, reps or weight", ErrInvalidWorkoutLog, ex.Name)
		}
		if ex.Weight > 0 {
			unit, ok := strength.ParseWeightUnit(string(ex.WeightUnit))
			if !ok {
				return fmt.Errorf("%w: exercise [%s] has unknown weight unit [%s]", ErrInvalidWorkoutLog, ex.Name, ex.WeightUnit)
			}
			ex.WeightUnit = unit
		} else {
			ex.WeightUnit = ""
		}
		if ex.Distance == nil {
			ex.DistanceUnit = ""
		} else if *ex.Distance < 0 {
			return fmt.Errorf("%w: exercise [%s] has negative distance", ErrInvalidWorkoutLog, ex.Name)
		}
		if ex.Duration == nil {
			ex.DurationUnit = ""
		} else if *ex.Duration < 0 {
			return fmt.Errorf("%w: exercise [%s] has negative duration", ErrInvalidWorkoutLog, ex.Name)
		}
	}

	return nil
}
