package strength

import "time"

type Category string

const (
	CategoryUpperBody Category = "Upper Body"
	CategoryLowerBody Category = "Lower Body"
	CategoryFullBody  Category = "Full Body"
	CategoryCardio    Category = "Cardio"
	CategoryCore      Category = "Core"
	CategoryOther     Category = "Other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryUpperBody,
		CategoryLowerBody,
		CategoryFullBody,
		CategoryCardio,
		CategoryCore,
		CategoryOther:
		return true
	default:
		return false
	}
}

// Exercise is a single entry of a workout log.
// Unit fields are only meaningful when the matching value is set (weight > 0).
type Exercise struct {
	Name         string     `json:"name"`
	Category     Category   `json:"category"`
	Sets         int        `json:"sets"`
	Reps         int        `json:"reps"`
	Weight       float64    `json:"weight"`
	WeightUnit   WeightUnit `json:"weightUnit,omitempty"`
	Distance     *float64   `json:"distance,omitempty"`
	DistanceUnit string     `json:"distanceUnit,omitempty"`
	Duration     *float64   `json:"duration,omitempty"`
	DurationUnit string     `json:"durationUnit,omitempty"`
	Calories     *float64   `json:"calories,omitempty"`
}

// WorkoutLog holds all exercises a user did on one calendar day.
// Date is timezone-naive: only year, month and day are considered.
type WorkoutLog struct {
	ID        int        `json:"id"`
	UserID    string     `json:"userId"`
	Date      time.Time  `json:"date"`
	Exercises []Exercise `json:"exercises"`
}

type PersonalRecord struct {
	ID            int        `json:"id"`
	UserID        string     `json:"userId"`
	Exercise      string     `json:"exercise"`
	Weight        float64    `json:"weight"`
	WeightUnit    WeightUnit `json:"weightUnit"`
	Date          time.Time  `json:"date"`
	Category      Category   `json:"category,omitempty"`
	StrengthLevel Level      `json:"strengthLevel,omitempty"`
}

// Measurement is a biometric value with its unit, e.g. 80 "kg" or 180 "cm".
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type FitnessGoal struct {
	Description  string     `json:"description"`
	Primary      bool       `json:"primary"`
	Achieved     bool       `json:"achieved"`
	AchievedDate *time.Time `json:"achievedDate,omitempty"`
}

type UserProfile struct {
	UserID              string        `json:"userId"`
	Age                 *int          `json:"age,omitempty"`
	Gender              string        `json:"gender,omitempty"`
	Height              *Measurement  `json:"height,omitempty"`
	Weight              *Measurement  `json:"weight,omitempty"`
	SkeletalMuscleMass  *Measurement  `json:"skeletalMuscleMass,omitempty"`
	Goals               []FitnessGoal `json:"goals"`
	WorkoutsPerWeekGoal int           `json:"workoutsPerWeekGoal,omitempty"`
}

// ExerciseDocument is an exercise library entry: a canonical name plus
// the legacy or alias names that should resolve to it.
type ExerciseDocument struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	NormalizedName string   `json:"normalizedName"`
	LegacyNames    []string `json:"legacyNames"`
	Category       Category `json:"category,omitempty"`
}

// Lift is the minimal input needed to classify a strength level.
type Lift struct {
	Exercise string
	Weight   float64
	Unit     WeightUnit
}

func (pr PersonalRecord) Lift() Lift {
	return Lift{
		Exercise: pr.Exercise,
		Weight:   pr.Weight,
		Unit:     pr.WeightUnit,
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
