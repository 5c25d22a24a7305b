package strength

import (
	"sort"
	"strings"
)

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelElite        Level = "Elite"
	LevelNA           Level = "N/A"
)

// Rank orders the known levels from 1 (Beginner) to 4 (Elite); N/A and
// anything unknown rank 0.
func (l Level) Rank() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	case LevelElite:
		return 4
	default:
		return 0
	}
}

func (l Level) IsKnown() bool {
	return l.Rank() > 0
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "man":
		return GenderMale, true
	case "female", "f", "woman":
		return GenderFemale, true
	default:
		return "", false
	}
}

// Thresholds are lower-bound lift-to-bodyweight ratios of each tier above
// Beginner. Beginner starts at zero.
type Thresholds struct {
	Intermediate float64
	Advanced     float64
	Elite        float64
}

func (t Thresholds) level(ratio float64) Level {
	switch {
	case ratio >= t.Elite:
		return LevelElite
	case ratio >= t.Advanced:
		return LevelAdvanced
	case ratio >= t.Intermediate:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

type standard struct {
	male   Thresholds
	female Thresholds
}

// strengthStandards are keyed by canonical (normalized) exercise name.
var strengthStandards = map[string]standard{
	"bench press": {
		male:   Thresholds{Intermediate: 1.0, Advanced: 1.25, Elite: 1.75},
		female: Thresholds{Intermediate: 0.5, Advanced: 0.75, Elite: 1.1},
	},
	"squat": {
		male:   Thresholds{Intermediate: 1.25, Advanced: 1.75, Elite: 2.5},
		female: Thresholds{Intermediate: 0.9, Advanced: 1.25, Elite: 1.75},
	},
	"deadlift": {
		male:   Thresholds{Intermediate: 1.5, Advanced: 2.0, Elite: 2.75},
		female: Thresholds{Intermediate: 1.1, Advanced: 1.5, Elite: 2.1},
	},
	"overhead press": {
		male:   Thresholds{Intermediate: 0.55, Advanced: 0.8, Elite: 1.05},
		female: Thresholds{Intermediate: 0.35, Advanced: 0.5, Elite: 0.75},
	},
	"shoulder press": {
		male:   Thresholds{Intermediate: 0.55, Advanced: 0.8, Elite: 1.05},
		female: Thresholds{Intermediate: 0.35, Advanced: 0.5, Elite: 0.75},
	},
	"bent over row": {
		male:   Thresholds{Intermediate: 0.75, Advanced: 1.0, Elite: 1.5},
		female: Thresholds{Intermediate: 0.5, Advanced: 0.7, Elite: 1.0},
	},
	"seated cable row": {
		male:   Thresholds{Intermediate: 0.75, Advanced: 1.0, Elite: 1.4},
		female: Thresholds{Intermediate: 0.5, Advanced: 0.7, Elite: 0.95},
	},
	"lat pulldown": {
		male:   Thresholds{Intermediate: 0.75, Advanced: 1.0, Elite: 1.35},
		female: Thresholds{Intermediate: 0.5, Advanced: 0.7, Elite: 0.95},
	},
	"leg press": {
		male:   Thresholds{Intermediate: 2.0, Advanced: 2.75, Elite: 3.75},
		female: Thresholds{Intermediate: 1.5, Advanced: 2.1, Elite: 3.0},
	},
	"leg extension": {
		male:   Thresholds{Intermediate: 0.75, Advanced: 1.1, Elite: 1.5},
		female: Thresholds{Intermediate: 0.6, Advanced: 0.85, Elite: 1.2},
	},
	"leg curl": {
		male:   Thresholds{Intermediate: 0.5, Advanced: 0.75, Elite: 1.05},
		female: Thresholds{Intermediate: 0.4, Advanced: 0.6, Elite: 0.85},
	},
	"hip adduction": {
		male:   Thresholds{Intermediate: 0.6, Advanced: 0.9, Elite: 1.3},
		female: Thresholds{Intermediate: 0.55, Advanced: 0.8, Elite: 1.15},
	},
	"hip abduction": {
		male:   Thresholds{Intermediate: 0.6, Advanced: 0.9, Elite: 1.3},
		female: Thresholds{Intermediate: 0.55, Advanced: 0.8, Elite: 1.15},
	},
}

// standardNames are the table keys in a stable order.
var standardNames = func() []string {
	names := make([]string, 0, len(strengthStandards))
	for name := range strengthStandards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// StandardFor returns the tier thresholds of an exercise for a gender.
func StandardFor(exerciseKey string, gender Gender) (Thresholds, bool) {
	std, ok := strengthStandards[exerciseKey]
	if !ok {
		return Thresholds{}, false
	}
	switch gender {
	case GenderMale:
		return std.male, true
	case GenderFemale:
		return std.female, true
	default:
		return Thresholds{}, false
	}
}

// LibraryStandardFor resolves the exercise and every table name through the
// library, so an entry renamed in the library keeps the standard of its
// legacy name.
func LibraryStandardFor(lib *Library, exercise string, gender Gender) (Thresholds, bool) {
	key := lib.Key(exercise)
	if key == "" {
		return Thresholds{}, false
	}
	for _, name := range standardNames {
		if lib.Key(name) == key {
			return StandardFor(name, gender)
		}
	}
	return Thresholds{}, false
}

// Bodyweight returns the profile's bodyweight and its unit, if usable.
func (p *UserProfile) Bodyweight() (float64, WeightUnit, bool) {
	if p == nil || p.Weight == nil || p.Weight.Value <= 0 {
		return 0, "", false
	}
	unit, ok := ParseWeightUnit(p.Weight.Unit)
	if !ok {
		return 0, "", false
	}
	return p.Weight.Value, unit, true
}

// ClassifyLevel places a lift into a strength tier relative to the user's
// bodyweight. It returns LevelNA when gender or bodyweight is missing, or
// when no standard exists for the exercise.
func ClassifyLevel(lift Lift, profile *UserProfile, lib *Library) Level {
	if profile == nil || lift.Weight <= 0 {
		return LevelNA
	}
	gender, ok := ParseGender(profile.Gender)
	if !ok {
		return LevelNA
	}
	bodyweight, bodyweightUnit, ok := profile.Bodyweight()
	if !ok {
		return LevelNA
	}
	thresholds, ok := LibraryStandardFor(lib, lift.Exercise, gender)
	if !ok {
		return LevelNA
	}

	ratio := Convert(lift.Weight, lift.Unit, bodyweightUnit) / bodyweight
	return thresholds.level(ratio)
}
