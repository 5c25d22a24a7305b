package strength

import (
	"fmt"
	"math"
	"time"
)

type ImbalanceType string

const (
	HorizontalPushPull ImbalanceType = "Horizontal Push vs Pull"
	VerticalPushPull   ImbalanceType = "Vertical Push vs Pull"
	HamstringQuad      ImbalanceType = "Hamstring vs Quad"
	AdductorAbductor   ImbalanceType = "Adductor vs Abductor"
)

type Classification string

const (
	ClassificationLevelImbalance Classification = "Level Imbalance"
	ClassificationRatioImbalance Classification = "Ratio Imbalance"
	ClassificationBalanced       Classification = "Balanced"
	// ClassificationUnknown is used when both sides have data but no ratio
	// standard applies (unknown gender or an unclassified exercise).
	ClassificationUnknown Classification = "N/A"
	ClassificationNoData  Classification = "No Data"
)

// Comparison pairs two exercise groups. Ratio receives both sides' average
// e1RM in kilograms, lift1 first.
type Comparison struct {
	Type  ImbalanceType
	Lift1 []string
	Lift2 []string
	Ratio func(lift1Kg, lift2Kg float64) float64
}

func simpleRatio(lift1Kg, lift2Kg float64) float64 {
	if lift2Kg == 0 {
		return 0
	}
	return lift1Kg / lift2Kg
}

var comparisons = []Comparison{
	{
		Type:  HorizontalPushPull,
		Lift1: []string{"bench press", "dumbbell bench press", "chest press"},
		Lift2: []string{"bent over row", "seated cable row", "dumbbell row", "seated row"},
		Ratio: simpleRatio,
	},
	{
		Type:  VerticalPushPull,
		Lift1: []string{"overhead press", "shoulder press", "military press"},
		Lift2: []string{"lat pulldown", "pull up", "chin up"},
		Ratio: simpleRatio,
	},
	{
		Type:  HamstringQuad,
		Lift1: []string{"leg curl", "seated leg curl", "lying leg curl"},
		Lift2: []string{"leg extension"},
		Ratio: simpleRatio,
	},
	{
		Type:  AdductorAbductor,
		Lift1: []string{"hip adduction", "adductor"},
		Lift2: []string{"hip abduction", "abductor"},
		Ratio: simpleRatio,
	},
}

// Comparisons returns the four imbalance comparisons in report order.
func Comparisons() []Comparison {
	out := make([]Comparison, len(comparisons))
	copy(out, comparisons)
	return out
}

type RatioStandard struct {
	Target float64
	Lower  float64
	Upper  float64
}

// OutOfRange reports whether ratio is strictly outside [Lower, Upper].
func (s RatioStandard) OutOfRange(ratio float64) bool {
	return ratio < s.Lower || ratio > s.Upper
}

type levelStandards map[Level]RatioStandard

var ratioStandards = map[ImbalanceType]map[Gender]levelStandards{
	HorizontalPushPull: {
		GenderMale: {
			LevelBeginner:     {Target: 1.0, Lower: 0.8, Upper: 1.25},
			LevelIntermediate: {Target: 1.0, Lower: 0.85, Upper: 1.2},
			LevelAdvanced:     {Target: 1.0, Lower: 0.9, Upper: 1.15},
			LevelElite:        {Target: 1.0, Lower: 0.9, Upper: 1.1},
		},
		GenderFemale: {
			LevelBeginner:     {Target: 0.95, Lower: 0.75, Upper: 1.2},
			LevelIntermediate: {Target: 0.95, Lower: 0.8, Upper: 1.15},
			LevelAdvanced:     {Target: 0.95, Lower: 0.85, Upper: 1.1},
			LevelElite:        {Target: 0.95, Lower: 0.85, Upper: 1.05},
		},
	},
	VerticalPushPull: {
		GenderMale: {
			LevelBeginner:     {Target: 0.7, Lower: 0.55, Upper: 0.85},
			LevelIntermediate: {Target: 0.7, Lower: 0.6, Upper: 0.8},
			LevelAdvanced:     {Target: 0.7, Lower: 0.62, Upper: 0.78},
			LevelElite:        {Target: 0.7, Lower: 0.65, Upper: 0.75},
		},
		GenderFemale: {
			LevelBeginner:     {Target: 0.65, Lower: 0.5, Upper: 0.8},
			LevelIntermediate: {Target: 0.65, Lower: 0.55, Upper: 0.75},
			LevelAdvanced:     {Target: 0.65, Lower: 0.57, Upper: 0.73},
			LevelElite:        {Target: 0.65, Lower: 0.6, Upper: 0.7},
		},
	},
	HamstringQuad: {
		GenderMale: {
			LevelBeginner:     {Target: 0.6, Lower: 0.5, Upper: 0.8},
			LevelIntermediate: {Target: 0.65, Lower: 0.55, Upper: 0.8},
			LevelAdvanced:     {Target: 0.7, Lower: 0.6, Upper: 0.8},
			LevelElite:        {Target: 0.75, Lower: 0.65, Upper: 0.85},
		},
		GenderFemale: {
			LevelBeginner:     {Target: 0.55, Lower: 0.45, Upper: 0.75},
			LevelIntermediate: {Target: 0.6, Lower: 0.5, Upper: 0.75},
			LevelAdvanced:     {Target: 0.65, Lower: 0.55, Upper: 0.8},
			LevelElite:        {Target: 0.7, Lower: 0.6, Upper: 0.8},
		},
	},
	AdductorAbductor: {
		GenderMale: {
			LevelBeginner:     {Target: 1.0, Lower: 0.8, Upper: 1.25},
			LevelIntermediate: {Target: 1.0, Lower: 0.85, Upper: 1.2},
			LevelAdvanced:     {Target: 1.0, Lower: 0.9, Upper: 1.15},
			LevelElite:        {Target: 1.0, Lower: 0.9, Upper: 1.1},
		},
		GenderFemale: {
			LevelBeginner:     {Target: 1.0, Lower: 0.8, Upper: 1.25},
			LevelIntermediate: {Target: 1.0, Lower: 0.85, Upper: 1.2},
			LevelAdvanced:     {Target: 1.0, Lower: 0.9, Upper: 1.15},
			LevelElite:        {Target: 1.0, Lower: 0.9, Upper: 1.1},
		},
	},
}

// RatioStandardFor looks up the balanced range of a comparison. It fails
// for an unknown gender or an undefined (N/A) guiding level.
func RatioStandardFor(kind ImbalanceType, gender Gender, level Level) (RatioStandard, bool) {
	std, ok := ratioStandards[kind][gender][level]
	return std, ok
}

// GuidingLevel is the weaker of two levels, or N/A if either one is unknown.
func GuidingLevel(l1, l2 Level) Level {
	if !l1.IsKnown() || !l2.IsKnown() {
		return LevelNA
	}
	if l1.Rank() <= l2.Rank() {
		return l1
	}
	return l2
}

// Classify applies the imbalance precedence: two known and different levels
// are a level imbalance regardless of the ratio; otherwise a ratio outside
// the balanced range is a ratio imbalance.
func Classify(l1, l2 Level, ratio float64, std RatioStandard, hasStandard bool) Classification {
	if l1.IsKnown() && l2.IsKnown() && l1 != l2 {
		return ClassificationLevelImbalance
	}
	if !hasStandard {
		return ClassificationUnknown
	}
	if std.OutOfRange(ratio) {
		return ClassificationRatioImbalance
	}
	return ClassificationBalanced
}

type AnalysisInput struct {
	Logs    []WorkoutLog
	Profile *UserProfile
	Library *Library
	Now     time.Time
}

// Finding is one comparison result, flattened to display-ready values.
// Classification is one of Level Imbalance, Ratio Imbalance, Balanced, No Data
// (NoData is set), or N/A: both sides have data but no ratio standard applies
// because the gender is unknown or a side has no strength level, and the two
// levels are not a level imbalance.
type Finding struct {
	Type   ImbalanceType `json:"type"`
	NoData bool          `json:"noData"`

	Lift1Name     string     `json:"lift1Name,omitempty"`
	Lift1Weight   float64    `json:"lift1Weight,omitempty"`
	Lift1Unit     WeightUnit `json:"lift1Unit,omitempty"`
	Lift1Sessions int        `json:"lift1Sessions,omitempty"`
	Lift1Level    Level      `json:"lift1Level,omitempty"`

	Lift2Name     string     `json:"lift2Name,omitempty"`
	Lift2Weight   float64    `json:"lift2Weight,omitempty"`
	Lift2Unit     WeightUnit `json:"lift2Unit,omitempty"`
	Lift2Sessions int        `json:"lift2Sessions,omitempty"`
	Lift2Level    Level      `json:"lift2Level,omitempty"`

	Ratio          string         `json:"ratio,omitempty"`
	RatioValue     float64        `json:"ratioValue,omitempty"`
	TargetRatio    string         `json:"targetRatio,omitempty"`
	BalancedRange  string         `json:"balancedRange,omitempty"`
	GuidingLevel   Level          `json:"guidingLevel,omitempty"`
	Classification Classification `json:"classification"`
}

// ImbalanceFindings evaluates every comparison over the six weeks before
// in.Now. The result always has one finding per comparison, in order.
func ImbalanceFindings(in AnalysisInput) []Finding {
	findings := make([]Finding, 0, len(comparisons))
	for _, cmp := range comparisons {
		findings = append(findings, evaluate(cmp, in))
	}
	return findings
}

func evaluate(cmp Comparison, in AnalysisInput) Finding {
	lift1, ok1 := SixWeekAvgE1RM(in.Logs, in.Library.Keys(cmp.Lift1...), in.Library, in.Now)
	lift2, ok2 := SixWeekAvgE1RM(in.Logs, in.Library.Keys(cmp.Lift2...), in.Library, in.Now)
	if !ok1 || !ok2 {
		return Finding{
			Type:           cmp.Type,
			NoData:         true,
			Classification: ClassificationNoData,
		}
	}

	lift1Kg := ToKg(lift1.Weight, lift1.Unit)
	lift2Kg := ToKg(lift2.Weight, lift2.Unit)
	ratio := cmp.Ratio(lift1Kg, lift2Kg)

	level1 := ClassifyLevel(lift1.Lift(), in.Profile, in.Library)
	level2 := ClassifyLevel(lift2.Lift(), in.Profile, in.Library)
	guiding := GuidingLevel(level1, level2)

	gender := Gender("")
	if in.Profile != nil {
		gender, _ = ParseGender(in.Profile.Gender)
	}
	std, hasStandard := RatioStandardFor(cmp.Type, gender, guiding)

	f := Finding{
		Type:           cmp.Type,
		Lift1Name:      lift1.ExerciseName,
		Lift1Weight:    round1(lift1.Weight),
		Lift1Unit:      lift1.Unit,
		Lift1Sessions:  lift1.Sessions,
		Lift1Level:     level1,
		Lift2Name:      lift2.ExerciseName,
		Lift2Weight:    round1(lift2.Weight),
		Lift2Unit:      lift2.Unit,
		Lift2Sessions:  lift2.Sessions,
		Lift2Level:     level2,
		Ratio:          formatRatio(ratio),
		RatioValue:     ratio,
		TargetRatio:    string(LevelNA),
		BalancedRange:  string(LevelNA),
		GuidingLevel:   guiding,
		Classification: Classify(level1, level2, ratio, std, hasStandard),
	}
	if hasStandard {
		f.TargetRatio = formatRatio(std.Target)
		f.BalancedRange = fmt.Sprintf("%.2f-%.2f", std.Lower, std.Upper)
	}
	return f
}

// Lift turns the summary into a synthetic record for level classification.
func (s E1RMSummary) Lift() Lift {
	return Lift{
		Exercise: s.ExerciseName,
		Weight:   s.Weight,
		Unit:     s.Unit,
	}
}

func formatRatio(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
