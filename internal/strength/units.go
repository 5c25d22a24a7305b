package strength

import "strings"

type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

const (
	LbsToKg = 0.453592
	KgToLbs = 1 / LbsToKg
)

// ParseWeightUnit accepts the spellings users actually type.
// An empty string is treated as kilograms.
func ParseWeightUnit(s string) (WeightUnit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kg", "kgs", "kilo", "kilos", "kilogram", "kilograms":
		return UnitKg, true
	case "lb", "lbs", "pound", "pounds":
		return UnitLbs, true
	default:
		return "", false
	}
}

func (u WeightUnit) IsValid() bool {
	_, ok := ParseWeightUnit(string(u))
	return ok
}

func (u WeightUnit) normalized() WeightUnit {
	if parsed, ok := ParseWeightUnit(string(u)); ok {
		return parsed
	}
	return UnitKg
}

func ToKg(weight float64, unit WeightUnit) float64 {
	if unit.normalized() == UnitLbs {
		return weight * LbsToKg
	}
	return weight
}

func FromKg(kg float64, unit WeightUnit) float64 {
	if unit.normalized() == UnitLbs {
		return kg * KgToLbs
	}
	return kg
}

func Convert(weight float64, from, to WeightUnit) float64 {
	if from.normalized() == to.normalized() {
		return weight
	}
	return FromKg(ToKg(weight, from), to)
}
