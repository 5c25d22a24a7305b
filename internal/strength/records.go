package strength

import "sort"

// BestPR returns the heaviest record (compared in kilograms) whose exercise
// resolves to one of the given keys. On equal weights the first record wins.
func BestPR(records []PersonalRecord, keys KeySet, lib *Library) (PersonalRecord, bool) {
	var (
		best     PersonalRecord
		bestKg   float64
		hasMatch bool
	)

	for _, rec := range records {
		if !keys.Contains(lib.Key(rec.Exercise)) {
			continue
		}
		kg := ToKg(rec.Weight, rec.WeightUnit)
		if !hasMatch || kg > bestKg {
			best = rec
			bestKg = kg
			hasMatch = true
		}
	}

	return best, hasMatch
}

// CurrentPRs groups records by canonical exercise key and keeps only the
// current (heaviest) one per exercise.
func CurrentPRs(records []PersonalRecord, lib *Library) map[string]PersonalRecord {
	grouped := make(map[string][]PersonalRecord)
	for _, rec := range records {
		key := lib.Key(rec.Exercise)
		if key == "" {
			continue
		}
		grouped[key] = append(grouped[key], rec)
	}

	current := make(map[string]PersonalRecord, len(grouped))
	for key, recs := range grouped {
		if best, ok := BestPR(recs, KeySet{key: {}}, lib); ok {
			current[key] = best
		}
	}
	return current
}

// SortedKeys is a helper for deterministic iteration over CurrentPRs results.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
