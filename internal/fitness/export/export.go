package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/2beens/liftstats/internal/fitness/library"
	"github.com/2beens/liftstats/internal/strength"
)

// Export is a user's data dump: profile, workout logs, personal records and,
// optionally, the exercise library.
type Export struct {
	Profile *strength.UserProfile       `json:"profile,omitempty"`
	Logs    []strength.WorkoutLog       `json:"logs"`
	Records []strength.PersonalRecord   `json:"records"`
	Library []strength.ExerciseDocument `json:"library,omitempty"`
}

type Summary struct {
	Now        time.Time                 `json:"now"`
	Findings   []strength.Finding        `json:"findings"`
	CurrentPRs []strength.PersonalRecord `json:"currentPRs"`
}

func Load(r io.Reader) (Export, error) {
	var exp Export
	if err := json.NewDecoder(r).Decode(&exp); err != nil {
		return Export{}, fmt.Errorf("decode export json: %w", err)
	}
	return exp, nil
}

// Analyze runs the imbalance analysis as of now. Without a library in the
// export, the built-in defaults are used.
func Analyze(exp Export, now time.Time) Summary {
	docs := exp.Library
	if len(docs) == 0 {
		docs = library.Defaults()
	}
	lib := strength.NewLibrary(docs)

	findings := strength.ImbalanceFindings(strength.AnalysisInput{
		Logs:    exp.Logs,
		Profile: exp.Profile,
		Library: lib,
		Now:     now,
	})

	current := strength.CurrentPRs(exp.Records, lib)
	prs := make([]strength.PersonalRecord, 0, len(current))
	for _, key := range strength.SortedKeys(current) {
		pr := current[key]
		pr.Exercise = lib.DisplayName(key)
		prs = append(prs, pr)
	}

	return Summary{
		Now:        now,
		Findings:   findings,
		CurrentPRs: prs,
	}
}
