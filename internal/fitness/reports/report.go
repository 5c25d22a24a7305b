package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/strength"
)

var ErrReportNotFound = errors.New("report not found")

type Source string

const (
	SourceManual    Source = "manual"
	SourceScheduled Source = "scheduled"
)

// Report is a saved snapshot of a user's four imbalance findings.
type Report struct {
	ID          string             `json:"id"`
	UserID      string             `json:"userId"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Source      Source             `json:"source"`
	Findings    []strength.Finding `json:"findings"`
}

// reportDoc is the Firestore shape of a Report. Findings are kept as a JSON
// string so the engine types carry no storage tags.
type reportDoc struct {
	ID          string    `firestore:"id"`
	UserID      string    `firestore:"userId"`
	GeneratedAt time.Time `firestore:"generatedAt"`
	Source      string    `firestore:"source"`
	Findings    string    `firestore:"findings"`
}

func toDoc(report Report) (reportDoc, error) {
	findingsJson, err := json.Marshal(report.Findings)
	if err != nil {
		return reportDoc{}, fmt.Errorf("marshal findings: %w", err)
	}
	return reportDoc{
		ID:          report.ID,
		UserID:      report.UserID,
		GeneratedAt: report.GeneratedAt.UTC(),
		Source:      string(report.Source),
		Findings:    string(findingsJson),
	}, nil
}

func fromDoc(doc reportDoc) (Report, error) {
	var findings []strength.Finding
	if err := json.Unmarshal([]byte(doc.Findings), &findings); err != nil {
		return Report{}, fmt.Errorf("unmarshal findings of report %s: %w", doc.ID, err)
	}
	return Report{
		ID:          doc.ID,
		UserID:      doc.UserID,
		GeneratedAt: doc.GeneratedAt.UTC(),
		Source:      Source(doc.Source),
		Findings:    findings,
	}, nil
}
