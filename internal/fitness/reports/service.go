package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=reports_test

type findingsComputer interface {
	Now() time.Time
	ComputeImbalances(ctx context.Context, userID string, now time.Time) ([]strength.Finding, error)
}

type reportStore interface {
	Save(ctx context.Context, report Report) error
	Latest(ctx context.Context, userID string) (Report, error)
}

type Service struct {
	findings       findingsComputer
	store          reportStore
	metricsManager *metrics.Manager
}

func NewService(findings findingsComputer, store reportStore, metricsManager *metrics.Manager) *Service {
	return &Service{
		findings:       findings,
		store:          store,
		metricsManager: metricsManager,
	}
}

// Snapshot computes fresh findings for the user, bypassing the findings cache,
// and saves them as a new report.
func (s *Service) Snapshot(ctx context.Context, userID string, source Source) (_ Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", userID), attribute.String("source", string(source)))

	now := s.findings.Now()
	findings, err := s.findings.ComputeImbalances(ctx, userID, now)
	if err != nil {
		return Report{}, fmt.Errorf("compute findings: %w", err)
	}

	report := Report{
		ID:          uuid.NewString(),
		UserID:      userID,
		GeneratedAt: now,
		Source:      source,
		Findings:    findings,
	}
	if err := s.store.Save(ctx, report); err != nil {
		return Report{}, err
	}

	s.metricsManager.CounterReportsSaved.Inc()
	return report, nil
}

func (s *Service) Latest(ctx context.Context, userID string) (Report, error) {
	return s.store.Latest(ctx, userID)
}
