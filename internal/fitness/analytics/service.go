package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/liftstats/internal/fitness/profile"
	"github.com/2beens/liftstats/internal/fitness/workouts"
	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=analytics_test

type logsLister interface {
	ListAll(ctx context.Context, params workouts.ListParams) ([]strength.WorkoutLog, error)
}

type recordsLister interface {
	ListAll(ctx context.Context, userID, exercise string) ([]strength.PersonalRecord, error)
}

type profileGetter interface {
	Get(ctx context.Context, userID string) (*strength.UserProfile, error)
}

type libraryProvider interface {
	Library(ctx context.Context) (*strength.Library, error)
}

type findingsCache interface {
	Get(ctx context.Context, userID string, day time.Time) ([]strength.Finding, bool)
	Set(ctx context.Context, userID string, day time.Time, findings []strength.Finding)
}

// ErrNoData means there is nothing to compute from, which is an expected
// outcome and not a failure.
var ErrNoData = errors.New("no data")

// TrendThresholdPercent is the band around zero that counts as flat.
const TrendThresholdPercent = 1.0

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendFlat      TrendDirection = "flat"
)

func DirectionOf(percent float64) TrendDirection {
	switch {
	case percent > TrendThresholdPercent:
		return TrendImproving
	case percent < -TrendThresholdPercent:
		return TrendDeclining
	default:
		return TrendFlat
	}
}

type TrendResult struct {
	Exercise  string                  `json:"exercise"`
	Metric    strength.SeriesMetric   `json:"metric"`
	Percent   float64                 `json:"percent"`
	Direction TrendDirection          `json:"direction"`
	Sessions  int                     `json:"sessions"`
	Series    []strength.SessionPoint `json:"series"`
}

type LevelSource string

const (
	LevelFromPersonalRecord LevelSource = "personal_record"
	LevelFromSixWeekE1RM    LevelSource = "six_week_e1rm"
)

type LevelResult struct {
	Exercise string              `json:"exercise"`
	Weight   float64             `json:"weight"`
	Unit     strength.WeightUnit `json:"unit"`
	Level    strength.Level      `json:"level"`
	Source   LevelSource         `json:"source"`
}

type ServiceDeps struct {
	Logs           logsLister
	Records        recordsLister
	Profiles       profileGetter
	Library        libraryProvider
	Cache          findingsCache
	Clock          Clock
	MetricsManager *metrics.Manager
}

type Service struct {
	logs           logsLister
	records        recordsLister
	profiles       profileGetter
	library        libraryProvider
	cache          findingsCache
	clock          Clock
	metricsManager *metrics.Manager
}

func NewService(deps ServiceDeps) *Service {
	clock := deps.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{
		logs:           deps.Logs,
		records:        deps.Records,
		profiles:       deps.Profiles,
		library:        deps.Library,
		cache:          deps.Cache,
		clock:          clock,
		metricsManager: deps.MetricsManager,
	}
}

func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// Imbalances returns the four imbalance findings of the user for today.
func (s *Service) Imbalances(ctx context.Context, userID string) (_ []strength.Finding, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.analytics.imbalances")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", userID))

	now := s.clock.Now()
	if cached, ok := s.cache.Get(ctx, userID, now); ok {
		span.SetAttributes(attribute.Bool("cached", true))
		s.metricsManager.CounterFindings.WithLabelValues("cache").Inc()
		return cached, nil
	}

	findings, err := s.ComputeImbalances(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, userID, now, findings)
	return findings, nil
}

// ComputeImbalances always runs the engine, bypassing the cache.
func (s *Service) ComputeImbalances(ctx context.Context, userID string, now time.Time) (_ []strength.Finding, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.analytics.compute_imbalances")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	begin := time.Now()
	from := workouts.Day(now).AddDate(0, 0, -strength.SixWeekWindowDays)
	to := workouts.Day(now)
	logs, err := s.logs.ListAll(ctx, workouts.ListParams{UserID: userID, From: &from, To: &to})
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	userProfile, err := s.userProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	lib, err := s.library.Library(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercise library: %w", err)
	}

	findings := strength.ImbalanceFindings(strength.AnalysisInput{
		Logs:    logs,
		Profile: userProfile,
		Library: lib,
		Now:     now,
	})

	s.metricsManager.CounterFindings.WithLabelValues("engine").Inc()
	s.metricsManager.HistogramFindingsDuration.Observe(time.Since(begin).Seconds())
	span.SetAttributes(attribute.Int("logs", len(logs)))
	return findings, nil
}

func (s *Service) SixWeekE1RM(ctx context.Context, userID, exercise string) (_ strength.E1RMSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.analytics.e1rm")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))

	now := s.clock.Now()
	from := workouts.Day(now).AddDate(0, 0, -strength.SixWeekWindowDays)
	to := workouts.Day(now)
	logs, err := s.logs.ListAll(ctx, workouts.ListParams{UserID: userID, From: &from, To: &to})
	if err != nil {
		return strength.E1RMSummary{}, fmt.Errorf("list workout logs: %w", err)
	}
	lib, err := s.library.Library(ctx)
	if err != nil {
		return strength.E1RMSummary{}, fmt.Errorf("load exercise library: %w", err)
	}

	summary, ok := strength.SixWeekAvgE1RM(logs, lib.Keys(exercise), lib, now)
	if !ok {
		return strength.E1RMSummary{}, ErrNoData
	}
	return summary, nil
}

// Trend fits a line through the user's whole session history of an exercise.
func (s *Service) Trend(ctx context.Context, userID, exercise string, metric strength.SeriesMetric) (_ TrendResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.analytics.trend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))
	span.SetAttributes(attribute.String("metric", string(metric)))

	logs, err := s.logs.ListAll(ctx, workouts.ListParams{UserID: userID})
	if err != nil {
		return TrendResult{}, fmt.Errorf("list workout logs: %w", err)
	}
	lib, err := s.library.Library(ctx)
	if err != nil {
		return TrendResult{}, fmt.Errorf("load exercise library: %w", err)
	}

	series := strength.SessionSeries(logs, lib.Keys(exercise), lib, metric)
	percent, ok := strength.TrendPercent(strength.SeriesValues(series))
	if !ok {
		return TrendResult{}, ErrNoData
	}

	return TrendResult{
		Exercise:  lib.DisplayName(exercise),
		Metric:    metric,
		Percent:   percent,
		Direction: DirectionOf(percent),
		Sessions:  len(series),
		Series:    series,
	}, nil
}

func (s *Service) BestPR(ctx context.Context, userID, exercise string) (_ strength.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.analytics.best_pr")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))

	records, err := s.records.ListAll(ctx, userID, "")
	if err != nil {
		return strength.PersonalRecord{}, fmt.Errorf("list personal records: %w", err)
	}
	lib, err := s.library.Library(ctx)
	if err != nil {
		return strength.PersonalRecord{}, fmt.Errorf("load exercise library: %w", err)
	}

	best, ok := strength.BestPR(records, lib.Keys(exercise), lib)
	if !ok {
		return strength.PersonalRecord{}, ErrNoData
	}
	return best, nil
}

// StrengthLevel classifies the user's current PR of the exercise. Without a
// PR the six-week average e1RM stands in for it.
func (s *Service) StrengthLevel(ctx context.Context, userID, exercise string) (_ LevelResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.analytics.strength_level")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userProfile, err := s.userProfile(ctx, userID)
	if err != nil {
		return LevelResult{}, err
	}
	lib, err := s.library.Library(ctx)
	if err != nil {
		return LevelResult{}, fmt.Errorf("load exercise library: %w", err)
	}

	var (
		lift   strength.Lift
		source LevelSource
	)
	best, err := s.BestPR(ctx, userID, exercise)
	switch {
	case err == nil:
		lift, source = best.Lift(), LevelFromPersonalRecord
	case errors.Is(err, ErrNoData):
		summary, err := s.SixWeekE1RM(ctx, userID, exercise)
		if err != nil {
			return LevelResult{}, err
		}
		lift, source = summary.Lift(), LevelFromSixWeekE1RM
	default:
		return LevelResult{}, err
	}

	level := strength.ClassifyLevel(lift, userProfile, lib)
	span.SetAttributes(attribute.String("level", string(level)))
	return LevelResult{
		Exercise: lib.DisplayName(lift.Exercise),
		Weight:   lift.Weight,
		Unit:     lift.Unit,
		Level:    level,
		Source:   source,
	}, nil
}

func (s *Service) userProfile(ctx context.Context, userID string) (*strength.UserProfile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// ParseMetric defaults to e1RM when empty.
func ParseMetric(raw string) (strength.SeriesMetric, bool) {
	if raw == "" {
		return strength.MetricE1RM, true
	}
	metric := strength.SeriesMetric(strings.ToLower(raw))
	return metric, metric.IsValid()
}
