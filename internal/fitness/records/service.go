package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/liftstats/internal/fitness/profile"
	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=records_test

type recordsRepo interface {
	Add(ctx context.Context, pr strength.PersonalRecord) (strength.PersonalRecord, error)
	Get(ctx context.Context, userID string, id int) (strength.PersonalRecord, error)
	ListAll(ctx context.Context, userID, exercise string) ([]strength.PersonalRecord, error)
	Delete(ctx context.Context, userID string, id int) error
}

type profileGetter interface {
	Get(ctx context.Context, userID string) (*strength.UserProfile, error)
}

type libraryProvider interface {
	Library(ctx context.Context) (*strength.Library, error)
}

var ErrInvalidRecord = errors.New("invalid personal record")

type Service struct {
	repo     recordsRepo
	profiles profileGetter
	library  libraryProvider
}

func NewService(repo recordsRepo, profiles profileGetter, library libraryProvider) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		library:  library,
	}
}

// Add stores a new personal record together with the strength level it
// represents for the user at the time it was logged.
func (s *Service) Add(ctx context.Context, pr strength.PersonalRecord) (_ strength.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.records.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	pr.Exercise = strings.TrimSpace(pr.Exercise)
	if pr.UserID == "" || pr.Exercise == "" {
		return strength.PersonalRecord{}, fmt.Errorf("%w: user and exercise are required", ErrInvalidRecord)
	}
	if pr.Weight <= 0 {
		return strength.PersonalRecord{}, fmt.Errorf("%w: weight must be positive", ErrInvalidRecord)
	}
	unit, ok := strength.ParseWeightUnit(string(pr.WeightUnit))
	if !ok {
		return strength.PersonalRecord{}, fmt.Errorf("%w: unknown weight unit [%s]", ErrInvalidRecord, pr.WeightUnit)
	}
	pr.WeightUnit = unit
	if pr.Category != "" && !pr.Category.IsValid() {
		return strength.PersonalRecord{}, fmt.Errorf("%w: unknown category [%s]", ErrInvalidRecord, pr.Category)
	}

	lib, err := s.library.Library(ctx)
	if err != nil {
		return strength.PersonalRecord{}, fmt.Errorf("load exercise library: %w", err)
	}
	userProfile, err := s.profiles.Get(ctx, pr.UserID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			return strength.PersonalRecord{}, fmt.Errorf("load profile: %w", err)
		}
		log.Debugf("no profile for user [%s], strength level will be N/A", pr.UserID)
		userProfile = nil
	}

	pr.StrengthLevel = strength.ClassifyLevel(pr.Lift(), userProfile, lib)
	span.SetAttributes(attribute.String("level", string(pr.StrengthLevel)))

	return s.repo.Add(ctx, pr)
}

func (s *Service) Get(ctx context.Context, userID string, id int) (strength.PersonalRecord, error) {
	return s.repo.Get(ctx, userID, id)
}

// List returns the user's records. When exercise is set, every record whose
// name resolves to the same library entry is included.
func (s *Service) List(ctx context.Context, userID, exercise string) (_ []strength.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := s.repo.ListAll(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	if exercise == "" {
		return all, nil
	}

	lib, err := s.library.Library(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercise library: %w", err)
	}
	key := lib.Key(exercise)
	filtered := make([]strength.PersonalRecord, 0, len(all))
	for _, pr := range all {
		if lib.Key(pr.Exercise) == key {
			filtered = append(filtered, pr)
		}
	}
	return filtered, nil
}

// Current returns the current PR of every exercise, ordered by canonical key.
func (s *Service) Current(ctx context.Context, userID string) (_ []strength.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.records.current")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := s.repo.ListAll(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	lib, err := s.library.Library(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercise library: %w", err)
	}

	current := strength.CurrentPRs(all, lib)
	result := make([]strength.PersonalRecord, 0, len(current))
	for _, key := range strength.SortedKeys(current) {
		result = append(result, current[key])
	}
	return result, nil
}

func (s *Service) Delete(ctx context.Context, userID string, id int) error {
	return s.repo.Delete(ctx, userID, id)
}
