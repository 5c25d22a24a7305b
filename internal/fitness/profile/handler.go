package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context, userID string) (*strength.UserProfile, error)
	Upsert(ctx context.Context, p strength.UserProfile) error
}

type findingsInvalidator interface {
	Invalidate(ctx context.Context, userID string)
}

type Handler struct {
	repo        profileRepo
	invalidator findingsInvalidator
}

func NewHandler(repo profileRepo, invalidator findingsInvalidator) *Handler {
	return &Handler{
		repo:        repo,
		invalidator: invalidator,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID := mux.Vars(r)["uid"]
	p, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile for user [%s]: %s", userID, err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.put")
	defer span.End()

	userID := mux.Vars(r)["uid"]

	var p strength.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("put profile, unmarshal json params: %s", err)
		http.Error(w, "invalid profile json", http.StatusBadRequest)
		return
	}
	p.UserID = userID

	if err := Validate(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Upsert(ctx, p); err != nil {
		log.Errorf("upsert profile for user [%s]: %s", userID, err)
		http.Error(w, "save profile failed", http.StatusInternalServerError)
		return
	}

	// bodyweight and gender drive the strength levels
	handler.invalidator.Invalidate(ctx, userID)
	pkg.WriteJSON(w, p, http.StatusOK)
}

// Validate normalizes gender and weight units, and rejects impossible values.
func Validate(p *strength.UserProfile) error {
	if p.Age != nil && (*p.Age < 0 || *p.Age > 130) {
		return fmt.Errorf("invalid age: %d", *p.Age)
	}
	if p.Gender != "" {
		gender, ok := strength.ParseGender(p.Gender)
		if !ok {
			return fmt.Errorf("invalid gender: %s", p.Gender)
		}
		p.Gender = string(gender)
	}
	for name, m := range map[string]*strength.Measurement{
		"height":               p.Height,
		"weight":               p.Weight,
		"skeletal muscle mass": p.SkeletalMuscleMass,
	} {
		if m != nil && m.Value < 0 {
			return fmt.Errorf("invalid %s: %v", name, m.Value)
		}
	}
	for _, m := range []*strength.Measurement{p.Weight, p.SkeletalMuscleMass} {
		if m == nil {
			continue
		}
		unit, ok := strength.ParseWeightUnit(m.Unit)
		if !ok {
			return fmt.Errorf("invalid weight unit: %s", m.Unit)
		}
		m.Unit = string(unit)
	}
	if p.Height != nil {
		p.Height.Unit = strings.ToLower(strings.TrimSpace(p.Height.Unit))
	}
	if p.WorkoutsPerWeekGoal < 0 || p.WorkoutsPerWeekGoal > 14 {
		return fmt.Errorf("invalid workouts per week goal: %d", p.WorkoutsPerWeekGoal)
	}
	return nil
}
