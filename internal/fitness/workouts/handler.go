package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Upsert(ctx context.Context, log strength.WorkoutLog) (_ strength.WorkoutLog, created bool, err error)
	Get(ctx context.Context, userID string, date time.Time) (strength.WorkoutLog, error)
	ListAll(ctx context.Context, params ListParams) ([]strength.WorkoutLog, error)
	Delete(ctx context.Context, userID string, date time.Time) error
}

// findingsInvalidator drops cached analytics that a changed log makes stale.
type findingsInvalidator interface {
	Invalidate(ctx context.Context, userID string)
}

type Handler struct {
	repo           workoutsRepo
	invalidator    findingsInvalidator
	metricsManager *metrics.Manager
}

func NewHandler(
	repo workoutsRepo,
	invalidator findingsInvalidator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		invalidator:    invalidator,
		metricsManager: metricsManager,
	}
}

// AddWorkoutRequest is the body of a new workout entry. Date is YYYY-MM-DD.
type AddWorkoutRequest struct {
	Date      string              `json:"date"`
	Exercises []strength.Exercise `json:"exercises"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	userID := mux.Vars(r)["uid"]
	span.SetAttributes(attribute.String("user", userID))

	var req AddWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add workout, unmarshal json params: %s", err)
		http.Error(w, "invalid workout json", http.StatusBadRequest)
		return
	}

	date, err := ParseDay(req.Date)
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	workoutLog := strength.WorkoutLog{
		UserID:    userID,
		Date:      date,
		Exercises: req.Exercises,
	}
	if err := Validate(&workoutLog); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, created, err := handler.repo.Upsert(ctx, workoutLog)
	if err != nil {
		log.Errorf("upsert workout log for user [%s]: %s", userID, err)
		http.Error(w, "save workout failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutLogsSaved.Inc()
	handler.invalidator.Invalidate(ctx, userID)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	log.Debugf("workout log for user [%s] on %s saved, created: %t", userID, req.Date, created)
	pkg.WriteJSON(w, stored, status)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["uid"]
	date, err := ParseDay(vars["date"])
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	workoutLog, err := handler.repo.Get(ctx, userID, date)
	if err != nil {
		if errors.Is(err, ErrWorkoutLogNotFound) {
			http.Error(w, "workout log not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout log for user [%s]: %s", userID, err)
		http.Error(w, "get workout log failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, workoutLog, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	params := ListParams{
		UserID: mux.Vars(r)["uid"],
	}
	for name, target := range map[string]**time.Time{
		"from": &params.From,
		"to":   &params.To,
	} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		d, err := ParseDay(raw)
		if err != nil {
			http.Error(w, "invalid "+name+" date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		*target = &d
	}

	logs, err := handler.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("list workout logs for user [%s]: %s", params.UserID, err)
		http.Error(w, "list workout logs failed", http.StatusInternalServerError)
		return
	}
	if logs == nil {
		logs = []strength.WorkoutLog{}
	}

	pkg.WriteJSON(w, logs, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["uid"]
	date, err := ParseDay(vars["date"])
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, date); err != nil {
		if errors.Is(err, ErrWorkoutLogNotFound) {
			http.Error(w, "workout log not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout log for user [%s]: %s", userID, err)
		http.Error(w, "delete workout log failed", http.StatusInternalServerError)
		return
	}

	handler.invalidator.Invalidate(ctx, userID)
	pkg.WriteTextResponseOK(w, "deleted")
}
