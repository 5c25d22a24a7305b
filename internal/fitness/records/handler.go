package records

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/liftstats/internal/fitness/workouts"
	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type recordsService interface {
	Add(ctx context.Context, pr strength.PersonalRecord) (strength.PersonalRecord, error)
	Get(ctx context.Context, userID string, id int) (strength.PersonalRecord, error)
	List(ctx context.Context, userID, exercise string) ([]strength.PersonalRecord, error)
	Current(ctx context.Context, userID string) ([]strength.PersonalRecord, error)
	Delete(ctx context.Context, userID string, id int) error
}

type Handler struct {
	service recordsService
}

func NewHandler(service recordsService) *Handler {
	return &Handler{
		service: service,
	}
}

// AddRecordRequest is the body of a new personal record. Date is YYYY-MM-DD.
type AddRecordRequest struct {
	Exercise   string              `json:"exercise"`
	Weight     float64             `json:"weight"`
	WeightUnit strength.WeightUnit `json:"weightUnit"`
	Date       string              `json:"date"`
	Category   strength.Category   `json:"category,omitempty"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.add")
	defer span.End()

	userID := mux.Vars(r)["uid"]

	var req AddRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add record, unmarshal json params: %s", err)
		http.Error(w, "invalid record json", http.StatusBadRequest)
		return
	}
	date, err := workouts.ParseDay(req.Date)
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	added, err := handler.service.Add(ctx, strength.PersonalRecord{
		UserID:     userID,
		Exercise:   req.Exercise,
		Weight:     req.Weight,
		WeightUnit: req.WeightUnit,
		Date:       date,
		Category:   req.Category,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRecord) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add record for user [%s]: %s", userID, err)
		http.Error(w, "add record failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new record for user [%s]: %s %v%s (%s)", userID, added.Exercise, added.Weight, added.WeightUnit, added.StrengthLevel)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.list")
	defer span.End()

	userID := mux.Vars(r)["uid"]
	records, err := handler.service.List(ctx, userID, r.URL.Query().Get("exercise"))
	if err != nil {
		log.Errorf("list records for user [%s]: %s", userID, err)
		http.Error(w, "list records failed", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []strength.PersonalRecord{}
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}

func (handler *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.current")
	defer span.End()

	userID := mux.Vars(r)["uid"]
	current, err := handler.service.Current(ctx, userID)
	if err != nil {
		log.Errorf("current records for user [%s]: %s", userID, err)
		http.Error(w, "current records failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, current, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	pr, err := handler.service.Get(ctx, vars["uid"], id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		log.Errorf("get record [%d]: %s", id, err)
		http.Error(w, "get record failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, pr, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, vars["uid"], id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete record [%d]: %s", id, err)
		http.Error(w, "delete record failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}
