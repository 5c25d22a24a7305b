package analytics

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type analyticsService interface {
	Imbalances(ctx context.Context, userID string) ([]strength.Finding, error)
	SixWeekE1RM(ctx context.Context, userID, exercise string) (strength.E1RMSummary, error)
	Trend(ctx context.Context, userID, exercise string, metric strength.SeriesMetric) (TrendResult, error)
	BestPR(ctx context.Context, userID, exercise string) (strength.PersonalRecord, error)
	StrengthLevel(ctx context.Context, userID, exercise string) (LevelResult, error)
}

type Handler struct {
	service analyticsService
}

func NewHandler(service analyticsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleImbalances(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.imbalances")
	defer span.End()

	userID := mux.Vars(r)["uid"]
	span.SetAttributes(attribute.String("user", userID))

	findings, err := handler.service.Imbalances(ctx, userID)
	if err != nil {
		log.Errorf("imbalances for user [%s]: %s", userID, err)
		http.Error(w, "compute imbalances failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, findings, http.StatusOK)
}

func (handler *Handler) HandleE1RM(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.e1rm")
	defer span.End()

	userID, exercise, ok := userAndExercise(w, r)
	if !ok {
		return
	}

	summary, err := handler.service.SixWeekE1RM(ctx, userID, exercise)
	if err != nil {
		writeAnalyticsError(w, "e1rm", err)
		return
	}
	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.trend")
	defer span.End()

	userID, exercise, ok := userAndExercise(w, r)
	if !ok {
		return
	}
	metric, ok := ParseMetric(r.URL.Query().Get("metric"))
	if !ok {
		http.Error(w, "invalid metric, expected e1rm or volume", http.StatusBadRequest)
		return
	}

	trend, err := handler.service.Trend(ctx, userID, exercise, metric)
	if err != nil {
		writeAnalyticsError(w, "trend", err)
		return
	}
	pkg.WriteJSON(w, trend, http.StatusOK)
}

func (handler *Handler) HandleBestPR(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.best_pr")
	defer span.End()

	userID, exercise, ok := userAndExercise(w, r)
	if !ok {
		return
	}

	best, err := handler.service.BestPR(ctx, userID, exercise)
	if err != nil {
		writeAnalyticsError(w, "best pr", err)
		return
	}
	pkg.WriteJSON(w, best, http.StatusOK)
}

func (handler *Handler) HandleStrengthLevel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.strength_level")
	defer span.End()

	userID, exercise, ok := userAndExercise(w, r)
	if !ok {
		return
	}

	level, err := handler.service.StrengthLevel(ctx, userID, exercise)
	if err != nil {
		writeAnalyticsError(w, "strength level", err)
		return
	}
	pkg.WriteJSON(w, level, http.StatusOK)
}

func userAndExercise(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	exercise := r.URL.Query().Get("exercise")
	if strength.NormalizeName(exercise) == "" {
		http.Error(w, "exercise query param is required", http.StatusBadRequest)
		return "", "", false
	}
	return mux.Vars(r)["uid"], exercise, true
}

// writeAnalyticsError maps absence to 404, it is not a server failure.
func writeAnalyticsError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, ErrNoData) {
		http.Error(w, "no data for "+what, http.StatusNotFound)
		return
	}
	log.Errorf("analytics %s: %s", what, err)
	http.Error(w, what+" failed", http.StatusInternalServerError)
}
