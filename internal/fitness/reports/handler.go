package reports

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type reportsService interface {
	Snapshot(ctx context.Context, userID string, source Source) (Report, error)
	Latest(ctx context.Context, userID string) (Report, error)
}

type Handler struct {
	service reportsService
}

func NewHandler(service reportsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.save")
	defer span.End()

	userID := mux.Vars(r)["uid"]
	report, err := handler.service.Snapshot(ctx, userID, SourceManual)
	if err != nil {
		log.Errorf("save report for user [%s]: %s", userID, err)
		http.Error(w, "save report failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("report %s saved for user [%s]", report.ID, userID)
	pkg.WriteJSON(w, report, http.StatusCreated)
}

func (handler *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.latest")
	defer span.End()

	userID := mux.Vars(r)["uid"]
	report, err := handler.service.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			http.Error(w, "no saved report", http.StatusNotFound)
			return
		}
		log.Errorf("latest report for user [%s]: %s", userID, err)
		http.Error(w, "get report failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}
