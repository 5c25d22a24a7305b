package insights

import (
	"context"
	"net/http"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type findingsSource interface {
	Imbalances(ctx context.Context, userID string) ([]strength.Finding, error)
}

type insightGenerator interface {
	Generate(ctx context.Context, findings []strength.Finding) (Insight, error)
}

type Handler struct {
	findings  findingsSource
	generator insightGenerator
}

// NewHandler creates the insight handler. A nil generator disables insights.
func NewHandler(findings findingsSource, generator insightGenerator) *Handler {
	return &Handler{
		findings:  findings,
		generator: generator,
	}
}

func (handler *Handler) HandleInsight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.get")
	defer span.End()

	if handler.generator == nil {
		http.Error(w, "insights not configured", http.StatusServiceUnavailable)
		return
	}

	userID := mux.Vars(r)["uid"]
	findings, err := handler.findings.Imbalances(ctx, userID)
	if err != nil {
		log.Errorf("insight, imbalances for user [%s]: %s", userID, err)
		http.Error(w, "compute imbalances failed", http.StatusInternalServerError)
		return
	}

	insight, err := handler.generator.Generate(ctx, findings)
	if err != nil {
		log.Errorf("insight for user [%s]: %s", userID, err)
		http.Error(w, "generate insight failed", http.StatusBadGateway)
		return
	}

	pkg.WriteJSON(w, insight, http.StatusOK)
}
