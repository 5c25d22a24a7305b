package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/strength"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=generator_mocks_test.go -package=insights_test

var ErrAllModelsFailed = errors.New("all insight models failed")

type textModel interface {
	Generate(ctx context.Context, modelName, prompt string) (string, error)
}

type Insight struct {
	Model       string             `json:"model"`
	Text        string             `json:"text"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Findings    []strength.Finding `json:"findings"`
}

// Generator executes the findings prompt against an ordered list of models,
// moving on to the next model when one fails.
type Generator struct {
	model          textModel
	models         []string
	metricsManager *metrics.Manager
}

func NewGenerator(model textModel, models []string, metricsManager *metrics.Manager) *Generator {
	return &Generator{
		model:          model,
		models:         models,
		metricsManager: metricsManager,
	}
}

func (g *Generator) Generate(ctx context.Context, findings []strength.Finding) (_ Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insights.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prompt := BuildPrompt(findings)
	var modelErrs error
	for _, modelName := range g.models {
		text, err := g.model.Generate(ctx, modelName, prompt)
		if err != nil {
			g.metricsManager.CounterInsights.WithLabelValues(modelName, "error").Inc()
			log.Warnf("insight model [%s] failed: %s", modelName, err)
			modelErrs = multierr.Append(modelErrs, fmt.Errorf("%s: %w", modelName, err))
			continue
		}

		g.metricsManager.CounterInsights.WithLabelValues(modelName, "ok").Inc()
		span.SetAttributes(attribute.String("model", modelName))
		return Insight{
			Model:       modelName,
			Text:        text,
			GeneratedAt: time.Now().UTC(),
			Findings:    findings,
		}, nil
	}

	if modelErrs == nil {
		return Insight{}, fmt.Errorf("%w: no models configured", ErrAllModelsFailed)
	}
	return Insight{}, fmt.Errorf("%w: %s", ErrAllModelsFailed, modelErrs)
}
