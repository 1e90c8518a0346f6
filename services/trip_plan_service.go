package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/codeby-aftab/trip-ai-backend/errors"
	"github.com/codeby-aftab/trip-ai-backend/internal/planner"
	"github.com/codeby-aftab/trip-ai-backend/logger"
	"github.com/codeby-aftab/trip-ai-backend/pkg/genai"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

var generationOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trip_plan_generations_total",
	Help: "Trip plan generation outcomes by result kind.",
}, []string{"result"})

// TripPlanService orchestrates one generation round trip: it builds the
// prompt, invokes the AI collaborator once, and runs the raw text through
// extraction, normalization and attribution dedup.
type TripPlanService struct {
	generator genai.Generator
	planOrder []string
}

func NewTripPlanService(generator genai.Generator) *TripPlanService {
	return &TripPlanService{
		generator: generator,
		planOrder: types.CanonicalPlanOrder,
	}
}

// Generate returns the validated plan sequence for one request, or the
// first pipeline failure with its specific kind intact. There is no partial
// success and no internal retry; re-issuing is the caller's decision.
// Cancellation is caller-driven through ctx.
func (s *TripPlanService) Generate(ctx context.Context, origin, destination string, budgetUSD float64) ([]types.TripPlan, error) {
	log := logger.GetLogger()

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return nil, apperrors.ValidationFailed("Origin and destination are required", "")
	}
	if budgetUSD <= 0 {
		return nil, apperrors.ValidationFailed("Budget must be positive", fmt.Sprintf("got %.2f", budgetUSD))
	}

	prompt := planner.BuildPrompt(origin, destination, budgetUSD)

	generation, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		generationOutcomes.WithLabelValues("generation_error").Inc()
		log.Errorw("Generation call failed", "destination", destination, "error", err)
		return nil, apperrors.GenerationFailed(err)
	}

	rawJSON, err := planner.ExtractJSON(generation.Text)
	if err != nil {
		s.recordFailure(err)
		log.Errorw("Failed to extract JSON from generation",
			"destination", destination,
			"error", err,
			"responseChars", len(generation.Text),
		)
		return nil, err
	}

	plans, err := planner.Normalize(rawJSON, destination, s.planOrder)
	if err != nil {
		s.recordFailure(err)
		log.Errorw("Failed to normalize plan records", "destination", destination, "error", err)
		return nil, err
	}

	// All plans in one response share one citation pool.
	attributions := planner.DedupAttributions(generation.Attributions)
	for i := range plans {
		plans[i].GroundingAttributions = attributions
	}

	generationOutcomes.WithLabelValues("ok").Inc()
	log.Infow("Generated trip plans",
		"destination", destination,
		"plans", len(plans),
		"attributions", len(attributions),
	)
	return plans, nil
}

func (s *TripPlanService) recordFailure(err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		generationOutcomes.WithLabelValues(strings.ToLower(string(appErr.Type))).Inc()
		return
	}
	generationOutcomes.WithLabelValues("error").Inc()
}
