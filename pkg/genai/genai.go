// Package genai defines the generator collaborator interface and its HTTP
// client implementations (Gemini and OpenAI).
package genai

import (
	"context"

	"github.com/codeby-aftab/trip-ai-backend/types"
)

// Generation is the raw result of one generation call: the model's text
// output, which is expected to be "mostly JSON", plus any grounding
// attributions the provider reported alongside it.
type Generation struct {
	Text         string
	Attributions []types.GroundingAttribution
}

// Generator is the AI collaborator. Implementations issue exactly one
// network call per Generate invocation and return transport-level errors
// unclassified; the service layer maps them to GenerationError.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Generation, error)
}
