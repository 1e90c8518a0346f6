package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/codeby-aftab/trip-ai-backend/logger"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini generateContent API with search grounding
// enabled, so generated plans carry citation metadata.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ Generator = (*GeminiClient)(nil)

func NewGeminiClient(apiKey, baseURL, model string, timeout time.Duration) *GeminiClient {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
	Tools    []geminiTool    `json:"tools,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiTool struct {
	GoogleSearch struct{} `json:"google_search"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []struct {
				Web struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// Generate issues a single generateContent call and returns the concatenated
// candidate text together with the raw grounding attributions. No retries.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (*Generation, error) {
	log := logger.GetLogger()
	log.Debugw("Starting Gemini generation", "model", c.model, "promptChars", len(prompt))

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		Tools:    []geminiTool{{}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorw("Failed to execute Gemini request", "error", err)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnw("Gemini API returned non-OK status", "statusCode", resp.StatusCode)
		return nil, fmt.Errorf("gemini API returned status: %d", resp.StatusCode)
	}

	var genResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		log.Errorw("Failed to decode Gemini response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini API returned no candidates")
	}

	candidate := genResp.Candidates[0]

	var text bytes.Buffer
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}

	attributions := make([]types.GroundingAttribution, 0, len(candidate.GroundingMetadata.GroundingChunks))
	for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
		attributions = append(attributions, types.GroundingAttribution{
			URI:   chunk.Web.URI,
			Title: chunk.Web.Title,
		})
	}

	log.Debugw("Gemini generation finished",
		"textChars", text.Len(),
		"attributions", len(attributions),
	)

	return &Generation{
		Text:         text.String(),
		Attributions: attributions,
	}, nil
}
