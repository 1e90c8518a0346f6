package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/codeby-aftab/trip-ai-backend/logger"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIClient calls the OpenAI responses API. It returns plain model text
// with no grounding attributions, since the responses endpoint does not
// report citation metadata.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ Generator = (*OpenAIClient)(nil)

func NewOpenAIClient(apiKey, baseURL, model string, timeout time.Duration) *OpenAIClient {
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type openAIRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type openAIResponse struct {
	OutputText []string        `json:"output_text"`
	Output     []openAIMessage `json:"output"`
}

type openAIMessage struct {
	Role    string               `json:"role"`
	Content []openAIContentBlock `json:"content"`
}

type openAIContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Generate issues a single responses-API call and concatenates the model's
// text output blocks. No retries.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (*Generation, error) {
	log := logger.GetLogger()
	log.Debugw("Starting OpenAI generation", "model", c.model, "promptChars", len(prompt))

	body, err := json.Marshal(openAIRequest{Model: c.model, Input: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorw("Failed to execute OpenAI request", "error", err)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnw("OpenAI API returned non-OK status", "statusCode", resp.StatusCode)
		return nil, fmt.Errorf("openai API returned status: %d", resp.StatusCode)
	}

	var genResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		log.Errorw("Failed to decode OpenAI response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var text bytes.Buffer
	for _, t := range genResp.OutputText {
		text.WriteString(t)
	}
	if text.Len() == 0 {
		for _, msg := range genResp.Output {
			for _, block := range msg.Content {
				if block.Type == "output_text" {
					text.WriteString(block.Text)
				}
			}
		}
	}

	if text.Len() == 0 {
		return nil, fmt.Errorf("openai API returned no text output")
	}

	log.Debugw("OpenAI generation finished", "textChars", text.Len())

	return &Generation{Text: text.String()}, nil
}
