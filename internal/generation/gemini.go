package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// GeminiSource is the AI-backed generation source.
type GeminiSource struct {
	client *genai.Client
	model  string
}

// NewGeminiSource creates a Gemini-backed source. The model parameter may be
// empty to use DefaultModel.
func NewGeminiSource(ctx context.Context, apiKey, model string) (*GeminiSource, error) {
	if apiKey == "" {
		return nil, &AuthError{Message: "API key is required"}
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSource{client: client, model: model}, nil
}

// Name identifies the source in logs.
func (s *GeminiSource) Name() string {
	return "gemini"
}

// Invoke generates raw suggestion JSON for the request. Provider failures are
// classified into the auth/transient taxonomy for the gateway.
func (s *GeminiSource) Invoke(ctx context.Context, req *Request) (string, error) {
	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	prompt, err := buildPrompt(req)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyProviderError(err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}

	return CleanJSONBlock(text), nil
}

// Close releases the underlying client.
func (s *GeminiSource) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// classifyProviderError maps a provider error onto the gateway's taxonomy.
// Unknown errors are treated as transient so the circuit breaker still sees
// them.
func classifyProviderError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &AuthError{Message: "provider rejected credentials", Cause: err}
		default:
			return &TransientError{Message: fmt.Sprintf("provider returned status %d", apiErr.Code), Cause: err}
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "api key") || strings.Contains(msg, "permission") || strings.Contains(msg, "credential") {
		return &AuthError{Message: "provider rejected credentials", Cause: err}
	}

	return &TransientError{Message: "provider call failed", Cause: err}
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &EmptyResponseError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &EmptyResponseError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &EmptyResponseError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}

// CleanJSONBlock removes markdown code fences from JSON responses. Models
// often wrap JSON in ```json blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

var _ Source = (*GeminiSource)(nil)
