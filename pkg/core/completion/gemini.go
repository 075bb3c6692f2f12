package completion

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// GeminiProvider talks to the Gemini API through the official GenAI SDK with
// JSON-constrained decoding.
type GeminiProvider struct {
	Model string // e.g. "gemini-2.0-flash"
	// Region selects the deployment region. It is passed through to the SDK's
	// client config; the Gemini API backend accepts it but routes globally.
	Region          string
	MaxOutputTokens int32
}

var _ Provider = (*GeminiProvider)(nil)

// GenerateJSON sends one generateContent request constrained to the given
// response schema. Low temperature is deliberate: factual and regulatory
// answers should minimize creative variance.
func (p *GeminiProvider) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, schema *genai.Schema) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:   apiKey,
		Backend:  genai.BackendGeminiAPI,
		Location: p.Region,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := p.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	maxTokens := p.MaxOutputTokens
	if maxTokens == 0 {
		maxTokens = 2048
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		MaxOutputTokens:  maxTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty candidate")
	}
	return text, nil
}
