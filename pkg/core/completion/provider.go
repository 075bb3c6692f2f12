package completion

import (
	"context"

	"google.golang.org/genai"
)

// Provider is the remote generative-model boundary. Implementations send one
// composed prompt constrained by a declared response schema and return the raw
// model text. Auth, backoff and transport details stay behind this interface.
type Provider interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, schema *genai.Schema) (string, error)
}
