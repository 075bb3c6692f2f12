// Package completion implements the schema-constrained completion client: it
// sends a composed prompt to a remote generative model, coerces the reply into
// a declared report schema, and reports typed failures so callers can
// substitute a deterministic fallback instead of crashing.
package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/schema"
)

var (
	// ErrRemoteUnavailable marks connectivity, auth or quota failures
	// contacting the completion service.
	ErrRemoteUnavailable = errors.New("remote completion service unavailable")
	// ErrValidationExhausted marks model output that never conformed to the
	// declared schema within the retry budget.
	ErrValidationExhausted = errors.New("model output failed schema validation")
)

// Request is one schema-constrained completion.
type Request struct {
	SystemPrompt   string
	UserPrompt     string
	ResponseSchema *genai.Schema
}

// Client drives a Provider with an internal retry budget. A zero attempts
// value means DefaultAttempts; a zero timeout means no per-call deadline.
type Client struct {
	provider Provider
	attempts int
	timeout  time.Duration
	log      zerolog.Logger
}

// DefaultAttempts bounds how often a single completion is retried before the
// caller falls back.
const DefaultAttempts = 3

// NewClient wires a provider to the retry/validation loop. timeout bounds each
// remote call individually so a hung request burns one attempt, not the
// session.
func NewClient(provider Provider, attempts int, timeout time.Duration, log zerolog.Logger) *Client {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	return &Client{provider: provider, attempts: attempts, timeout: timeout, log: log}
}

// Complete runs the request until the reply decodes into T and satisfies T's
// field constraints, or the retry budget is exhausted. On success the returned
// report is guaranteed schema-valid; it is never partially typed. Failures are
// always one of the two sentinel errors above (wrapped with detail).
func Complete[T any](ctx context.Context, c *Client, req Request) (*T, error) {
	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		raw, err := c.generate(ctx, req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
			c.log.Warn().Int("attempt", attempt).Err(err).Msg("completion call failed")
			continue
		}

		out := new(T)
		if err := decode(raw, out); err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrValidationExhausted, err)
			c.log.Warn().Int("attempt", attempt).Err(err).Msg("model output not parseable")
			continue
		}
		if err := schema.Validate(out); err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrValidationExhausted, err)
			c.log.Warn().Int("attempt", attempt).Err(err).Msg("model output failed constraints")
			continue
		}
		return out, nil
	}
	if lastErr == nil {
		lastErr = ErrRemoteUnavailable
	}
	return nil, lastErr
}

func (c *Client) generate(ctx context.Context, req Request) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.provider.GenerateJSON(ctx, req.SystemPrompt, req.UserPrompt, req.ResponseSchema)
}
