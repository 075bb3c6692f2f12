// Package advisory implements the generic schema-validated advisory exchange:
// one prompt template, one response schema, one fallback mapping, one remote
// completion. Every interactive tool in this repository is a thin shell
// around an Exchange value.
package advisory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/completion"
	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/prompt"
)

// Exchange binds a report type to its prompt template, response schema and
// fallback synthesizer.
type Exchange[T any] struct {
	Name           string
	PromptID       string
	ResponseSchema *genai.Schema
	Fallback       func(reason string) T
	Client         *completion.Client
	Log            zerolog.Logger
}

// Outcome is the result of one exchange. Report is always schema-valid: when
// Fallback is true it is the synthesized placeholder and Reason/Err describe
// what went wrong.
type Outcome[T any] struct {
	Report    T
	RequestID string
	Fallback  bool
	Reason    string
	Err       error
}

// Run composes the prompt, performs the completion, and converts any failure
// into a fallback instance. It never returns an error to the caller; the loop
// above renders whatever comes back.
func (e *Exchange[T]) Run(ctx context.Context, vars any) Outcome[T] {
	requestID := uuid.NewString()
	log := e.Log.With().Str("exchange", e.Name).Str("request_id", requestID).Logger()

	system, user, err := prompt.Render(e.PromptID, vars)
	if err != nil {
		log.Error().Err(err).Msg("prompt composition failed")
		reason := "Internal error composing the advisory request."
		return Outcome[T]{Report: e.Fallback(reason), RequestID: requestID, Fallback: true, Reason: reason, Err: err}
	}

	report, err := completion.Complete[T](ctx, e.Client, completion.Request{
		SystemPrompt:   system,
		UserPrompt:     user,
		ResponseSchema: e.ResponseSchema,
	})
	if err != nil {
		reason := reasonFor(err)
		log.Error().Err(err).Msg("completion failed, synthesizing fallback")
		return Outcome[T]{Report: e.Fallback(reason), RequestID: requestID, Fallback: true, Reason: reason, Err: err}
	}

	log.Debug().Msg("completion succeeded")
	return Outcome[T]{Report: *report, RequestID: requestID}
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, completion.ErrRemoteUnavailable):
		return "The advisory service is currently unavailable due to a connection or API error. Please check your API configuration and model access."
	case errors.Is(err, completion.ErrValidationExhausted):
		return "The advisory service could not produce a valid structured report. Please try again."
	default:
		return "The advisory service failed unexpectedly. Please try again."
	}
}
