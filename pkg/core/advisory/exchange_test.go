package advisory

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/completion"
	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/prompt"
	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/schema"
)

type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) GenerateJSON(_ context.Context, _, _ string, _ *genai.Schema) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newAdviceExchange(p completion.Provider) *Exchange[schema.BusinessAdvice] {
	return &Exchange[schema.BusinessAdvice]{
		Name:           "advisor-test",
		PromptID:       prompt.IDs.AdvisorShort,
		ResponseSchema: schema.BusinessAdviceSchema(),
		Fallback:       schema.FallbackBusinessAdvice,
		Client:         completion.NewClient(p, 2, 0, zerolog.Nop()),
		Log:            zerolog.Nop(),
	}
}

func TestRunSuccess(t *testing.T) {
	p := &stubProvider{reply: `{
		"relevance_score": 1.0,
		"advice_type": "BUSINESS_STRATEGY",
		"advice_title": "Diversify Revenue",
		"advice": "Add a second product line to spread risk."
	}`}
	ex := newAdviceExchange(p)

	outcome := ex.Run(context.Background(), prompt.AdvisorVars{Query: "How do I grow?"})

	assert.False(t, outcome.Fallback)
	assert.NoError(t, outcome.Err)
	assert.NotEmpty(t, outcome.RequestID)
	assert.Equal(t, "Diversify Revenue", outcome.Report.AdviceTitle)
	assert.NoError(t, schema.Validate(outcome.Report))
}

// A failed remote call must surface as a schema-valid fallback instance
// carrying the designated error member and a human-readable reason, never as
// an error reaching the presentation loop.
func TestRunFallbackOnRemoteFailure(t *testing.T) {
	p := &stubProvider{err: errors.New("dial tcp: connection refused")}
	ex := newAdviceExchange(p)

	outcome := ex.Run(context.Background(), prompt.AdvisorVars{Query: "How do I grow?"})

	require.True(t, outcome.Fallback)
	assert.ErrorIs(t, outcome.Err, completion.ErrRemoteUnavailable)
	assert.NotEmpty(t, outcome.Reason)
	assert.Equal(t, schema.AdviceIrrelevant, outcome.Report.AdviceType)
	assert.Contains(t, outcome.Report.Advice, "unavailable")
	assert.NoError(t, schema.Validate(outcome.Report))
	assert.Equal(t, 2, p.calls, "retry budget is spent before falling back")
}

func TestRunFallbackOnInvalidOutput(t *testing.T) {
	p := &stubProvider{reply: `{"relevance_score": 3.0, "advice_type": "BUSINESS_STRATEGY", "advice_title": "t", "advice": "a"}`}
	ex := newAdviceExchange(p)

	outcome := ex.Run(context.Background(), prompt.AdvisorVars{Query: "q"})

	require.True(t, outcome.Fallback)
	assert.ErrorIs(t, outcome.Err, completion.ErrValidationExhausted)
	assert.NoError(t, schema.Validate(outcome.Report))
}

func TestRunFallbackOnUnknownPrompt(t *testing.T) {
	p := &stubProvider{}
	ex := newAdviceExchange(p)
	ex.PromptID = "advisor.missing"

	outcome := ex.Run(context.Background(), prompt.AdvisorVars{Query: "q"})

	require.True(t, outcome.Fallback)
	assert.Zero(t, p.calls, "no remote call when composition fails")
	assert.NoError(t, schema.Validate(outcome.Report))
}
