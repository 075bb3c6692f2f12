package completion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/schema"
)

// fakeProvider replays scripted replies (or errors) per call.
type fakeProvider struct {
	replies []string
	errs    []error
	calls   int
}

func (f *fakeProvider) GenerateJSON(_ context.Context, _, _ string, _ *genai.Schema) (string, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	return "", errors.New("no scripted reply")
}

const validAdviceJSON = `{
	"relevance_score": 1.0,
	"advice_type": "TAX_COMPLIANCE",
	"advice_title": "Register for VAT",
	"advice": "Register with FIRS once turnover exceeds the threshold."
}`

func newTestClient(p Provider, attempts int) *Client {
	return NewClient(p, attempts, 0, zerolog.Nop())
}

func TestCompleteValidFirstAttempt(t *testing.T) {
	p := &fakeProvider{replies: []string{validAdviceJSON}}
	c := newTestClient(p, 3)

	out, err := Complete[schema.BusinessAdvice](context.Background(), c, Request{})
	require.NoError(t, err)
	assert.Equal(t, schema.AdviceTaxCompliance, out.AdviceType)
	assert.Equal(t, 1, p.calls)
}

// Markdown fences and trailing commas are routine LLM damage; the decode
// ladder must absorb them without burning an extra attempt.
func TestCompleteRepairsDamagedJSON(t *testing.T) {
	damaged := "```json\n{\"relevance_score\": 1.0, \"advice_type\": \"BUSINESS_STRATEGY\", \"advice_title\": \"Pricing\", \"advice\": \"Review margins quarterly.\",}\n```"
	p := &fakeProvider{replies: []string{damaged}}
	c := newTestClient(p, 3)

	out, err := Complete[schema.BusinessAdvice](context.Background(), c, Request{})
	require.NoError(t, err)
	assert.Equal(t, "Pricing", out.AdviceTitle)
	assert.Equal(t, 1, p.calls)
}

func TestCompleteRetriesThenSucceeds(t *testing.T) {
	p := &fakeProvider{
		errs:    []error{errors.New("503 unavailable")},
		replies: []string{"", validAdviceJSON},
	}
	c := newTestClient(p, 3)

	out, err := Complete[schema.BusinessAdvice](context.Background(), c, Request{})
	require.NoError(t, err)
	assert.Equal(t, "Register for VAT", out.AdviceTitle)
	assert.Equal(t, 2, p.calls)
}

func TestCompleteRemoteUnavailable(t *testing.T) {
	boom := errors.New("connection refused")
	p := &fakeProvider{errs: []error{boom, boom, boom}}
	c := newTestClient(p, 3)

	_, err := Complete[schema.BusinessAdvice](context.Background(), c, Request{})
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.Equal(t, 3, p.calls)
}

// Output that parses but violates constraints (bad enum member) must exhaust
// the budget and come back as a validation failure, never a partial object.
func TestCompleteValidationExhausted(t *testing.T) {
	badEnum := `{"relevance_score": 1.0, "advice_type": "FINANCIAL_ASTROLOGY", "advice_title": "t", "advice": "a"}`
	p := &fakeProvider{replies: []string{badEnum, badEnum, badEnum}}
	c := newTestClient(p, 3)

	_, err := Complete[schema.BusinessAdvice](context.Background(), c, Request{})
	assert.ErrorIs(t, err, ErrValidationExhausted)
	assert.Equal(t, 3, p.calls)
}

func TestCompleteUnparseableOutput(t *testing.T) {
	p := &fakeProvider{replies: []string{"I am sorry, I cannot", "{{{", "nope"}}
	c := newTestClient(p, 2)

	_, err := Complete[schema.BusinessAdvice](context.Background(), c, Request{})
	assert.ErrorIs(t, err, ErrValidationExhausted)
	assert.Equal(t, 2, p.calls)
}

// blockingProvider hangs until the per-call deadline fires.
type blockingProvider struct {
	sawDeadline bool
	calls       int
}

func (b *blockingProvider) GenerateJSON(ctx context.Context, _, _ string, _ *genai.Schema) (string, error) {
	b.calls++
	_, b.sawDeadline = ctx.Deadline()
	<-ctx.Done()
	return "", ctx.Err()
}

// A configured timeout must bound each remote call: a hung request burns one
// attempt and comes back as a remote failure instead of blocking the session.
func TestCompleteTimeoutBoundsEachCall(t *testing.T) {
	p := &blockingProvider{}
	c := NewClient(p, 2, 5*time.Millisecond, zerolog.Nop())

	_, err := Complete[schema.BusinessAdvice](context.Background(), c, Request{})
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.Equal(t, 2, p.calls)
	assert.True(t, p.sawDeadline, "the provider must see a per-call deadline")
}

func TestCompleteZeroTimeoutLeavesContextUnbounded(t *testing.T) {
	p := &deadlineRecorder{reply: validAdviceJSON}
	c := NewClient(p, 1, 0, zerolog.Nop())

	_, err := Complete[schema.BusinessAdvice](context.Background(), c, Request{})
	require.NoError(t, err)
	assert.False(t, p.sawDeadline)
}

type deadlineRecorder struct {
	reply       string
	sawDeadline bool
}

func (d *deadlineRecorder) GenerateJSON(ctx context.Context, _, _ string, _ *genai.Schema) (string, error) {
	_, d.sawDeadline = ctx.Deadline()
	return d.reply, nil
}

func TestDecodeHjsonFallback(t *testing.T) {
	// unquoted keys and no commas: only the Hjson strategy accepts this
	loose := `{
		relevance_score: 1.0
		advice_type: BUSINESS_STRATEGY
		advice_title: Expansion
		advice: Open a second location once cash flow stabilizes.
	}`
	var out schema.BusinessAdvice
	require.NoError(t, decode(loose, &out))
	assert.Equal(t, "Expansion", out.AdviceTitle)
}
