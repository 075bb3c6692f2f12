package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every declared schema variant must synthesize a fallback instance that
// passes its own field constraints. A variant that cannot fall back would
// turn a remote outage into a crash.
func TestFallbackTotality(t *testing.T) {
	const reason = "remote service unreachable"

	variants := Variants()
	require.NotEmpty(t, variants)

	for _, v := range variants {
		t.Run(v.ID, func(t *testing.T) {
			instance := v.Synthesize(reason)
			assert.NoError(t, Validate(instance), "fallback instance must satisfy its own schema")
			assert.NotNil(t, v.ResponseSchema(), "every variant declares a response schema")
		})
	}
}

func TestFallbackBusinessAdvice(t *testing.T) {
	a := FallbackBusinessAdvice("connection refused")

	assert.Equal(t, 0.0, a.RelevanceScore)
	assert.Equal(t, AdviceIrrelevant, a.AdviceType)
	assert.Contains(t, a.Advice, "connection refused")
	assert.NoError(t, Validate(a))
}

func TestFallbackDetailedBusinessAdvice(t *testing.T) {
	a := FallbackDetailedBusinessAdvice("quota exhausted")

	assert.Equal(t, AdviceIrrelevant, a.AdviceType)
	assert.Contains(t, a.KeyPointsSummary, "quota exhausted")
	assert.Empty(t, a.ActionableSteps)
	assert.Equal(t, "N/A", a.PotentialRisks)
	assert.NoError(t, Validate(a))
}

func TestFallbackTaxAssessmentCarriesPaidAmount(t *testing.T) {
	a := FallbackTaxAssessment("model returned garbage", 4_500_000)

	assert.Equal(t, ComplianceUnknown, a.ComplianceStatus)
	assert.Equal(t, 4_500_000.0, a.ProfitTaxPaid)
	assert.Zero(t, a.TaxableProfit)
	assert.Zero(t, a.TotalProfitTaxDue)
	assert.Contains(t, a.ComplianceRecommendation, "garbage")
	assert.NoError(t, Validate(a))
}

func TestValidateRejectsBadEnum(t *testing.T) {
	a := FallbackBusinessAdvice("x")
	a.AdviceType = "SOMETHING_ELSE"
	assert.Error(t, Validate(a))
}

func TestValidateRejectsOutOfRangeScore(t *testing.T) {
	a := FallbackBusinessAdvice("x")
	a.RelevanceScore = 1.5
	assert.Error(t, Validate(a))
}

func TestValidateRejectsTooManySteps(t *testing.T) {
	a := FallbackDetailedBusinessAdvice("x")
	a.ActionableSteps = []string{"a", "b", "c", "d", "e"}
	assert.Error(t, Validate(a))
}
