package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsRegistered(t *testing.T) {
	r := Get()
	assert.Equal(t, 4, r.Count())

	for _, id := range []string{IDs.AdvisorShort, IDs.AdvisorDetailed, IDs.AnalystReport, IDs.TaxAssessment} {
		tmpl, err := r.Lookup(id)
		require.NoError(t, err)
		assert.NotEmpty(t, tmpl.SystemPrompt, "%s must carry a policy document", id)
	}
}

func TestLookupUnknownID(t *testing.T) {
	_, err := Get().Lookup("advisor.nonexistent")
	assert.Error(t, err)
}

// Composition is pure: identical inputs must produce identical text.
func TestRenderDeterministic(t *testing.T) {
	vars := AnalystVars{
		Industry:    "Retail",
		Revenue:     5_000_000,
		TotalCosts:  3_500_000,
		BankBalance: 1_200_000,
		NetProfit:   1_500_000,
	}

	sys1, user1, err := Render(IDs.AnalystReport, vars)
	require.NoError(t, err)
	sys2, user2, err := Render(IDs.AnalystReport, vars)
	require.NoError(t, err)

	assert.Equal(t, sys1, sys2)
	assert.Equal(t, user1, user2)
}

func TestAnalystRenderContainsLabeledValues(t *testing.T) {
	_, user, err := Render(IDs.AnalystReport, AnalystVars{
		Industry:    "Logistics",
		Revenue:     5_000_000,
		TotalCosts:  3_500_000,
		BankBalance: 1_200_000,
		NetProfit:   1_500_000,
	})
	require.NoError(t, err)

	assert.Contains(t, user, "Industry: Logistics")
	assert.Contains(t, user, "Monthly Revenue: ₦5,000,000.00")
	assert.Contains(t, user, "Net Profit/Loss: ₦1,500,000.00")
}

func TestTaxRenderEmbedsTableAndScalars(t *testing.T) {
	system, user, err := Render(IDs.TaxAssessment, TaxVars{
		BusinessSize:  "LARGE",
		Table:         "Total Revenue  145000000",
		Revenue:       145_000_000,
		ProfitTaxPaid: 4_500_000,
		OutputVAT:     10_000_000,
		InputVAT:      4_000_000,
	})
	require.NoError(t, err)

	assert.Contains(t, system, "Tertiary Education Tax")
	assert.Contains(t, user, "'LARGE' size")
	assert.Contains(t, user, "Total Revenue  145000000")
	assert.Contains(t, user, "Total Revenue: ₦145,000,000.00")
	assert.Contains(t, user, "Output VAT (VAT on Sales): ₦10,000,000.00")
}

func TestAdvisorRenderEmbedsQuery(t *testing.T) {
	_, user, err := Render(IDs.AdvisorShort, AdvisorVars{Query: "How do I register for VAT?"})
	require.NoError(t, err)
	assert.Equal(t, "USER QUERY: How do I register for VAT?", user)
}
