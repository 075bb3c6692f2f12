package schema

import "google.golang.org/genai"

// Fallback synthesis. Every report variant has exactly one deterministic
// schema-valid placeholder: free-text fields carry the reason or "N/A",
// numbers are zero, enums take their designated error member, lists are empty.

const notAvailable = "N/A"

// FallbackBusinessAdvice builds the short-advice placeholder for a failed
// completion.
func FallbackBusinessAdvice(reason string) BusinessAdvice {
	return BusinessAdvice{
		RelevanceScore: 0.0,
		AdviceType:     AdviceIrrelevant,
		AdviceTitle:    "System Error: Advisory Unavailable",
		Advice:         reason,
	}
}

// FallbackDetailedBusinessAdvice builds the detailed-advice placeholder.
func FallbackDetailedBusinessAdvice(reason string) DetailedBusinessAdvice {
	return DetailedBusinessAdvice{
		RelevanceScore:      0.0,
		AdviceType:          AdviceIrrelevant,
		AdviceTitle:         "System Error: Advisory Unavailable",
		KeyPointsSummary:    reason,
		DetailedExplanation: notAvailable,
		ActionableSteps:     []string{},
		PotentialRisks:      notAvailable,
	}
}

// FallbackBusinessAnalysis builds the 7-part analysis placeholder.
func FallbackBusinessAnalysis(reason string) BusinessAnalysisReport {
	return BusinessAnalysisReport{
		ProfitabilityAnalysis:     "Error: could not generate analysis. " + reason,
		GrowthAndProjection:       notAvailable,
		EfficiencyAnalysis:        notAvailable,
		EstimatedValuation:        notAvailable,
		TaxComplianceOverview:     notAvailable,
		LoanEligibilityAssessment: notAvailable,
		ActionableAdvice:          []string{},
	}
}

// FallbackTaxAssessment builds the tax placeholder. The caller may carry the
// already-extracted profit tax paid through so the rendered report stays
// honest about what was read from the file.
func FallbackTaxAssessment(reason string, profitTaxPaid float64) TaxAssessment {
	return TaxAssessment{
		ProfitTaxPaid:            profitTaxPaid,
		ComplianceStatus:         ComplianceUnknown,
		ComplianceRecommendation: reason,
		BusinessGrowthAdvice:     "N/A. Cannot provide business advice due to error.",
	}
}

// Variant ties a report type's identity, response schema and fallback mapping
// together so callers (and the totality test) can range over every declared
// schema in the system.
type Variant struct {
	ID             string
	ResponseSchema func() *genai.Schema
	Synthesize     func(reason string) any
}

// Variants enumerates every declared report schema variant.
func Variants() []Variant {
	return []Variant{
		{
			ID:             "advice.short",
			ResponseSchema: BusinessAdviceSchema,
			Synthesize:     func(reason string) any { return FallbackBusinessAdvice(reason) },
		},
		{
			ID:             "advice.detailed",
			ResponseSchema: DetailedBusinessAdviceSchema,
			Synthesize:     func(reason string) any { return FallbackDetailedBusinessAdvice(reason) },
		},
		{
			ID:             "analysis.business",
			ResponseSchema: BusinessAnalysisSchema,
			Synthesize:     func(reason string) any { return FallbackBusinessAnalysis(reason) },
		},
		{
			ID:             "tax.assessment",
			ResponseSchema: TaxAssessmentSchema,
			Synthesize:     func(reason string) any { return FallbackTaxAssessment(reason, 0) },
		},
	}
}
