// Package schema declares the report contracts every advisory exchange must
// satisfy. The Go structs are the single source of truth: their validator tags
// define what "valid" means, and the matching GenAI response schemas in
// genai.go are derived from the same field set so the remote model is
// constrained to the identical shape.
package schema

import (
	"github.com/go-playground/validator/v10"
)

// AdviceType categorizes an advisory reply.
type AdviceType string

const (
	AdviceBusinessStrategy AdviceType = "BUSINESS_STRATEGY"
	AdviceTaxCompliance    AdviceType = "TAX_COMPLIANCE"
	AdviceIrrelevant       AdviceType = "IRRELEVANT"
)

// ComplianceStatus is the profit-tax compliance verdict of a TaxAssessment.
// Extraction and transport failures are never encoded here; they surface as
// typed errors before a remote call is made. UNKNOWN appears only when the
// completion step itself fell back.
type ComplianceStatus string

const (
	ComplianceCompliant ComplianceStatus = "COMPLIANT"
	ComplianceUnderpaid ComplianceStatus = "UNDERPAID"
	ComplianceOverpaid  ComplianceStatus = "OVERPAID"
	ComplianceUnknown   ComplianceStatus = "UNKNOWN"
)

// BusinessAdvice is the short advisory report variant.
type BusinessAdvice struct {
	// RelevanceScore is 0.0 for off-topic queries and 1.0 for queries squarely
	// about Nigerian business or tax matters.
	RelevanceScore float64    `json:"relevance_score" validate:"gte=0,lte=1"`
	AdviceType     AdviceType `json:"advice_type" validate:"required,oneof=BUSINESS_STRATEGY TAX_COMPLIANCE IRRELEVANT"`
	AdviceTitle    string     `json:"advice_title" validate:"required"`
	Advice         string     `json:"advice" validate:"required"`
}

// DetailedBusinessAdvice is the long-form advisory report variant.
type DetailedBusinessAdvice struct {
	RelevanceScore      float64    `json:"relevance_score" validate:"gte=0,lte=1"`
	AdviceType          AdviceType `json:"advice_type" validate:"required,oneof=BUSINESS_STRATEGY TAX_COMPLIANCE IRRELEVANT"`
	AdviceTitle         string     `json:"advice_title" validate:"required"`
	KeyPointsSummary    string     `json:"key_points_summary" validate:"required"`
	DetailedExplanation string     `json:"detailed_explanation" validate:"required"`
	ActionableSteps     []string   `json:"actionable_steps" validate:"max=4,dive,required"`
	PotentialRisks      string     `json:"potential_risks_or_considerations" validate:"required"`
}

// BusinessAnalysisReport is the 7-part analysis produced by the analyst tool.
type BusinessAnalysisReport struct {
	ProfitabilityAnalysis     string   `json:"profitability_analysis" validate:"required"`
	GrowthAndProjection       string   `json:"growth_and_future_projection" validate:"required"`
	EfficiencyAnalysis        string   `json:"business_efficiency_analysis" validate:"required"`
	EstimatedValuation        string   `json:"estimated_business_valuation" validate:"required"`
	TaxComplianceOverview     string   `json:"tax_compliance_overview" validate:"required"`
	LoanEligibilityAssessment string   `json:"loan_eligibility_assessment" validate:"required"`
	ActionableAdvice          []string `json:"actionable_advice" validate:"max=4,dive,required"`
}

// TaxAssessment carries the CIT/TET/VAT calculation plus compliance advice.
// Amounts are NGN.
type TaxAssessment struct {
	TaxableProfit         float64 `json:"taxable_profit"`
	CITRateApplied        float64 `json:"cit_rate_applied" validate:"gte=0,lte=100"`
	CITLiability          float64 `json:"cit_liability"`
	EducationTaxLiability float64 `json:"education_tax_liability"`
	TotalProfitTaxDue     float64 `json:"total_profit_tax_due"`
	ProfitTaxPaid         float64 `json:"profit_tax_paid_by_user"`
	// PaymentStatusAmount is paid minus due: negative means underpaid.
	PaymentStatusAmount float64 `json:"profit_tax_payment_status_amount"`

	VATOutputCollected float64 `json:"vat_output_collected"`
	VATInputPaid       float64 `json:"vat_input_paid"`
	VATRemittableDue   float64 `json:"vat_remittable_due"`

	ComplianceStatus         ComplianceStatus `json:"compliance_status" validate:"required,oneof=COMPLIANT UNDERPAID OVERPAID UNKNOWN"`
	ComplianceRecommendation string           `json:"compliance_recommendation" validate:"required"`
	BusinessGrowthAdvice     string           `json:"business_growth_advice" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a report instance against its declared field constraints.
func Validate(report any) error {
	return validate.Struct(report)
}
