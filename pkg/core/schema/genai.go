package schema

import "google.golang.org/genai"

// Response schemas handed to the model alongside each prompt. Field
// descriptions double as instructions; keep them aligned with the validator
// tags in schema.go when either changes.

// BusinessAdviceSchema constrains decoding for the short advice variant.
func BusinessAdviceSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "Structured advice response from the Nigerian Business Advisor.",
		Properties: map[string]*genai.Schema{
			"relevance_score": {
				Type:        genai.TypeNumber,
				Description: "Score from 0.0 to 1.0 indicating how relevant the query is to Nigerian business or tax law. 1.0 for perfect relevance, 0.0 for irrelevant topics.",
			},
			"advice_type": {
				Type:        genai.TypeString,
				Enum:        []string{"BUSINESS_STRATEGY", "TAX_COMPLIANCE", "IRRELEVANT"},
				Description: "Categorizes the advice. Use 'IRRELEVANT' if the score is 0.0.",
			},
			"advice_title": {
				Type:        genai.TypeString,
				Description: "Concise, professional title summarizing the advice. Must be 'Query Irrelevant' when relevance_score is 0.0.",
			},
			"advice": {
				Type:        genai.TypeString,
				Description: "Detailed, actionable business or tax advice specific to the Nigerian context, or the exact rejection message for irrelevant queries.",
			},
		},
		Required: []string{"relevance_score", "advice_type", "advice_title", "advice"},
	}
}

// DetailedBusinessAdviceSchema constrains decoding for the detailed variant.
func DetailedBusinessAdviceSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "Detailed structured advice response from the Nigerian Business Advisor.",
		Properties: map[string]*genai.Schema{
			"relevance_score": {
				Type:        genai.TypeNumber,
				Description: "Score from 0.0 to 1.0 indicating how relevant the query is to Nigerian business or tax law.",
			},
			"advice_type": {
				Type:        genai.TypeString,
				Enum:        []string{"BUSINESS_STRATEGY", "TAX_COMPLIANCE", "IRRELEVANT"},
				Description: "Categorizes the advice. Use 'IRRELEVANT' if the score is 0.0.",
			},
			"advice_title": {
				Type:        genai.TypeString,
				Description: "Concise, professional title summarizing the advice. Must be 'Query Irrelevant' when relevance_score is 0.0.",
			},
			"key_points_summary": {
				Type:        genai.TypeString,
				Description: "1-2 sentence summary of the most critical part of the advice. States the rejection reason for irrelevant queries.",
			},
			"detailed_explanation": {
				Type:        genai.TypeString,
				Description: "Comprehensive, multi-paragraph explanation answering the query in depth. 'N/A' for irrelevant queries.",
			},
			"actionable_steps": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "2-4 specific, scannable next steps. Empty list for irrelevant queries.",
			},
			"potential_risks_or_considerations": {
				Type:        genai.TypeString,
				Description: "1-2 sentence warning about risks or pitfalls to keep in mind. 'N/A' for irrelevant queries.",
			},
		},
		Required: []string{
			"relevance_score", "advice_type", "advice_title", "key_points_summary",
			"detailed_explanation", "actionable_steps", "potential_risks_or_considerations",
		},
	}
}

// BusinessAnalysisSchema constrains decoding for the 7-part analysis report.
func BusinessAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "A comprehensive business analysis and advisory report.",
		Properties: map[string]*genai.Schema{
			"profitability_analysis": {
				Type:        genai.TypeString,
				Description: "1-2 paragraph analysis of Net Profit and Profit Margin (Net Profit / Revenue) and what they mean for the business's health.",
			},
			"growth_and_future_projection": {
				Type:        genai.TypeString,
				Description: "1-2 paragraph growth analysis comparing the profit margin to Nigerian industry benchmarks, with a 3-6 month projection.",
			},
			"business_efficiency_analysis": {
				Type:        genai.TypeString,
				Description: "1-2 paragraph analysis of the Cost-to-Revenue ratio (Total Costs / Revenue) and its impact on profitability.",
			},
			"estimated_business_valuation": {
				Type:        genai.TypeString,
				Description: "Very high-level theoretical valuation (e.g. 2x-3x SDE multiple on net profit). Must include a disclaimer that it is not a formal valuation.",
			},
			"tax_compliance_overview": {
				Type:        genai.TypeString,
				Description: "High-level overview of likely Nigerian tax obligations (CIT, TET, VAT) given the revenue and profit. Not a calculation.",
			},
			"loan_eligibility_assessment": {
				Type:        genai.TypeString,
				Description: "High-level loan eligibility assessment based on profitability and bank balance against general Nigerian banking criteria. Not a guarantee.",
			},
			"actionable_advice": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "2-3 specific, actionable recommendations tied directly to the analysis.",
			},
		},
		Required: []string{
			"profitability_analysis", "growth_and_future_projection",
			"business_efficiency_analysis", "estimated_business_valuation",
			"tax_compliance_overview", "loan_eligibility_assessment", "actionable_advice",
		},
	}
}

// TaxAssessmentSchema constrains decoding for the CIT/TET/VAT calculation.
func TaxAssessmentSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "Profit tax (CIT/TET) and VAT calculation with compliance status and business advice. All amounts in NGN.",
		Properties: map[string]*genai.Schema{
			"taxable_profit": {
				Type:        genai.TypeNumber,
				Description: "Final taxable profit: Total Revenue - Cost of Sales - Operating Expenses.",
			},
			"cit_rate_applied": {
				Type:        genai.TypeNumber,
				Description: "Corporate Income Tax rate applied as a percentage (0.0, 20.0 or 30.0).",
			},
			"cit_liability": {
				Type:        genai.TypeNumber,
				Description: "Total Corporate Income Tax due: taxable profit times the CIT rate.",
			},
			"education_tax_liability": {
				Type:        genai.TypeNumber,
				Description: "Tertiary Education Tax due at 3% of the assessable profit.",
			},
			"total_profit_tax_due": {
				Type:        genai.TypeNumber,
				Description: "Sum of CIT and Education Tax liabilities.",
			},
			"profit_tax_paid_by_user": {
				Type:        genai.TypeNumber,
				Description: "Profit tax (CIT/TET) the user has already paid.",
			},
			"profit_tax_payment_status_amount": {
				Type:        genai.TypeNumber,
				Description: "Paid minus due. Negative means underpaid, positive means overpaid.",
			},
			"vat_output_collected": {
				Type:        genai.TypeNumber,
				Description: "Output VAT (VAT on sales) found in the user's data.",
			},
			"vat_input_paid": {
				Type:        genai.TypeNumber,
				Description: "Input VAT (VAT on purchases/expenses) found in the user's data.",
			},
			"vat_remittable_due": {
				Type:        genai.TypeNumber,
				Description: "Final VAT liability to remit to FIRS: Output VAT - Input VAT.",
			},
			"compliance_status": {
				Type:        genai.TypeString,
				Enum:        []string{"COMPLIANT", "UNDERPAID", "OVERPAID", "UNKNOWN"},
				Description: "Profit tax compliance verdict derived only from the payment status amount.",
			},
			"compliance_recommendation": {
				Type:        genai.TypeString,
				Description: "Actionable advice on tax compliance (profit tax and VAT), payment deadlines and addressing the payment status.",
			},
			"business_growth_advice": {
				Type:        genai.TypeString,
				Description: "Actionable advice on growing the business based on the provided financial data.",
			},
		},
		Required: []string{
			"taxable_profit", "cit_rate_applied", "cit_liability",
			"education_tax_liability", "total_profit_tax_due", "profit_tax_paid_by_user",
			"profit_tax_payment_status_amount", "vat_output_collected", "vat_input_paid",
			"vat_remittable_due", "compliance_status", "compliance_recommendation",
			"business_growth_advice",
		},
	}
}
