// Package calc holds the deterministic Nigerian tax arithmetic (Finance Act
// brackets) used to cross-check model output and to anchor the rendered
// reports. The remote model is asked for the same numbers; this package is the
// local source of truth when the two disagree.
package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/schema"
)

// BusinessSize buckets a company by annual turnover.
type BusinessSize string

const (
	SizeSmall  BusinessSize = "SMALL"
	SizeMedium BusinessSize = "MEDIUM"
	SizeLarge  BusinessSize = "LARGE"
)

// Finance Act thresholds and rates, NGN.
const (
	SmallCompanyTurnoverMax  = 25_000_000.0
	MediumCompanyTurnoverMax = 100_000_000.0

	TETRate = 0.03
	VATRate = 0.075
	// VATThreshold: companies at or below this turnover are VAT exempt.
	VATThreshold = SmallCompanyTurnoverMax
)

// ClassifySize buckets annual revenue per the Finance Act.
func ClassifySize(annualRevenue float64) BusinessSize {
	switch {
	case annualRevenue <= SmallCompanyTurnoverMax:
		return SizeSmall
	case annualRevenue <= MediumCompanyTurnoverMax:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// CITRatePercent returns the Corporate Income Tax rate for a size bucket, as
// a percentage.
func CITRatePercent(size BusinessSize) float64 {
	switch size {
	case SizeSmall:
		return 0
	case SizeMedium:
		return 20
	default:
		return 30
	}
}

// Inputs are the scalar quantities a tax assessment is computed from.
type Inputs struct {
	Revenue           float64
	CostOfSales       float64
	OperatingExpenses float64
	ProfitTaxPaid     float64
	OutputVAT         float64
	InputVAT          float64
}

// Assessment is the locally computed counterpart of schema.TaxAssessment.
type Assessment struct {
	Size                BusinessSize
	TaxableProfit       float64
	CITRatePercent      float64
	CITLiability        float64
	TETLiability        float64
	TotalProfitTaxDue   float64
	PaymentStatusAmount float64 // paid - due; negative means underpaid
	VATRemittable       float64
	ComplianceStatus    schema.ComplianceStatus
}

// Assess computes the full CIT/TET/VAT position from raw inputs.
func Assess(in Inputs) Assessment {
	size := ClassifySize(in.Revenue)
	rate := CITRatePercent(size)
	profit := in.Revenue - in.CostOfSales - in.OperatingExpenses

	cit := 0.0
	tet := 0.0
	if profit > 0 {
		cit = profit * rate / 100
		tet = profit * TETRate
	}
	due := cit + tet
	status := in.ProfitTaxPaid - due

	vat := in.OutputVAT - in.InputVAT
	if in.Revenue <= VATThreshold {
		vat = 0
	}

	return Assessment{
		Size:                size,
		TaxableProfit:       profit,
		CITRatePercent:      rate,
		CITLiability:        cit,
		TETLiability:        tet,
		TotalProfitTaxDue:   due,
		PaymentStatusAmount: status,
		VATRemittable:       vat,
		ComplianceStatus:    complianceFor(status),
	}
}

func complianceFor(paymentStatus float64) schema.ComplianceStatus {
	switch {
	case paymentStatus < 0:
		return schema.ComplianceUnderpaid
	case paymentStatus > 0:
		return schema.ComplianceOverpaid
	default:
		return schema.ComplianceCompliant
	}
}

// Agrees reports whether a model-produced assessment matches the local
// arithmetic within a small absolute tolerance.
func (a Assessment) Agrees(r schema.TaxAssessment) bool {
	const tol = 1.0 // one naira
	near := func(x, y float64) bool { return math.Abs(x-y) <= tol }
	return near(a.TaxableProfit, r.TaxableProfit) &&
		near(a.CITLiability, r.CITLiability) &&
		near(a.TETLiability, r.EducationTaxLiability) &&
		near(a.TotalProfitTaxDue, r.TotalProfitTaxDue) &&
		near(a.VATRemittable, r.VATRemittableDue)
}

// FormatNGN renders an amount as naira with comma grouping and two decimals,
// e.g. ₦16,500,000.00.
func FormatNGN(amount float64) string {
	neg := math.Signbit(amount)
	s := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteRune('₦')
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// FormatPercent renders a rate like 30 as "30.0%".
func FormatPercent(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64) + "%"
}
