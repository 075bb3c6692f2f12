// Command taxcalc assesses Nigerian corporate tax (CIT, TET, VAT) from a
// CSV or Excel financial statement. The remote model performs the assessment
// constrained to the tax schema; the local arithmetic in pkg/core/calc
// cross-checks its numbers before anything is shown as fact.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/advisory"
	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/calc"
	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/completion"
	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/config"
	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/prompt"
	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/repl"
	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/schema"
	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/tabular"
)

const heavyRule = "============================================================"
const lightRule = "------------------------------------------------------------"

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.WarnLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	client := completion.NewClient(&completion.GeminiProvider{
		Model:           cfg.Model,
		Region:          cfg.Region,
		MaxOutputTokens: cfg.MaxOutputTokens,
	}, cfg.Attempts, cfg.RequestTimeout, log)

	ex := &advisory.Exchange[schema.TaxAssessment]{
		Name:           "taxcalc",
		PromptID:       prompt.IDs.TaxAssessment,
		ResponseSchema: schema.TaxAssessmentSchema(),
		Fallback: func(reason string) schema.TaxAssessment {
			return schema.FallbackTaxAssessment(reason, 0)
		},
		Client: client,
		Log:    log,
	}

	p := repl.NewPrompter(os.Stdin, os.Stdout)
	p.Println("--- Nigerian Corporate Tax & Business Advisor (File Uploader) ---")
	p.Println("Processes CSV or Excel data using AI to calculate tax liabilities and give growth advice.")

	ctx := context.Background()
	for {
		p.Println(lightRule)

		path, err := p.Ask("Enter the path to your CSV or Excel (.xlsx) file, or 'exit': ")
		if err != nil || repl.IsExit(path) {
			break
		}
		if path == "" {
			continue
		}

		size, err := p.Ask("Enter business size for context (MEDIUM or LARGE): ")
		if err != nil || repl.IsExit(size) {
			break
		}
		size = strings.ToUpper(size)
		if size != string(calc.SizeMedium) && size != string(calc.SizeLarge) {
			p.Println("Invalid business size. Please enter 'MEDIUM' or 'LARGE'.")
			continue
		}

		stmt, scalars, err := tabular.Extract(path)
		if err != nil {
			// extraction failures never reach the completion service
			p.Printf("ERROR: %v\n", err)
			continue
		}

		p.Printf("\n-> Calculating tax & generating advice for %s company...\n", size)
		outcome := ex.Run(ctx, prompt.TaxVars{
			BusinessSize:  size,
			Table:         stmt.String(),
			Revenue:       scalars.Revenue,
			ProfitTaxPaid: scalars.ProfitTaxPaid,
			OutputVAT:     scalars.OutputVAT,
			InputVAT:      scalars.InputVAT,
		})

		report := outcome.Report
		if outcome.Fallback {
			report.ProfitTaxPaid = scalars.ProfitTaxPaid
		}
		p.Println(render(size, report, outcome.Fallback, calc.Assess(calc.Inputs{
			Revenue:           scalars.Revenue,
			CostOfSales:       scalars.CostOfSales,
			OperatingExpenses: scalars.OperatingExpenses,
			ProfitTaxPaid:     scalars.ProfitTaxPaid,
			OutputVAT:         scalars.OutputVAT,
			InputVAT:          scalars.InputVAT,
		})))

		answer, err := p.Ask("Press Enter to run another calculation, or type 'no' to exit: ")
		if err != nil || repl.IsExit(answer) {
			break
		}
	}
	p.Println("Exiting calculator. Goodbye!")
}

func render(size string, r schema.TaxAssessment, fellBack bool, local calc.Assessment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n| TAX & BUSINESS ASSESSMENT FOR %s COMPANY |\n%s\n", heavyRule, size, heavyRule)

	if fellBack {
		fmt.Fprintf(&b, "SYSTEM ERROR: %s\n", r.ComplianceRecommendation)
		fmt.Fprintf(&b, "BUSINESS ADVICE: %s\n", r.BusinessGrowthAdvice)
		b.WriteString("\n" + heavyRule)
		return b.String()
	}

	b.WriteString("--- PROFIT TAX CALCULATION (Annual) ---\n")
	fmt.Fprintf(&b, "  > Taxable Profit:        %s\n", calc.FormatNGN(r.TaxableProfit))
	fmt.Fprintf(&b, "  > CIT Rate Applied:      %s\n", calc.FormatPercent(r.CITRateApplied))
	fmt.Fprintf(&b, "  > CIT Liability:         %s\n", calc.FormatNGN(r.CITLiability))
	fmt.Fprintf(&b, "  > TET Liability (3%%):    %s\n", calc.FormatNGN(r.EducationTaxLiability))
	b.WriteString(lightRule + "\n")
	fmt.Fprintf(&b, "  > TOTAL PROFIT TAX DUE:  %s\n", calc.FormatNGN(r.TotalProfitTaxDue))
	fmt.Fprintf(&b, "  > PROFIT TAX PAID:       %s\n", calc.FormatNGN(r.ProfitTaxPaid))
	b.WriteString(lightRule + "\n")
	fmt.Fprintf(&b, "  > PAYMENT STATUS:        %s (%s)\n", calc.FormatNGN(r.PaymentStatusAmount), paymentLabel(r.PaymentStatusAmount))
	b.WriteString(heavyRule + "\n")

	b.WriteString("\n--- VAT CALCULATION (Monthly) ---\n")
	fmt.Fprintf(&b, "  > Output VAT (On Sales):     %s\n", calc.FormatNGN(r.VATOutputCollected))
	fmt.Fprintf(&b, "  > Input VAT (On Purchases):  %s\n", calc.FormatNGN(r.VATInputPaid))
	b.WriteString(lightRule + "\n")
	fmt.Fprintf(&b, "  > VAT REMITTABLE TO FIRS:    %s\n", calc.FormatNGN(r.VATRemittableDue))
	b.WriteString(heavyRule + "\n")

	if !local.Agrees(r) {
		b.WriteString("\n--- VERIFIED CALCULATION (local arithmetic differs from AI output) ---\n")
		fmt.Fprintf(&b, "  > Taxable Profit:        %s\n", calc.FormatNGN(local.TaxableProfit))
		fmt.Fprintf(&b, "  > CIT (%s):           %s\n", calc.FormatPercent(local.CITRatePercent), calc.FormatNGN(local.CITLiability))
		fmt.Fprintf(&b, "  > TET (3%%):              %s\n", calc.FormatNGN(local.TETLiability))
		fmt.Fprintf(&b, "  > TOTAL PROFIT TAX DUE:  %s\n", calc.FormatNGN(local.TotalProfitTaxDue))
		fmt.Fprintf(&b, "  > VAT REMITTABLE:        %s\n", calc.FormatNGN(local.VATRemittable))
		b.WriteString(heavyRule + "\n")
	}

	b.WriteString("\n--- TAX COMPLIANCE ---\n")
	fmt.Fprintf(&b, "PROFIT TAX STATUS: %s\n", r.ComplianceStatus)
	fmt.Fprintf(&b, "\nRECOMMENDATION (Tax):\n%s\n", r.ComplianceRecommendation)

	b.WriteString("\n" + heavyRule + "\n")
	b.WriteString("\n--- BUSINESS GROWTH ADVICE ---\n")
	b.WriteString(r.BusinessGrowthAdvice)
	b.WriteString("\n\n" + heavyRule)
	return b.String()
}

func paymentLabel(status float64) string {
	switch {
	case status < 0:
		return "Underpaid"
	case status > 0:
		return "Overpaid"
	default:
		return "Paid in Full"
	}
}
