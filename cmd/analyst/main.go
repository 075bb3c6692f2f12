// Command analyst collects one month of financial figures at the prompt and
// produces the 7-part business analysis report.
package main

import (
	"context"
	"errors"
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
)

const heavyRule = "=================================================="

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

	ex := &advisory.Exchange[schema.BusinessAnalysisReport]{
		Name:           "analyst",
		PromptID:       prompt.IDs.AnalystReport,
		ResponseSchema: schema.BusinessAnalysisSchema(),
		Fallback:       schema.FallbackBusinessAnalysis,
		Client:         client,
		Log:            log,
	}

	p := repl.NewPrompter(os.Stdin, os.Stdout)
	p.Println(repl.BannerText("AI Business Analyst (Nigeria)",
		"This tool collects your monthly financial data to provide a 7-part analysis."))

	ctx := context.Background()
	for {
		if err := runOnce(ctx, p, ex); err != nil {
			if errors.Is(err, repl.ErrUserAbort) {
				break
			}
			p.Printf("\nAn unexpected runtime error occurred: %v. Restarting loop.\n", err)
		}

		answer, err := p.Ask("\nPress Enter to run a new analysis, or type 'no' to exit:\n> ")
		if err != nil || repl.IsExit(answer) {
			break
		}
	}
	p.Println("\nExiting analyst tool. Goodbye!")
}

func runOnce(ctx context.Context, p *repl.Prompter, ex *advisory.Exchange[schema.BusinessAnalysisReport]) error {
	p.Println(repl.Divider)

	industry, err := p.Ask("What is your business industry (e.g. 'Retail', 'Restaurant', 'Logistics')?\n> ")
	if err != nil {
		return err
	}
	if repl.IsExit(industry) {
		return repl.ErrUserAbort
	}
	if industry == "" {
		p.Println("Industry is required to provide a benchmark. Please try again.")
		return nil
	}

	revenue, err := p.AskNumber("Enter your total Monthly Revenue (NGN):\n> ")
	if err != nil {
		return err
	}
	totalCosts, err := p.AskNumber("Enter your total Monthly Costs (Fixed + Variable) (NGN):\n> ")
	if err != nil {
		return err
	}
	bankBalance, err := p.AskNumber("Enter your Current Business Bank Account Balance (NGN):\n> ")
	if err != nil {
		return err
	}

	netProfit := revenue - totalCosts

	p.Println("\n--- Your Data Summary ---")
	p.Printf("  Monthly Revenue:    %s\n", calc.FormatNGN(revenue))
	p.Printf("  Total Monthly Cost: %s\n", calc.FormatNGN(totalCosts))
	p.Printf("  Net Profit/Loss:    %s\n", calc.FormatNGN(netProfit))
	p.Printf("  Bank Balance:       %s\n", calc.FormatNGN(bankBalance))

	if revenue == 0 {
		p.Println("\nCannot calculate profit margin or provide analysis with zero revenue.")
		return nil
	}

	p.Println("\n-> Analyzing data...")
	outcome := ex.Run(ctx, prompt.AnalystVars{
		Industry:    industry,
		Revenue:     revenue,
		TotalCosts:  totalCosts,
		BankBalance: bankBalance,
		NetProfit:   netProfit,
	})
	p.Println(renderReport(outcome.Report))
	return nil
}

func renderReport(r schema.BusinessAnalysisReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n| AI BUSINESS ANALYSIS REPORT |\n%s\n", heavyRule, heavyRule)

	sections := []struct {
		title string
		body  string
	}{
		{"1. PROFITABILITY ANALYSIS", r.ProfitabilityAnalysis},
		{"2. GROWTH & FUTURE PROJECTION", r.GrowthAndProjection},
		{"3. BUSINESS EFFICIENCY ANALYSIS", r.EfficiencyAnalysis},
		{"4. ESTIMATED BUSINESS VALUATION", r.EstimatedValuation},
		{"5. TAX COMPLIANCE OVERVIEW", r.TaxComplianceOverview},
		{"6. LOAN ELIGIBILITY ASSESSMENT", r.LoanEligibilityAssessment},
	}
	for _, s := range sections {
		fmt.Fprintf(&b, "\n--- %s ---\n%s\n", s.title, s.body)
	}

	b.WriteString("\n--- 7. ACTIONABLE ADVICE ---")
	for _, item := range r.ActionableAdvice {
		b.WriteString("\n  • " + item)
	}
	b.WriteString("\n" + heavyRule)
	return b.String()
}
