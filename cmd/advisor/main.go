// Command advisor is the interactive Nigerian business and tax advisor. It
// reads free-text questions from stdin, submits them to the completion
// service constrained to the advice schema, and renders the structured reply.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Uchejoann1/Ledgerwiseai/pkg/core/advisory"
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

	p := repl.NewPrompter(os.Stdin, os.Stdout)
	detailed := askDepth(p)

	var handle repl.Handler
	if detailed {
		ex := &advisory.Exchange[schema.DetailedBusinessAdvice]{
			Name:           "advisor-detailed",
			PromptID:       prompt.IDs.AdvisorDetailed,
			ResponseSchema: schema.DetailedBusinessAdviceSchema(),
			Fallback:       schema.FallbackDetailedBusinessAdvice,
			Client:         client,
			Log:            log,
		}
		handle = func(ctx context.Context, query string) (string, error) {
			outcome := ex.Run(ctx, prompt.AdvisorVars{Query: query})
			return renderDetailed(outcome.Report), nil
		}
	} else {
		ex := &advisory.Exchange[schema.BusinessAdvice]{
			Name:           "advisor",
			PromptID:       prompt.IDs.AdvisorShort,
			ResponseSchema: schema.BusinessAdviceSchema(),
			Fallback:       schema.FallbackBusinessAdvice,
			Client:         client,
			Log:            log,
		}
		handle = func(ctx context.Context, query string) (string, error) {
			outcome := ex.Run(ctx, prompt.AdvisorVars{Query: query})
			return renderShort(outcome.Report), nil
		}
	}

	session := &repl.Session{
		Prompter:       p,
		AskPrompt:      "Ask a business or tax question (specific to Nigeria):\n> ",
		ContinuePrompt: "\nDo you have any other questions about Nigerian business or tax? (Type 'no' to exit, or enter your next question):\n> ",
		GreetingReply:  "Hello! I am your Nigerian Business and Tax Advisor. How can I assist you with your business strategy or tax compliance questions today?",
		Farewell:       "Thank you for using the Nigerian Business Advisor. Goodbye!",
		Handle:         handle,
	}
	session.Run(context.Background())
}

// askDepth chooses the report variant at session start. Exit keywords and EOF
// fall through to the short variant; the session loop handles the actual
// goodbye on the next prompt.
func askDepth(p *repl.Prompter) bool {
	p.Println(repl.BannerText("Nigerian Business and Tax Advisor (Interactive)"))
	answer, err := p.Ask("Would you like detailed reports? (y/n):\n> ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func renderShort(a schema.BusinessAdvice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", heavyRule)
	fmt.Fprintf(&b, "TITLE: %s\n", strings.ToUpper(a.AdviceTitle))
	fmt.Fprintf(&b, "TYPE: %s\n", a.AdviceType)
	fmt.Fprintf(&b, "%s\n", heavyRule)
	b.WriteString(a.Advice)
	return b.String()
}

func renderDetailed(a schema.DetailedBusinessAdvice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", heavyRule)
	fmt.Fprintf(&b, "TITLE: %s\n", strings.ToUpper(a.AdviceTitle))
	fmt.Fprintf(&b, "TYPE: %s\n", a.AdviceType)
	fmt.Fprintf(&b, "%s\n", heavyRule)

	if a.RelevanceScore <= 0.5 {
		// rejection or fallback: only the summary is meaningful
		b.WriteString(a.KeyPointsSummary)
		return b.String()
	}

	b.WriteString("\n--- KEY SUMMARY ---\n")
	b.WriteString(a.KeyPointsSummary)
	b.WriteString("\n\n--- DETAILED EXPLANATION ---\n")
	b.WriteString(a.DetailedExplanation)
	if len(a.ActionableSteps) > 0 {
		b.WriteString("\n\n--- ACTIONABLE NEXT STEPS ---")
		for _, step := range a.ActionableSteps {
			b.WriteString("\n  • " + step)
		}
	}
	b.WriteString("\n\n--- KEY CONSIDERATIONS ---\n")
	b.WriteString(a.PotentialRisks)
	return b.String()
}
