// Package repl drives the interactive terminal sessions: an explicit state
// machine that gathers input, delegates to an advisory handler, renders the
// result and repeats until the user exits. One request is in flight at a
// time; the only cross-iteration state is the pending "next query" buffer.
package repl

import (
	"context"
	"fmt"
	"strings"
)

type loopState int

const (
	stateAwaitingInput loopState = iota
	stateComposing
	stateAwaitingCompletion
	stateRendering
	stateAwaitingContinuation
	stateDone
)

// Divider is the horizontal rule printed between interactions.
const Divider = "--------------------------------------------------"

// Handler turns one user query into rendered report text. Implementations
// must not write to the terminal themselves.
type Handler func(ctx context.Context, query string) (string, error)

// Session is a question-and-answer loop over a Prompter.
type Session struct {
	*Prompter

	Banner         string
	AskPrompt      string
	ContinuePrompt string
	GreetingReply  string
	Farewell       string
	Handle         Handler
}

// Run executes the session until the user exits. Greetings and empty input
// never reach the handler; handler panics are caught at this boundary and the
// loop resumes instead of crashing the process.
func (s *Session) Run(ctx context.Context) {
	if s.Banner != "" {
		s.Println(s.Banner)
	}

	st := stateAwaitingInput
	nextQuery := ""
	query := ""
	rendered := ""

	for st != stateDone {
		switch st {
		case stateAwaitingInput:
			if nextQuery != "" {
				query, nextQuery = nextQuery, ""
				s.Println(Divider)
				st = stateComposing
				continue
			}
			line, err := s.Ask(s.AskPrompt)
			if err != nil {
				st = stateDone
				continue
			}
			switch {
			case IsExit(line):
				st = stateDone
			case line == "":
				// no wasted remote call on empty input
			case IsGreeting(line):
				s.Println("")
				s.Println(s.GreetingReply)
				s.Println(Divider)
			default:
				query = line
				st = stateComposing
			}

		case stateComposing:
			st = stateAwaitingCompletion

		case stateAwaitingCompletion:
			out, err := s.handleSafely(ctx, query)
			if err != nil {
				s.Printf("\nAn unexpected runtime error occurred: %v. Restarting loop.\n", err)
				s.Println(Divider)
				st = stateAwaitingInput
				continue
			}
			rendered = out
			st = stateRendering

		case stateRendering:
			s.Println(rendered)
			st = stateAwaitingContinuation

		case stateAwaitingContinuation:
			line, err := s.Ask(s.ContinuePrompt)
			if err != nil || IsExit(line) {
				st = stateDone
				continue
			}
			if line != "" {
				nextQuery = line
			}
			st = stateAwaitingInput
		}
	}

	s.Println("")
	s.Println(s.Farewell)
}

// handleSafely converts handler panics into errors so a single bad request
// never terminates the session.
func (s *Session) handleSafely(ctx context.Context, query string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return s.Handle(ctx, query)
}

// BannerText builds the standard tool header.
func BannerText(title string, lines ...string) string {
	var b strings.Builder
	b.WriteString("\n--- " + title + " ---\n")
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
	b.WriteString("Type 'quit' or 'exit' at any prompt to end the session.")
	return b.String()
}
