package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrUserAbort is returned when the user types an exit keyword or closes
// stdin. It is a clean termination, not a failure.
var ErrUserAbort = errors.New("session ended by user")

var exitKeywords = map[string]struct{}{
	"quit": {}, "exit": {}, "q": {}, "no": {}, "n": {},
}

var greetings = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {},
	"good morning": {}, "good afternoon": {}, "good evening": {},
}

// IsExit reports whether input is one of the recognized exit keywords.
func IsExit(input string) bool {
	_, ok := exitKeywords[strings.ToLower(strings.TrimSpace(input))]
	return ok
}

// IsGreeting reports whether input exactly matches a recognized greeting,
// case-insensitively. Greetings short-circuit the loop so no remote call is
// spent on small talk.
func IsGreeting(input string) bool {
	_, ok := greetings[strings.ToLower(strings.TrimSpace(input))]
	return ok
}

// Prompter wraps the terminal streams for sequential stdin prompting.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter builds a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Println writes a line to the output stream.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Printf writes formatted text to the output stream.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Ask prints a prompt and reads one trimmed line. EOF on stdin becomes
// ErrUserAbort so every tool exits cleanly on Ctrl-D.
func (p *Prompter) Ask(promptText string) (string, error) {
	fmt.Fprint(p.out, promptText)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrUserAbort
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// AskNumber prompts until it reads a non-negative numeric value. Commas are
// tolerated (e.g. 1,000,000). Exit keywords abort the session.
func (p *Prompter) AskNumber(promptText string) (float64, error) {
	for {
		line, err := p.Ask(promptText)
		if err != nil {
			return 0, err
		}
		if IsExit(line) {
			return 0, ErrUserAbort
		}

		value, err := strconv.ParseFloat(strings.ReplaceAll(line, ",", ""), 64)
		if err != nil {
			p.Println("Invalid input. Please enter a numeric value (e.g. 500000).")
			continue
		}
		if value < 0 {
			p.Println("Value cannot be negative. Please try again.")
			continue
		}
		return value, nil
	}
}
