// Package cli is the interactive text front end for the chat controller.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"coffee-assistant/internal/chat"
)

const (
	exitCommand = "exit"
	banner      = "Chatbot is ready! Type 'exit' to end the conversation."
	rule        = "--------------------------------------------------"
	goodbye     = "Conversation ended."

	maxLineBytes = 1 << 20
)

// REPL reads one message per line and prints the reply. Every line of one
// REPL shares a session.
type REPL struct {
	uc        chat.UseCase
	in        io.Reader
	out       io.Writer
	sessionID string
}

func New(uc chat.UseCase, in io.Reader, out io.Writer, sessionID string) *REPL {
	return &REPL{uc: uc, in: in, out: out, sessionID: sessionID}
}

// Run loops until the input ends, the user types exit or ctx is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, banner)
	fmt.Fprintln(r.out, rule)

	scanner := bufio.NewScanner(r.in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	for {
		fmt.Fprint(r.out, "You: ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, exitCommand) {
			break
		}
		if line == "" {
			continue
		}

		out := r.uc.Turn(ctx, chat.TurnInput{Message: line, SessionID: r.sessionID})
		// Keep the minted id so the next line continues the same session.
		r.sessionID = out.SessionID

		fmt.Fprintf(r.out, "Bot: %s\n", out.Reply)
		fmt.Fprintln(r.out, rule[:30])
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, goodbye)
	return scanner.Err()
}
