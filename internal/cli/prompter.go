package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Veraticus/axox-storefront/internal/advisor"
)

// ErrInputClosed is returned when input ends before a question is answered.
var ErrInputClosed = errors.New("input closed")

// Prompter asks clarifying questions on a line-oriented terminal.
type Prompter struct {
	writer io.Writer
	lines  chan lineResult
}

type lineResult struct {
	err  error
	line string
}

// NewPrompter creates a prompter reading from reader and writing to writer.
// Nil arguments default to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	p := &Prompter{
		writer: writer,
		lines:  make(chan lineResult),
	}
	go p.readLines(bufio.NewReader(reader))
	return p
}

// readLines feeds lines to the prompter so a canceled prompt never blocks on
// a pending read.
func (p *Prompter) readLines(r *bufio.Reader) {
	for {
		line, err := r.ReadString('\n')
		if line != "" || err == nil {
			p.lines <- lineResult{line: strings.TrimSpace(line)}
		}
		if err != nil {
			p.lines <- lineResult{err: err}
			close(p.lines)
			return
		}
	}
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok || errors.Is(res.err, io.EOF) {
			return "", ErrInputClosed
		}
		return res.line, res.err
	}
}

// AskClarifying asks every question in order and returns the answers keyed by
// question id.
func (p *Prompter) AskClarifying(ctx context.Context, questions []advisor.ClarifyingQuestion) (map[string]string, error) {
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		answer, err := p.Ask(ctx, q)
		if err != nil {
			return nil, err
		}
		answers[q.ID] = answer
	}
	return answers, nil
}

// Ask asks one question. With options the shopper may answer by number or by
// option text; without options any non-empty line is accepted.
func (p *Prompter) Ask(ctx context.Context, q advisor.ClarifyingQuestion) (string, error) {
	if _, err := fmt.Fprintln(p.writer, BoldStyle.Render(QuestionIcon+" "+q.Question)); err != nil {
		return "", fmt.Errorf("failed to write question: %w", err)
	}
	for i, opt := range q.Options {
		if _, err := fmt.Fprintf(p.writer, "  [%d] %s\n", i+1, opt); err != nil {
			return "", fmt.Errorf("failed to write option: %w", err)
		}
	}

	for {
		if _, err := fmt.Fprint(p.writer, FormatPrompt("Your answer")); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		input, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}

		if answer, ok := matchOption(input, q.Options); ok {
			return answer, nil
		}

		if _, err := fmt.Fprintln(p.writer, FormatError("Invalid choice. Please try again.")); err != nil {
			slog.Warn("Failed to write error message", "error", err)
		}
	}
}

func matchOption(input string, options []string) (string, bool) {
	if input == "" {
		return "", false
	}
	if len(options) == 0 {
		return input, true
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}

	for _, opt := range options {
		if strings.EqualFold(input, opt) {
			return opt, true
		}
	}
	return "", false
}
