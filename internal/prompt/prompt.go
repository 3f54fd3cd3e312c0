// SPDX-License-Identifier: EPL-2.0

// Package prompt asks questions on a line-oriented terminal and validates
// the answers with an explicit retry budget.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter reads answers line by line from in and writes questions and
// complaints to out.
type Prompter struct {
	out      io.Writer
	attempts int

	in    *bufio.Scanner
	once  sync.Once
	lines chan string

	// done is closed once input has ended; err then holds the reason.
	done chan struct{}
	err  error
}

// New returns a Prompter that gives up after attempts invalid answers.
func New(in io.Reader, out io.Writer, attempts int) *Prompter {
	return &Prompter{
		out:      out,
		attempts: max(attempts, 1),
		in:       bufio.NewScanner(in),
		lines:    make(chan string),
		done:     make(chan struct{}),
	}
}

// read runs until the input ends so a pending line is never lost when a
// caller gives up on ctx.
func (p *Prompter) read() {
	for p.in.Scan() {
		p.lines <- p.in.Text()
	}

	p.err = p.in.Err()
	if p.err == nil {
		p.err = io.EOF
	}
	close(p.done)
}

// Line writes question and waits for one line of input. After the input
// has ended every call returns the same error, io.EOF for a clean end.
func (p *Prompter) Line(ctx context.Context, question string) (string, error) {
	p.once.Do(func() { go p.read() })

	fmt.Fprint(p.out, question)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case text := <-p.lines:
		return text, nil
	case <-p.done:
		return "", p.err
	}
}

// Ask repeats question until parse accepts the answer, printing each
// rejection. It fails with ErrTooManyAttempts once the budget is spent, or
// with the read error when input ends.
func Ask[T any](ctx context.Context, p *Prompter, question string, parse func(string) (T, error)) (T, error) {
	var zero T

	for range p.attempts {
		answer, err := p.Line(ctx, question)
		if err != nil {
			return zero, err
		}

		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "%v\n", err)
	}

	return zero, fmt.Errorf("after %d attempts: %w", p.attempts, ErrTooManyAttempts)
}

// Menu renders a numbered list under title and returns the 0-based pick.
func Menu(ctx context.Context, p *Prompter, title string, options []string) (int, error) {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n\n")
	for i, opt := range options {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, opt)
	}
	fmt.Fprintf(&sb, "\nSelect 1-%d: ", len(options))

	return Ask(ctx, p, sb.String(), func(s string) (int, error) {
		return Choice(s, options)
	})
}
