// SPDX-License-Identifier: EPL-2.0

package prompt

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ik5/sonipix/signal"
)

// Choice resolves input against a 1-based menu. Either the number or the
// option text (case-insensitive) is accepted. The 0-based index is returned.
func Choice(input string, options []string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrEmptyInput
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(options) {
			return 0, fmt.Errorf("enter a number between 1 and %d: %w", len(options), ErrInvalidChoice)
		}
		return n - 1, nil
	}

	for i, opt := range options {
		if strings.EqualFold(s, opt) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrInvalidChoice)
}

// Frequency parses an oscillator frequency in Hz. A trailing "Hz" and
// thousands separators are tolerated ("22,000 Hz").
func Frequency(input string) (float64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrEmptyInput
	}

	s = strings.TrimSpace(strings.TrimSuffix(strings.ToLower(s), "hz"))
	s = strings.ReplaceAll(s, ",", "")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", input, ErrNotANumber)
	}

	spec := signal.OscillatorSpec{Frequency: f, Samples: 1, SampleRate: 1}
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	return f, nil
}

// FileName accepts a bare file name (no directories) and returns it
// trimmed. Names that would escape the target directory are rejected.
func FileName(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrEmptyInput
	}

	if s == "." || s == ".." || strings.ContainsAny(s, `/\`) || filepath.Base(s) != s {
		return "", fmt.Errorf("%q: %w", s, ErrBadFileName)
	}

	return s, nil
}
