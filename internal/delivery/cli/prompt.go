package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Prompter reads operator input line by line, re-asking until the value is
// well formed. It never returns an invalid value to the menus. Once the
// input stream ends the retry loops stop asking and return zero values;
// callers detect that through Closed.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	err error
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Line asks for one free-text line and trims it. When the input stream is
// exhausted it returns "" and records the condition instead of asking again.
func (p *Prompter) Line(label string) string {
	if p.err != nil {
		return ""
	}
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		p.err = err
	}
	return strings.TrimSpace(line)
}

// Closed reports that the input stream has ended. No prompt can be answered
// anymore; the console should log out rather than re-ask.
func (p *Prompter) Closed() bool {
	return p.err != nil
}

// Optional asks for a line that may be left empty.
func (p *Prompter) Optional(label string) string {
	return p.Line(label + " (optional)")
}

// OptionalPtr returns nil when the operator leaves the field empty, for
// partial-update requests where empty means "keep the stored value".
func (p *Prompter) OptionalPtr(label string) *string {
	value := p.Line(label + " (leave empty to keep)")
	if value == "" {
		return nil
	}
	return &value
}

// Int64 asks until a positive integer is entered, or 0 once input ends.
func (p *Prompter) Int64(label string) int64 {
	for {
		value, err := strconv.ParseInt(p.Line(label), 10, 64)
		if err == nil && value >= 1 {
			return value
		}
		if p.Closed() {
			return 0
		}
		fmt.Fprintln(p.out, "Please enter a valid positive number")
	}
}

// Date asks until a YYYY-MM-DD value is entered, or "" once input ends.
func (p *Prompter) Date(label string) string {
	for {
		value := p.Line(label + " (YYYY-MM-DD)")
		if _, err := time.Parse("2006-01-02", value); err == nil {
			return value
		}
		if p.Closed() {
			return ""
		}
		fmt.Fprintln(p.out, "Invalid date format, use YYYY-MM-DD (e.g. 2025-12-25)")
	}
}

// ClockTime asks until an HH:MM value is entered, or "" once input ends.
func (p *Prompter) ClockTime(label string) string {
	for {
		value := p.Line(label + " (HH:MM)")
		if _, err := time.Parse("15:04", value); err == nil {
			return value
		}
		if p.Closed() {
			return ""
		}
		fmt.Fprintln(p.out, "Invalid time format, use HH:MM (e.g. 14:30)")
	}
}

// Choice asks until one of the options is entered, or "" once input ends.
// Matching is case-insensitive; the canonical option value is returned.
func (p *Prompter) Choice(label string, options []string) string {
	for {
		value := p.Line(label + " (" + strings.Join(options, "/") + ")")
		for _, option := range options {
			if strings.EqualFold(value, option) {
				return option
			}
		}
		if p.Closed() {
			return ""
		}
		fmt.Fprintf(p.out, "Invalid choice. Options: %s\n", strings.Join(options, ", "))
	}
}

// Confirm asks a yes/no question; "y" and "yes" confirm.
func (p *Prompter) Confirm(label string) bool {
	value := strings.ToLower(p.Line(label + " (y/n)"))
	return value == "y" || value == "yes"
}
