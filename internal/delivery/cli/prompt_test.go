package cli

import (
	"bytes"
	"strings"
	"testing"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestLine(t *testing.T) {
	p, _ := newTestPrompter("  Diop  \n")
	if got := p.Line("Last name"); got != "Diop" {
		t.Errorf("Line() = %q, want %q", got, "Diop")
	}
}

func TestLineEOF(t *testing.T) {
	p, _ := newTestPrompter("")
	if got := p.Line("Anything"); got != "" {
		t.Errorf("Line() at EOF = %q, want empty", got)
	}
}

func TestOptionalPtr(t *testing.T) {
	p, _ := newTestPrompter("\n771234567\n")

	if got := p.OptionalPtr("Phone"); got != nil {
		t.Errorf("OptionalPtr() on empty input = %q, want nil", *got)
	}
	got := p.OptionalPtr("Phone")
	if got == nil || *got != "771234567" {
		t.Errorf("OptionalPtr() = %v, want 771234567", got)
	}
}

func TestInt64RetriesUntilValid(t *testing.T) {
	p, out := newTestPrompter("abc\n-3\n0\n7\n")

	if got := p.Int64("Patient ID"); got != 7 {
		t.Errorf("Int64() = %d, want 7", got)
	}
	if n := strings.Count(out.String(), "valid positive number"); n != 3 {
		t.Errorf("expected 3 retry messages, got %d", n)
	}
}

func TestDateRetriesUntilValid(t *testing.T) {
	p, out := newTestPrompter("25/12/2025\n2025-13-01\n2025-12-25\n")

	if got := p.Date("Date"); got != "2025-12-25" {
		t.Errorf("Date() = %q, want 2025-12-25", got)
	}
	if !strings.Contains(out.String(), "Invalid date format") {
		t.Error("expected a retry message for the malformed dates")
	}
}

func TestClockTimeRetriesUntilValid(t *testing.T) {
	p, _ := newTestPrompter("2pm\n25:00\n14:30\n")

	if got := p.ClockTime("Time"); got != "14:30" {
		t.Errorf("ClockTime() = %q, want 14:30", got)
	}
}

func TestChoiceIsCaseInsensitive(t *testing.T) {
	p, out := newTestPrompter("doctor\nPRACTITIONER\n")

	got := p.Choice("Role", []string{"practitioner", "secretary"})
	if got != "practitioner" {
		t.Errorf("Choice() = %q, want the canonical practitioner", got)
	}
	if !strings.Contains(out.String(), "Invalid choice") {
		t.Error("expected a retry message for the unknown option")
	}
}

// Exhausted input must stop the retry loops, not spin them; the operator may
// have piped input in or closed the terminal.
func TestInt64StopsWhenInputEnds(t *testing.T) {
	p, out := newTestPrompter("abc\n")

	if got := p.Int64("Patient ID"); got != 0 {
		t.Errorf("Int64() at end of input = %d, want 0", got)
	}
	if !p.Closed() {
		t.Error("Closed() should report the exhausted input")
	}
	if n := strings.Count(out.String(), "valid positive number"); n != 1 {
		t.Errorf("expected exactly 1 retry message before giving up, got %d", n)
	}
}

func TestDateStopsWhenInputEnds(t *testing.T) {
	p, _ := newTestPrompter("")
	if got := p.Date("Date"); got != "" {
		t.Errorf("Date() at end of input = %q, want empty", got)
	}
}

func TestClockTimeStopsWhenInputEnds(t *testing.T) {
	p, _ := newTestPrompter("2pm\n")
	if got := p.ClockTime("Time"); got != "" {
		t.Errorf("ClockTime() at end of input = %q, want empty", got)
	}
}

func TestChoiceStopsWhenInputEnds(t *testing.T) {
	p, _ := newTestPrompter("")
	if got := p.Choice("Role", []string{"practitioner", "secretary"}); got != "" {
		t.Errorf("Choice() at end of input = %q, want empty", got)
	}
}

func TestLineWithoutTrailingNewline(t *testing.T) {
	p, _ := newTestPrompter("7")
	if got := p.Int64("Patient ID"); got != 7 {
		t.Errorf("Int64() on a final unterminated line = %d, want 7", got)
	}
	if !p.Closed() {
		t.Error("Closed() should report the exhausted input after the last line")
	}
}

func TestConfirm(t *testing.T) {
	cases := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"\n":    false,
		"ok\n":  false,
	}
	for input, want := range cases {
		p, _ := newTestPrompter(input)
		if got := p.Confirm("Delete this patient?"); got != want {
			t.Errorf("Confirm(%q) = %v, want %v", strings.TrimSpace(input), got, want)
		}
	}
}
