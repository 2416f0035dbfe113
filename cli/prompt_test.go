package main

import (
	"bytes"
	"strings"
	"testing"
)

func runPrompter(input string) (*prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return newPrompter(strings.NewReader(input), &out), &out
}

// TestShowMetadataWeeklyTV tests the menu-driven flow for a known promotion.
func TestShowMetadataWeeklyTV(t *testing.T) {
	p, _ := runPrompter("2026-08-25\nWWE\nn\n1\n")

	meta, err := p.showMetadata()
	if err != nil {
		t.Fatalf("showMetadata() error = %v", err)
	}
	if meta.EventDate != "2026-08-25" {
		t.Errorf("EventDate = %q", meta.EventDate)
	}
	if meta.Promotion != "WWE" {
		t.Errorf("Promotion = %q", meta.Promotion)
	}
	if meta.ShowName != "RAW" {
		t.Errorf("ShowName = %q, want RAW", meta.ShowName)
	}
	if meta.ShowType != "TV" {
		t.Errorf("ShowType = %q, want TV", meta.ShowType)
	}
}

// TestShowMetadataPPV tests that a PPV answer switches to free-form show
// name entry.
func TestShowMetadataPPV(t *testing.T) {
	p, _ := runPrompter("2026-01-31\nWWE\ny\nRoyal Rumble\n")

	meta, err := p.showMetadata()
	if err != nil {
		t.Fatalf("showMetadata() error = %v", err)
	}
	if meta.ShowType != "PPV" {
		t.Errorf("ShowType = %q, want PPV", meta.ShowType)
	}
	if meta.ShowName != "Royal Rumble" {
		t.Errorf("ShowName = %q", meta.ShowName)
	}
}

// TestShowMetadataUnknownPromotion tests free-form show entry for a
// promotion without a known lineup.
func TestShowMetadataUnknownPromotion(t *testing.T) {
	p, _ := runPrompter("2026-08-25\nNJPW\nn\nStrong\n")

	meta, err := p.showMetadata()
	if err != nil {
		t.Fatalf("showMetadata() error = %v", err)
	}
	if meta.ShowName != "Strong" {
		t.Errorf("ShowName = %q", meta.ShowName)
	}
}

// TestDateReprompts tests that invalid dates are rejected until a valid
// one arrives.
func TestDateReprompts(t *testing.T) {
	p, out := runPrompter("08/25/2026\n2026-13-40\n2026-08-25\n")

	got, err := p.date("date: ")
	if err != nil {
		t.Fatalf("date() error = %v", err)
	}
	if got != "2026-08-25" {
		t.Errorf("date() = %q", got)
	}
	if !strings.Contains(out.String(), "Invalid date format") {
		t.Error("missing re-prompt message")
	}
}

// TestRequiredReprompts tests that blank answers are rejected.
func TestRequiredReprompts(t *testing.T) {
	p, out := runPrompter("\n   \nWWE\n")

	got, err := p.required("promotion: ")
	if err != nil {
		t.Fatalf("required() error = %v", err)
	}
	if got != "WWE" {
		t.Errorf("required() = %q", got)
	}
	if !strings.Contains(out.String(), "This field is required.") {
		t.Error("missing re-prompt message")
	}
}

// TestYesNo tests answer parsing and the blank default.
func TestYesNo(t *testing.T) {
	cases := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"no\n", true, false},
		{"\n", false, false},
		{"\n", true, true},
		{"maybe\ny\n", false, true},
	}
	for _, tc := range cases {
		p, _ := runPrompter(tc.input)
		got, err := p.yesNo("? ", tc.def)
		if err != nil {
			t.Fatalf("yesNo(%q) error = %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("yesNo(%q, def=%v) = %v, want %v", tc.input, tc.def, got, tc.want)
		}
	}
}

// TestSelectFromReprompts tests menu selection with invalid attempts first.
func TestSelectFromReprompts(t *testing.T) {
	p, out := runPrompter("0\nabc\n5\n2\n")

	got, err := p.selectFrom("pick:", []string{"RAW", "SMACKDOWN"})
	if err != nil {
		t.Fatalf("selectFrom() error = %v", err)
	}
	if got != "SMACKDOWN" {
		t.Errorf("selectFrom() = %q", got)
	}
	if !strings.Contains(out.String(), "Invalid selection") {
		t.Error("missing re-prompt message")
	}
}

// TestMultilineTerminator tests that input stops at the terminator line and
// surrounding blank lines are trimmed.
func TestMultilineTerminator(t *testing.T) {
	p, _ := runPrompter("\nfirst line\nsecond line\n\n::end::\nleftover\n")

	got, err := p.multiline("paste: ")
	if err != nil {
		t.Fatalf("multiline() error = %v", err)
	}
	if got != "first line\nsecond line" {
		t.Errorf("multiline() = %q", got)
	}
}

// TestMultilineEmptyInput tests that an immediate terminator is an error.
func TestMultilineEmptyInput(t *testing.T) {
	p, _ := runPrompter("::end::\n")

	if _, err := p.multiline("paste: "); err == nil {
		t.Error("multiline() error = nil, want error")
	}
}

// TestVideoIDsSplitsAndTrims tests comma splitting with stray whitespace
// and empty entries.
func TestVideoIDsSplitsAndTrims(t *testing.T) {
	p, _ := runPrompter("abc123, def456 ,,ghi789\n")

	ids, err := p.videoIDs()
	if err != nil {
		t.Fatalf("videoIDs() error = %v", err)
	}
	want := []string{"abc123", "def456", "ghi789"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v, want %v", ids, want)
			break
		}
	}
}

// TestVideoIDsAllBlank tests that a separator-only answer is rejected.
func TestVideoIDsAllBlank(t *testing.T) {
	p, _ := runPrompter(" , , \n")

	if _, err := p.videoIDs(); err == nil {
		t.Error("videoIDs() error = nil, want error")
	}
}
