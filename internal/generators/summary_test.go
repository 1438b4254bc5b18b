package generators

import (
	"strings"
	"testing"
)

func TestSummary_Template(t *testing.T) {
	notes := "Arrays are contiguous memory locations\nshort\n\n   Linked lists store nodes with pointers   "
	got := Summary(notes, "Data Structures")

	want := "## Data Structures - Summary\n\n" +
		"This summary covers the key concepts from your notes:\n\n" +
		"1. Arrays are contiguous memory locations\n" +
		"2. Linked lists store nodes with pointers\n\n" +
		"**Key Takeaways:**\n" +
		"- Focus on understanding core concepts\n" +
		"- Practice numerical problems if applicable\n" +
		"- Review diagrams and flowcharts"

	if got != want {
		t.Errorf("Summary() =\n%s\nwant\n%s", got, want)
	}
}

func TestSummary_EmptyNotes(t *testing.T) {
	got := Summary("", "Physics")
	if !strings.HasPrefix(got, "## Physics - Summary\n\n") {
		t.Errorf("expected heading, got %q", got)
	}
	if strings.Contains(got, "1. ") {
		t.Errorf("expected empty enumeration, got %q", got)
	}
	if !strings.HasSuffix(got, "- Review diagrams and flowcharts") {
		t.Errorf("expected fixed takeaways, got %q", got)
	}
}

func TestSummary_TruncatesLongLines(t *testing.T) {
	long := strings.Repeat("x", 150)
	got := Summary(long, "S")

	want := "1. " + strings.Repeat("x", 100) + "..."
	if !strings.Contains(got, want) {
		t.Errorf("expected truncated line %q in summary:\n%s", want, got)
	}
}

func TestSummary_KeepsAtMostEightLines(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("this line is long enough\n")
	}
	got := Summary(b.String(), "S")

	if !strings.Contains(got, "8. this line") {
		t.Errorf("expected eighth line in summary:\n%s", got)
	}
	if strings.Contains(got, "9. this line") {
		t.Errorf("expected no ninth line in summary:\n%s", got)
	}
}

func TestSummary_Deterministic(t *testing.T) {
	notes := "First line of the notes here\nSecond line of the notes here"
	if Summary(notes, "S") != Summary(notes, "S") {
		t.Error("Summary() is not deterministic")
	}
}

func TestTruncate_CountsCharacters(t *testing.T) {
	s := strings.Repeat("é", 5)
	if got := Truncate(s, 5); got != s {
		t.Errorf("Truncate() = %q, want unchanged", got)
	}
	if got := Truncate(s, 3); got != "ééé..." {
		t.Errorf("Truncate() = %q, want %q", got, "ééé...")
	}
}
