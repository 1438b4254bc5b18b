package generators

import (
	"fmt"
	"strings"

	"github.com/julianstephens/campusbuddy/internal/constants"
)

var keyTakeaways = []string{
	"Focus on understanding core concepts",
	"Practice numerical problems if applicable",
	"Review diagrams and flowcharts",
}

// Summary renders a markdown summary of notes under a heading for subject.
// Lines of more than 10 characters are kept, each capped at 100 characters,
// and at most the first 8 of them are enumerated.
func Summary(notes, subject string) string {
	var points []string
	for _, line := range lines(notes) {
		if runeLen(line) <= constants.SummaryMinLineLength {
			continue
		}
		points = append(points, Truncate(line, constants.SummaryMaxLineLength))
	}
	if len(points) > constants.SummaryMaxLines {
		points = points[:constants.SummaryMaxLines]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s - Summary\n\n", subject)
	b.WriteString("This summary covers the key concepts from your notes:\n\n")
	for i, point := range points {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, point)
	}
	b.WriteString("\n\n**Key Takeaways:**\n")
	for i, takeaway := range keyTakeaways {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + takeaway)
	}
	return b.String()
}
