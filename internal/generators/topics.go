package generators

import (
	"regexp"

	"github.com/julianstephens/campusbuddy/internal/constants"
)

var (
	headingPattern      = regexp.MustCompile(`^#+\s`)
	headingPrefix       = regexp.MustCompile(`^#+\s*`)
	capitalisedTerm     = regexp.MustCompile(`^[A-Z][a-z]+:`)
	trailingColon       = regexp.MustCompile(`:$`)
	fallbackTopicsValue = []string{"Main Topic", "Subtopic 1", "Subtopic 2"}
)

// ExtractTopics picks topic-like lines out of notes: markdown headings,
// "Term:" lines and short lines. Heading markers and one trailing colon are
// removed; only results strictly between 3 and 50 characters are kept.
func ExtractTopics(notes string) []string {
	var topics []string
	for _, line := range lines(notes) {
		if !headingPattern.MatchString(line) && !capitalisedTerm.MatchString(line) && runeLen(line) >= constants.TopicMaxLength {
			continue
		}
		cleaned := headingPrefix.ReplaceAllString(line, "")
		cleaned = trailingColon.ReplaceAllString(cleaned, "")
		if n := runeLen(cleaned); n > constants.TopicMinLength && n < constants.TopicMaxLength {
			topics = append(topics, cleaned)
		}
	}

	if len(topics) == 0 {
		return append([]string(nil), fallbackTopicsValue...)
	}
	return topics
}
