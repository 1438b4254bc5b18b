package generators

import (
	"fmt"
	"strings"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/models"
)

// MCQs builds one multiple-choice question for each of the first five topics
// in notes. Fewer than three questions are replaced by a generic set about
// subject.
func MCQs(notes, subject string) []models.MCQ {
	topics := ExtractTopics(notes)
	if len(topics) > constants.MCQMaxTopics {
		topics = topics[:constants.MCQMaxTopics]
	}

	mcqs := make([]models.MCQ, 0, len(topics))
	for _, topic := range topics {
		answer := "A fundamental concept in " + subject
		mcqs = append(mcqs, models.MCQ{
			Question: fmt.Sprintf("Which of the following best describes %s?", topic),
			Options: []string{
				answer,
				"A derived principle from " + topic,
				fmt.Sprintf("An application of %s theory", topic),
				"None of the above",
			},
			Answer: answer,
		})
	}

	if len(mcqs) < constants.MCQMinCount {
		return fallbackMCQs(subject)
	}
	return mcqs
}

func fallbackMCQs(subject string) []models.MCQ {
	return []models.MCQ{
		{
			Question: fmt.Sprintf("What is the primary focus of %s?", subject),
			Options:  []string{"Theoretical concepts", "Practical applications", "Both A and B", "Neither"},
			Answer:   "Both A and B",
		},
		{
			Question: fmt.Sprintf("Which approach is most effective for studying %s?", subject),
			Options:  []string{"Memorization only", "Understanding concepts", "Practice problems", "All of the above"},
			Answer:   "All of the above",
		},
		{
			Question: fmt.Sprintf("%s is commonly applied in which field?", subject),
			Options:  []string{"Engineering", "Research", "Industry", "All domains"},
			Answer:   "All domains",
		},
	}
}

// FormatMCQs renders questions with lettered options and the answer line.
func FormatMCQs(mcqs []models.MCQ) string {
	items := make([]string, len(mcqs))
	for i, q := range mcqs {
		var b strings.Builder
		fmt.Fprintf(&b, "Q%d. %s", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "\n   %c) %s", 'A'+j, opt)
		}
		fmt.Fprintf(&b, "\n   Answer: %s", q.Answer)
		items[i] = b.String()
	}
	return strings.Join(items, "\n\n")
}
