package generators

import (
	"fmt"
	"strings"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/models"
)

const importantMarker = " [IMPORTANT]"

// questionTemplates are formatted with (topic, subject); templates that only
// reference the topic use an explicit index.
var questionTemplates = []string{
	"What are the key principles of %[1]s?",
	"Describe the applications of %[1]s in real-world scenarios.",
	"Compare and contrast %[1]s with related concepts.",
	"What are the advantages and disadvantages of %[1]s?",
	"Explain the mathematical formulation of %[1]s if applicable.",
	"Discuss the historical development of %[1]s.",
	"What are the common misconceptions about %[1]s?",
	"How does %[1]s relate to other topics in %[2]s?",
	"Explain the significance of %[1]s in modern applications.",
	"What are the numerical problems related to %[1]s?",
	"Describe the experimental setup for %[1]s if applicable.",
	"What are the recent advancements in %[1]s?",
	"Explain the theoretical background of %[1]s.",
	"What are the challenges in implementing %[1]s?",
}

// DifficultyVerb maps a difficulty to the verb that opens the first question.
// Anything other than Easy or Medium is treated as Hard.
func DifficultyVerb(difficulty string) string {
	switch constants.Difficulty(difficulty) {
	case constants.DifficultyEasy:
		return "Define"
	case constants.DifficultyMedium:
		return "Explain"
	default:
		return "Analyze"
	}
}

// Questions expands the fixed question bank for topic. It always returns 15
// questions; the first five are marked important.
func Questions(subject, topic, difficulty string) []models.Question {
	out := make([]models.Question, 0, constants.QuestionCount)
	out = append(out, models.Question{
		Question:  fmt.Sprintf("%s the concept of %s in %s.", DifficultyVerb(difficulty), topic, subject),
		Important: true,
	})
	for _, tmpl := range questionTemplates {
		out = append(out, models.Question{
			Question:  fmt.Sprintf(tmpl, topic, subject),
			Important: len(out) < constants.ImportantQuestions,
		})
	}
	return out
}

// FormatQuestionList renders questions as a numbered list, marking important
// ones, with items separated by sep.
func FormatQuestionList(questions []models.Question, sep string) string {
	items := make([]string, len(questions))
	for i, q := range questions {
		items[i] = fmt.Sprintf("%d. %s", i+1, q.Question)
		if q.Important {
			items[i] += importantMarker
		}
	}
	return strings.Join(items, sep)
}

// FormatQuestions renders the downloadable question-bank document.
func FormatQuestions(subject, topic, difficulty string, questions []models.Question) string {
	return fmt.Sprintf("Important Questions: %s - %s\nDifficulty: %s\n%s\n\n", subject, topic, difficulty, rule()) +
		FormatQuestionList(questions, "\n\n")
}
