package dashboard

import (
	"fmt"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/generators"
	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

// Questions builds a question bank for a subject and topic.
type Questions struct {
	history *History
}

// Generate requires subject and topic; a blank difficulty means Medium.
func (q *Questions) Generate(subject, topic, difficulty string) (Output[[]models.Question], error) {
	if err := validation.Required("subject", subject); err != nil {
		return Output[[]models.Question]{}, err
	}
	if err := validation.Required("topic", topic); err != nil {
		return Output[[]models.Question]{}, err
	}
	if difficulty == "" {
		difficulty = string(constants.DifficultyMedium)
	}

	qs := generators.Questions(subject, topic, difficulty)
	out := Output[[]models.Question]{
		Value:    qs,
		Text:     generators.FormatQuestions(subject, topic, difficulty, qs),
		Filename: fmt.Sprintf("%s-%s-questions.txt", subject, topic),
	}
	record(q.history, &out, constants.OutputQuestions,
		fmt.Sprintf("%s - %s Questions", subject, topic),
		qs[0].Question,
		generators.FormatQuestionList(qs, "\n"))
	return out, nil
}
