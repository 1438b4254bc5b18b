package dashboard

import (
	"fmt"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/generators"
	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

// Notes turns free-text notes into a summary, key points or MCQs.
type Notes struct {
	history *History
}

func notesFilename(subject, tab string) string {
	if subject == "" {
		subject = "notes"
	}
	return fmt.Sprintf("%s-%s.txt", subject, tab)
}

// Summarize requires subject and notes and records the summary in history.
func (n *Notes) Summarize(subject, notes string) (Output[string], error) {
	if err := validation.Required("subject", subject); err != nil {
		return Output[string]{}, err
	}
	if err := validation.Required("notes", notes); err != nil {
		return Output[string]{}, err
	}

	summary := generators.Summary(notes, subject)
	out := Output[string]{
		Value:    summary,
		Text:     summary,
		Filename: notesFilename(subject, "summary"),
	}
	record(n.history, &out, constants.OutputSummary,
		subject+" Summary",
		generators.Preview(summary, constants.PreviewLength),
		summary)
	return out, nil
}

// KeyPoints requires notes. Key points are not recorded in history.
func (n *Notes) KeyPoints(subject, notes string) (Output[[]string], error) {
	if err := validation.Required("notes", notes); err != nil {
		return Output[[]string]{}, err
	}

	points := generators.KeyPoints(notes)
	return Output[[]string]{
		Value:    points,
		Text:     generators.FormatKeyPoints(points),
		Filename: notesFilename(subject, "keypoints"),
	}, nil
}

// MCQs requires subject and notes. MCQs are not recorded in history.
func (n *Notes) MCQs(subject, notes string) (Output[[]models.MCQ], error) {
	if err := validation.Required("subject", subject); err != nil {
		return Output[[]models.MCQ]{}, err
	}
	if err := validation.Required("notes", notes); err != nil {
		return Output[[]models.MCQ]{}, err
	}

	mcqs := generators.MCQs(notes, subject)
	return Output[[]models.MCQ]{
		Value:    mcqs,
		Text:     generators.FormatMCQs(mcqs),
		Filename: notesFilename(subject, "mcqs"),
	}, nil
}
