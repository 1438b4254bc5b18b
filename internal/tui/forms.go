package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/utils"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

// NewSubjectForm creates the form for adding a CGPA subject
func NewSubjectForm(fm *SubjectFormModel) *huh.Form {
	options := make([]huh.Option[string], len(constants.Grades))
	for i, g := range constants.Grades {
		options[i] = huh.NewOption(g, g)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Value(&fm.Name).
				Validate(func(s string) error {
					return validation.Required("subject name", s)
				}),
			huh.NewInput().
				Title("Credits").
				Value(&fm.Credits).
				Validate(func(s string) error {
					c, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					return validation.Credits(c)
				}),
			huh.NewSelect[string]().
				Title("Grade").
				Options(options...).
				Value(&fm.Grade),
		),
	)
}

// NewAttendanceForm creates the form for adding an attendance record
func NewAttendanceForm(fm *AttendanceFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Value(&fm.Subject).
				Validate(func(s string) error {
					return validation.Required("subject", s)
				}),
			huh.NewInput().
				Title("Attendance %").
				Value(&fm.Attendance).
				Validate(func(s string) error {
					pct, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return err
					}
					return validation.Attendance(pct)
				}),
		),
	)
}

// NewPlanForm creates the form for generating a revision plan
func NewPlanForm(fm *PlanFormModel, now func() time.Time) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Exam date").
				Description("YYYY-MM-DD").
				Value(&fm.ExamDate).
				Validate(func(s string) error {
					exam, err := utils.ParseDate(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					return validation.ExamDate(exam, now())
				}),
			huh.NewText().
				Title("Topics").
				Description("One topic per line").
				Value(&fm.Topics).
				Validate(func(s string) error {
					if len(splitTopics(s)) == 0 {
						return validation.ErrNoTopics
					}
					return nil
				}),
		),
	)
}

func splitTopics(s string) []string {
	var topics []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}
