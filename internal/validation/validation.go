package validation

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/grades"
	"github.com/julianstephens/campusbuddy/internal/models"
)

var (
	ErrRequired          = errors.New("required field is empty")
	ErrInvalidCredits    = errors.New("credits must be greater than zero")
	ErrInvalidGrade      = errors.New("unknown grade")
	ErrInvalidAttendance = errors.New("attendance must be between 0 and 100")
	ErrExamDateNotFuture = errors.New("exam date must be in the future")
	ErrNoTopics          = errors.New("add at least one topic")
	ErrDuplicateTopic    = errors.New("topic already added")
)

// Required fails with ErrRequired when value is blank.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrRequired, field)
	}
	return nil
}

// Credits checks that a subject carries a positive number of credits.
func Credits(credits int) error {
	if credits <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCredits, credits)
	}
	return nil
}

func Grade(grade string) error {
	if !grades.IsValid(grade) {
		return fmt.Errorf("%w %q (expected one of %s)", ErrInvalidGrade, grade, strings.Join(constants.Grades, ", "))
	}
	return nil
}

// Attendance checks that a percentage lies in [0, 100].
func Attendance(pct float64) error {
	if math.IsNaN(pct) || pct < constants.MinAttendance || pct > constants.MaxAttendance {
		return fmt.Errorf("%w: got %g", ErrInvalidAttendance, pct)
	}
	return nil
}

// CGPASubject validates a subject before it is stored.
func CGPASubject(name string, credits int, grade string) error {
	if err := Required("subject name", name); err != nil {
		return err
	}
	if err := Credits(credits); err != nil {
		return err
	}
	return Grade(grade)
}

// AttendanceSubject validates an attendance entry before it is stored.
func AttendanceSubject(subject string, pct float64) error {
	if err := Required("subject", subject); err != nil {
		return err
	}
	return Attendance(pct)
}

// ExamDate rejects exam dates that are not after now.
func ExamDate(exam, now time.Time) error {
	if !exam.After(now) {
		return fmt.Errorf("%w: %s", ErrExamDateNotFuture, exam.Format(constants.DateFormat))
	}
	return nil
}

// Topic checks that topic is non-blank and not already present in topics.
func Topic(topics []string, topic string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return fmt.Errorf("%w: topic", ErrRequired)
	}
	if slices.Contains(topics, topic) {
		return fmt.Errorf("%w: %s", ErrDuplicateTopic, topic)
	}
	return nil
}

// RevisionInput validates everything needed to generate a revision plan.
func RevisionInput(exam, now time.Time, topics []string) error {
	if err := ExamDate(exam, now); err != nil {
		return err
	}
	if len(topics) == 0 {
		return ErrNoTopics
	}
	return nil
}

// ConflictType represents the type of problem found in stored data
type ConflictType string

const (
	ConflictInvalidCredits     ConflictType = "invalid_credits"
	ConflictUnknownGrade       ConflictType = "unknown_grade"
	ConflictInvalidAttendance  ConflictType = "invalid_attendance"
	ConflictInvalidDate        ConflictType = "invalid_date"
	ConflictDatesNotIncreasing ConflictType = "dates_not_increasing"
	ConflictHistoryOverflow    ConflictType = "history_overflow"
	ConflictMissingID          ConflictType = "missing_id"
)

// Conflict represents one problem detected in stored data
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // names or dates involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

func (vr *ValidationResult) add(t ConflictType, items []string, format string, args ...any) {
	vr.Conflicts = append(vr.Conflicts, Conflict{
		Type:        t,
		Description: fmt.Sprintf(format, args...),
		Items:       items,
	})
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateCGPA checks stored CGPA subjects.
func (v *Validator) ValidateCGPA(subjects []models.CGPASubject) ValidationResult {
	var result ValidationResult
	for _, s := range subjects {
		if s.ID == "" {
			result.add(ConflictMissingID, []string{s.Name}, "CGPA subject %q has no id", s.Name)
		}
		if s.Credits <= 0 {
			result.add(ConflictInvalidCredits, []string{s.Name}, "CGPA subject %q has %d credits", s.Name, s.Credits)
		}
		if !grades.IsValid(s.Grade) {
			result.add(ConflictUnknownGrade, []string{s.Name}, "CGPA subject %q has unknown grade %q", s.Name, s.Grade)
		}
	}
	return result
}

// ValidateAttendance checks stored attendance entries.
func (v *Validator) ValidateAttendance(subjects []models.AttendanceSubject) ValidationResult {
	var result ValidationResult
	for _, s := range subjects {
		if s.ID == "" {
			result.add(ConflictMissingID, []string{s.Subject}, "attendance entry %q has no id", s.Subject)
		}
		if Attendance(s.Attendance) != nil {
			result.add(ConflictInvalidAttendance, []string{s.Subject}, "attendance for %q is %g%%", s.Subject, s.Attendance)
		}
	}
	return result
}

// ValidatePlan checks that plan dates parse and strictly increase.
func (v *Validator) ValidatePlan(plan []models.PlanDay) ValidationResult {
	var result ValidationResult
	var prev time.Time
	for i, day := range plan {
		d, err := time.Parse(constants.DateFormat, day.Date)
		if err != nil {
			result.add(ConflictInvalidDate, []string{day.Date}, "plan day %d has invalid date %q", i+1, day.Date)
			continue
		}
		if i > 0 && !prev.IsZero() && !d.After(prev) {
			result.add(ConflictDatesNotIncreasing, []string{prev.Format(constants.DateFormat), day.Date},
				"plan day %d (%s) does not follow %s", i+1, day.Date, prev.Format(constants.DateFormat))
		}
		prev = d
	}
	return result
}

// ValidateHistory checks the recent-outputs cap.
func (v *Validator) ValidateHistory(outputs []models.RecentOutput) ValidationResult {
	var result ValidationResult
	if len(outputs) > constants.MaxRecentOutputs {
		result.add(ConflictHistoryOverflow, nil, "history holds %d entries (max %d)", len(outputs), constants.MaxRecentOutputs)
	}
	return result
}
