package dashboard

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/grades"
	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/scheduler"
	"github.com/julianstephens/campusbuddy/internal/utils"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

// Revision owns the persisted revision plan and the in-memory topic draft
// it is generated from.
type Revision struct {
	st        *state
	scheduler *scheduler.Scheduler
	topics    []string
	examDate  time.Time
}

// AddTopic appends a trimmed, non-duplicate topic to the draft.
func (r *Revision) AddTopic(topic string) error {
	topic = strings.TrimSpace(topic)
	if err := validation.Topic(r.topics, topic); err != nil {
		return err
	}
	r.topics = append(r.topics, topic)
	return nil
}

func (r *Revision) RemoveTopic(i int) error {
	topics, err := removeAt(r.topics, i)
	if err != nil {
		return err
	}
	r.topics = topics
	return nil
}

func (r *Revision) Topics() []string {
	return slices.Clone(r.topics)
}

// SetTopics replaces the draft, dropping blanks and duplicates.
func (r *Revision) SetTopics(topics []string) {
	r.topics = nil
	for _, t := range topics {
		_ = r.AddTopic(t)
	}
}

// ExamDate is the date the current plan was generated for, if any.
func (r *Revision) ExamDate() (time.Time, bool) {
	return r.examDate, !r.examDate.IsZero()
}

// Generate replaces the stored plan with a fresh one for the draft topics.
// The error is a validation error, or a persistence warning when the plan
// was generated but only kept in memory.
func (r *Revision) Generate(exam time.Time) ([]models.PlanDay, error) {
	if err := validation.RevisionInput(exam, r.st.now(), r.topics); err != nil {
		return nil, err
	}
	plan := r.scheduler.GenerateRevisionPlan(exam, r.topics)
	r.examDate = exam
	return plan, r.st.plan.Set(plan)
}

func (r *Revision) Plan() []models.PlanDay {
	return slices.Clone(r.st.plan.Get())
}

// Toggle flips the completion flag of day i.
func (r *Revision) Toggle(i int) (bool, error) {
	plan := r.Plan()
	if i < 0 || i >= len(plan) {
		return false, ErrIndexOutOfRange
	}
	plan[i].Completed = !plan[i].Completed
	return plan[i].Completed, r.st.plan.Set(plan)
}

// Clear empties the plan. The topic draft is kept.
func (r *Revision) Clear() error {
	r.examDate = time.Time{}
	return r.st.plan.Set([]models.PlanDay{})
}

// Progress is the completed share of plan days as a whole percentage.
func (r *Revision) Progress() int {
	return grades.Progress(r.st.plan.Get())
}

func (r *Revision) Filename() string {
	return "revision-plan.txt"
}

// ExportText renders the plan as plain text. examLabel is printed verbatim.
func (r *Revision) ExportText(examLabel string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "REVISION PLAN\nExam Date: %s\n%s\n\n", examLabel, strings.Repeat("=", constants.RuleWidth))

	days := make([]string, 0, len(r.st.plan.Get()))
	for i, day := range r.st.plan.Get() {
		var b strings.Builder
		fmt.Fprintf(&b, "Day %d (%s)\n", i+1, utils.FormatDayLabel(day.Date))
		status := "⏳ Pending"
		if day.Completed {
			status = "✅ Completed"
		}
		fmt.Fprintf(&b, "Status: %s\nTasks:\n", status)
		for _, task := range day.Tasks {
			fmt.Fprintf(&b, "  • %s\n", task)
		}
		days = append(days, b.String())
	}
	sb.WriteString(strings.Join(days, "\n"))
	return sb.String()
}

// exportLabel is the exam date label used when none is supplied.
func (r *Revision) exportLabel() string {
	if exam, ok := r.ExamDate(); ok {
		return utils.FormatDate(exam)
	}
	return "N/A"
}

// Export renders the plan using the exam date of the last generation.
func (r *Revision) Export() string {
	return r.ExportText(r.exportLabel())
}

// LoadSample fills the draft with sample topics and returns an exam date
// two weeks from now. Nothing is generated or stored.
func (r *Revision) LoadSample() time.Time {
	r.SetTopics(sampleTopics)
	now := r.st.now()
	return time.Date(now.Year(), now.Month(), now.Day()+constants.SampleExamOffsetDays, 0, 0, 0, 0, now.Location())
}
