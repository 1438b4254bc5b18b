package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/models"
)

const (
	ReviewTask = "Revision: Review previous topics"
	FinalTask  = "Final revision and rest"
	studyTask  = "Study: %s"
)

type Scheduler struct {
	now func() time.Time
}

func New() *Scheduler {
	return &Scheduler{now: time.Now}
}

// NewWithClock returns a Scheduler that reads the current time from now.
func NewWithClock(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// DaysUntil returns the number of started days between now and examDate,
// rounded up. It is zero or negative when the exam is not in the future.
func (s *Scheduler) DaysUntil(examDate time.Time) int {
	return daysBetween(s.now(), examDate)
}

func daysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

// GenerateRevisionPlan spreads topics across the days before examDate.
//
// Topics are batched over one day fewer than available so the last day is
// kept for final revision. Every third day after the first gets a review
// task. Generation stops as soon as the topics run out, so a plan can be
// shorter than the number of days left. A past or present exam date yields
// an empty plan.
func (s *Scheduler) GenerateRevisionPlan(examDate time.Time, topics []string) []models.PlanDay {
	now := s.now()
	days := daysBetween(now, examDate)
	if days <= 0 {
		return []models.PlanDay{}
	}

	perDay := int(math.Ceil(float64(len(topics)) / float64(max(days-1, 1))))

	plan := []models.PlanDay{}
	next := 0
	for i := 0; i < days && next < len(topics); i++ {
		tasks := []string{}
		for j := 0; j < perDay && next < len(topics); j++ {
			tasks = append(tasks, fmt.Sprintf(studyTask, topics[next]))
			next++
		}

		if i > 0 && i%constants.RevisionReviewEvery == 0 {
			tasks = append(tasks, ReviewTask)
		}
		if i == days-1 {
			tasks = append(tasks, FinalTask)
		}

		plan = append(plan, models.PlanDay{
			Date:      now.AddDate(0, 0, i).Format(constants.DateFormat),
			Tasks:     tasks,
			Completed: false,
		})
	}

	return plan
}
