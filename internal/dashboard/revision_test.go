package dashboard

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/campusbuddy/internal/scheduler"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

func TestRevision_Topics(t *testing.T) {
	d := newTestDashboard(t, nil)
	r := d.Revision

	if err := r.AddTopic("  Graphs "); err != nil {
		t.Fatal(err)
	}
	if err := r.AddTopic("Graphs"); !errors.Is(err, validation.ErrDuplicateTopic) {
		t.Errorf("duplicate error = %v", err)
	}
	if err := r.AddTopic("   "); !errors.Is(err, validation.ErrRequired) {
		t.Errorf("blank error = %v", err)
	}
	if err := r.RemoveTopic(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("RemoveTopic(3) error = %v", err)
	}
	if err := r.RemoveTopic(0); err != nil {
		t.Fatal(err)
	}
	if got := r.Topics(); len(got) != 0 {
		t.Errorf("Topics() = %v", got)
	}
}

func TestRevision_GenerateValidation(t *testing.T) {
	d := newTestDashboard(t, nil)

	if _, err := d.Revision.Generate(fixedNow.AddDate(0, 0, 5)); !errors.Is(err, validation.ErrNoTopics) {
		t.Errorf("no topics error = %v", err)
	}
	d.Revision.SetTopics([]string{"Graphs"})
	if _, err := d.Revision.Generate(fixedNow); !errors.Is(err, validation.ErrExamDateNotFuture) {
		t.Errorf("present exam error = %v", err)
	}
	if len(d.Revision.Plan()) != 0 {
		t.Error("failed generation must not store a plan")
	}
}

func TestRevision_SamplePlan(t *testing.T) {
	d := newTestDashboard(t, nil)
	exam := d.Revision.LoadSample()

	if want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC); !exam.Equal(want) {
		t.Fatalf("sample exam = %v, want %v", exam, want)
	}

	plan, err := d.Revision.Generate(exam)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan) != 10 {
		t.Fatalf("len(plan) = %d, want 10", len(plan))
	}
	if plan[0].Date != "2026-03-01" || plan[0].Tasks[0] != "Study: Arrays and Strings" {
		t.Errorf("day 1 = %+v", plan[0])
	}
	if last := plan[3].Tasks[len(plan[3].Tasks)-1]; last != scheduler.ReviewTask {
		t.Errorf("day 4 last task = %q", last)
	}

	text := d.Revision.Export()
	for _, want := range []string{
		"REVISION PLAN\nExam Date: 2026-03-15\n" + strings.Repeat("=", 50) + "\n\n",
		"Day 1 (Sun, Mar 1)\nStatus: ⏳ Pending\nTasks:\n  • Study: Arrays and Strings\n",
		"Day 10 (Tue, Mar 10)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestRevision_ToggleProgressClear(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.Revision.SetTopics([]string{"A", "B", "C", "D"})
	if _, err := d.Revision.Generate(fixedNow.AddDate(0, 0, 5)); err != nil {
		t.Fatal(err)
	}

	if done, err := d.Revision.Toggle(0); err != nil || !done {
		t.Fatalf("Toggle(0) = %v, %v", done, err)
	}
	if got := d.Revision.Progress(); got != 25 {
		t.Errorf("Progress() = %d, want 25", got)
	}
	if !strings.Contains(d.Revision.ExportText("x"), "Status: ✅ Completed") {
		t.Error("export should show the completed day")
	}
	if done, _ := d.Revision.Toggle(0); done {
		t.Error("second toggle should restore pending")
	}
	if _, err := d.Revision.Toggle(9); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Toggle(9) error = %v", err)
	}

	if err := d.Revision.Clear(); err != nil {
		t.Fatal(err)
	}
	if len(d.Revision.Plan()) != 0 || d.Revision.Progress() != 0 {
		t.Error("Clear() should empty the plan")
	}
	if len(d.Revision.Topics()) != 4 {
		t.Error("Clear() should keep the topic draft")
	}
}
