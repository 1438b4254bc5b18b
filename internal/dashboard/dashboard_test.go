package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/storage"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestDashboard(t *testing.T, store storage.Provider) *Dashboard {
	t.Helper()
	if store == nil {
		store = storage.NewMemoryStore()
	}
	n := 0
	return New(store,
		WithClock(func() time.Time { return fixedNow }),
		WithIDs(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
}

// brokenStore accepts reads but rejects every write.
type brokenStore struct {
	*storage.MemoryStore
}

var errQuota = errors.New("quota exceeded")

func (b *brokenStore) Set(string, []byte) error { return errQuota }

func TestNotes_Summarize(t *testing.T) {
	d := newTestDashboard(t, nil)

	tests := []struct {
		name    string
		subject string
		notes   string
		wantErr error
	}{
		{"missing subject", "  ", SampleNotes, validation.ErrRequired},
		{"missing notes", "DS", "", validation.ErrRequired},
		{"valid", SampleNotesSubject, SampleNotes, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := d.Notes.Summarize(tt.subject, tt.notes)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Summarize() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if out.Filename != "Data Structures-summary.txt" {
				t.Errorf("Filename = %q", out.Filename)
			}
			if out.Record == nil || out.Record.Title != "Data Structures Summary" {
				t.Fatalf("Record = %+v", out.Record)
			}
			if out.Record.Type != constants.OutputSummary {
				t.Errorf("Record.Type = %q", out.Record.Type)
			}
			if out.Record.Timestamp != "2026-03-01T10:00:00.000Z" {
				t.Errorf("Record.Timestamp = %q", out.Record.Timestamp)
			}
		})
	}

	if got := len(d.History.List()); got != 1 {
		t.Errorf("history length = %d, want 1", got)
	}
}

func TestNotes_KeyPointsAndMCQsAreNotRecorded(t *testing.T) {
	d := newTestDashboard(t, nil)

	kp, err := d.Notes.KeyPoints("", SampleNotes)
	if err != nil {
		t.Fatal(err)
	}
	if kp.Filename != "notes-keypoints.txt" {
		t.Errorf("Filename = %q", kp.Filename)
	}
	if len(kp.Value) == 0 {
		t.Error("expected key points")
	}

	mcqs, err := d.Notes.MCQs(SampleNotesSubject, SampleNotes)
	if err != nil {
		t.Fatal(err)
	}
	if len(mcqs.Value) < constants.MCQMinCount {
		t.Errorf("got %d MCQs", len(mcqs.Value))
	}
	if _, err := d.Notes.MCQs("", SampleNotes); !errors.Is(err, validation.ErrRequired) {
		t.Errorf("MCQs without subject error = %v", err)
	}

	if got := len(d.History.List()); got != 0 {
		t.Errorf("history length = %d, want 0", got)
	}
}

func TestQuestions_Generate(t *testing.T) {
	d := newTestDashboard(t, nil)

	out, err := d.Questions.Generate(SampleQuestionsSubject, SampleQuestionsTopic, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Value) != constants.QuestionCount {
		t.Fatalf("got %d questions", len(out.Value))
	}
	if !strings.HasPrefix(out.Value[0].Question, "Explain") {
		t.Errorf("default difficulty should be Medium, got %q", out.Value[0].Question)
	}
	if out.Filename != "Operating Systems-Process Synchronization-questions.txt" {
		t.Errorf("Filename = %q", out.Filename)
	}
	if out.Record.Title != "Operating Systems - Process Synchronization Questions" {
		t.Errorf("Title = %q", out.Record.Title)
	}
	if out.Record.Preview != out.Value[0].Question {
		t.Errorf("Preview = %q", out.Record.Preview)
	}

	if _, err := d.Questions.Generate("OS", " ", "Hard"); !errors.Is(err, validation.ErrRequired) {
		t.Errorf("missing topic error = %v", err)
	}
}

func TestPractical_Generate(t *testing.T) {
	d := newTestDashboard(t, nil)

	out, err := d.Practical.Generate(SamplePracticalTitle, SamplePracticalContext)
	if err != nil {
		t.Fatal(err)
	}
	if out.Filename != "practical-implementation-of-stack-using-array.txt" {
		t.Errorf("Filename = %q", out.Filename)
	}
	if out.Record.Title != "Practical: "+SamplePracticalTitle {
		t.Errorf("Title = %q", out.Record.Title)
	}
	if out.Record.Content != out.Text {
		t.Error("history content should be the rendered document")
	}

	if _, err := d.Practical.Generate("", "ctx"); !errors.Is(err, validation.ErrRequired) {
		t.Errorf("missing title error = %v", err)
	}
}

func TestHistory_CapsAndOrdersNewestFirst(t *testing.T) {
	d := newTestDashboard(t, nil)

	for i := range 25 {
		if _, err := d.History.Record(constants.OutputSummary, fmt.Sprintf("t%d", i), "", ""); err != nil {
			t.Fatal(err)
		}
	}

	list := d.History.List()
	if len(list) != constants.MaxRecentOutputs {
		t.Fatalf("len = %d, want %d", len(list), constants.MaxRecentOutputs)
	}
	if list[0].Title != "t24" || list[len(list)-1].Title != "t5" {
		t.Errorf("order = %s .. %s", list[0].Title, list[len(list)-1].Title)
	}

	if got := d.History.Recent(constants.HomeRecentCount); len(got) != 5 || got[4].Title != "t20" {
		t.Errorf("Recent(5) = %v", got)
	}

	if _, ok := d.History.Get(list[3].ID); !ok {
		t.Error("Get() missed a listed id")
	}
	if _, ok := d.History.Get("nope"); ok {
		t.Error("Get() found an unknown id")
	}
}

func TestHistory_PersistsAcrossInstances(t *testing.T) {
	store := storage.NewMemoryStore()
	d := newTestDashboard(t, store)
	if _, err := d.Notes.Summarize("Physics", "Newton's laws describe motion."); err != nil {
		t.Fatal(err)
	}

	again := newTestDashboard(t, store)
	if got := again.History.List(); len(got) != 1 || got[0].Title != "Physics Summary" {
		t.Errorf("reloaded history = %+v", got)
	}
}

func TestHistory_WriteFailureKeepsEntryInMemory(t *testing.T) {
	d := newTestDashboard(t, &brokenStore{storage.NewMemoryStore()})

	out, err := d.Notes.Summarize("Physics", "Newton's laws describe motion.")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if !errors.Is(out.Warning, errQuota) {
		t.Errorf("Warning = %v, want %v", out.Warning, errQuota)
	}
	if len(d.History.List()) != 1 {
		t.Error("entry should stay in memory")
	}
}
