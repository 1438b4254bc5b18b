package grades

import (
	"testing"

	"github.com/julianstephens/campusbuddy/internal/models"
)

func TestCalculateCGPA(t *testing.T) {
	tests := []struct {
		name     string
		subjects []models.CGPASubject
		expected float64
	}{
		{
			name:     "empty",
			subjects: nil,
			expected: 0,
		},
		{
			name:     "single O",
			subjects: []models.CGPASubject{{Credits: 4, Grade: "O"}},
			expected: 10.00,
		},
		{
			name: "weighted mean rounds to two places",
			subjects: []models.CGPASubject{
				{Credits: 4, Grade: "A+"},
				{Credits: 3, Grade: "B"},
			},
			expected: 7.71,
		},
		{
			name: "unknown grade contributes zero",
			subjects: []models.CGPASubject{
				{Credits: 2, Grade: "O"},
				{Credits: 2, Grade: "Z"},
			},
			expected: 5.00,
		},
		{
			name:     "zero credits",
			subjects: []models.CGPASubject{{Credits: 0, Grade: "O"}},
			expected: 0,
		},
		{
			name: "sample semester",
			subjects: []models.CGPASubject{
				{Credits: 4, Grade: "A+"},
				{Credits: 3, Grade: "A"},
				{Credits: 3, Grade: "O"},
				{Credits: 3, Grade: "B+"},
				{Credits: 3, Grade: "A"},
			},
			// (36+24+30+21+24)/16 = 8.4375
			expected: 8.44,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateCGPA(tt.subjects); got != tt.expected {
				t.Errorf("CalculateCGPA() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGradePoint(t *testing.T) {
	tests := map[string]int{
		"O": 10, "A+": 9, "A": 8, "B+": 7, "B": 6, "C": 5, "P": 4, "F": 0,
		"": 0, "a+": 0, "Z": 0,
	}
	for grade, want := range tests {
		if got := GradePoint(grade); got != want {
			t.Errorf("GradePoint(%q) = %d, want %d", grade, got, want)
		}
	}
	if IsValid("a+") {
		t.Error("IsValid should be case sensitive")
	}
	if !IsValid("F") {
		t.Error("IsValid(F) = false, want true")
	}
}

func TestTotalCredits(t *testing.T) {
	subjects := []models.CGPASubject{{Credits: 4}, {Credits: 3}, {Credits: 2}}
	if got := TotalCredits(subjects); got != 9 {
		t.Errorf("TotalCredits() = %d, want 9", got)
	}
}

func TestLowAttendance(t *testing.T) {
	subjects := []models.AttendanceSubject{
		{Subject: "A", Attendance: 85},
		{Subject: "B", Attendance: 72},
		{Subject: "C", Attendance: 75},
		{Subject: "D", Attendance: 74.9},
	}
	low := LowAttendance(subjects)
	if len(low) != 2 {
		t.Fatalf("expected 2 low subjects, got %d", len(low))
	}
	if low[0].Subject != "B" || low[1].Subject != "D" {
		t.Errorf("unexpected low subjects: %+v", low)
	}
}

func TestProgress(t *testing.T) {
	plan := []models.PlanDay{{Completed: true}, {}, {}}
	if got := Progress(plan); got != 33 {
		t.Errorf("Progress() = %d, want 33", got)
	}
	plan[1].Completed = true
	if got := Progress(plan); got != 67 {
		t.Errorf("Progress() = %d, want 67", got)
	}
	if got := Progress(nil); got != 0 {
		t.Errorf("Progress(nil) = %d, want 0", got)
	}
}
