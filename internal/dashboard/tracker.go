package dashboard

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/campusbuddy/internal/grades"
	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

// Tracker manages the CGPA subjects and attendance records.
type Tracker struct {
	st *state
}

func (t *Tracker) Subjects() []models.CGPASubject {
	return append([]models.CGPASubject(nil), t.st.cgpa.Get()...)
}

func (t *Tracker) Attendance() []models.AttendanceSubject {
	return append([]models.AttendanceSubject(nil), t.st.attendance.Get()...)
}

// AddSubject validates and appends a CGPA subject with a fresh id. A
// non-nil subject with a non-nil error means it was only kept in memory.
func (t *Tracker) AddSubject(name string, credits int, grade string) (*models.CGPASubject, error) {
	name = strings.TrimSpace(name)
	if err := validation.CGPASubject(name, credits, grade); err != nil {
		return nil, err
	}
	s := models.CGPASubject{ID: t.st.newID(), Name: name, Credits: credits, Grade: grade}
	return &s, t.st.cgpa.Set(append(t.Subjects(), s))
}

// RemoveSubject drops the subject with id. Unknown ids are a no-op.
func (t *Tracker) RemoveSubject(id string) (bool, error) {
	subjects := t.st.cgpa.Get()
	kept := make([]models.CGPASubject, 0, len(subjects))
	for _, s := range subjects {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(subjects) {
		return false, nil
	}
	return true, t.st.cgpa.Set(kept)
}

// AddAttendance validates and appends an attendance record with a fresh id.
func (t *Tracker) AddAttendance(subject string, pct float64) (*models.AttendanceSubject, error) {
	subject = strings.TrimSpace(subject)
	if err := validation.AttendanceSubject(subject, pct); err != nil {
		return nil, err
	}
	a := models.AttendanceSubject{ID: t.st.newID(), Subject: subject, Attendance: pct}
	return &a, t.st.attendance.Set(append(t.Attendance(), a))
}

// RemoveAttendance drops the record with id. Unknown ids are a no-op.
func (t *Tracker) RemoveAttendance(id string) (bool, error) {
	records := t.st.attendance.Get()
	kept := make([]models.AttendanceSubject, 0, len(records))
	for _, a := range records {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}
	return true, t.st.attendance.Set(kept)
}

func (t *Tracker) CGPA() float64 {
	return grades.CalculateCGPA(t.st.cgpa.Get())
}

func (t *Tracker) TotalCredits() int {
	return grades.TotalCredits(t.st.cgpa.Get())
}

// LowAttendance returns the records below the attendance threshold.
func (t *Tracker) LowAttendance() []models.AttendanceSubject {
	return grades.LowAttendance(t.st.attendance.Get())
}

// LoadSampleData replaces both collections with the sample semester.
func (t *Tracker) LoadSampleData() error {
	return errors.Join(t.st.cgpa.Set(sampleSubjects()), t.st.attendance.Set(sampleAttendance()))
}

// Replace swaps the collections for the given ones, assigning fresh ids to
// entries without one. A nil slice leaves its collection untouched. Every
// entry is validated first and nothing is written if any is invalid.
func (t *Tracker) Replace(subjects []models.CGPASubject, attendance []models.AttendanceSubject) error {
	for _, s := range subjects {
		if err := validation.CGPASubject(s.Name, s.Credits, s.Grade); err != nil {
			return fmt.Errorf("subject %q: %w", s.Name, err)
		}
	}
	for _, a := range attendance {
		if err := validation.AttendanceSubject(a.Subject, a.Attendance); err != nil {
			return fmt.Errorf("attendance %q: %w", a.Subject, err)
		}
	}

	var errs []error
	if subjects != nil {
		subjects = slices.Clone(subjects)
		for i := range subjects {
			if subjects[i].ID == "" {
				subjects[i].ID = t.st.newID()
			}
		}
		errs = append(errs, t.st.cgpa.Set(subjects))
	}
	if attendance != nil {
		attendance = slices.Clone(attendance)
		for i := range attendance {
			if attendance[i].ID == "" {
				attendance[i].ID = t.st.newID()
			}
		}
		errs = append(errs, t.st.attendance.Set(attendance))
	}
	return errors.Join(errs...)
}
