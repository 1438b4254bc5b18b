// Package dashboard implements the feature views of the student dashboard.
// Every view validates its input at the boundary, calls a generator, and
// writes results through a shared set of persisted values, so all views of
// one Dashboard observe the same state.
package dashboard

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/scheduler"
	"github.com/julianstephens/campusbuddy/internal/storage"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Output is the result of a generator call made through a view.
type Output[T any] struct {
	Value    T
	Text     string // plain-text rendering offered for download
	Filename string // suggested download file name
	Record   *models.RecentOutput
	// Warning is set when the result could not be written to history.
	Warning error
}

// state holds the persisted values shared by all views.
type state struct {
	store      storage.Provider
	now        func() time.Time
	newID      func() string
	plan       *storage.Value[[]models.PlanDay]
	cgpa       *storage.Value[[]models.CGPASubject]
	attendance *storage.Value[[]models.AttendanceSubject]
	outputs    *storage.Value[[]models.RecentOutput]
}

func (s *state) reload() {
	s.plan.Reload()
	s.cgpa.Reload()
	s.attendance.Reload()
	s.outputs.Reload()
}

type Dashboard struct {
	st *state

	Notes     *Notes
	Questions *Questions
	Practical *Practical
	Revision  *Revision
	Tracker   *Tracker
	History   *History
	Data      *Data
}

type Option func(*state)

// WithClock replaces time.Now for timestamps and revision plans.
func WithClock(now func() time.Time) Option {
	return func(s *state) { s.now = now }
}

// WithIDs replaces the random id generator.
func WithIDs(newID func() string) Option {
	return func(s *state) { s.newID = newID }
}

// New loads every persisted collection from store and wires the views.
func New(store storage.Provider, opts ...Option) *Dashboard {
	st := &state{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(st)
	}

	st.plan = storage.NewValue(store, constants.KeyRevisionPlan, []models.PlanDay{})
	st.cgpa = storage.NewValue(store, constants.KeyCGPAData, []models.CGPASubject{})
	st.attendance = storage.NewValue(store, constants.KeyAttendance, []models.AttendanceSubject{})
	st.outputs = storage.NewValue(store, constants.KeyRecentOutputs, []models.RecentOutput{})

	history := &History{st: st}
	return &Dashboard{
		st:        st,
		Notes:     &Notes{history: history},
		Questions: &Questions{history: history},
		Practical: &Practical{history: history},
		Revision:  &Revision{st: st, scheduler: scheduler.NewWithClock(st.now)},
		Tracker:   &Tracker{st: st},
		History:   history,
		Data:      &Data{st: st},
	}
}

// Reload re-reads every collection from the store.
func (d *Dashboard) Reload() {
	d.st.reload()
}

// Now returns the dashboard clock's current time.
func (d *Dashboard) Now() time.Time {
	return d.st.now()
}

// removeAt returns a copy of items without index i.
func removeAt[T any](items []T, i int) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), nil
}
