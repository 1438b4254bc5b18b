package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/dashboard"
	"github.com/julianstephens/campusbuddy/internal/grades"
	"github.com/julianstephens/campusbuddy/internal/tui/components/history"
	"github.com/julianstephens/campusbuddy/internal/tui/components/plan"
	"github.com/julianstephens/campusbuddy/internal/tui/components/subjects"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

var tabTitles = []string{"Home", "Revision", "CGPA", "Attendance", "History"}

type SubjectFormModel struct {
	Name    string
	Credits string
	Grade   string
}

type AttendanceFormModel struct {
	Subject    string
	Attendance string
}

type PlanFormModel struct {
	ExamDate string
	Topics   string // one per line
}

type Model struct {
	dash           *dashboard.Dashboard
	state          constants.SessionState
	previousState  constants.SessionState
	keys           KeyMap
	help           help.Model
	planModel      plan.Model
	cgpaList       subjects.Model
	attendanceList subjects.Model
	historyModel   history.Model
	form           *huh.Form
	subjectForm    *SubjectFormModel
	attendanceForm *AttendanceFormModel
	planForm       *PlanFormModel
	quitting       bool
	width          int
	height         int

	status            string // result of the last action
	statusIsError     bool
	validationWarning string
}

func NewModel(dash *dashboard.Dashboard) Model {
	m := Model{
		dash:           dash,
		state:          constants.StateHome,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		planModel:      plan.New(0, 0),
		cgpaList:       subjects.New("CGPA", "No subjects yet.", 0, 0),
		attendanceList: subjects.New("Attendance", "No attendance records yet.", 0, 0),
		historyModel:   history.New(0, 0),
	}
	m.refresh()
	return m
}

// refresh copies the dashboard state into every component.
func (m *Model) refresh() {
	m.planModel.SetPlan(m.dash.Revision.Plan(), m.dash.Revision.Progress())

	cgpa := m.dash.Tracker.Subjects()
	items := make([]subjects.Item, len(cgpa))
	for i, s := range cgpa {
		items[i] = subjects.Item{
			ID:     s.ID,
			Name:   s.Name,
			Detail: fmt.Sprintf("%d credits | grade %s (%d points)", s.Credits, s.Grade, grades.GradePoint(s.Grade)),
		}
	}
	m.cgpaList.SetItems(items)

	att := m.dash.Tracker.Attendance()
	items = make([]subjects.Item, len(att))
	for i, a := range att {
		detail := fmt.Sprintf("%.1f%%", a.Attendance)
		if grades.IsLow(a.Attendance) {
			detail += " | below 75%"
		}
		items[i] = subjects.Item{ID: a.ID, Name: a.Subject, Detail: detail}
	}
	m.attendanceList.SetItems(items)

	m.historyModel.SetOutputs(m.dash.History.List())
	m.updateValidationStatus()
}

func (m *Model) updateValidationStatus() {
	v := validation.New()
	conflicts := len(v.ValidateCGPA(m.dash.Tracker.Subjects()).Conflicts) +
		len(v.ValidateAttendance(m.dash.Tracker.Attendance()).Conflicts) +
		len(v.ValidatePlan(m.dash.Revision.Plan()).Conflicts) +
		len(v.ValidateHistory(m.dash.History.List()).Conflicts)
	if conflicts > 0 {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s), run 'campusbuddy doctor'", conflicts)
	} else {
		m.validationWarning = ""
	}
}

// setResult reports the outcome of an action in the status line. A
// persistence warning still counts as done.
func (m *Model) setResult(done string, err error) {
	m.status = done
	m.statusIsError = false
	if err != nil {
		m.status = err.Error()
		m.statusIsError = true
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateHome:
		keys = append(keys, m.keys.Sample)
	case constants.StateRevision:
		keys = append(keys, m.planModel.Keys.Toggle, m.planModel.Keys.New, m.planModel.Keys.Clear)
	case constants.StateCGPA, constants.StateAttendance:
		sk := subjects.DefaultKeyMap()
		keys = append(keys, sk.Add, sk.Delete)
	case constants.StateHistory:
		hk := history.DefaultKeyMap()
		keys = append(keys, hk.Open, hk.Close)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	var actions []key.Binding
	switch m.state {
	case constants.StateHome:
		actions = []key.Binding{m.keys.Sample}
	case constants.StateRevision:
		pk := m.planModel.Keys
		actions = []key.Binding{pk.Up, pk.Down, pk.Toggle, pk.New, pk.Clear}
	case constants.StateCGPA, constants.StateAttendance:
		sk := subjects.DefaultKeyMap()
		actions = []key.Binding{sk.Add, sk.Delete}
	case constants.StateHistory:
		hk := history.DefaultKeyMap()
		actions = []key.Binding{hk.Open, hk.Close}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
