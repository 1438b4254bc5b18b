package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/tui/components/plan"
	"github.com/julianstephens/campusbuddy/internal/tui/components/subjects"
	"github.com/julianstephens/campusbuddy/internal/utils"
)

// chrome is the number of rows taken by tabs, status and help.
const chrome = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w, h := msg.Width-4, max(msg.Height-chrome, 1)
		m.planModel.SetSize(w, h)
		m.cgpaList.SetSize(w, h)
		m.attendanceList.SetSize(w, h)
		m.historyModel.SetSize(w, h)
		return m, nil
	}

	switch m.state {
	case constants.StateAddSubject, constants.StateAddAttendance, constants.StateNewPlan:
		return m, m.updateForm(msg)
	case constants.StateConfirmClear:
		m.updateConfirmClear(msg)
		return m, nil
	}

	switch msg := msg.(type) {
	case plan.ToggleDayMsg:
		done, err := m.dash.Revision.Toggle(msg.Index)
		label := "Marked day " + strconv.Itoa(msg.Index+1) + " pending"
		if done {
			label = "Marked day " + strconv.Itoa(msg.Index+1) + " complete"
		}
		m.setResult(label, err)
		m.refresh()
		return m, nil

	case plan.NewPlanMsg:
		m.planForm = &PlanFormModel{Topics: strings.Join(m.dash.Revision.Topics(), "\n")}
		if exam, ok := m.dash.Revision.ExamDate(); ok {
			m.planForm.ExamDate = utils.FormatDate(exam)
		}
		return m, m.openForm(constants.StateNewPlan, NewPlanForm(m.planForm, m.dash.Now))

	case plan.ClearPlanMsg:
		m.previousState = m.state
		m.state = constants.StateConfirmClear
		return m, nil

	case subjects.AddMsg:
		if m.state == constants.StateAttendance {
			m.attendanceForm = &AttendanceFormModel{}
			return m, m.openForm(constants.StateAddAttendance, NewAttendanceForm(m.attendanceForm))
		}
		m.subjectForm = &SubjectFormModel{Credits: "3", Grade: constants.Grades[0]}
		return m, m.openForm(constants.StateAddSubject, NewSubjectForm(m.subjectForm))

	case subjects.DeleteMsg:
		var err error
		if m.state == constants.StateAttendance {
			_, err = m.dash.Tracker.RemoveAttendance(msg.ID)
		} else {
			_, err = m.dash.Tracker.RemoveSubject(msg.ID)
		}
		m.setResult("Removed", err)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		// an open history entry takes esc and scrolling keys
		inHistory := m.state == constants.StateHistory && m.historyModel.Viewing()
		switch {
		case key.Matches(msg, m.keys.Quit) && !(inHistory && msg.String() != "ctrl+c"):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % constants.TabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + constants.TabCount) % constants.TabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case m.state == constants.StateHome && key.Matches(msg, m.keys.Sample):
			m.setResult("Loaded sample CGPA and attendance data", m.dash.Tracker.LoadSampleData())
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateRevision:
		m.planModel, cmd = m.planModel.Update(msg)
	case constants.StateCGPA:
		m.cgpaList, cmd = m.cgpaList.Update(msg)
	case constants.StateAttendance:
		m.attendanceList, cmd = m.attendanceList.Update(msg)
	case constants.StateHistory:
		m.historyModel, cmd = m.historyModel.Update(msg)
	}
	return m, cmd
}

func (m *Model) openForm(state constants.SessionState, form *huh.Form) tea.Cmd {
	m.previousState = m.state
	m.state = state
	m.form = form
	m.status = ""
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.state = m.previousState
	m.form = nil
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.closeForm()
		m.refresh()
	case huh.StateAborted:
		m.closeForm()
	}
	return cmd
}

// applyForm stores the submitted form and reports the outcome in the
// status line.
func (m *Model) applyForm() {
	switch m.state {
	case constants.StateAddSubject:
		fm := m.subjectForm
		credits, err := strconv.Atoi(strings.TrimSpace(fm.Credits))
		if err != nil {
			m.setResult("", fmt.Errorf("invalid credits %q: %w", fm.Credits, err))
			return
		}
		s, err := m.dash.Tracker.AddSubject(strings.TrimSpace(fm.Name), credits, fm.Grade)
		if s != nil {
			m.setResult("Added "+s.Name, err)
			return
		}
		m.setResult("", err)

	case constants.StateAddAttendance:
		fm := m.attendanceForm
		pct, err := strconv.ParseFloat(strings.TrimSpace(fm.Attendance), 64)
		if err != nil {
			m.setResult("", fmt.Errorf("invalid attendance %q: %w", fm.Attendance, err))
			return
		}
		a, err := m.dash.Tracker.AddAttendance(strings.TrimSpace(fm.Subject), pct)
		if a != nil {
			m.setResult("Added "+a.Subject, err)
			return
		}
		m.setResult("", err)

	case constants.StateNewPlan:
		fm := m.planForm
		exam, err := utils.ParseDate(strings.TrimSpace(fm.ExamDate))
		if err != nil {
			m.setResult("", err)
			return
		}
		m.dash.Revision.SetTopics(splitTopics(fm.Topics))
		days, err := m.dash.Revision.Generate(exam)
		if days == nil {
			m.setResult("", err)
			return
		}
		m.setResult("Generated a "+strconv.Itoa(len(days))+"-day revision plan", err)
	}
}

func (m *Model) updateConfirmClear(msg tea.Msg) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return
	}
	switch {
	case key.Matches(km, m.keys.Confirm):
		m.setResult("Revision plan cleared", m.dash.Revision.Clear())
		m.refresh()
		m.state = m.previousState
	case key.Matches(km, m.keys.Cancel):
		m.state = m.previousState
	}
}
