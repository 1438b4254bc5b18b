package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateHome:
		content = docStyle.Render(m.viewHome())
	case constants.StateRevision:
		content = docStyle.Render(m.planModel.View())
	case constants.StateCGPA:
		content = docStyle.Render(m.viewCGPA())
	case constants.StateAttendance:
		content = docStyle.Render(m.attendanceList.View())
	case constants.StateHistory:
		content = docStyle.Render(m.historyModel.View())
	case constants.StateAddSubject, constants.StateAddAttendance, constants.StateNewPlan:
		content = docStyle.Render(m.form.View())
	case constants.StateConfirmClear:
		content = m.viewConfirmClear()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if int(active) >= constants.TabCount {
		active = m.previousState
	}
	var tabs []string
	for i, title := range tabTitles {
		if active == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	var parts []string
	if m.status != "" {
		if m.statusIsError {
			parts = append(parts, warningStyle.Render(m.status))
		} else {
			parts = append(parts, successStyle.Render("✓ "+m.status))
		}
	}
	if m.validationWarning != "" {
		parts = append(parts, warningStyle.Render(m.validationWarning))
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewHome() string {
	o := m.dash.Overview()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Revision progress") + "\n")
	if o.PlanDays == 0 {
		b.WriteString(mutedStyle.Render("No plan yet") + "\n\n")
	} else {
		fmt.Fprintf(&b, "%s %d%% of %d days\n\n", progressBar(o.Progress, 20), o.Progress, o.PlanDays)
	}

	b.WriteString(titleStyle.Render("CGPA") + "\n")
	if o.Subjects == 0 {
		b.WriteString(mutedStyle.Render("No subjects yet, press 's' to load sample data") + "\n\n")
	} else {
		fmt.Fprintf(&b, "%.2f over %d credits (%d subjects)\n\n", o.CGPA, o.TotalCredits, o.Subjects)
	}

	b.WriteString(titleStyle.Render("Attendance alerts") + "\n")
	if len(o.LowAttendance) == 0 {
		b.WriteString(mutedStyle.Render("All subjects at or above 75%") + "\n\n")
	} else {
		for _, a := range o.LowAttendance {
			b.WriteString(dangerStyle.Render(fmt.Sprintf("⚠ %s: %.1f%%", a.Subject, a.Attendance)) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(titleStyle.Render("Recent") + "\n")
	if len(o.Recent) == 0 {
		b.WriteString(mutedStyle.Render("Nothing generated yet") + "\n")
	}
	for _, r := range o.Recent {
		fmt.Fprintf(&b, "%s %s\n", r.Title, mutedStyle.Render(utils.FormatTimestamp(r.Timestamp)))
	}
	return b.String()
}

func (m Model) viewCGPA() string {
	header := fmt.Sprintf("CGPA %.2f | %d credits\n", m.dash.Tracker.CGPA(), m.dash.Tracker.TotalCredits())
	return titleStyle.Render(header) + "\n" + m.cgpaList.View()
}

func (m Model) viewConfirmClear() string {
	return lipgloss.Place(m.width, max(m.height-chrome, 1),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Clear the revision plan?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func progressBar(pct, width int) string {
	filled := pct * width / 100
	return successStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}
