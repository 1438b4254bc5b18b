package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/utils"
)

var (
	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	taskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// ToggleDayMsg asks the parent to flip completion of the day at Index.
type ToggleDayMsg struct {
	Index int
}

type NewPlanMsg struct{}

type ClearPlanMsg struct{}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	New    key.Binding
	Clear  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle day"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new plan"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear plan"),
		),
	}
}

type Model struct {
	viewport viewport.Model
	Keys     KeyMap
	days     []models.PlanDay
	cursor   int
	progress int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		Keys:     DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.Render()
			}
			return m, nil
		case key.Matches(msg, m.Keys.Down):
			if m.cursor < len(m.days)-1 {
				m.cursor++
				m.Render()
			}
			return m, nil
		case key.Matches(msg, m.Keys.Toggle):
			if len(m.days) > 0 {
				i := m.cursor
				return m, func() tea.Msg { return ToggleDayMsg{Index: i} }
			}
			return m, nil
		case key.Matches(msg, m.Keys.New):
			return m, func() tea.Msg { return NewPlanMsg{} }
		case key.Matches(msg, m.Keys.Clear):
			if len(m.days) > 0 {
				return m, func() tea.Msg { return ClearPlanMsg{} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.days) == 0 {
		return "No revision plan yet. Press 'n' to create one."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetPlan replaces the displayed days, keeping the cursor in range.
func (m *Model) SetPlan(days []models.PlanDay, progress int) {
	m.days = days
	m.progress = progress
	if m.cursor >= len(days) {
		m.cursor = max(len(days)-1, 0)
	}
	m.Render()
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m *Model) Render() {
	var b strings.Builder
	fmt.Fprintf(&b, "Progress: %d%%\n\n", m.progress)
	for i, day := range m.days {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		status := "[ ]"
		if day.Completed {
			status = doneStyle.Render("[✓]")
		}
		label := fmt.Sprintf("Day %d (%s)", i+1, utils.FormatDayLabel(day.Date))
		fmt.Fprintf(&b, "%s%s %s\n", marker, status, dayStyle.Render(label))
		for _, t := range day.Tasks {
			b.WriteString("      " + taskStyle.Render("• "+t) + "\n")
		}
	}
	m.viewport.SetContent(b.String())

	// keep the selected day visible
	line := 2
	for i := 0; i < m.cursor && i < len(m.days); i++ {
		line += 1 + len(m.days[i].Tasks)
	}
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if h := m.viewport.Height; h > 0 && line >= m.viewport.YOffset+h {
		m.viewport.SetYOffset(line - h + 1)
	}
}
