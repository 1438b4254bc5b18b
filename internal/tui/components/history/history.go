package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/utils"
)

var headerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205")).
	Bold(true)

type Item struct {
	Output models.RecentOutput
}

func (i Item) Title() string { return i.Output.Title }
func (i Item) Description() string {
	return fmt.Sprintf("%s | %s", i.Output.Type, utils.FormatTimestamp(i.Output.Timestamp))
}
func (i Item) FilterValue() string { return i.Output.Title }

type KeyMap struct {
	Open  key.Binding
	Close key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// Model shows past generations as a list, and the full content of one
// entry in a scrollable viewport.
type Model struct {
	list     list.Model
	viewport viewport.Model
	keys     KeyMap
	open     bool
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open}
	}

	return Model{
		list:     l,
		viewport: viewport.New(width, height),
		keys:     keys,
	}
}

func (m *Model) SetOutputs(outputs []models.RecentOutput) {
	items := make([]list.Item, len(outputs))
	for i, o := range outputs {
		items[i] = Item{Output: o}
	}
	m.list.SetItems(items)
	if len(outputs) == 0 {
		m.open = false
	}
}

// Viewing reports whether an entry is open.
func (m Model) Viewing() bool {
	return m.open
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.open {
		if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Close) {
			m.open = false
			return m, nil
		}
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering &&
		key.Matches(msg, m.keys.Open) {
		if i, ok := m.list.SelectedItem().(Item); ok {
			m.viewport.SetContent(render(i.Output))
			m.viewport.GotoTop()
			m.open = true
		}
		return m, nil
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func render(o models.RecentOutput) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(o.Title) + "\n")
	b.WriteString(utils.FormatTimestamp(o.Timestamp) + "\n\n")
	b.WriteString(o.Content)
	return b.String()
}

func (m Model) View() string {
	if m.open {
		return m.viewport.View()
	}
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nothing generated yet.\n  Summaries, question banks and practical files show up here."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
	m.viewport.Width = width
	m.viewport.Height = height
}
