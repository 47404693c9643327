// Demo program to visually exercise the TagInput widget.
package main

import (
	"fmt"
	"os"
	"strings"

	"tagform/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	tags  ui.TagInput
	log   []string
	width int
}

func initialModel() model {
	m := model{
		tags:  ui.NewTagInput([]string{"go", "tui"}).WithWidth(50),
		width: 50,
	}
	m.tags.Focus()
	return m
}

func (m model) Init() tea.Cmd {
	return m.tags.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.width += 10
			m.tags = m.tags.WithWidth(m.width)
			m.addLog(fmt.Sprintf("Width: %d", m.width))
			return m, nil
		case "-", "_":
			if m.width > 20 {
				m.width -= 10
				m.tags = m.tags.WithWidth(m.width)
				m.addLog(fmt.Sprintf("Width: %d", m.width))
			}
			return m, nil
		}

	case ui.TagsChangedMsg:
		m.addLog(fmt.Sprintf("Changed: %v (value %q)", msg.Tags, msg.Value))
		return m, nil
	}

	var cmd tea.Cmd
	m.tags, cmd = m.tags.Update(msg)
	return m, cmd
}

func (m *model) addLog(entry string) {
	m.log = append(m.log, entry)
	if len(m.log) > 8 {
		m.log = m.log[1:]
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginTop(1)

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("TagInput Demo"))
	s.WriteString("\n\n")

	state := "TYPING"
	if m.tags.Editor().PendingDelete() {
		state = "PENDING DELETE"
	}
	s.WriteString(fmt.Sprintf("State: %s  Width: %d  Value: %q\n\n",
		stateStyle.Render(state), m.width, m.tags.Value()))

	s.WriteString(labelStyle.Render("TAGS"))
	s.WriteString("\n")
	s.WriteString(boxStyle.Width(m.width + 4).Render(m.tags.View()))
	s.WriteString("\n")

	s.WriteString(helpStyle.Render("Type + , ; space or Enter add • Backspace ×2 pop • +/- width • Esc quit"))
	s.WriteString("\n")

	if len(m.log) > 0 {
		s.WriteString(logStyle.Render("EVENTS"))
		s.WriteString("\n")
		for _, entry := range m.log {
			s.WriteString(logStyle.Render("  " + entry))
			s.WriteString("\n")
		}
	}

	return s.String()
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
