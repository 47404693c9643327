package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagform/internal/ui/theme"
)

// SelectChangedMsg is sent when a select field commits a new option.
type SelectChangedMsg struct {
	Value string
}

// SelectField is a fixed-option dropdown: Enter or Space opens it, arrows
// move the highlight, Enter commits, Esc abandons the browse.
type SelectField struct {
	// Configuration
	Options []string
	Width   int

	open           bool
	selectedIndex  int
	highlightIndex int
	focused        bool
}

// NewSelectField creates a SelectField over the given options. The first
// option starts selected.
func NewSelectField(options []string) SelectField {
	opts := make([]string, len(options))
	copy(opts, options)
	return SelectField{
		Options: opts,
		Width:   30,
	}
}

// WithWidth sets the display width.
func (s SelectField) WithWidth(w int) SelectField {
	s.Width = w
	return s
}

// WithValue pre-selects the given option if present.
func (s SelectField) WithValue(v string) SelectField {
	for i, opt := range s.Options {
		if opt == v {
			s.selectedIndex = i
			break
		}
	}
	return s
}

// Init implements tea.Model.
func (s SelectField) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns updated state.
func (s SelectField) Update(msg tea.Msg) (SelectField, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused || len(s.Options) == 0 {
		return s, nil
	}

	if !s.open {
		switch keyMsg.Type {
		case tea.KeyEnter, tea.KeySpace, tea.KeyDown:
			s.open = true
			s.highlightIndex = s.selectedIndex
		}
		return s, nil
	}

	switch keyMsg.Type {
	case tea.KeyUp:
		if s.highlightIndex > 0 {
			s.highlightIndex--
		}
	case tea.KeyDown:
		if s.highlightIndex < len(s.Options)-1 {
			s.highlightIndex++
		}
	case tea.KeyEnter:
		s.open = false
		if s.highlightIndex != s.selectedIndex {
			s.selectedIndex = s.highlightIndex
			value := s.Options[s.selectedIndex]
			return s, func() tea.Msg {
				return SelectChangedMsg{Value: value}
			}
		}
	case tea.KeyEsc:
		s.open = false
	}
	return s, nil
}

// Value returns the selected option, or empty when there are no options.
func (s SelectField) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.selectedIndex]
}

// IsOpen reports whether the dropdown is showing.
func (s SelectField) IsOpen() bool {
	return s.open
}

// Focus focuses the field.
func (s *SelectField) Focus() {
	s.focused = true
}

// Blur removes focus and closes the dropdown.
func (s *SelectField) Blur() {
	s.focused = false
	s.open = false
}

// Focused returns whether the field has focus.
func (s SelectField) Focused() bool {
	return s.focused
}

// View renders the closed face of the select: the value plus an indicator.
func (s SelectField) View() string {
	th := theme.Current()
	style := lipgloss.NewStyle().Foreground(th.Text())
	indicator := " ▾"
	if s.open {
		indicator = " ▴"
	}
	return style.Render(s.Value()) + lipgloss.NewStyle().Foreground(th.TextMuted()).Render(indicator)
}

// DropdownView renders the option list while open; empty when closed.
func (s SelectField) DropdownView() string {
	if !s.open {
		return ""
	}

	th := theme.Current()
	normal := lipgloss.NewStyle().
		Foreground(th.Text()).
		Background(th.Background()).
		Width(s.Width)
	highlighted := lipgloss.NewStyle().
		Foreground(th.Text()).
		Background(th.BackgroundSecondary()).
		Bold(true).
		Width(s.Width)

	var rows []string
	for i, opt := range s.Options {
		marker := "  "
		if i == s.selectedIndex {
			marker = "✓ "
		}
		style := normal
		if i == s.highlightIndex {
			style = highlighted
		}
		rows = append(rows, style.Render(marker+opt))
	}
	return strings.Join(rows, "\n")
}
