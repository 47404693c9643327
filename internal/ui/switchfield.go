package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagform/internal/ui/theme"
)

// SwitchToggledMsg is sent when a switch changes state.
type SwitchToggledMsg struct {
	On bool
}

// SwitchField is a boolean toggle. Space or Enter flips it.
type SwitchField struct {
	OnLabel  string
	OffLabel string

	on      bool
	focused bool
}

// NewSwitchField creates a SwitchField in the off position.
func NewSwitchField() SwitchField {
	return SwitchField{
		OnLabel:  "on",
		OffLabel: "off",
	}
}

// WithValue sets the initial position.
func (s SwitchField) WithValue(on bool) SwitchField {
	s.on = on
	return s
}

// WithLabels overrides the on/off captions.
func (s SwitchField) WithLabels(on, off string) SwitchField {
	s.OnLabel = on
	s.OffLabel = off
	return s
}

// Init implements tea.Model.
func (s SwitchField) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns updated state.
func (s SwitchField) Update(msg tea.Msg) (SwitchField, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return s, nil
	}

	switch keyMsg.Type {
	case tea.KeyEnter, tea.KeySpace, tea.KeyLeft, tea.KeyRight:
		s.on = !s.on
		on := s.on
		return s, func() tea.Msg {
			return SwitchToggledMsg{On: on}
		}
	}
	return s, nil
}

// On returns the current position.
func (s SwitchField) On() bool {
	return s.on
}

// Focus focuses the field.
func (s *SwitchField) Focus() {
	s.focused = true
}

// Blur removes focus.
func (s *SwitchField) Blur() {
	s.focused = false
}

// Focused returns whether the field has focus.
func (s SwitchField) Focused() bool {
	return s.focused
}

// View renders the two positions with the active one highlighted.
func (s SwitchField) View() string {
	th := theme.Current()
	active := lipgloss.NewStyle().
		Foreground(th.Background()).
		Background(th.Success()).
		Bold(true).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(th.TextMuted()).
		Padding(0, 1)

	if s.on {
		return inactive.Render(s.OffLabel) + " " + active.Render(s.OnLabel)
	}
	return active.Background(th.TextMuted()).Render(s.OffLabel) + " " + inactive.Render(s.OnLabel)
}
