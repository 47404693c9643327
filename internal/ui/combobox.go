package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagform/internal/ui/theme"
)

// ComboBoxState represents the current state of the combo box.
type ComboBoxState int

const (
	// ComboBoxIdle - focused, dropdown closed.
	ComboBoxIdle ComboBoxState = iota
	// ComboBoxOpen - dropdown open, list filtered by the typed text.
	ComboBoxOpen
)

// ComboSelectedMsg is sent when a value is committed.
type ComboSelectedMsg struct {
	Value string
	IsNew bool // True if the value was created, not picked from Options
}

// ComboBox is a single-select autocomplete field: typing filters the option
// list, arrows move the highlight, Enter commits, Esc reverts to the last
// committed value.
type ComboBox struct {
	// Configuration
	Options    []string
	Width      int
	MaxVisible int  // Max dropdown rows (default 5)
	AllowNew   bool // Permit committing text that matches no option

	state          ComboBoxState
	input          textinput.Model
	value          string // Last committed value
	filtered       []string
	highlightIndex int
	scrollOffset   int
	focused        bool
}

// NewComboBox creates a ComboBox over the given options.
func NewComboBox(options []string) ComboBox {
	opts := make([]string, len(options))
	copy(opts, options)

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Width = 30

	return ComboBox{
		Options:    opts,
		Width:      40,
		MaxVisible: 5,
		state:      ComboBoxIdle,
		input:      ti,
		filtered:   opts,
	}
}

// WithPlaceholder sets the placeholder text.
func (c ComboBox) WithPlaceholder(s string) ComboBox {
	c.input.Placeholder = s
	return c
}

// WithWidth sets the display width.
func (c ComboBox) WithWidth(w int) ComboBox {
	c.Width = w
	c.input.Width = w - 2
	return c
}

// WithAllowNew permits committing values not present in Options.
func (c ComboBox) WithAllowNew(allow bool) ComboBox {
	c.AllowNew = allow
	return c
}

// WithValue sets the committed value without emitting a message.
func (c ComboBox) WithValue(v string) ComboBox {
	c.value = v
	c.input.SetValue(v)
	return c
}

// Init implements tea.Model.
func (c ComboBox) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns updated state.
func (c ComboBox) Update(msg tea.Msg) (ComboBox, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	switch keyMsg.Type {
	case tea.KeyDown:
		if c.state == ComboBoxIdle {
			return c.open(), nil
		}
		if c.highlightIndex < len(c.filtered)-1 {
			c.highlightIndex++
			c.adjustScroll()
		}
		return c, nil

	case tea.KeyUp:
		if c.state == ComboBoxOpen && c.highlightIndex > 0 {
			c.highlightIndex--
			c.adjustScroll()
		}
		return c, nil

	case tea.KeyEnter:
		if c.state == ComboBoxIdle {
			return c.commitTyped()
		}
		return c.commitHighlighted()

	case tea.KeyEsc:
		if c.state == ComboBoxOpen {
			c.state = ComboBoxIdle
			return c, nil
		}
		if c.input.Value() != c.value {
			// Revert uncommitted text.
			c.input.SetValue(c.value)
			c.input.CursorEnd()
		}
		return c, nil

	case tea.KeyRunes, tea.KeyBackspace, tea.KeySpace:
		// Typing over a committed value replaces it, IDE-autocomplete style.
		if c.state == ComboBoxIdle && c.value != "" && c.input.Value() == c.value && keyMsg.Type == tea.KeyRunes {
			c.input.SetValue("")
		}
		before := c.input.Value()
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(keyMsg)
		if c.input.Value() != before {
			c.state = ComboBoxOpen
			c.filter()
		}
		return c, cmd
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(keyMsg)
	return c, cmd
}

func (c ComboBox) open() ComboBox {
	c.state = ComboBoxOpen
	c.filtered = c.Options
	c.highlightIndex = 0
	c.scrollOffset = 0
	for i, opt := range c.filtered {
		if opt == c.value {
			c.highlightIndex = i
			break
		}
	}
	c.adjustScroll()
	return c
}

// commitHighlighted commits the highlighted option, or creates a new value
// when nothing matches the filter and AllowNew is set.
func (c ComboBox) commitHighlighted() (ComboBox, tea.Cmd) {
	if c.highlightIndex >= 0 && c.highlightIndex < len(c.filtered) {
		return c.commit(c.filtered[c.highlightIndex], false)
	}
	return c.commitTyped()
}

// commitTyped commits whatever is in the text field. Options take priority;
// unknown text is committed only with AllowNew.
func (c ComboBox) commitTyped() (ComboBox, tea.Cmd) {
	typed := strings.TrimSpace(c.input.Value())
	if typed == "" {
		c.state = ComboBoxIdle
		return c, nil
	}
	for _, opt := range c.Options {
		if strings.EqualFold(opt, typed) {
			return c.commit(opt, false)
		}
	}
	if c.AllowNew {
		return c.commit(typed, true)
	}
	c.state = ComboBoxIdle
	return c, nil
}

func (c ComboBox) commit(value string, isNew bool) (ComboBox, tea.Cmd) {
	c.value = value
	c.input.SetValue(value)
	c.input.CursorEnd()
	c.state = ComboBoxIdle
	return c, func() tea.Msg {
		return ComboSelectedMsg{Value: value, IsNew: isNew}
	}
}

func (c *ComboBox) filter() {
	typed := strings.ToLower(c.input.Value())
	if typed == "" {
		c.filtered = c.Options
		c.highlightIndex = 0
		c.scrollOffset = 0
		return
	}
	c.filtered = nil
	c.highlightIndex = -1
	for _, opt := range c.Options {
		lower := strings.ToLower(opt)
		if strings.Contains(lower, typed) {
			if lower == typed && c.highlightIndex == -1 {
				c.highlightIndex = len(c.filtered)
			}
			c.filtered = append(c.filtered, opt)
		}
	}
	if c.highlightIndex == -1 && len(c.filtered) > 0 {
		c.highlightIndex = 0
	}
	c.scrollOffset = 0
	c.adjustScroll()
}

func (c *ComboBox) adjustScroll() {
	if c.highlightIndex < c.scrollOffset {
		c.scrollOffset = c.highlightIndex
	}
	if c.highlightIndex >= c.scrollOffset+c.MaxVisible {
		c.scrollOffset = c.highlightIndex - c.MaxVisible + 1
	}
	if c.scrollOffset < 0 {
		c.scrollOffset = 0
	}
	maxOffset := len(c.filtered) - c.MaxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.scrollOffset > maxOffset {
		c.scrollOffset = maxOffset
	}
}

// Value returns the last committed value.
func (c ComboBox) Value() string {
	return c.value
}

// State returns the current state (for testing).
func (c ComboBox) State() ComboBoxState {
	return c.state
}

// IsOpen reports whether the dropdown is showing.
func (c ComboBox) IsOpen() bool {
	return c.state == ComboBoxOpen
}

// Focus focuses the text field.
func (c *ComboBox) Focus() tea.Cmd {
	c.focused = true
	return c.input.Focus()
}

// Blur removes focus and closes the dropdown.
func (c *ComboBox) Blur() {
	c.focused = false
	c.state = ComboBoxIdle
	c.input.Blur()
}

// Focused returns whether the combo box is focused.
func (c ComboBox) Focused() bool {
	return c.focused
}

// View renders the text field only. The dropdown is rendered separately via
// DropdownView so the host can composite it over content below the field.
func (c ComboBox) View() string {
	return c.input.View()
}

// DropdownView renders the open dropdown rows, highlight included. Empty
// when the dropdown is closed or nothing matches.
func (c ComboBox) DropdownView() string {
	if c.state != ComboBoxOpen {
		return ""
	}

	th := theme.Current()
	normal := lipgloss.NewStyle().
		Foreground(th.Text()).
		Background(th.Background()).
		Width(c.Width)
	highlighted := lipgloss.NewStyle().
		Foreground(th.Text()).
		Background(th.BackgroundSecondary()).
		Bold(true).
		Width(c.Width)
	newItem := lipgloss.NewStyle().
		Foreground(th.Success()).
		Background(th.Background()).
		Italic(true).
		Width(c.Width)

	if len(c.filtered) == 0 {
		typed := strings.TrimSpace(c.input.Value())
		if c.AllowNew && typed != "" {
			return newItem.Render("+ create " + typed)
		}
		return normal.Render("(no matches)")
	}

	end := c.scrollOffset + c.MaxVisible
	if end > len(c.filtered) {
		end = len(c.filtered)
	}

	var rows []string
	for i := c.scrollOffset; i < end; i++ {
		style := normal
		if i == c.highlightIndex {
			style = highlighted
		}
		rows = append(rows, style.Render(" "+c.filtered[i]))
	}
	return strings.Join(rows, "\n")
}
