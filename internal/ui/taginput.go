package ui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagform/internal/ui/theme"
)

// TagsChangedMsg is sent to the host after every tag list mutation, carrying
// the full ordered list and its comma-joined serialized form.
type TagsChangedMsg struct {
	Tags  []string
	Value string
}

// tagFlashClearMsg clears the duplicate-flash state.
type tagFlashClearMsg struct{}

const tagFlashDuration = 150 * time.Millisecond

// tagNotifications buffers TagEditor change callbacks so Update can drain
// them into Bubble Tea messages. The editor notifies synchronously; the host
// receives the message on the next cycle.
type tagNotifications struct {
	msgs []TagsChangedMsg
}

func (n *tagNotifications) record(tags []string) {
	n.msgs = append(n.msgs, TagsChangedMsg{Tags: tags, Value: strings.Join(tags, ",")})
}

// TagInput adapts a TagEditor to Bubble Tea: it owns the entry textinput,
// renders committed tags as pill chips, and translates key and pointer
// events into editor operations. The editor's buffer is the single source of
// truth; the textinput is re-synced after every event.
type TagInput struct {
	// Configuration
	Width int // Available width for chip wrapping (default 40)

	editor     *TagEditor
	pending    *tagNotifications
	input      textinput.Model
	focused    bool
	flashIndex int // Chip to flash on duplicate Enter (-1 = none)
}

// NewTagInput creates a TagInput seeded with the given default tags.
func NewTagInput(defaults []string) TagInput {
	pending := &tagNotifications{}
	ti := textinput.New()
	ti.Placeholder = "add tag..."
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 20

	return TagInput{
		Width:      40,
		editor:     NewTagEditor(defaults, pending.record),
		pending:    pending,
		input:      ti,
		flashIndex: -1,
	}
}

// WithWidth sets the available width for chip wrapping.
func (t TagInput) WithWidth(w int) TagInput {
	t.Width = w
	return t
}

// WithPlaceholder sets the entry field placeholder.
func (t TagInput) WithPlaceholder(s string) TagInput {
	t.input.Placeholder = s
	return t
}

// Init implements tea.Model.
func (t TagInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and returns updated state.
func (t TagInput) Update(msg tea.Msg) (TagInput, tea.Cmd) {
	switch msg := msg.(type) {
	case tagFlashClearMsg:
		t.flashIndex = -1
		return t, nil

	case tea.KeyMsg:
		if !t.focused {
			return t, nil
		}
		return t.handleKey(msg)
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t TagInput) handleKey(msg tea.KeyMsg) (TagInput, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.Type {
	case tea.KeyEnter:
		// Flash the existing chip when Enter re-commits a duplicate. The
		// editor itself treats it as a no-op.
		if buf := strings.TrimSpace(t.editor.Buffer()); buf != "" && t.editor.Contains(buf) {
			t.flashIndex = t.indexOf(buf)
			cmds = append(cmds, tagFlashCmd())
		}
		t.editor.HandleKeyDown(TagKeyEnter)
		t.syncInput()
		return t, tea.Batch(append(cmds, t.drainNotifications()...)...)

	case tea.KeyBackspace:
		if t.editor.HandleKeyDown(TagKeyBackspace) {
			// Two-phase delete consumed the key; the textinput never sees it.
			return t, tea.Batch(t.drainNotifications()...)
		}
		return t.forwardToInput(msg)

	case tea.KeyCtrlV:
		// Paste from the system clipboard through the same text-change path
		// as typing, so delimiters split into tags immediately.
		if pasted, err := clipboard.ReadAll(); err == nil && pasted != "" {
			t.editor.HandleKeyDown(TagKeyOther)
			t.editor.HandleTextChange(t.input.Value() + pasted)
			t.syncInput()
			return t, tea.Batch(t.drainNotifications()...)
		}
		return t, nil

	default:
		t.editor.HandleKeyDown(TagKeyOther)
		return t.forwardToInput(msg)
	}
}

// forwardToInput lets the textinput apply the key, then feeds the resulting
// full text back through the editor so delimiters commit tags.
func (t TagInput) forwardToInput(msg tea.KeyMsg) (TagInput, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	t.editor.HandleTextChange(t.input.Value())
	t.syncInput()

	cmds := append([]tea.Cmd{cmd}, t.drainNotifications()...)
	return t, tea.Batch(cmds...)
}

// syncInput copies the editor's buffer back into the textinput.
func (t *TagInput) syncInput() {
	if t.input.Value() != t.editor.Buffer() {
		t.input.SetValue(t.editor.Buffer())
		t.input.CursorEnd()
	}
}

// drainNotifications converts queued editor callbacks into host messages.
func (t TagInput) drainNotifications() []tea.Cmd {
	msgs := t.pending.msgs
	t.pending.msgs = nil
	cmds := make([]tea.Cmd, 0, len(msgs))
	for _, m := range msgs {
		m := m
		cmds = append(cmds, func() tea.Msg { return m })
	}
	return cmds
}

func (t TagInput) indexOf(tag string) int {
	for i, existing := range t.editor.Tags() {
		if existing == tag {
			return i
		}
	}
	return -1
}

// ClickAt removes the chip under the given widget-local coordinates. The
// host translates terminal mouse coordinates into the widget's frame before
// calling. Clicks that miss every chip are no-ops. The returned commands
// carry the change notification, if any.
func (t *TagInput) ClickAt(x, y int) tea.Cmd {
	for _, span := range t.chipLayout() {
		if span.line == y && x >= span.x0 && x < span.x1 {
			t.editor.RemoveTag(t.editor.Tags()[span.index])
			return tea.Batch(t.drainNotifications()...)
		}
	}
	return nil
}

// RemoveTag removes a tag by value, as if its chip had been clicked.
func (t *TagInput) RemoveTag(tag string) tea.Cmd {
	t.editor.RemoveTag(tag)
	return tea.Batch(t.drainNotifications()...)
}

// Tags returns a copy of the committed tag list.
func (t TagInput) Tags() []string {
	return t.editor.Tags()
}

// Value returns the comma-joined serialized tag list.
func (t TagInput) Value() string {
	return t.editor.Value()
}

// Editor exposes the underlying state machine for hosts that drive it
// directly.
func (t TagInput) Editor() *TagEditor {
	return t.editor
}

// Focus focuses the entry field.
func (t *TagInput) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

// Blur removes focus and disarms a pending delete.
func (t *TagInput) Blur() {
	t.focused = false
	t.editor.HandleKeyDown(TagKeyOther)
	t.input.Blur()
}

// Focused returns whether the widget has focus.
func (t TagInput) Focused() bool {
	return t.focused
}

// FlashIndex returns the chip index currently flashing (for testing).
func (t TagInput) FlashIndex() int {
	return t.flashIndex
}

// chipSpan records where a chip lands in the wrapped chip block.
type chipSpan struct {
	index int
	line  int
	x0    int // inclusive
	x1    int // exclusive
}

// chipLayout computes chip positions for the current tags and width. Used by
// both View and ClickAt so rendering and hit-testing agree.
func (t TagInput) chipLayout() []chipSpan {
	var spans []chipSpan
	line, x := 0, 0
	for i, tag := range t.editor.Tags() {
		w := lipgloss.Width(renderTagChip(tag, tagChipNormal))
		needed := w
		if x > 0 {
			needed++ // space separator
		}
		if t.Width > 0 && x+needed > t.Width && x > 0 {
			line++
			x = 0
			needed = w
		}
		start := x
		if x > 0 {
			start++
		}
		spans = append(spans, chipSpan{index: i, line: line, x0: start, x1: start + w})
		x = start + w
	}
	return spans
}

// View renders the chip block with the entry field on the final line.
func (t TagInput) View() string {
	tags := t.editor.Tags()

	var lines []string
	var current []string
	for i, tag := range tags {
		state := tagChipNormal
		switch {
		case t.editor.UpForDeletion(i):
			state = tagChipDoomed
		case t.flashIndex == i:
			state = tagChipFlash
		}
		chip := renderTagChip(tag, state)

		width := 0
		for _, c := range current {
			width += lipgloss.Width(c) + 1
		}
		if t.Width > 0 && len(current) > 0 && width+lipgloss.Width(chip) > t.Width {
			lines = append(lines, strings.Join(current, " "))
			current = nil
		}
		current = append(current, chip)
	}

	entry := t.input.View()
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " ")+" "+entry)
	} else {
		lines = append(lines, entry)
	}
	return strings.Join(lines, "\n")
}

func tagFlashCmd() tea.Cmd {
	return tea.Tick(tagFlashDuration, func(_ time.Time) tea.Msg {
		return tagFlashClearMsg{}
	})
}

// Chip visual states.
type tagChipState int

const (
	tagChipNormal tagChipState = iota
	tagChipDoomed // armed for the second Backspace
	tagChipFlash  // duplicate re-add feedback
)

// Powerline characters for pill-shaped chips.
const (
	tagPillLeft  = "\ue0b6" // Left half-circle (rounded left edge)
	tagPillRight = "\ue0b4" // Right half-circle (rounded right edge)
)

// renderTagChip renders a tag as a pill-shaped chip using powerline glyphs.
func renderTagChip(tag string, state tagChipState) string {
	var bg, fg lipgloss.TerminalColor

	th := theme.Current()
	switch state {
	case tagChipDoomed:
		bg = th.Error()
		fg = th.Text()
	case tagChipFlash:
		bg = th.Warning()
		fg = th.Text()
	default:
		bg = th.Info()
		fg = th.Background()
	}

	leftCap := lipgloss.NewStyle().Foreground(bg).Render(tagPillLeft)
	label := lipgloss.NewStyle().Foreground(fg).Background(bg)
	if state != tagChipNormal {
		label = label.Bold(true)
	}
	rightCap := lipgloss.NewStyle().Foreground(bg).Render(tagPillRight)

	return leftCap + label.Render(tag) + rightCap
}
