package ui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func focusedComboBox(options []string) ComboBox {
	c := NewComboBox(options)
	c.Focus()
	return c
}

func pressKey(c ComboBox, t tea.KeyType) (ComboBox, tea.Cmd) {
	return c.Update(tea.KeyMsg{Type: t})
}

func typeRunes(c ComboBox, s string) ComboBox {
	for _, r := range s {
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return c
}

func TestComboBox_DownOpensDropdown(t *testing.T) {
	c := focusedComboBox([]string{"go", "rust", "zig"})
	if c.IsOpen() {
		t.Fatal("expected dropdown closed initially")
	}
	c, _ = pressKey(c, tea.KeyDown)
	if !c.IsOpen() {
		t.Error("expected Down to open the dropdown")
	}
	if !reflect.DeepEqual(c.filtered, []string{"go", "rust", "zig"}) {
		t.Errorf("expected full option list, got %v", c.filtered)
	}
}

func TestComboBox_EnterCommitsHighlighted(t *testing.T) {
	c := focusedComboBox([]string{"go", "rust", "zig"})
	c, _ = pressKey(c, tea.KeyDown)
	c, _ = pressKey(c, tea.KeyDown) // highlight "rust"

	var cmd tea.Cmd
	c, cmd = pressKey(c, tea.KeyEnter)
	if c.Value() != "rust" {
		t.Errorf("expected value 'rust', got %q", c.Value())
	}
	if c.IsOpen() {
		t.Error("expected dropdown closed after commit")
	}

	msgs := collectMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	sel, ok := msgs[0].(ComboSelectedMsg)
	if !ok {
		t.Fatalf("expected ComboSelectedMsg, got %T", msgs[0])
	}
	if sel.Value != "rust" || sel.IsNew {
		t.Errorf("expected existing value rust, got %+v", sel)
	}
}

func TestComboBox_TypingFilters(t *testing.T) {
	c := focusedComboBox([]string{"go", "golang", "rust"})
	c = typeRunes(c, "go")

	if !c.IsOpen() {
		t.Fatal("expected typing to open the dropdown")
	}
	if !reflect.DeepEqual(c.filtered, []string{"go", "golang"}) {
		t.Errorf("expected [go golang], got %v", c.filtered)
	}
	// Exact match wins the highlight over the first substring match.
	if c.highlightIndex != 0 {
		t.Errorf("expected exact match highlighted, got index %d", c.highlightIndex)
	}
}

func TestComboBox_CommitTypedMatchesOptionCaseInsensitive(t *testing.T) {
	c := focusedComboBox([]string{"Go", "Rust"})
	c = typeRunes(c, "go")

	var cmd tea.Cmd
	c, cmd = pressKey(c, tea.KeyEnter)
	if c.Value() != "Go" {
		t.Errorf("expected canonical option 'Go', got %q", c.Value())
	}
	msgs := collectMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if sel := msgs[0].(ComboSelectedMsg); sel.IsNew {
		t.Error("expected existing option, got IsNew")
	}
}

func TestComboBox_AllowNewCreatesValue(t *testing.T) {
	c := focusedComboBox([]string{"go", "rust"}).WithAllowNew(true)
	c = typeRunes(c, "elixir")

	if len(c.filtered) != 0 {
		t.Fatalf("expected no matches, got %v", c.filtered)
	}

	var cmd tea.Cmd
	c, cmd = pressKey(c, tea.KeyEnter)
	if c.Value() != "elixir" {
		t.Errorf("expected value 'elixir', got %q", c.Value())
	}
	msgs := collectMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if sel := msgs[0].(ComboSelectedMsg); !sel.IsNew {
		t.Error("expected IsNew for created value")
	}
}

func TestComboBox_UnknownValueRejectedWithoutAllowNew(t *testing.T) {
	c := focusedComboBox([]string{"go", "rust"})
	c = typeRunes(c, "elixir")

	var cmd tea.Cmd
	c, cmd = pressKey(c, tea.KeyEnter)
	if c.Value() != "" {
		t.Errorf("expected no committed value, got %q", c.Value())
	}
	if msgs := collectMsgs(cmd); len(msgs) != 0 {
		t.Errorf("expected no messages, got %v", msgs)
	}
}

func TestComboBox_EscClosesThenReverts(t *testing.T) {
	c := focusedComboBox([]string{"go", "rust"}).WithValue("go")
	c = typeRunes(c, "ru")

	c, _ = pressKey(c, tea.KeyEsc)
	if c.IsOpen() {
		t.Fatal("expected first Esc to close the dropdown")
	}

	c, _ = pressKey(c, tea.KeyEsc)
	if c.input.Value() != "go" {
		t.Errorf("expected second Esc to revert text to 'go', got %q", c.input.Value())
	}
}

func TestComboBox_TypingReplacesCommittedValue(t *testing.T) {
	c := focusedComboBox([]string{"go", "rust"}).WithValue("go")
	c = typeRunes(c, "r")
	if c.input.Value() != "r" {
		t.Errorf("expected typing to replace committed value, got %q", c.input.Value())
	}
}

func TestComboBox_ScrollKeepsHighlightVisible(t *testing.T) {
	opts := []string{"one", "two", "three", "four", "five", "six", "seven"}
	c := focusedComboBox(opts)
	c.MaxVisible = 3

	c, _ = pressKey(c, tea.KeyDown) // open
	for i := 0; i < 6; i++ {
		c, _ = pressKey(c, tea.KeyDown)
	}
	if c.highlightIndex != 6 {
		t.Fatalf("expected highlight 6, got %d", c.highlightIndex)
	}
	if c.scrollOffset != 4 {
		t.Errorf("expected scroll offset 4, got %d", c.scrollOffset)
	}

	for i := 0; i < 6; i++ {
		c, _ = pressKey(c, tea.KeyUp)
	}
	if c.scrollOffset != 0 {
		t.Errorf("expected scroll offset 0, got %d", c.scrollOffset)
	}
}
