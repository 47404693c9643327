package ui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func typeString(t *testing.T, ti TagInput, s string) (TagInput, []tea.Msg) {
	t.Helper()
	var msgs []tea.Msg
	for _, r := range s {
		var cmd tea.Cmd
		ti, cmd = ti.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		msgs = append(msgs, collectMsgs(cmd)...)
	}
	return ti, msgs
}

// collectMsgs executes a command tree and flattens the produced messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func tagsChangedMsgs(msgs []tea.Msg) []TagsChangedMsg {
	var out []TagsChangedMsg
	for _, m := range msgs {
		if tc, ok := m.(TagsChangedMsg); ok {
			out = append(out, tc)
		}
	}
	return out
}

func focusedTagInput(defaults []string) TagInput {
	ti := NewTagInput(defaults)
	ti.Focus()
	return ti
}

func TestTagInput_TypingDelimiterCommits(t *testing.T) {
	ti := focusedTagInput(nil)
	ti, msgs := typeString(t, ti, "go,")

	if !reflect.DeepEqual(ti.Tags(), []string{"go"}) {
		t.Errorf("expected [go], got %v", ti.Tags())
	}
	changes := tagsChangedMsgs(msgs)
	if len(changes) != 1 {
		t.Fatalf("expected 1 TagsChangedMsg, got %d", len(changes))
	}
	if changes[0].Value != "go" {
		t.Errorf("expected serialized value 'go', got %q", changes[0].Value)
	}
}

func TestTagInput_MultipleTagsInOneInput(t *testing.T) {
	ti := focusedTagInput(nil)
	ti, _ = typeString(t, ti, "alpha, beta;gamma ")

	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(ti.Tags(), want) {
		t.Errorf("expected %v, got %v", want, ti.Tags())
	}
	if ti.Editor().Buffer() != "" {
		t.Errorf("expected empty buffer, got %q", ti.Editor().Buffer())
	}
}

func TestTagInput_EnterCommitsBuffer(t *testing.T) {
	ti := focusedTagInput(nil)
	ti, _ = typeString(t, ti, "docs")

	var cmd tea.Cmd
	ti, cmd = ti.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !reflect.DeepEqual(ti.Tags(), []string{"docs"}) {
		t.Errorf("expected [docs], got %v", ti.Tags())
	}
	changes := tagsChangedMsgs(collectMsgs(cmd))
	if len(changes) != 1 {
		t.Fatalf("expected 1 TagsChangedMsg, got %d", len(changes))
	}
	if !reflect.DeepEqual(changes[0].Tags, []string{"docs"}) {
		t.Errorf("expected [docs] in notification, got %v", changes[0].Tags)
	}
}

func TestTagInput_DuplicateEnterFlashes(t *testing.T) {
	ti := focusedTagInput([]string{"docs", "go"})
	ti, _ = typeString(t, ti, "docs")

	ti, _ = ti.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if ti.FlashIndex() != 0 {
		t.Errorf("expected flash index 0, got %d", ti.FlashIndex())
	}
	if !reflect.DeepEqual(ti.Tags(), []string{"docs", "go"}) {
		t.Errorf("expected tags unchanged, got %v", ti.Tags())
	}

	ti, _ = ti.Update(tagFlashClearMsg{})
	if ti.FlashIndex() != -1 {
		t.Errorf("expected flash cleared, got %d", ti.FlashIndex())
	}
}

func TestTagInput_TwoPhaseBackspace(t *testing.T) {
	ti := focusedTagInput([]string{"a", "b", "c"})

	ti, _ = ti.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if !reflect.DeepEqual(ti.Tags(), []string{"a", "b", "c"}) {
		t.Errorf("expected tags unchanged after arming, got %v", ti.Tags())
	}
	if !ti.Editor().PendingDelete() {
		t.Fatal("expected pending delete armed")
	}

	var cmd tea.Cmd
	ti, cmd = ti.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if !reflect.DeepEqual(ti.Tags(), []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", ti.Tags())
	}
	if len(tagsChangedMsgs(collectMsgs(cmd))) != 1 {
		t.Error("expected a change notification for the pop")
	}
}

func TestTagInput_BackspaceWhileTypingEditsText(t *testing.T) {
	ti := focusedTagInput([]string{"keep"})
	ti, _ = typeString(t, ti, "dra")

	ti, _ = ti.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if ti.Editor().Buffer() != "dr" {
		t.Errorf("expected buffer 'dr', got %q", ti.Editor().Buffer())
	}
	if !reflect.DeepEqual(ti.Tags(), []string{"keep"}) {
		t.Errorf("expected tags unchanged, got %v", ti.Tags())
	}
}

func TestTagInput_TypingInterruptsPendingDelete(t *testing.T) {
	ti := focusedTagInput([]string{"a", "b"})

	ti, _ = ti.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	ti, _ = typeString(t, ti, "x")
	if ti.Editor().PendingDelete() {
		t.Error("expected typing to disarm pending delete")
	}
	if !reflect.DeepEqual(ti.Tags(), []string{"a", "b"}) {
		t.Errorf("expected tags unchanged, got %v", ti.Tags())
	}
}

func TestTagInput_ClickRemovesChip(t *testing.T) {
	ti := focusedTagInput([]string{"alpha", "beta", "gamma"})
	ti.Width = 200 // keep everything on one line

	spans := ti.chipLayout()
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}

	cmd := ti.ClickAt(spans[1].x0, 0)
	if !reflect.DeepEqual(ti.Tags(), []string{"alpha", "gamma"}) {
		t.Errorf("expected [alpha gamma], got %v", ti.Tags())
	}
	if len(tagsChangedMsgs(collectMsgs(cmd))) != 1 {
		t.Error("expected a change notification for the removal")
	}

	// A miss is a no-op.
	if cmd := ti.ClickAt(0, 99); cmd != nil {
		t.Error("expected nil cmd for a miss")
	}
	if !reflect.DeepEqual(ti.Tags(), []string{"alpha", "gamma"}) {
		t.Errorf("expected tags unchanged after miss, got %v", ti.Tags())
	}
}

func TestTagInput_ChipLayoutWraps(t *testing.T) {
	ti := NewTagInput([]string{"first", "second", "third"}).WithWidth(12)

	spans := ti.chipLayout()
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[0].line == spans[2].line {
		t.Error("expected wrapping across lines at width 12")
	}
	for _, s := range spans {
		if s.x1 > 12+len("first")+2 {
			t.Errorf("span %v extends past any plausible row width", s)
		}
	}
}

func TestTagInput_ViewMarksDoomedChip(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	ti := focusedTagInput([]string{"a", "b"})
	base := ti.View()

	ti, _ = ti.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	armed := ti.View()

	stripped := ansi.Strip(armed)
	for _, tag := range []string{"a", "b"} {
		if !strings.Contains(stripped, tag) {
			t.Errorf("expected view to contain %q:\n%s", tag, stripped)
		}
	}

	// The armed chip renders with the error background, so the raw frames
	// must differ even though the text content is identical.
	if armed == base {
		t.Error("expected armed rendering to differ from normal rendering")
	}
}

func TestTagInput_BlurDisarmsPendingDelete(t *testing.T) {
	ti := focusedTagInput([]string{"a"})
	ti, _ = ti.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	ti.Blur()
	if ti.Editor().PendingDelete() {
		t.Error("expected blur to disarm pending delete")
	}
	if ti.Focused() {
		t.Error("expected widget to be blurred")
	}
}
