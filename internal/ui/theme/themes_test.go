package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// TestAllThemesRegistered verifies that all expected themes are registered.
func TestAllThemesRegistered(t *testing.T) {
	expected := []string{
		"catppuccin",
		"dracula",
		"github",
		"gruvbox",
		"nord",
	}

	available := Available()
	availableMap := make(map[string]bool)
	for _, name := range available {
		availableMap[name] = true
	}

	for _, name := range expected {
		if !availableMap[name] {
			t.Errorf("expected theme %q to be registered, but it was not found", name)
		}
	}
}

// TestSetTheme verifies that theme switching works.
func TestSetTheme(t *testing.T) {
	original := CurrentName()
	defer SetTheme(original)

	if !SetTheme("dracula") {
		t.Fatal("expected SetTheme(dracula) to succeed")
	}
	if CurrentName() != "dracula" {
		t.Errorf("expected current theme dracula, got %q", CurrentName())
	}
	if SetTheme("no-such-theme") {
		t.Error("expected SetTheme to fail for unknown theme")
	}
	if CurrentName() != "dracula" {
		t.Errorf("expected failed switch to keep dracula, got %q", CurrentName())
	}
}

// TestCycleTheme verifies cycling walks the sorted registry and wraps.
func TestCycleTheme(t *testing.T) {
	original := CurrentName()
	defer SetTheme(original)

	names := Available()
	if len(names) == 0 {
		t.Fatal("no themes registered")
	}

	SetTheme(names[0])
	seen := map[string]bool{names[0]: true}
	for i := 1; i < len(names); i++ {
		seen[CycleTheme()] = true
	}
	for _, name := range names {
		if !seen[name] {
			t.Errorf("cycling never reached theme %q", name)
		}
	}
	if next := CycleTheme(); next != names[0] {
		t.Errorf("expected cycle to wrap to %q, got %q", names[0], next)
	}
}

// TestThemeColorsNonEmpty verifies every registered theme returns usable colors.
func TestThemeColorsNonEmpty(t *testing.T) {
	original := CurrentName()
	defer SetTheme(original)

	for _, name := range Available() {
		SetTheme(name)
		th := Current()
		colors := map[string]lipgloss.AdaptiveColor{
			"Primary":             th.Primary(),
			"Secondary":           th.Secondary(),
			"Accent":              th.Accent(),
			"Error":               th.Error(),
			"Warning":             th.Warning(),
			"Success":             th.Success(),
			"Info":                th.Info(),
			"Text":                th.Text(),
			"TextMuted":           th.TextMuted(),
			"Background":          th.Background(),
			"BackgroundSecondary": th.BackgroundSecondary(),
			"BorderNormal":        th.BorderNormal(),
			"BorderFocused":       th.BorderFocused(),
		}
		for role, c := range colors {
			if c.Light == "" || c.Dark == "" {
				t.Errorf("theme %q: color %s has empty variant", name, role)
			}
		}
	}
}
