package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tagform/internal/ui/theme"
)

// Styles are computed from the active theme on demand so runtime theme
// cycling takes effect on the next render.

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Primary()).
		Bold(true).
		MarginBottom(1)
}

func styleFieldLabel() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary()).
		Bold(true)
}

func styleFieldBox(focused bool) lipgloss.Style {
	th := theme.Current()
	border := th.BorderNormal()
	if focused {
		border = th.BorderFocused()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func styleFieldError() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Error())
}

func styleHelp() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted()).
		MarginTop(1)
}

func styleSubmitButton(focused bool) lipgloss.Style {
	th := theme.Current()
	if focused {
		return lipgloss.NewStyle().
			Foreground(th.Background()).
			Background(th.Primary()).
			Bold(true).
			Padding(0, 2)
	}
	return lipgloss.NewStyle().
		Foreground(th.TextMuted()).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.BorderNormal())
}

func styleSuccess() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Success()).
		Bold(true)
}

// buildMarkdownRenderer returns a markdown-to-ANSI renderer for the submit
// summary. Unknown or plain styles fall back to bare word wrapping.
func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}

// wrapHelp word-wraps a help line to the view width.
func wrapHelp(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
