package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/cellbuf"
)

// Canvas composes lipgloss-rendered strings into a cell buffer so the open
// dropdown of a select or combo field can be painted over the form rows
// below it before the frame goes back to Bubble Tea as a string.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

// NewCanvas creates a canvas of the given size. Dimensions are clamped to at
// least one cell.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// DrawStringAt writes the provided block starting at x,y. Newlines are
// normalized so each line begins at column 0 relative to x.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	for i, line := range splitCanvasLines(content) {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render returns the composed frame as a newline-delimited string.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func splitCanvasLines(content string) []string {
	if content == "" {
		return nil
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}
