package ui

import (
	"strings"
)

// fieldLayout records where a field's widget content lands in the frame.
type fieldLayout struct {
	key        string
	contentRow int // first row of the widget inside its box
	height     int // widget view height in rows
}

// layout walks the same block structure View emits and records per-field
// content rows, so pointer hit-testing and dropdown placement agree with the
// render: title plus margin, then per field a label row, a bordered box, and
// an error row when validation failed.
func (a *App) layout() []fieldLayout {
	row := 2
	var out []fieldLayout
	for _, f := range a.schema.Fields {
		h := a.widgetHeight(f.Key)
		out = append(out, fieldLayout{key: f.Key, contentRow: row + 2, height: h})
		row += 1 + h + 2
		if a.fieldErrs[f.Key] != "" {
			row++
		}
	}
	return out
}

// widgetHeight is 1 for single-line widgets; the tag field grows as its chips
// wrap.
func (a *App) widgetHeight(key string) int {
	if key == fieldTags {
		return strings.Count(a.tags.View(), "\n") + 1
	}
	return 1
}

// tagChipOrigin returns the terminal position of the tag chip block. The x
// offset accounts for the box border and padding.
func (a *App) tagChipOrigin() (int, int, bool) {
	for _, fl := range a.layout() {
		if fl.key == fieldTags {
			return 2, fl.contentRow, true
		}
	}
	return 0, 0, false
}

// View implements tea.Model.
func (a *App) View() string {
	if a.mode == modeSubmitted {
		return a.summaryView()
	}

	base := a.formView()
	overlay, x, y := a.dropdownOverlay()
	if overlay == "" {
		return base
	}

	// Composite the open dropdown over the rows beneath its field.
	height := strings.Count(base, "\n") + 1
	if needed := y + strings.Count(overlay, "\n") + 1; needed > height {
		height = needed
	}
	canvas := NewCanvas(a.width, height)
	canvas.DrawStringAt(0, 0, base)
	canvas.DrawStringAt(x, y, overlay)
	return canvas.Render()
}

func (a *App) formView() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render(a.schema.Title))

	for _, f := range a.schema.Fields {
		focused := a.focus == a.focusSlot(f.Key)
		b.WriteString("\n" + styleFieldLabel().Render(f.Label))
		b.WriteString("\n" + styleFieldBox(focused).Width(a.width-2).Render(a.widgetView(f.Key)))
		if msg := a.fieldErrs[f.Key]; msg != "" {
			b.WriteString("\n" + styleFieldError().Render("✗ "+msg))
		}
	}

	b.WriteString("\n\n" + styleSubmitButton(a.focus == focusSubmit).Render("Submit"))

	help := helpLine(a.keys.Next, a.keys.Submit, a.keys.Theme, a.keys.Quit)
	if a.cfg.Version != "" {
		help += " · v" + a.cfg.Version
	}
	b.WriteString("\n" + styleHelp().Render(wrapHelp(help, a.width)))
	return b.String()
}

func (a *App) widgetView(key string) string {
	switch key {
	case fieldTitle:
		return a.title.View()
	case fieldLanguage:
		return a.language.View()
	case fieldOwner:
		return a.owner.View()
	case fieldPublic:
		return a.public.View()
	case fieldTags:
		return a.tags.View()
	}
	return ""
}

func (a *App) focusSlot(key string) int {
	switch key {
	case fieldTitle:
		return focusTitle
	case fieldLanguage:
		return focusLanguage
	case fieldOwner:
		return focusOwner
	case fieldPublic:
		return focusPublic
	case fieldTags:
		return focusTags
	}
	return -1
}

// dropdownOverlay returns the open dropdown view, if any, with the position
// it should be painted at: directly under the owning field's input row.
func (a *App) dropdownOverlay() (string, int, int) {
	var view, key string
	switch {
	case a.language.IsOpen():
		view, key = a.language.DropdownView(), fieldLanguage
	case a.owner.IsOpen():
		view, key = a.owner.DropdownView(), fieldOwner
	}
	if view == "" {
		return "", 0, 0
	}
	for _, fl := range a.layout() {
		if fl.key == key {
			return view, 2, fl.contentRow + 1
		}
	}
	return "", 0, 0
}

func (a *App) summaryView() string {
	var b strings.Builder
	b.WriteString(a.renderMD(a.summary))
	b.WriteString("\n\n")
	if a.copied {
		b.WriteString(styleSuccess().Render("✓ tags copied") + "\n")
	}
	b.WriteString(styleHelp().Render(wrapHelp(helpLine(a.keys.Edit, a.keys.Copy, a.keys.Close), a.width)))
	return b.String()
}
