package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tagform/internal/config"
	"tagform/internal/debug"
	"tagform/internal/form"
	"tagform/internal/ui/theme"
)

// Config carries startup options from main into the App.
type Config struct {
	Width        int      // Form width; 0 uses the default
	OutputFormat string   // Summary markdown style (rich, light, plain)
	DefaultTags  []string // Initial tag list
	Version      string
}

const defaultFormWidth = 48

// Field keys, also the schema keys.
const (
	fieldTitle    = "title"
	fieldLanguage = "language"
	fieldOwner    = "owner"
	fieldPublic   = "public"
	fieldTags     = "tags"
)

// Focus slots: the five fields in schema order, then the submit button.
const (
	focusTitle = iota
	focusLanguage
	focusOwner
	focusPublic
	focusTags
	focusSubmit
	focusSlots
)

type appMode int

const (
	modeEditing appMode = iota
	modeSubmitted
)

// App is the demonstration form: a text field, a select, a combobox, a
// switch, and the TagInput, validated against a schema on submit.
type App struct {
	cfg    Config
	keys   KeyMap
	schema form.Schema
	values form.Values

	title    textinput.Model
	language SelectField
	owner    ComboBox
	public   SwitchField
	tags     TagInput

	focus     int
	fieldErrs map[string]string
	mode      appMode
	width     int
	height    int
	summary   string
	copied    bool
	renderMD  func(string) string
}

// NewApp builds the form from its schema and the provided config.
func NewApp(cfg Config) *App {
	if cfg.Width <= 0 {
		cfg.Width = defaultFormWidth
	}

	schema := form.Schema{
		Title: "New Project",
		Fields: []form.Field{
			{Key: fieldTitle, Label: "Title", Kind: form.KindText, Required: true, MaxLen: 64, Placeholder: "project name"},
			{Key: fieldLanguage, Label: "Language", Kind: form.KindSelect, Options: []string{"go", "python", "rust", "typescript"}},
			{Key: fieldOwner, Label: "Owner", Kind: form.KindCombo, Required: true, Options: []string{"ada", "grace", "linus", "rob"}, Placeholder: "who owns this?"},
			{Key: fieldPublic, Label: "Public", Kind: form.KindSwitch},
			{Key: fieldTags, Label: "Tags", Kind: form.KindTags, Placeholder: "add tag..."},
		},
	}

	innerWidth := cfg.Width - 4 // border + padding on each side

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = innerWidth
	if f, ok := schema.FieldByKey(fieldTitle); ok {
		ti.Placeholder = f.Placeholder
	}

	langField, _ := schema.FieldByKey(fieldLanguage)
	ownerField, _ := schema.FieldByKey(fieldOwner)
	tagsField, _ := schema.FieldByKey(fieldTags)

	app := &App{
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		schema: schema,
		values: form.Values{},

		title:    ti,
		language: NewSelectField(langField.Options).WithWidth(innerWidth),
		owner:    NewComboBox(ownerField.Options).WithWidth(innerWidth).WithAllowNew(true).WithPlaceholder(ownerField.Placeholder),
		public:   NewSwitchField().WithLabels("public", "private"),
		tags:     NewTagInput(cfg.DefaultTags).WithWidth(innerWidth).WithPlaceholder(tagsField.Placeholder),

		fieldErrs: map[string]string{},
		width:     cfg.Width,
		renderMD:  buildMarkdownRenderer(cfg.OutputFormat, cfg.Width),
	}

	app.values[fieldTitle] = ""
	app.values[fieldLanguage] = app.language.Value()
	app.values[fieldOwner] = ""
	app.values[fieldPublic] = false
	app.values[fieldTags] = app.tags.Tags()

	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.focusCurrent()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case TagsChangedMsg:
		a.values[fieldTags] = msg.Tags
		delete(a.fieldErrs, fieldTags)
		debug.Logf("tags changed: %q (serialized %q)", msg.Tags, msg.Value)
		return a, nil

	case ComboSelectedMsg:
		a.values[fieldOwner] = msg.Value
		delete(a.fieldErrs, fieldOwner)
		if msg.IsNew {
			debug.Logf("owner created: %q", msg.Value)
		}
		return a, nil

	case SelectChangedMsg:
		a.values[fieldLanguage] = msg.Value
		return a, nil

	case SwitchToggledMsg:
		a.values[fieldPublic] = msg.On
		return a, nil
	}

	return a, a.routeToFocused(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys first.
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Theme):
		name := theme.CycleTheme()
		_ = config.SaveTheme(name)
		debug.Logf("theme: %s", name)
		return a, nil
	}

	if a.mode == modeSubmitted {
		return a.handleSummaryKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Next):
		return a, a.moveFocus(1)
	case key.Matches(msg, a.keys.Prev):
		return a, a.moveFocus(-1)
	case key.Matches(msg, a.keys.Submit) && a.focus == focusSubmit:
		a.submit()
		return a, nil
	}

	return a, a.routeToFocused(msg)
}

func (a *App) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Edit):
		a.mode = modeEditing
		a.copied = false
		return a, a.focusCurrent()
	case key.Matches(msg, a.keys.Copy):
		if err := clipboard.WriteAll(a.serializedTags()); err == nil {
			a.copied = true
		}
		return a, nil
	}
	return a, nil
}

// handleMouse forwards left clicks on tag chips to the TagInput so a chip
// can be removed by pointer.
func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.mode != modeEditing || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}
	x, y, ok := a.tagChipOrigin()
	if !ok {
		return a, nil
	}
	return a, a.tags.ClickAt(msg.X-x, msg.Y-y)
}

// routeToFocused delivers a message to the widget that owns the focus.
func (a *App) routeToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.focus {
	case focusTitle:
		a.title, cmd = a.title.Update(msg)
		a.values[fieldTitle] = a.title.Value()
		delete(a.fieldErrs, fieldTitle)
	case focusLanguage:
		a.language, cmd = a.language.Update(msg)
	case focusOwner:
		a.owner, cmd = a.owner.Update(msg)
	case focusPublic:
		a.public, cmd = a.public.Update(msg)
	case focusTags:
		a.tags, cmd = a.tags.Update(msg)
	}
	return cmd
}

// moveFocus blurs the current widget and focuses the next slot, wrapping in
// either direction.
func (a *App) moveFocus(delta int) tea.Cmd {
	a.blurCurrent()
	a.focus = (a.focus + delta + focusSlots) % focusSlots
	return a.focusCurrent()
}

func (a *App) blurCurrent() {
	switch a.focus {
	case focusTitle:
		a.title.Blur()
	case focusLanguage:
		a.language.Blur()
	case focusOwner:
		a.owner.Blur()
	case focusPublic:
		a.public.Blur()
	case focusTags:
		a.tags.Blur()
	}
}

func (a *App) focusCurrent() tea.Cmd {
	switch a.focus {
	case focusTitle:
		return a.title.Focus()
	case focusLanguage:
		a.language.Focus()
	case focusOwner:
		return a.owner.Focus()
	case focusPublic:
		a.public.Focus()
	case focusTags:
		return a.tags.Focus()
	}
	return nil
}

// submit validates the schema; on success it freezes the summary screen.
func (a *App) submit() {
	a.values[fieldTitle] = a.title.Value()
	a.values[fieldOwner] = a.owner.Value()
	a.values[fieldTags] = a.tags.Tags()

	a.fieldErrs = map[string]string{}
	errs := a.schema.Validate(a.values)
	if len(errs) > 0 {
		for _, e := range errs {
			a.fieldErrs[e.Key] = e.Message
		}
		debug.Logf("submit rejected: %d field error(s)", len(errs))
		return
	}

	a.summary = a.buildSummary()
	a.mode = modeSubmitted
	debug.Logf("submitted: title=%q language=%q owner=%q public=%v tags=%q",
		a.values.String(fieldTitle), a.values.String(fieldLanguage),
		a.values.String(fieldOwner), a.values.Bool(fieldPublic),
		a.values.Strings(fieldTags))
}

// buildSummary renders the submitted values as a markdown document.
func (a *App) buildSummary() string {
	visibility := "private"
	if a.values.Bool(fieldPublic) {
		visibility = "public"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.schema.Title)
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Title | %s |\n", a.values.String(fieldTitle))
	fmt.Fprintf(&b, "| Language | %s |\n", a.values.String(fieldLanguage))
	fmt.Fprintf(&b, "| Owner | %s |\n", a.values.String(fieldOwner))
	fmt.Fprintf(&b, "| Visibility | %s |\n", visibility)
	fmt.Fprintf(&b, "| Tags | %s |\n", a.serializedTags())
	return b.String()
}

// serializedTags is the comma-joined plain-text form of the tag list.
func (a *App) serializedTags() string {
	return strings.Join(a.values.Strings(fieldTags), ",")
}

// Values returns the current form values (for testing).
func (a *App) Values() form.Values {
	return a.values
}

// FieldError returns the validation message for a field key, if any.
func (a *App) FieldError(key string) string {
	return a.fieldErrs[key]
}

// Submitted reports whether the summary screen is showing (for testing).
func (a *App) Submitted() bool {
	return a.mode == modeSubmitted
}
