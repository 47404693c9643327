package theme

import "github.com/charmbracelet/lipgloss"

// Nord color palette
// https://www.nordtheme.com/docs/colors-and-palettes
var nord = struct {
	Night0 string // darkest background
	Night2 string // elevated surfaces
	Night3 string // comments, borders
	Snow0  string // main foreground
	Frost0 string // teal
	Frost1 string // light blue
	Frost3 string // deep blue
	Red    string
	Orange string
	Yellow string
	Green  string
	Purple string
}{
	Night0: "#2e3440",
	Night2: "#434c5e",
	Night3: "#4c566a",
	Snow0:  "#d8dee9",
	Frost0: "#8fbcbb",
	Frost1: "#88c0d0",
	Frost3: "#5e81ac",
	Red:    "#bf616a",
	Orange: "#d08770",
	Yellow: "#ebcb8b",
	Green:  "#a3be8c",
	Purple: "#b48ead",
}

// NordTheme implements Theme with the Nord color palette.
type NordTheme struct{}

func (n NordTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Frost3, Dark: nord.Frost1}
}

func (n NordTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#3b6ea5", Dark: nord.Frost0}
}

func (n NordTheme) Accent() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#b58900", Dark: nord.Yellow}
}

func (n NordTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#a4242e", Dark: nord.Red}
}

func (n NordTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#b35b3b", Dark: nord.Orange}
}

func (n NordTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#5e7a45", Dark: nord.Green}
}

func (n NordTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Frost3, Dark: nord.Frost1}
}

func (n NordTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Night0, Dark: nord.Snow0}
}

func (n NordTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#7b88a1", Dark: nord.Night3}
}

func (n NordTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#eceff4", Dark: nord.Night0}
}

func (n NordTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: nord.Night2}
}

func (n NordTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#c2c9d6", Dark: nord.Night3}
}

func (n NordTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Frost3, Dark: nord.Frost1}
}

func init() {
	RegisterTheme("nord", NordTheme{})
}
