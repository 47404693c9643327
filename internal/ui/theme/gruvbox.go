package theme

import "github.com/charmbracelet/lipgloss"

// GruvboxTheme implements Theme with the Gruvbox color palette.
// https://github.com/morhetz/gruvbox
type GruvboxTheme struct{}

func (g GruvboxTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"} // yellow
}

func (g GruvboxTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#427b58", Dark: "#8ec07c"} // aqua
}

func (g GruvboxTheme) Accent() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#af3a03", Dark: "#fe8019"} // orange
}

func (g GruvboxTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#9d0006", Dark: "#fb4934"}
}

func (g GruvboxTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#af3a03", Dark: "#fe8019"}
}

func (g GruvboxTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"}
}

func (g GruvboxTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#076678", Dark: "#83a598"} // blue
}

func (g GruvboxTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#3c3836", Dark: "#ebdbb2"}
}

func (g GruvboxTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"}
}

func (g GruvboxTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#fbf1c7", Dark: "#282828"}
}

func (g GruvboxTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#ebdbb2", Dark: "#3c3836"}
}

func (g GruvboxTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#d5c4a1", Dark: "#504945"}
}

func (g GruvboxTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"}
}

func init() {
	RegisterTheme("gruvbox", GruvboxTheme{})
}
