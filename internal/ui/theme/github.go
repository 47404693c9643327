package theme

import "github.com/charmbracelet/lipgloss"

// GitHubTheme implements Theme with GitHub's Primer colors.
// https://primer.style/primitives/colors
type GitHubTheme struct{}

func (g GitHubTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"} // blue
}

func (g GitHubTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#8250df", Dark: "#bc8cff"} // purple
}

func (g GitHubTheme) Accent() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"} // yellow
}

func (g GitHubTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"}
}

func (g GitHubTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#bc4c00", Dark: "#db6d28"}
}

func (g GitHubTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"}
}

func (g GitHubTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#79c0ff"}
}

func (g GitHubTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#1f2328", Dark: "#e6edf3"}
}

func (g GitHubTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#656d76", Dark: "#8b949e"}
}

func (g GitHubTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#0d1117"}
}

func (g GitHubTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#eaeef2", Dark: "#161b22"}
}

func (g GitHubTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#d0d7de", Dark: "#30363d"}
}

func (g GitHubTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"}
}

func init() {
	RegisterTheme("github", GitHubTheme{})
}
