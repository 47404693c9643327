package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin palette, Latte for light terminals and Mocha for dark.
// https://catppuccin.com/palette
type CatppuccinTheme struct{}

func (c CatppuccinTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#8839ef", Dark: "#cba6f7"} // mauve
}

func (c CatppuccinTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#04a5e5", Dark: "#89dceb"} // sky
}

func (c CatppuccinTheme) Accent() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"} // yellow
}

func (c CatppuccinTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"} // red
}

func (c CatppuccinTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#fe640b", Dark: "#fab387"} // peach
}

func (c CatppuccinTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"} // green
}

func (c CatppuccinTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94e2d5"} // teal
}

func (c CatppuccinTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"}
}

func (c CatppuccinTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#8c8fa1", Dark: "#6c7086"} // overlay
}

func (c CatppuccinTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#eff1f5", Dark: "#1e1e2e"} // base
}

func (c CatppuccinTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#ccd0da", Dark: "#313244"} // surface0
}

func (c CatppuccinTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#bcc0cc", Dark: "#45475a"} // surface1
}

func (c CatppuccinTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#8839ef", Dark: "#cba6f7"}
}

func init() {
	RegisterTheme("catppuccin", CatppuccinTheme{})
}
