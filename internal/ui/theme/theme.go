// Package theme provides a semantic color system for the tagform UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors used across the form widgets.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	// Base colors
	Primary() lipgloss.AdaptiveColor   // Main accent (focused borders, title)
	Secondary() lipgloss.AdaptiveColor // Secondary accent (field labels)
	Accent() lipgloss.AdaptiveColor    // Highlights (selected options)

	// Status colors
	Error() lipgloss.AdaptiveColor   // Validation errors, pending-delete chip
	Warning() lipgloss.AdaptiveColor // Warnings, duplicate flash
	Success() lipgloss.AdaptiveColor // Valid/submitted state
	Info() lipgloss.AdaptiveColor    // Chip fill, informational text

	// Text colors
	Text() lipgloss.AdaptiveColor      // Primary text
	TextMuted() lipgloss.AdaptiveColor // Placeholders, help line

	// Surfaces and borders
	Background() lipgloss.AdaptiveColor          // Main background
	BackgroundSecondary() lipgloss.AdaptiveColor // Dropdown highlight rows
	BorderNormal() lipgloss.AdaptiveColor        // Blurred field borders
	BorderFocused() lipgloss.AdaptiveColor       // Active field border
}
