// Package ui provides the terminal form host for bmicalc and its styling.
// Light and dark palettes share the same semantic colors.
package ui

import (
	"os"
	"strconv"
	"strings"

	"bmicalc/internal/bmi"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#3f51b5") // Indigo
	LightAccent     = lipgloss.Color("#7b1fa2") // Purple
	LightMuted      = lipgloss.Color("#8a94a6")
	LightBorder     = lipgloss.Color("#c5cad3")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#1c1410") // Brown
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#818cf8") // Indigo 400
	DarkAccent     = lipgloss.Color("#ec4899") // Pink
	DarkMuted      = lipgloss.Color("#9ca3af")
	DarkBorder     = lipgloss.Color("#4b5563")
	DarkCard       = lipgloss.Color("#2a1f18")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935") // Red
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Warning     = lipgloss.Color("#FFC107") // Yellow
	Info        = lipgloss.Color("#2196F3") // Blue
)

// Theme holds the current color scheme
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme guesses from the terminal environment, defaulting to light.
func DetectTheme() Theme {
	// Format is usually "foreground;background"; 0-6 and 8 are dark backgrounds.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("BMICALC_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// ThemeByName resolves a ui.theme config value. "auto" and unknown names
// fall back to DetectTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Card   lipgloss.Style
	Footer lipgloss.Style

	// Text
	Title       lipgloss.Style
	Description lipgloss.Style
	Label       lipgloss.Style
	Muted       lipgloss.Style

	// Inputs
	Prompt       lipgloss.Style
	Input        lipgloss.Style
	Placeholder  lipgloss.Style
	FocusedField lipgloss.Style
	BlurredField lipgloss.Style

	// Trigger
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Output
	Error    lipgloss.Style
	BMIValue lipgloss.Style
	Category lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(30)

	button := lipgloss.NewStyle().
		Padding(0, 3).
		MarginTop(1).
		Bold(true)

	return Styles{
		Theme: theme,

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 3),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Description: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Placeholder: lipgloss.NewStyle().
			Foreground(theme.Muted),

		FocusedField: field.BorderForeground(theme.Primary),

		BlurredField: field.BorderForeground(theme.Border),

		Button: button.
			Foreground(theme.Foreground).
			Background(theme.Card),

		ButtonFocused: button.
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true).
			MarginTop(1),

		BMIValue: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginTop(1),

		Category: lipgloss.NewStyle().
			Bold(true),
	}
}

// CategoryColor picks the semantic color for a BMI band.
func CategoryColor(c bmi.Category) lipgloss.Color {
	switch c {
	case bmi.Underweight:
		return Info
	case bmi.Normal:
		return Success
	case bmi.Overweight:
		return Warning
	default:
		return Destructive
	}
}

// RenderCategory renders a category label in its band color.
func (s Styles) RenderCategory(c bmi.Category) string {
	return s.Category.Foreground(CategoryColor(c)).Render(string(c))
}
