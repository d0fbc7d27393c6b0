package ui

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `## How BMI is computed

Height is converted to meters (1 ft = 0.3048 m, 1 in = 0.0254 m) and
BMI = weight (kg) / height (m)².

| Category    | BMI range     |
|-------------|---------------|
| Underweight | below 18.5    |
| Normal      | 18.5 to 24.99 |
| Overweight  | 25 to 29.99   |
| Obese       | 30 and above  |

The value is shown with two decimals. The category always uses the exact
value, so 18.499 displays as 18.50 but is still Underweight.
`

const maxHelpWidth = 80

func helpWidth(termWidth int) int {
	if termWidth <= 0 || termWidth-4 > maxHelpWidth {
		return maxHelpWidth
	}
	if termWidth-4 < 20 {
		return 20
	}
	return termWidth - 4
}

// renderHelp renders the help panel. Rendering failures fall back to the
// raw markdown.
func renderHelp(theme Theme, width int) string {
	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
