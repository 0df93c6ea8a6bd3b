package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Bold renders section labels and headings
func Bold(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Render(text)
}

// ColorRepoName colors a repository name
func ColorRepoName(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorEnabled colors the mark for an enabled merge strategy
func ColorEnabled(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorValue colors a settings value
func ColorValue(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(text)
}

// ColorNeedsUpdate colors the "needs update" highlights
func ColorNeedsUpdate(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorSuccess colors a per-repository success line
func ColorSuccess(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorFailure colors a per-repository failure line
func ColorFailure(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}
