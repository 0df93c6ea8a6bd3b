package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"repokit.dev/repokit/internal/settings"
)

const (
	enabledMark = "✓"
	absentMark  = "—"
)

var settingsTableHeaders = []string{
	"Repository",
	"Squash",
	"Squash Title",
	"Squash Msg",
	"Merge",
	"Merge Title",
	"Merge Msg",
	"Rebase",
}

// SettingsRow is one repository entry in the verbose settings table
type SettingsRow struct {
	Name     string
	Settings settings.MergeSettings
}

// RenderSettingsTable renders one line per repository plus a header,
// with enabled strategies marked and unreported values dimmed
func RenderSettingsTable(rows []SettingsRow) []string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		s := row.Settings
		cells = append(cells, []string{
			row.Name,
			mark(s.SquashAllowed),
			orAbsent(string(s.SquashTitle)),
			orAbsent(string(s.SquashMessage)),
			mark(s.MergeAllowed),
			orAbsent(string(s.MergeTitle)),
			orAbsent(string(s.MergeMessage)),
			mark(s.RebaseAllowed),
		})
	}

	widths := make([]int, len(settingsTableHeaders))
	for i, header := range settingsTableHeaders {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	separator := make([]string, len(widths))
	for i, width := range widths {
		separator[i] = strings.Repeat("-", width)
	}

	lines := make([]string, 0, len(cells)+2)
	lines = append(lines, renderTableRow(settingsTableHeaders, widths, nil))
	lines = append(lines, renderTableRow(separator, widths, nil))
	for _, row := range cells {
		lines = append(lines, renderTableRow(row, widths, colorizeSettingsCell))
	}
	return lines
}

func renderTableRow(row []string, widths []int, colorize func(col int, cell string) string) string {
	parts := make([]string, len(row))
	for i, cell := range row {
		padding := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		if colorize != nil {
			cell = colorize(i, cell)
		}
		parts[i] = cell + padding
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func colorizeSettingsCell(col int, cell string) string {
	switch {
	case cell == enabledMark:
		return ColorEnabled(cell)
	case cell == absentMark:
		return ColorDim(cell)
	case col == 0:
		return ColorRepoName(cell)
	}
	return cell
}

func mark(enabled bool) string {
	if enabled {
		return enabledMark
	}
	return absentMark
}

func orAbsent(value string) string {
	if value == "" {
		return absentMark
	}
	return value
}
