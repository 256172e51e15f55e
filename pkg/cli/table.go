package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Theme defines the color scheme for tables.
type Theme struct {
	Primary lipgloss.Color // Header and border color
	Dim     lipgloss.Color // Footer/help text color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Table is a simple header + rows table rendered with lipgloss.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  string
}

// Render renders the table with DefaultTheme.
func (t Table) Render() string {
	return t.RenderTheme(DefaultTheme)
}

// RenderTheme renders the table with the given theme. Colors are dropped
// automatically when the output is not a terminal.
func (t Table) RenderTheme(th Theme) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(th.Primary).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(th.Primary)).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	out := tbl.Render()
	if t.Title != "" {
		out = lipgloss.NewStyle().Bold(true).Foreground(th.Primary).Render(t.Title) + "\n" + out
	}
	if t.Footer != "" {
		out += "\n" + lipgloss.NewStyle().Foreground(th.Dim).Render(t.Footer)
	}
	return out
}
