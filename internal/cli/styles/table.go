package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bridgehost/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// GrantTableColumns returns columns for the grant log table.
func GrantTableColumns() []table.Column {
	return []table.Column{
		{Title: "When", Width: 10},
		{Title: "Origin", Width: 36},
		{Title: "Requested", Width: 28},
		{Title: "Decision", Width: 9},
		{Title: "Policy", Width: 10},
	}
}

// GrantRow converts a grant record to a table row.
func GrantRow(g *entity.GrantRecord) table.Row {
	origin := g.Origin
	if origin == "" {
		origin = "(unknown)"
	}
	return table.Row{
		RelativeTime(g.CreatedAt),
		origin,
		strings.Join(entity.MediaResourcesToStrings(g.Requested), ", "),
		string(g.Decision),
		string(g.PolicyMode),
	}
}
