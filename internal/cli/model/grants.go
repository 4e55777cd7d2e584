// Package model holds the Bubble Tea models behind the interactive CLI views.
package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bridgehost/internal/cli/styles"
	"github.com/bnema/bridgehost/internal/domain/entity"
)

// GrantLister is the part of the grant log the view needs.
type GrantLister interface {
	List(ctx context.Context, origin string, limit int) ([]*entity.GrantRecord, error)
	Purge(ctx context.Context, origin string) (int64, error)
}

// GrantsModel browses the in-page grant log.
// x purges the selected origin, r reloads.
type GrantsModel struct {
	ctx    context.Context
	grants GrantLister
	theme  *styles.Theme
	origin string
	limit  int

	records []*entity.GrantRecord
	table   table.Model
	loading bool
	status  string
	err     error
	width   int
	height  int
}

// NewGrantsModel creates the view. origin filters the log when set.
func NewGrantsModel(ctx context.Context, theme *styles.Theme, grants GrantLister, origin string, limit int) GrantsModel {
	return GrantsModel{
		ctx:     ctx,
		grants:  grants,
		theme:   theme,
		origin:  origin,
		limit:   limit,
		loading: true,
		width:   100,
		height:  24,
	}
}

type grantsLoadedMsg struct {
	records []*entity.GrantRecord
	err     error
}

type grantsPurgedMsg struct {
	origin string
	n      int64
	err    error
}

// Init implements tea.Model.
func (m GrantsModel) Init() tea.Cmd {
	return m.load
}

func (m GrantsModel) load() tea.Msg {
	records, err := m.grants.List(m.ctx, m.origin, m.limit)
	return grantsLoadedMsg{records: records, err: err}
}

func (m GrantsModel) purge(origin string) tea.Cmd {
	return func() tea.Msg {
		n, err := m.grants.Purge(m.ctx, origin)
		return grantsPurgedMsg{origin: origin, n: n, err: err}
	}
}

// Update implements tea.Model.
func (m GrantsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.load
		case "x":
			if rec := m.Selected(); rec != nil && rec.Origin != "" {
				return m, m.purge(rec.Origin)
			}
			return m, nil
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case grantsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.records = msg.records
			m.rebuildTable()
		}

	case grantsPurgedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf("purged %d entries for %s", msg.n, msg.origin)
		m.loading = true
		return m, m.load
	}

	return m, nil
}

// Selected returns the record under the cursor, or nil.
func (m GrantsModel) Selected() *entity.GrantRecord {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.records) {
		return nil
	}
	return m.records[i]
}

// Records returns the loaded records.
func (m GrantsModel) Records() []*entity.GrantRecord {
	return m.records
}

// Err returns the last load or purge error.
func (m GrantsModel) Err() error {
	return m.err
}

func (m *GrantsModel) rebuildTable() {
	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = styles.GrantRow(r)
	}

	tableHeight := len(rows)
	if tableHeight > m.height-8 {
		tableHeight = m.height - 8
	}
	if tableHeight < 3 {
		tableHeight = 3
	}

	cursor := m.table.Cursor()
	m.table = styles.NewStyledTable(m.theme, styles.GrantTableColumns(), rows, m.width-4, tableHeight)
	if cursor > 0 && cursor < len(rows) {
		m.table.SetCursor(cursor)
	}
}

// View implements tea.Model.
func (m GrantsModel) View() string {
	t := m.theme

	if m.loading && m.records == nil {
		return t.Box.Render(t.Subtle.Render("Loading grant log..."))
	}
	if m.err != nil {
		return t.Box.Render(t.ErrorStyle.Render("Error: " + m.err.Error()))
	}

	title := t.Title.Render(styles.IconDatabase + " In-page media grants")
	if m.origin != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", t.BadgeMuted.Render(m.origin))
	}

	body := t.Subtle.Render("No grants recorded")
	if len(m.records) > 0 {
		body = m.table.View()
	}

	help := lipgloss.JoinHorizontal(lipgloss.Top,
		t.HelpKey.Render("x"), " ", t.HelpDesc.Render("purge origin"), "  ",
		t.HelpKey.Render("r"), " ", t.HelpDesc.Render("reload"), "  ",
		t.HelpKey.Render("q"), " ", t.HelpDesc.Render("quit"),
	)

	parts := []string{title, "", body, ""}
	if m.status != "" {
		parts = append(parts, t.SuccessStyle.Render(m.status))
	}
	parts = append(parts, help)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Ensure interface compliance.
var _ tea.Model = (*GrantsModel)(nil)
