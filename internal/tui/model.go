// Package tui implements the interactive review screen: a scrollable list
// of CSV rows with their proposed date fixes, where questionable rows can be
// flagged for manual follow-up before anything is written back.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/archivist-labs/atomdates/internal/csvfix"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	flaggedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for the review screen.
type Model struct {
	rows    []csvfix.Row
	flagged map[int]bool

	cursor    int
	offset    int
	width     int
	height    int
	statusMsg string
}

// New builds a review model over previewed rows.
func New(rows []csvfix.Row) Model {
	return Model{
		rows:    rows,
		flagged: make(map[int]bool),
		width:   80,
		height:  24,
	}
}

// Flagged returns the rows marked for manual follow-up, in file order.
func (m Model) Flagged() []csvfix.Row {
	var out []csvfix.Row
	for i, row := range m.rows {
		if m.flagged[i] {
			out = append(out, row)
		}
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m, nil
}

// visibleRows is the number of list lines that fit between the title and the
// footer.
func (m Model) visibleRows() int {
	n := m.height - 4
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Model) clampScroll() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	flaggedCount := len(m.flagged)
	title := fmt.Sprintf("atomdates review — %d rows, %d flagged", len(m.rows), flaggedCount)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("no rows to review"))
		b.WriteString("\n")
	}

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "j/k move · g/G top/bottom · f flag · q quit"
	if m.statusMsg != "" {
		help = m.statusMsg
	}
	b.WriteString(dimStyle.Render(help))
	return b.String()
}

func (m Model) renderRow(i int) string {
	row := m.rows[i]

	marker := " "
	if m.flagged[i] {
		marker = flaggedStyle.Render("!")
	}

	var desc string
	if row.Err != nil {
		desc = errorStyle.Render(fmt.Sprintf("error: %v", row.Err))
	} else {
		desc = fmt.Sprintf("%s  [%s .. %s]",
			row.Fixed.EventDates, row.Fixed.EventStartDates, row.Fixed.EventEndDates)
	}

	line := fmt.Sprintf("%s %4d  %-30s → %s", marker, row.Line, truncate(row.Raw, 30), desc)
	if i == m.cursor {
		return selectedStyle.Render(line)
	}
	return line
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
