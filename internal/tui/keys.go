package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "g", "home":
		m.cursor = 0

	case "G", "end":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}

	case "ctrl+d", "pgdown":
		m.cursor += m.visibleRows()
		if m.cursor > len(m.rows)-1 {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}

	case "ctrl+u", "pgup":
		m.cursor -= m.visibleRows()
		if m.cursor < 0 {
			m.cursor = 0
		}

	case "f", " ":
		if len(m.rows) > 0 {
			if m.flagged[m.cursor] {
				delete(m.flagged, m.cursor)
				m.statusMsg = fmt.Sprintf("row %d unflagged", m.rows[m.cursor].Line)
			} else {
				m.flagged[m.cursor] = true
				m.statusMsg = fmt.Sprintf("row %d flagged", m.rows[m.cursor].Line)
			}
		}
	}

	m.clampScroll()
	return m, nil
}
