package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivist-labs/atomdates/internal/csvfix"
	"github.com/archivist-labs/atomdates/internal/dates"
)

func testRows() []csvfix.Row {
	return []csvfix.Row{
		{Line: 2, Raw: "circa 1990s", Fixed: dates.EventDates{
			EventDates: "1990s", EventStartDates: "1990-01-01", EventEndDates: "1999-12-31",
		}},
		{Line: 3, Raw: "2000-02-31", Err: errors.New("impossible date")},
		{Line: 4, Raw: "undated", Fixed: dates.EventDates{
			EventDates: "Unknown date", EventStartDates: "1800-01-01", EventEndDates: "2010-01-01",
		}},
	}
}

func press(t *testing.T, m tea.Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		m, _ = m.Update(msg)
	}
	model, ok := m.(Model)
	require.True(t, ok)
	return model
}

func TestModel_Navigation(t *testing.T) {
	t.Parallel()

	m := press(t, New(testRows()), "j", "j")
	assert.Equal(t, 2, m.cursor)

	// Cursor stays in bounds at the bottom and the top.
	m = press(t, m, "j")
	assert.Equal(t, 2, m.cursor)
	m = press(t, m, "g")
	assert.Equal(t, 0, m.cursor)
	m = press(t, m, "k")
	assert.Equal(t, 0, m.cursor)
	m = press(t, m, "G")
	assert.Equal(t, 2, m.cursor)
}

func TestModel_Flagging(t *testing.T) {
	t.Parallel()

	m := press(t, New(testRows()), "j", "f")
	flagged := m.Flagged()
	require.Len(t, flagged, 1)
	assert.Equal(t, 3, flagged[0].Line)

	// Flagging again clears the mark.
	m = press(t, m, "f")
	assert.Empty(t, m.Flagged())
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	m := New(testRows())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	m := New(testRows())
	view := m.View()
	assert.Contains(t, view, "3 rows, 0 flagged")
	assert.Contains(t, view, "circa 1990s")
	assert.Contains(t, view, "impossible date")

	m = press(t, m, "f")
	assert.Contains(t, m.View(), "3 rows, 1 flagged")

	empty := New(nil)
	assert.Contains(t, empty.View(), "no rows to review")
}
