package journal

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func entries(n int) []Entry {
	out := make([]Entry, n)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := range out {
		out[i] = Entry{
			Date:  base.AddDate(0, 0, i),
			Title: fmt.Sprintf("Entry %d", i+1),
			Body:  fmt.Sprintf("Body of entry %d", i+1),
		}
	}
	return out
}

func keyMsg(s string) tea.Msg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, New(nil, 5).TotalPages())
	assert.Equal(t, 1, New(entries(5), 5).TotalPages())
	assert.Equal(t, 2, New(entries(6), 5).TotalPages())
	assert.Equal(t, 3, New(entries(11), 5).TotalPages())
}

func TestPagingThroughKeys(t *testing.T) {
	m := New(entries(12), 5)
	assert.Equal(t, 1, m.Page())

	m.Update(keyMsg("l"))
	assert.Equal(t, 2, m.Page())
	m.Update(keyMsg("l"))
	assert.Equal(t, 3, m.Page())

	// Last page, next is inert.
	m.Update(keyMsg("l"))
	assert.Equal(t, 3, m.Page())

	m.Update(keyMsg("h"))
	assert.Equal(t, 2, m.Page())

	m.Update(keyMsg("g"))
	assert.Equal(t, 1, m.Page())
	m.Update(keyMsg("G"))
	assert.Equal(t, 3, m.Page())
}

func TestViewShowsCurrentSlice(t *testing.T) {
	m := New(entries(12), 5)
	view := m.View(80)
	assert.Contains(t, view, "Entry 1")
	assert.Contains(t, view, "Entry 5")
	assert.NotContains(t, view, "Entry 6")
	assert.Contains(t, view, "Page 1 of 3")

	m.Update(keyMsg("G"))
	view = m.View(80)
	assert.Contains(t, view, "Entry 11")
	assert.Contains(t, view, "Entry 12")
	assert.NotContains(t, view, "Entry 10")
	assert.Contains(t, view, "Page 3 of 3")
}

func TestSinglePageHidesControls(t *testing.T) {
	m := New(entries(3), 5)
	view := m.View(80)
	assert.Contains(t, view, "Entry 3")
	assert.NotContains(t, view, "Page 1 of 1")

	// Paging keys do nothing with a single page.
	m.Update(keyMsg("l"))
	assert.Equal(t, 1, m.Page())
}

func TestEmptyJournal(t *testing.T) {
	m := New(nil, 5)
	assert.Contains(t, m.View(80), "No entries yet.")
}
