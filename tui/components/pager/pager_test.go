package pager

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestSinglePageRendersNothing(t *testing.T) {
	for _, total := range []int{0, 1} {
		m := New(nil)
		m.Page = 1
		m.TotalPages = total
		assert.Empty(t, m.View(), "totalPages=%d must render nothing", total)
	}
}

func TestFirstPageAffordances(t *testing.T) {
	m := New(nil)
	m.Page = 1
	m.TotalPages = 5

	assert.False(t, m.PrevEnabled())
	assert.True(t, m.NextEnabled())
	assert.Contains(t, m.View(), "Page 1 of 5")
}

func TestLastPageAffordances(t *testing.T) {
	m := New(nil)
	m.Page = 5
	m.TotalPages = 5

	assert.True(t, m.PrevEnabled())
	assert.False(t, m.NextEnabled())
	assert.Contains(t, m.View(), "Page 5 of 5")
}

func TestMiddlePageCallbacks(t *testing.T) {
	var got []int
	m := New(func(page int) { got = append(got, page) })
	m.Page = 3
	m.TotalPages = 5

	require.True(t, m.PrevEnabled())
	require.True(t, m.NextEnabled())

	m.Prev()
	m.Next()
	assert.Equal(t, []int{2, 4}, got)
}

func TestNextFromFirstPage(t *testing.T) {
	var got []int
	m := New(func(page int) { got = append(got, page) })
	m.Page = 1
	m.TotalPages = 5

	m.Prev() // disabled, must not call back
	m.Next()
	assert.Equal(t, []int{2}, got)
}

func TestPrevFromLastPage(t *testing.T) {
	var got []int
	m := New(func(page int) { got = append(got, page) })
	m.Page = 5
	m.TotalPages = 5

	m.Next() // disabled, must not call back
	m.Prev()
	assert.Equal(t, []int{4}, got)
}

func TestKeyActivation(t *testing.T) {
	var got []int
	m := New(func(page int) { got = append(got, page) })
	m.Page = 2
	m.TotalPages = 4

	m, _ = m.Update(keyMsg("h"))
	m, _ = m.Update(keyMsg("l"))
	m, _ = m.Update(keyMsg("G"))
	m, _ = m.Update(keyMsg("g"))
	assert.Equal(t, []int{1, 3, 4, 1}, got)
}

func TestKeysIgnoredWithSinglePage(t *testing.T) {
	calls := 0
	m := New(func(int) { calls++ })
	m.Page = 1
	m.TotalPages = 1

	m, _ = m.Update(keyMsg("l"))
	m, _ = m.Update(keyMsg("h"))
	assert.Zero(t, calls)
}

func TestViewIsPure(t *testing.T) {
	m := New(func(int) {})
	m.Page = 2
	m.TotalPages = 7

	first := m.View()
	m.Prev() // callback fires, but the model holds no hidden state
	second := m.View()
	assert.Equal(t, first, second, "identical inputs must render identical output")
}

func TestLabelRendersInputsVerbatim(t *testing.T) {
	// Out-of-range input is a caller bug; the label must not mask it.
	m := New(nil)
	m.Page = 9
	m.TotalPages = 5
	assert.Contains(t, m.View(), "Page 9 of 5")
}

func TestNilCallbackIsSafe(t *testing.T) {
	m := New(nil)
	m.Page = 2
	m.TotalPages = 3

	assert.NotPanics(t, func() {
		m.Prev()
		m.Next()
		m, _ = m.Update(keyMsg("l"))
	})
	assert.True(t, strings.Contains(m.View(), "Page 2 of 3"))
}
