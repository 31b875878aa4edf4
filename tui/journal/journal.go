// Package journal renders a paginated list of dated entries. It owns the
// current page and feeds it to the pagination control, which reports
// page-change intent back through its callback.
package journal

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lanterntools/lantern/tui/components"
	"github.com/lanterntools/lantern/tui/components/pager"
	"github.com/lanterntools/lantern/tui/shell"
	"github.com/lanterntools/lantern/tui/theme"
)

const defaultPageSize = 5

// Entry is a single journal item.
type Entry struct {
	Date  time.Time
	Title string
	Body  string
}

// Model is the journal page.
type Model struct {
	entries  []Entry
	page     int
	pageSize int
	pager    pager.Model
	theme    *theme.Theme
}

// New builds a journal page over the given entries.
func New(entries []Entry, pageSize int) *Model {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	m := &Model{
		entries:  entries,
		page:     1,
		pageSize: pageSize,
		theme:    theme.DefaultTheme,
	}
	m.pager = pager.New(func(page int) {
		m.page = page
	})
	return m
}

// Title implements shell.Page.
func (m *Model) Title() string { return "Journal" }

// Init implements shell.Page.
func (m *Model) Init() tea.Cmd { return nil }

// Page returns the current 1-based page.
func (m *Model) Page() int { return m.page }

// TotalPages returns the page count for the entry list.
func (m *Model) TotalPages() int {
	if len(m.entries) == 0 {
		return 0
	}
	return (len(m.entries) + m.pageSize - 1) / m.pageSize
}

// Update implements shell.Page. Key handling is delegated to the pagination
// control, which calls back with the requested page.
func (m *Model) Update(msg tea.Msg) (shell.Page, tea.Cmd) {
	m.pager.Page = m.page
	m.pager.TotalPages = m.TotalPages()
	m.pager, _ = m.pager.Update(msg)
	return m, nil
}

// View implements shell.Page.
func (m *Model) View(width int) string {
	t := m.theme

	if len(m.entries) == 0 {
		return t.Muted.Render("No entries yet.")
	}

	start := (m.page - 1) * m.pageSize
	end := start + m.pageSize
	if end > len(m.entries) {
		end = len(m.entries)
	}

	var blocks []string
	for _, entry := range m.entries[start:end] {
		header := fmt.Sprintf("%s %s  %s",
			t.Highlight.Render(theme.IconBullet),
			t.Bold.Render(entry.Title),
			t.Muted.Render(entry.Date.Format("2006-01-02")),
		)
		blocks = append(blocks, header+"\n  "+entry.Body)
	}

	body := strings.Join(blocks, "\n\n")

	m.pager.Page = m.page
	m.pager.TotalPages = m.TotalPages()
	if controls := m.pager.View(); controls != "" {
		return body + "\n\n" + components.RenderDivider(min(width, 40)) + "\n" + controls
	}
	return body
}
