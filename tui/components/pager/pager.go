// Package pager is a stateless pagination control. It renders previous/next
// affordances and a "Page X of Y" label from caller-owned state and reports
// page-change intent through a callback; it never stores or clamps the
// caller's values beyond the affordance guards.
package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lanterntools/lantern/tui/keymap"
	"github.com/lanterntools/lantern/tui/theme"
)

// Model renders pagination controls. Page, TotalPages and OnPageChange are
// owned by the caller; the control is a pure function of them.
type Model struct {
	// Page is the current page, 1-based.
	Page int
	// TotalPages is the number of pages. With one page or fewer the
	// control renders nothing.
	TotalPages int
	// OnPageChange receives the requested target page. The caller applies
	// it (or not) and re-renders with the new Page.
	OnPageChange func(page int)

	// Keys holds the bindings that activate the affordances.
	Keys  keymap.Base
	theme *theme.Theme
}

// New creates a pagination control with default keybindings.
func New(onPageChange func(page int)) Model {
	return Model{
		OnPageChange: onPageChange,
		Keys:         keymap.NewBase(),
		theme:        theme.DefaultTheme,
	}
}

// PrevEnabled reports whether the previous affordance is active.
func (m Model) PrevEnabled() bool {
	return m.TotalPages > 1 && m.Page > 1
}

// NextEnabled reports whether the next affordance is active.
func (m Model) NextEnabled() bool {
	return m.TotalPages > 1 && m.Page < m.TotalPages
}

// Prev requests the previous page. Disabled at page 1. The floor clamp is
// defensive; it is unreachable through the enabled affordance.
func (m Model) Prev() {
	if !m.PrevEnabled() || m.OnPageChange == nil {
		return
	}
	target := m.Page - 1
	if target < 1 {
		target = 1
	}
	m.OnPageChange(target)
}

// Next requests the next page. Disabled on the last page.
func (m Model) Next() {
	if !m.NextEnabled() || m.OnPageChange == nil {
		return
	}
	target := m.Page + 1
	if target > m.TotalPages {
		target = m.TotalPages
	}
	m.OnPageChange(target)
}

// Update translates key presses into page-change requests. The model itself
// never changes; the caller owns the state and feeds the new Page back in.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.TotalPages <= 1 {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.Keys.PrevPage):
			m.Prev()
		case key.Matches(msg, m.Keys.NextPage):
			m.Next()
		case key.Matches(msg, m.Keys.Home):
			if m.Page != 1 && m.OnPageChange != nil {
				m.OnPageChange(1)
			}
		case key.Matches(msg, m.Keys.End):
			if m.Page != m.TotalPages && m.OnPageChange != nil {
				m.OnPageChange(m.TotalPages)
			}
		}
	}

	return m, nil
}

// View renders the control. A single page (or none) needs no controls, so
// the output is empty and occupies no layout space.
func (m Model) View() string {
	if m.TotalPages <= 1 {
		return ""
	}

	t := m.theme
	if t == nil {
		t = theme.DefaultTheme
	}

	prev := fmt.Sprintf("%s prev", theme.IconArrowLeft)
	next := fmt.Sprintf("next %s", theme.IconArrowRight)

	var parts []string
	if m.PrevEnabled() {
		parts = append(parts, t.Highlight.Render(prev))
	} else {
		parts = append(parts, t.Muted.Render(prev))
	}

	// The label shows the caller's values verbatim; out-of-range input is
	// the caller's bug to see, not this component's to hide.
	parts = append(parts, t.Normal.Render(fmt.Sprintf("Page %d of %d", m.Page, m.TotalPages)))

	if m.NextEnabled() {
		parts = append(parts, t.Highlight.Render(next))
	} else {
		parts = append(parts, t.Muted.Render(next))
	}

	return strings.Join(parts, "  ")
}
