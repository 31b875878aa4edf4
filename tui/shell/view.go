package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lanterntools/lantern/errors"
	"github.com/lanterntools/lantern/tui/components"
	"github.com/lanterntools/lantern/tui/theme"
)

// View renders the shell chrome around the active page. The load bar is a
// top strip that exists only while a transition is in flight; idle, it
// contributes nothing to the layout.
func (m *Model) View() string {
	if m.width < 20 || m.height < 6 {
		return "Terminal too small. Please resize."
	}

	if m.showHelp {
		return m.viewHelp()
	}

	var sections []string

	if bar := m.bar.View(); bar != "" {
		sections = append(sections, bar)
	}

	title := "lantern"
	if m.page != nil {
		title = m.page.Title()
	}
	sections = append(sections, components.RenderHeader(title))

	switch {
	case m.pageErr != nil:
		sections = append(sections, m.viewError())
	case m.page != nil:
		sections = append(sections, m.page.View(m.width))
	case m.loading != "":
		sections = append(sections, m.theme.Muted.Render(fmt.Sprintf("Loading %s…", m.loading)))
	default:
		sections = append(sections, m.theme.Muted.Render("Nothing to show."))
	}

	sections = append(sections, components.RenderFooter(m.viewShortHelp(), m.width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewError renders a failed transition. The load bar never shows outcome;
// this is where the failure surfaces.
func (m *Model) viewError() string {
	t := m.theme
	msg := m.pageErr.Error()
	if lerr, ok := m.pageErr.(*errors.LanternError); ok {
		msg = lerr.Message
	}
	return t.Box.BorderForeground(t.Colors.Red).Render(
		fmt.Sprintf("%s %s", t.Error.Render(theme.IconError), msg),
	)
}

// viewShortHelp renders the single-line key hint bar.
func (m *Model) viewShortHelp() string {
	t := m.theme
	var pairs []string
	for _, binding := range m.keys.ShortHelp() {
		if !binding.Enabled() {
			continue
		}
		h := binding.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s %s",
			t.Highlight.Render(h.Key),
			t.Muted.Render(h.Desc),
		))
	}
	return strings.Join(pairs, t.Muted.Render(" • "))
}

// viewHelp renders the full, sectioned key reference.
func (m *Model) viewHelp() string {
	t := m.theme

	var blocks []string
	for _, section := range m.keys.Sections() {
		if section.IsEmpty() {
			continue
		}
		var rows []string
		rows = append(rows, t.Accent.Render(section.Name))
		for _, binding := range section.FilterEnabled() {
			h := binding.Help()
			if h.Key == "" || h.Desc == "" {
				continue
			}
			rows = append(rows, fmt.Sprintf("  %s  %s",
				t.Highlight.Render(fmt.Sprintf("%-10s", h.Key)),
				t.Muted.Render(h.Desc),
			))
		}
		blocks = append(blocks, strings.Join(rows, "\n"))
	}

	content := t.Box.Render(strings.Join(blocks, "\n\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
