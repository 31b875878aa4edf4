package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lanterntools/lantern/tui/theme"
)

// RenderHeader creates a consistent header for TUIs
func RenderHeader(title string, subtitle ...string) string {
	t := theme.DefaultTheme

	header := t.Header.Render(fmt.Sprintf("%s %s", theme.IconPage, title))

	if len(subtitle) > 0 && subtitle[0] != "" {
		sub := t.Muted.Render(subtitle[0])
		return lipgloss.JoinVertical(lipgloss.Left, header, sub)
	}

	return header
}

// RenderFooter creates a consistent footer for TUIs
func RenderFooter(content string, width int) string {
	footerStyle := lipgloss.NewStyle().
		Foreground(theme.DefaultColors.MutedText).
		Width(width).
		Align(lipgloss.Center).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(theme.DefaultColors.Border).
		MarginTop(1)

	return footerStyle.Render(content)
}

// RenderDivider creates a horizontal divider
func RenderDivider(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Foreground(theme.DefaultColors.Border).
		Render(strings.Repeat("─", width))
}

// RenderKeyValue creates a key-value display
func RenderKeyValue(key, value string) string {
	t := theme.DefaultTheme
	return fmt.Sprintf("%s %s", t.Muted.Render(key+":"), value)
}

// RenderList creates a styled list
func RenderList(items []string, ordered bool) string {
	t := theme.DefaultTheme

	if len(items) == 0 {
		return ""
	}

	var lines []string
	for i, item := range items {
		var prefix string
		if ordered {
			prefix = t.Highlight.Render(fmt.Sprintf("%2d.", i+1))
		} else {
			prefix = t.Highlight.Render(theme.IconBullet)
		}
		lines = append(lines, fmt.Sprintf("%s %s", prefix, item))
	}

	return strings.Join(lines, "\n")
}
