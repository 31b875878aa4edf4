package shell

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lanterntools/lantern/config"
	"github.com/lanterntools/lantern/tui/components/loadbar"
	"github.com/lanterntools/lantern/tui/keymap"
	"github.com/lanterntools/lantern/tui/theme"
)

// Update handles messages and updates the model accordingly.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case loadbar.TransitionStartMsg:
		m.loading = msg.Route
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, tea.Batch(cmd, m.waitForEvent())

	case loadbar.TransitionEndMsg:
		m.loading = ""
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, tea.Batch(cmd, m.waitForEvent())

	case loadbar.FrameMsg:
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd

	case NavigateMsg:
		return m, m.navigate(msg.Route)

	case pageReadyMsg:
		m.pageErr = nil
		m.page = msg.page
		if m.sess != nil {
			m.sess.Values["last_route"] = msg.route
		}
		if m.page != nil {
			return m, m.page.Init()
		}
		return m, nil

	case pageErrorMsg:
		m.pageErr = msg.err
		return m, nil

	case reloadMsg:
		m.reload()
		return m, m.waitForEvent()
	}

	// Everything else belongs to the active page.
	if m.page != nil {
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateKeys routes key presses: shell chrome first, then the active page.
func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.cache.InvalidateAll()
		if current := m.rt.Current(); current != "" {
			return m, m.navigate(current)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextRoute):
		if next := m.nextRoute(); next != "" {
			return m, m.navigate(next)
		}
		return m, nil
	}

	if m.page != nil {
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		return m, cmd
	}
	return m, nil
}

// nextRoute returns the route after the current one in sorted order, wrapping
// around. Empty when fewer than two routes are registered.
func (m *Model) nextRoute() string {
	names := m.rt.Routes()
	if len(names) < 2 {
		return ""
	}
	current := m.rt.Current()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// navigate runs a router transition off the UI loop and reports the result.
// The lifecycle events the router emits reach the load bar through the event
// channel before the resulting message lands here.
func (m *Model) navigate(name string) tea.Cmd {
	return func() tea.Msg {
		data, err := m.rt.Navigate(context.Background(), name)
		if err != nil {
			return pageErrorMsg{route: name, err: err}
		}

		factory, ok := m.factories[name]
		if !ok || factory == nil {
			return pageReadyMsg{route: name, page: nil}
		}
		return pageReadyMsg{route: name, page: factory(data)}
	}
}

// reload re-reads the config file and rebuilds everything derived from it.
// The load bar is remounted, which releases the old subscriptions before
// acquiring new ones.
func (m *Model) reload() {
	if m.cfg == nil || m.cfg.Path() == "" {
		return
	}

	cfg, err := config.Load(m.cfg.Path())
	if err != nil {
		m.log.WithError(err).Warn("Config reload failed, keeping previous config")
		return
	}

	m.cfg = cfg
	m.keys = keymap.Load(cfg)
	if cfg.Theme != "" {
		m.theme = theme.NewThemeWithName(cfg.Theme)
	}
	m.bar.Mount(m.rt.Bus(), m.send)
	m.log.WithField("path", cfg.Path()).Info("Config reloaded")
}
