// Package loadbar renders a transient progress strip across the top of the
// screen while a page transition is in flight. It subscribes to the router's
// transition lifecycle events on mount and releases the subscriptions on
// every unmount path, so a torn-down bar can never be resurrected by a late
// event.
package loadbar

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lanterntools/lantern/router"
	"github.com/lanterntools/lantern/tui/theme"
)

// frameInterval is the animation tick rate while a transition is in flight.
const frameInterval = 80 * time.Millisecond

// pulseFraction is the share of the bar width occupied by the bright
// sweeping segment.
const pulseFraction = 4

// TransitionStartMsg is delivered when the router begins a navigation.
type TransitionStartMsg struct {
	Route string
}

// TransitionEndMsg is delivered when a navigation settles, successfully or
// not. The bar treats both outcomes identically: it disappears. Surfacing
// the error is the shell's job, not this component's.
type TransitionEndMsg struct {
	Route string
	Err   error
}

// FrameMsg advances the sweep animation.
type FrameMsg time.Time

// Model is the navigation progress indicator. Its only state is whether a
// transition is in flight; overlapping starts are collapsed into one
// in-flight period because the router runs at most one transition at a time.
type Model struct {
	theme     *theme.Theme
	width     int
	inFlight  bool
	frame     int
	disposers []func()
}

// New creates an idle load bar.
func New(width int) Model {
	return Model{
		theme: theme.DefaultTheme,
		width: width,
	}
}

// Mount subscribes the bar to the three transition lifecycle signals,
// translating bus events into tea messages via send. Call Unmount before the
// model is discarded; mounting an already-mounted model first releases the
// old subscriptions, so a remount never leaks.
func (m *Model) Mount(bus *router.Bus, send func(tea.Msg)) {
	m.Unmount()
	m.disposers = []func(){
		bus.Subscribe(router.TransitionStart, func(e router.Event) {
			send(TransitionStartMsg{Route: e.Route})
		}),
		bus.Subscribe(router.TransitionComplete, func(e router.Event) {
			send(TransitionEndMsg{Route: e.Route})
		}),
		bus.Subscribe(router.TransitionError, func(e router.Event) {
			send(TransitionEndMsg{Route: e.Route, Err: e.Err})
		}),
	}
}

// Unmount releases all lifecycle subscriptions. Safe to call repeatedly and
// on a never-mounted model.
func (m *Model) Unmount() {
	for _, dispose := range m.disposers {
		dispose()
	}
	m.disposers = nil
}

// Mounted reports whether the bar currently holds live subscriptions.
func (m *Model) Mounted() bool {
	return len(m.disposers) > 0
}

// InFlight reports whether a transition is currently being indicated.
func (m Model) InFlight() bool {
	return m.inFlight
}

// Init is the first command executed; the bar starts idle so there is
// nothing to do.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles transition lifecycle and animation messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case TransitionStartMsg:
		if m.inFlight {
			// Already showing; the single boolean collapses overlapping
			// starts (the router serializes transitions anyway).
			return m, nil
		}
		m.inFlight = true
		m.frame = 0
		return m, m.tick()

	case TransitionEndMsg:
		m.inFlight = false
		return m, nil

	case FrameMsg:
		if !m.inFlight {
			// Stale tick from a transition that already settled.
			return m, nil
		}
		m.frame++
		return m, m.tick()
	}

	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// View renders the bar. Idle renders nothing at all, so the bar occupies no
// layout space and intercepts nothing.
func (m Model) View() string {
	if !m.inFlight {
		return ""
	}

	width := m.width
	if width < 1 {
		width = 1
	}

	pulse := width / pulseFraction
	if pulse < 1 {
		pulse = 1
	}

	// The bright segment sweeps left to right and wraps around.
	offset := (m.frame * 2) % width
	track := make([]rune, width)
	for i := range track {
		track[i] = '─'
	}

	var b strings.Builder
	bright := lipgloss.NewStyle().Foreground(m.theme.Colors.Orange).Bold(true)
	dim := lipgloss.NewStyle().Foreground(m.theme.Colors.Border)
	for i := 0; i < width; i++ {
		inPulse := (i-offset+width)%width < pulse
		if inPulse {
			b.WriteString(bright.Render("━"))
		} else {
			b.WriteString(dim.Render(string(track[i])))
		}
	}
	return b.String()
}
