// Package shell is the root composition layer for lantern applications. It
// mounts the navigation load bar once at the top of the screen, wires the
// session and query-cache providers, and routes messages to whichever page
// is active.
package shell

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lanterntools/lantern/config"
	"github.com/lanterntools/lantern/query"
	"github.com/lanterntools/lantern/router"
	"github.com/lanterntools/lantern/session"
	"github.com/lanterntools/lantern/tui/components/loadbar"
	"github.com/lanterntools/lantern/tui/keymap"
	"github.com/lanterntools/lantern/tui/theme"
	"github.com/sirupsen/logrus"
)

// Page is a routed screen. Pages are immutable in the Elm style: Update
// returns the page to use for the next render.
type Page interface {
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) (Page, tea.Cmd)
	View(width int) string
}

// PageFactory builds a page from the data its route loader produced.
type PageFactory func(data interface{}) Page

// NavigateMsg asks the shell to run a transition to another route. Pages
// return it from Update.
type NavigateMsg struct {
	Route string
}

// pageReadyMsg carries a freshly built page after a successful transition.
type pageReadyMsg struct {
	route string
	page  Page
}

// pageErrorMsg carries a failed transition.
type pageErrorMsg struct {
	route string
	err   error
}

// reloadMsg is sent when the config file changes on disk.
type reloadMsg struct{}

// Options configures a shell.
type Options struct {
	// Config is the loaded application config, may be nil.
	Config *config.Config
	// Home is the route navigated to on startup.
	Home string
	// SessionTTL and QueryTTL override the provider defaults when > 0.
	SessionTTL time.Duration
	QueryTTL   time.Duration
	// Logger for shell-level events; a silent logger is used when nil.
	Logger *logrus.Entry
}

// Model is the root bubbletea model.
type Model struct {
	cfg   *config.Config
	keys  keymap.Base
	theme *theme.Theme
	log   *logrus.Entry

	rt        *router.Router
	factories map[string]PageFactory

	sessions *session.Manager
	sess     *session.Session
	cache    *query.Cache

	bar     loadbar.Model
	page    Page
	pageErr error
	loading string // route currently in flight, empty when idle

	width    int
	height   int
	showHelp bool
	home     string

	// events carries bus callbacks and watcher signals into the
	// bubbletea loop.
	events    chan tea.Msg
	stopWatch func()
}

// New composes a shell around the given router.
func New(rt *router.Router, opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}

	m := &Model{
		cfg:       opts.Config,
		keys:      keymap.Load(opts.Config),
		theme:     theme.DefaultTheme,
		log:       log,
		rt:        rt,
		factories: make(map[string]PageFactory),
		sessions:  session.NewManager(opts.SessionTTL, log),
		cache:     query.NewCache(opts.QueryTTL, log),
		bar:       loadbar.New(0),
		home:      opts.Home,
		events:    make(chan tea.Msg, 32),
	}
	return m
}

// Route registers a destination with the router and the page factory that
// renders it.
func (m *Model) Route(route router.Route, factory PageFactory) error {
	if err := m.rt.Register(route); err != nil {
		return err
	}
	m.factories[route.Name] = factory
	return nil
}

// Router returns the router this shell navigates with.
func (m *Model) Router() *router.Router {
	return m.rt
}

// Cache exposes the query cache so route loaders can share it.
func (m *Model) Cache() *query.Cache {
	return m.cache
}

// Session returns the shell's active session, starting one on first use.
func (m *Model) Session() *session.Session {
	if m.sess == nil {
		m.sess = m.sessions.Start()
	}
	return m.sess
}

// Init mounts the load bar, starts the session, begins watching the config
// file, and navigates to the home route.
func (m *Model) Init() tea.Cmd {
	m.bar.Mount(m.rt.Bus(), m.send)
	m.Session()

	if m.cfg != nil && m.cfg.Path() != "" {
		stop, err := config.Watch(m.cfg.Path(), m.log, func() {
			m.send(reloadMsg{})
		})
		if err != nil {
			m.log.WithError(err).Warn("Config watch unavailable")
		} else {
			m.stopWatch = stop
		}
	}

	cmds := []tea.Cmd{m.waitForEvent()}
	if m.home != "" {
		cmds = append(cmds, m.navigate(m.home))
	}
	return tea.Batch(cmds...)
}

// send delivers a message into the bubbletea loop. Bus callbacks run on the
// goroutine executing the navigation command, so they go through a channel
// drained by waitForEvent.
func (m *Model) send(msg tea.Msg) {
	m.events <- msg
}

// waitForEvent returns a command that delivers the next queued event.
func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

// teardown releases everything the shell acquired in Init. It runs on every
// exit path, including quit-while-loading.
func (m *Model) teardown() {
	m.bar.Unmount()
	if m.stopWatch != nil {
		m.stopWatch()
		m.stopWatch = nil
	}
	if m.sess != nil {
		m.sessions.End(m.sess.ID)
		m.sess = nil
	}
}
