package keymap

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/lanterntools/lantern/config"
)

// Base contains the standard keybindings used across all lantern TUIs.
// Prioritizes vim-style navigation and standard actions.
type Base struct {
	// Navigation - vim style takes precedence
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Home     key.Binding
	End      key.Binding

	// NextRoute cycles to the next registered route.
	NextRoute key.Binding

	// Core actions
	Quit    key.Binding
	Help    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Refresh key.Binding
}

// NewBase creates a new Base keymap with default lantern keybindings (vim style)
func NewBase() Base {
	return DefaultVim()
}

// DefaultVim returns the default vim-style keymap
func DefaultVim() Base {
	return Base{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "pgup"),
			key.WithHelp("h/left", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", "pgdown"),
			key.WithHelp("l/right", "next page"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),
		NextRoute: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// DefaultEmacs returns an emacs-flavored keymap
func DefaultEmacs() Base {
	km := DefaultVim()
	km.Up = key.NewBinding(
		key.WithKeys("ctrl+p", "up"),
		key.WithHelp("C-p", "up"),
	)
	km.Down = key.NewBinding(
		key.WithKeys("ctrl+n", "down"),
		key.WithHelp("C-n", "down"),
	)
	km.PrevPage = key.NewBinding(
		key.WithKeys("ctrl+b", "left", "pgup"),
		key.WithHelp("C-b", "prev page"),
	)
	km.NextPage = key.NewBinding(
		key.WithKeys("ctrl+f", "right", "pgdown"),
		key.WithHelp("C-f", "next page"),
	)
	km.Home = key.NewBinding(
		key.WithKeys("alt+<", "home"),
		key.WithHelp("M-<", "first page"),
	)
	km.End = key.NewBinding(
		key.WithKeys("alt+>", "end"),
		key.WithHelp("M->", "last page"),
	)
	return km
}

// DefaultArrows returns a simplified arrow-key keymap
func DefaultArrows() Base {
	km := DefaultVim()
	km.Up = key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("up", "up"),
	)
	km.Down = key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("down", "down"),
	)
	km.PrevPage = key.NewBinding(
		key.WithKeys("left", "pgup"),
		key.WithHelp("left", "prev page"),
	)
	km.NextPage = key.NewBinding(
		key.WithKeys("right", "pgdown"),
		key.WithHelp("right", "next page"),
	)
	km.Home = key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first page"),
	)
	km.End = key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last page"),
	)
	return km
}

// Load resolves the keymap preset: the LANTERN_KEYMAP environment variable
// wins, then the config's keymap field, then the vim default.
func Load(cfg *config.Config) Base {
	preset := os.Getenv("LANTERN_KEYMAP")
	if preset == "" && cfg != nil {
		preset = cfg.Keymap
	}

	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "emacs":
		return DefaultEmacs()
	case "arrows":
		return DefaultArrows()
	default:
		return DefaultVim()
	}
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k Base) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Help, k.Quit}
}

// Sections organizes the bindings for the full help view.
func (k Base) Sections() []Section {
	return []Section{
		NavigationSection(k.Up, k.Down, k.PrevPage, k.NextPage, k.Home, k.End, k.NextRoute),
		ActionsSection(k.Confirm, k.Back, k.Refresh),
		SystemSection(k.Help, k.Quit),
	}
}

// FullHelp returns the legacy grouped help layout.
func (k Base) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, s := range k.Sections() {
		groups = append(groups, s.Bindings)
	}
	return groups
}
