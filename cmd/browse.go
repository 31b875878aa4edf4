package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lanterntools/lantern/cli"
	"github.com/lanterntools/lantern/config"
	"github.com/lanterntools/lantern/logging"
	"github.com/lanterntools/lantern/router"
	"github.com/lanterntools/lantern/state"
	"github.com/lanterntools/lantern/tui"
	"github.com/lanterntools/lantern/tui/journal"
	"github.com/lanterntools/lantern/tui/shell"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// journalConfig is the optional `journal` extension section of lantern.yml.
type journalConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// NewBrowseCmd creates the `browse` command
func NewBrowseCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"browse",
		"Browse journal pages in an interactive TUI",
	)
	cmd.Long = `Launches the interactive shell with the journal pages mounted. Transitions
between pages run through the router, with the load bar indicating in-flight
navigations and the pagination controls at the bottom of each list.`
	cmd.Example = `# Browse with the config found in the current directory tree
lantern browse

# Browse with an explicit config file
lantern browse --config ./lantern.yml`

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)
		handler := cli.NewErrorHandler(opts.Verbose)

		cfg, err := loadConfig(opts.ConfigFile)
		if err != nil {
			return handler.Handle(err)
		}

		log := logging.NewLogger("browse")
		sh, err := buildShell(cfg, log)
		if err != nil {
			return handler.Handle(err)
		}

		tui.InitializeTUI()
		p := tea.NewProgram(sh, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
			return err
		}

		// Remember where the user left off for the next run.
		if current := sh.Router().Current(); current != "" {
			if err := state.Set("last_route", current); err != nil {
				log.WithError(err).Debug("Could not persist last route")
			}
		}
		return nil
	}

	return cmd
}

// loadConfig resolves and loads the lantern config, nil when none is found.
func loadConfig(flagPath string) (*config.Config, error) {
	path, err := cli.InitConfig(flagPath)
	if err != nil || path == "" {
		return nil, err
	}
	return config.Load(path)
}

// buildShell wires the routes every lantern TUI serves.
func buildShell(cfg *config.Config, log *logrus.Entry) (*shell.Model, error) {
	pageSize := 0
	if cfg != nil {
		var jcfg journalConfig
		if err := cfg.UnmarshalExtension("journal", &jcfg); err != nil {
			return nil, err
		}
		pageSize = jcfg.PageSize
	}

	// Resume where the previous run left off, if that route still exists.
	home := "journal"
	if last, err := state.GetString("last_route"); err == nil {
		if last == "journal" || last == "notes" {
			home = last
		}
	}

	rt := router.New(log)
	sh := shell.New(rt, shell.Options{
		Config: cfg,
		Home:   home,
		Logger: log,
	})
	cache := sh.Cache()

	err := sh.Route(router.Route{
		Name:  "journal",
		Title: "Journal",
		Load: func(ctx context.Context) (interface{}, error) {
			return cache.Get(ctx, "journal-entries", fetchJournalEntries)
		},
	}, func(data interface{}) shell.Page {
		entries, _ := data.([]journal.Entry)
		return journal.New(entries, pageSize)
	})
	if err != nil {
		return nil, err
	}

	err = sh.Route(router.Route{
		Name:  "notes",
		Title: "Notes",
		Load: func(ctx context.Context) (interface{}, error) {
			return cache.Get(ctx, "note-entries", fetchNoteEntries)
		},
	}, func(data interface{}) shell.Page {
		entries, _ := data.([]journal.Entry)
		return journal.New(entries, pageSize)
	})
	if err != nil {
		return nil, err
	}

	return sh, nil
}

// fetchJournalEntries produces the built-in sample journal. The delay keeps
// the transition long enough for the load bar to be visible.
func fetchJournalEntries(ctx context.Context) (interface{}, error) {
	select {
	case <-time.After(150 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	base := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	titles := []string{
		"Moved the watcher to directory events",
		"Debounced config reloads",
		"Cache dedup for concurrent loads",
		"Session reaper now lazy",
		"Keymap presets for emacs users",
		"Adaptive colors on light terminals",
		"Load bar no longer reserves a row",
		"Pagination clamps at the edges",
		"Route errors surface in the shell",
		"Help overlay gained sections",
		"Hot reload remounts the bar",
		"TOML configs join YAML",
	}
	entries := make([]journal.Entry, len(titles))
	for i, title := range titles {
		entries[i] = journal.Entry{
			Date:  base.AddDate(0, 0, i),
			Title: title,
			Body:  fmt.Sprintf("Notes from day %d of the rewrite.", i+1),
		}
	}
	return entries, nil
}

// fetchNoteEntries produces the sample notes list.
func fetchNoteEntries(ctx context.Context) (interface{}, error) {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	base := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	entries := []journal.Entry{
		{Date: base, Title: "Scratch", Body: "Ideas that have not earned a journal entry yet."},
		{Date: base.AddDate(0, 0, 2), Title: "Reading list", Body: "Terminal rendering, cache coherence, event buses."},
		{Date: base.AddDate(0, 0, 5), Title: "Follow-ups", Body: "Profile the frame ticker under slow terminals."},
	}
	return entries, nil
}
