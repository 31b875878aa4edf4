package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// debounceWindow coalesces the burst of events an editor save produces
// (write, chmod, rename-over) into a single reload.
const debounceWindow = 100 * time.Millisecond

// Watch observes the config file at path and invokes onChange after it is
// modified or replaced. The parent directory is watched rather than the file
// itself, because most editors save by renaming a temp file over the target,
// which would silently detach a file-level watch.
//
// The returned stop function releases the watcher and discards any pending
// debounced notification, so onChange does not fire after stop. It is safe
// to call more than once.
func Watch(path string, logger *logrus.Entry, onChange func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})

	go func() {
		// The debounce timer fires through this select so that stop can
		// never be outrun by a pending callback.
		debounce := time.NewTimer(debounceWindow)
		if !debounce.Stop() {
			<-debounce.C
		}
		defer debounce.Stop()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				logger.WithField("path", path).Debug("Config file changed")
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(debounceWindow)

			case <-debounce.C:
				select {
				case <-done:
					return
				default:
				}
				onChange()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.WithError(err).Warn("Config watcher error")

			case <-done:
				return
			}
		}
	}()

	stopped := false
	stop := func() {
		if stopped {
			return
		}
		stopped = true
		close(done)
		watcher.Close()
	}
	return stop, nil
}
