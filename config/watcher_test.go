package config

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func silentLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

type changeCounter struct {
	mu    sync.Mutex
	fired int
}

func (c *changeCounter) inc() {
	c.mu.Lock()
	c.fired++
	c.mu.Unlock()
}

func (c *changeCounter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fired
}

func (c *changeCounter) waitFor(t *testing.T, n int, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if c.count() >= n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("onChange fired %d time(s), want at least %d", c.count(), n)
}

func TestWatchDetectsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lantern.yml")
	writeConfig(t, path, "version: \"1.0\"\n")

	var c changeCounter
	stop, err := Watch(path, silentLogger(), c.inc)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer stop()

	// Give the directory watch time to settle before mutating.
	time.Sleep(50 * time.Millisecond)
	writeConfig(t, path, "version: \"1.0\"\ntheme: terminal\n")

	c.waitFor(t, 1, 2*time.Second)
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lantern.yml")
	writeConfig(t, path, "version: \"1.0\"\n")

	var c changeCounter
	stop, err := Watch(path, silentLogger(), c.inc)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer stop()

	time.Sleep(50 * time.Millisecond)
	writeConfig(t, filepath.Join(dir, "other.yml"), "noise: true\n")

	time.Sleep(300 * time.Millisecond)
	if got := c.count(); got != 0 {
		t.Errorf("onChange fired %d time(s) for an unrelated file", got)
	}
}

func TestStopCancelsPendingDebounce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lantern.yml")
	writeConfig(t, path, "version: \"1.0\"\n")

	var c changeCounter
	stop, err := Watch(path, silentLogger(), c.inc)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	time.Sleep(50 * time.Millisecond)
	writeConfig(t, path, "version: \"1.0\"\ntheme: terminal\n")

	// The change event has been seen but the debounce window has not
	// elapsed; stopping now must discard the pending notification.
	time.Sleep(30 * time.Millisecond)
	stop()

	time.Sleep(300 * time.Millisecond)
	if got := c.count(); got != 0 {
		t.Errorf("onChange fired %d time(s) after stop()", got)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lantern.yml")
	writeConfig(t, path, "version: \"1.0\"\n")

	stop, err := Watch(path, silentLogger(), func() {})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	stop()
	stop()
}
