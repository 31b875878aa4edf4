package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lanterntools/lantern/errors"
)

func TestLoadFromBytes_YAML(t *testing.T) {
	data := []byte(`
version: "1.0"
theme: kanagawa
keymap: emacs
logging:
  level: debug
  report_caller: true
`)

	cfg, err := LoadFromBytes(data, ".yml")
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}

	if cfg.Theme != "kanagawa" {
		t.Errorf("expected theme kanagawa, got %q", cfg.Theme)
	}
	if cfg.Keymap != "emacs" {
		t.Errorf("expected keymap emacs, got %q", cfg.Keymap)
	}

	// Unknown sections land in Extensions
	if _, ok := cfg.Extensions["logging"]; !ok {
		t.Fatal("expected 'logging' section in Extensions")
	}

	var logCfg struct {
		Level        string `mapstructure:"level"`
		ReportCaller bool   `mapstructure:"report_caller"`
	}
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		t.Fatalf("UnmarshalExtension failed: %v", err)
	}
	if logCfg.Level != "debug" || !logCfg.ReportCaller {
		t.Errorf("unexpected logging config: %+v", logCfg)
	}
}

func TestLoadFromBytes_TOML(t *testing.T) {
	data := []byte(`
version = "1.0"
theme = "terminal"

[session]
ttl_minutes = 45
`)

	cfg, err := LoadFromBytes(data, ".toml")
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}

	if cfg.Theme != "terminal" {
		t.Errorf("expected theme terminal, got %q", cfg.Theme)
	}
	if _, ok := cfg.Extensions["session"]; !ok {
		t.Fatal("expected 'session' section in Extensions")
	}
}

func TestUnmarshalExtension_MissingKey(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`version: "1.0"`), ".yml")
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}

	var unknown struct{ Level string }
	if err := cfg.UnmarshalExtension("unknown", &unknown); err != nil {
		t.Fatalf("UnmarshalExtension should not error for non-existent keys: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`theme: gruvbox`), ".yml")
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	if cfg.Version != "1.0" {
		t.Errorf("expected default version 1.0, got %q", cfg.Version)
	}
	if cfg.Keymap != "vim" {
		t.Errorf("expected default keymap vim, got %q", cfg.Keymap)
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("LANTERN_TEST_THEME", "terminal")
	defer os.Unsetenv("LANTERN_TEST_THEME")

	cfg, err := LoadFromBytes([]byte("theme: ${LANTERN_TEST_THEME}\nkeymap: ${LANTERN_TEST_MISSING:-arrows}\n"), ".yml")
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	if cfg.Theme != "terminal" {
		t.Errorf("expected env-expanded theme, got %q", cfg.Theme)
	}
	if cfg.Keymap != "arrows" {
		t.Errorf("expected default-expanded keymap, got %q", cfg.Keymap)
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(root, "lantern.yml")
	if err := os.WriteFile(configPath, []byte("version: \"1.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Search walks up from the nested directory
	found, err := FindConfigFile(nested)
	if err != nil {
		t.Fatalf("FindConfigFile failed: %v", err)
	}
	if found != configPath {
		t.Errorf("expected %s, got %s", configPath, found)
	}
}

func TestFindConfigFile_NotFound(t *testing.T) {
	_, err := FindConfigFile(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !errors.Is(err, errors.ErrCodeConfigNotFound) {
		t.Errorf("expected CONFIG_NOT_FOUND, got %v", err)
	}
}
