package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lanterntools/lantern/errors"
	"github.com/mitchellh/mapstructure"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads and parses a lantern configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// LoadFromBytes parses configuration data. format is a file extension
// (".yml", ".yaml" or ".toml") selecting the parser; anything else is
// treated as YAML.
func LoadFromBytes(data []byte, format string) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	switch format {
	case ".toml":
		if err := unmarshalTOML([]byte(expanded), &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML config")
		}
	default:
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML config")
		}
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// LoadDefault finds and loads the configuration starting from the current
// working directory. A missing config file is reported as
// ErrCodeConfigNotFound; callers that can run without one should treat that
// code as non-fatal.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration starting the file search from the given directory
func LoadFrom(startDir string) (*Config, error) {
	path, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// FindConfigFile searches for a lantern config file from startDir up to the
// filesystem root.
func FindConfigFile(startDir string) (string, error) {
	configNames := []string{
		"lantern.yml",
		"lantern.yaml",
		"lantern.toml",
		".lantern.yml",
		".lantern.yaml",
	}

	dir := startDir
	for {
		// Check each possible config name
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.ConfigNotFound(filepath.Join(startDir, "lantern.yml"))
}

// unmarshalTOML decodes TOML data into a Config. go-toml has no equivalent
// of yaml's node-level decoding, so known keys are split from extensions by
// hand after decoding into a generic map.
func unmarshalTOML(data []byte, cfg *Config) error {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return err
	}

	type known struct {
		Version string `mapstructure:"version"`
		Theme   string `mapstructure:"theme"`
		Keymap  string `mapstructure:"keymap"`
	}
	var k known
	if err := mapstructure.Decode(raw, &k); err != nil {
		return err
	}
	delete(raw, "version")
	delete(raw, "theme")
	delete(raw, "keymap")

	cfg.Version = k.Version
	cfg.Theme = k.Theme
	cfg.Keymap = k.Keymap
	cfg.Extensions = raw
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} references in the raw
// config text with environment values.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return defaultValue
	})
}
