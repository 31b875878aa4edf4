package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the parsed representation of a lantern.yml (or lantern.toml).
// Unknown top-level keys are preserved in Extensions so that subsystems can
// declare their own configuration sections without this package knowing
// about them.
type Config struct {
	// Version of the config format.
	Version string

	// Theme selects the color palette by name (e.g. "kanagawa", "terminal").
	Theme string

	// Keymap selects the keybinding preset ("vim", "emacs", "arrows").
	Keymap string

	// Extensions holds all unrecognized top-level sections.
	Extensions map[string]interface{}

	// path is the file this config was loaded from, empty for in-memory configs.
	path string
}

// UnmarshalYAML decodes known fields and collects everything else into
// Extensions.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type known struct {
		Version string `yaml:"version"`
		Theme   string `yaml:"theme"`
		Keymap  string `yaml:"keymap"`
	}
	var k known
	if err := value.Decode(&k); err != nil {
		return err
	}

	var raw map[string]interface{}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	delete(raw, "version")
	delete(raw, "theme")
	delete(raw, "keymap")

	c.Version = k.Version
	c.Theme = k.Theme
	c.Keymap = k.Keymap
	c.Extensions = raw
	return nil
}

// Path returns the file this config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// ApplyDefaults fills in default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Keymap == "" {
		c.Keymap = "vim"
	}
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded lantern.yml into the provided target struct. The target must be a
// pointer. This provides a type-safe way for subsystems to access their
// custom configuration sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
