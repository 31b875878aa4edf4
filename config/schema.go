package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the base JSON Schema for the lantern configuration.
// It reflects the known top-level fields but excludes Extensions, whose keys
// are validated by the subsystems that own them.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Extension sections are unknown here, so the document must accept
		// additional top-level keys.
		AllowAdditionalProperties: true,
		// Expand struct references instead of using $ref for a cleaner schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	type BaseConfig struct {
		Version string `yaml:"version" jsonschema:"required,description=Configuration version (e.g. '1.0')"`
		Theme   string `yaml:"theme,omitempty" jsonschema:"description=Color palette name ('kanagawa' or 'terminal')"`
		Keymap  string `yaml:"keymap,omitempty" jsonschema:"description=Keybinding preset ('vim' / 'emacs' / 'arrows')"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "Lantern Configuration"
	schema.Description = "Base schema for lantern.yml properties."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
