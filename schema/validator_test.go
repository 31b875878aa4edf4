package schema

import (
	"strings"
	"testing"
)

func TestValidateAcceptsMinimalConfig(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}

	cfg := map[string]interface{}{
		"version": "1.0",
	}
	if err := v.Validate(cfg); err != nil {
		t.Errorf("minimal config should validate, got: %v", err)
	}
}

func TestValidateAcceptsExtensionSections(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}

	cfg := map[string]interface{}{
		"version": "1.0",
		"theme":   "kanagawa",
		"keymap":  "emacs",
		"journal": map[string]interface{}{
			"page_size": 10,
		},
	}
	if err := v.Validate(cfg); err != nil {
		t.Errorf("config with extension section should validate, got: %v", err)
	}
}

func TestValidateRejectsMissingVersion(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}

	cfg := map[string]interface{}{
		"theme": "terminal",
	}
	err = v.Validate(cfg)
	if err == nil {
		t.Fatal("config without version should fail validation")
	}
	if !strings.Contains(err.Error(), "version") {
		t.Errorf("error should mention the missing property, got: %v", err)
	}
}

func TestValidateRejectsWrongTypes(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}

	cfg := map[string]interface{}{
		"version": 1,
	}
	if err := v.Validate(cfg); err == nil {
		t.Error("numeric version should fail validation")
	}
}

func TestValidateRejectsBadLoggingLevel(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}

	cfg := map[string]interface{}{
		"version": "1.0",
		"logging": map[string]interface{}{
			"level": "loud",
		},
	}
	if err := v.Validate(cfg); err == nil {
		t.Error("unknown logging level should fail validation")
	}
}
