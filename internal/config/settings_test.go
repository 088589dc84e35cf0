package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	paths := NewPaths(t.TempDir())
	if err := paths.EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir failed: %v", err)
	}

	settings, err := LoadSettings(paths)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.Editor != DefaultEditor {
		t.Errorf("Editor = %q, want %q", settings.Editor, DefaultEditor)
	}
}

func TestLoadSettingsFromConfigFile(t *testing.T) {
	paths := NewPaths(t.TempDir())
	if err := paths.EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir failed: %v", err)
	}

	cfg := filepath.Join(paths.ConfigDir, "config.yaml")
	if err := os.WriteFile(cfg, []byte("editor: nano\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	settings, err := LoadSettings(paths)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.Editor != "nano" {
		t.Errorf("Editor = %q, want nano", settings.Editor)
	}
}

func TestLoadSettingsEnvOverridesFile(t *testing.T) {
	paths := NewPaths(t.TempDir())
	if err := paths.EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir failed: %v", err)
	}

	cfg := filepath.Join(paths.ConfigDir, "config.yaml")
	if err := os.WriteFile(cfg, []byte("editor: nano\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("RNPMRC_EDITOR", "emacs")

	settings, err := LoadSettings(paths)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.Editor != "emacs" {
		t.Errorf("Editor = %q, want emacs", settings.Editor)
	}
}

func TestLoadSettingsMissingConfigDir(t *testing.T) {
	// LoadSettings must tolerate a config dir that does not exist yet.
	paths := NewPaths(filepath.Join(t.TempDir(), "no-such-home"))

	settings, err := LoadSettings(paths)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.Editor != DefaultEditor {
		t.Errorf("Editor = %q, want %q", settings.Editor, DefaultEditor)
	}
}
