package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProfileFile(t *testing.T) {
	paths := NewPaths("/home/user")

	got := paths.ProfileFile("work")
	want := filepath.Join("/home/user", ConfigDirName, ".npmrc.work")
	if got != want {
		t.Errorf("ProfileFile = %q, want %q", got, want)
	}
}

func TestActiveLink(t *testing.T) {
	paths := NewPaths("/home/user")

	got := paths.ActiveLink()
	want := filepath.Join("/home/user", ".npmrc")
	if got != want {
		t.Errorf("ActiveLink = %q, want %q", got, want)
	}
}

func TestEnsureConfigDirIsIdempotent(t *testing.T) {
	paths := NewPaths(t.TempDir())

	if err := paths.EnsureConfigDir(); err != nil {
		t.Fatalf("first EnsureConfigDir failed: %v", err)
	}
	if err := paths.EnsureConfigDir(); err != nil {
		t.Fatalf("second EnsureConfigDir failed: %v", err)
	}

	info, err := os.Stat(paths.ConfigDir)
	if err != nil {
		t.Fatalf("config dir missing: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("config dir is not a directory")
	}
}

func TestEnsureConfigDirCreatesParents(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "home")
	paths := NewPaths(home)

	if err := paths.EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir failed: %v", err)
	}
	if _, err := os.Stat(paths.ConfigDir); err != nil {
		t.Errorf("config dir missing: %v", err)
	}
}
