package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the directory under the home dir holding all profiles.
	ConfigDirName = ".rnpmrc"
	// ProfilePrefix is prepended to a profile name to form its file name.
	ProfilePrefix = ".npmrc."
	// ActiveLinkName is the symlink in the home dir marking the active profile.
	ActiveLinkName = ".npmrc"
)

// Paths holds every filesystem location the tool touches. Constructed once
// per invocation and passed around explicitly so tests can point it at a
// temporary directory instead of the real home dir.
type Paths struct {
	HomeDir   string
	ConfigDir string
}

// ResolvePaths builds Paths from the current user's home directory.
func ResolvePaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("did not find home directory: %w", err)
	}
	return NewPaths(home), nil
}

// NewPaths builds Paths rooted at the given home directory.
func NewPaths(homeDir string) Paths {
	return Paths{
		HomeDir:   homeDir,
		ConfigDir: filepath.Join(homeDir, ConfigDirName),
	}
}

// ProfileFile returns the file path backing the named profile.
func (p Paths) ProfileFile(name string) string {
	return filepath.Join(p.ConfigDir, ProfilePrefix+name)
}

// ActiveLink returns the path of the symlink marking the active profile.
func (p Paths) ActiveLink() string {
	return filepath.Join(p.HomeDir, ActiveLinkName)
}

// EnsureConfigDir creates the config directory (with parents) if it does not
// exist yet. Safe to call on every invocation.
func (p Paths) EnsureConfigDir() error {
	info, err := os.Stat(p.ConfigDir)
	if err == nil && info.IsDir() {
		return nil
	}
	fmt.Printf("Creating directory %s... ", p.ConfigDir)
	if err := os.MkdirAll(p.ConfigDir, 0755); err != nil {
		fmt.Println("Failed")
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	fmt.Println("Succeed")
	return nil
}
