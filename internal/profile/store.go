package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rnpmrc-cli/internal/config"
	"rnpmrc-cli/internal/editor"
)

var (
	// ErrNotFound is returned when a referenced profile file does not exist.
	ErrNotFound = errors.New("profile does not exist")
	// ErrExists is returned when creating a profile that is already present.
	ErrExists = errors.New("profile already exists")
)

// Store performs all filesystem state transitions for profiles: creation,
// listing, editing, activation via symlink, and removal. It holds no state
// beyond the paths it operates on.
type Store struct {
	paths  config.Paths
	runner editor.Runner
}

// NewStore builds a Store over the given paths. The runner is used by Open
// to launch the external editor.
func NewStore(paths config.Paths, runner editor.Runner) *Store {
	return &Store{paths: paths, runner: runner}
}

// Create makes a new empty profile file. It never overwrites: an existing
// file at the profile path is ErrExists.
func (s *Store) Create(name string) error {
	filePath := s.paths.ProfileFile(name)

	if _, err := os.Lstat(filePath); err == nil {
		return fmt.Errorf("file %s: %w", filePath, ErrExists)
	}

	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("file %s: %w", filePath, ErrExists)
		}
		return fmt.Errorf("failed to create %s: %w", filePath, err)
	}
	return f.Close()
}

// List returns the file names of all profiles in the config dir, sorted
// lexicographically. Directory enumeration order is filesystem-dependent, so
// the result is normalized for deterministic output.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.paths.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.paths.ConfigDir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if strings.Contains(entry.Name(), config.ProfilePrefix) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Open launches the editor on the named profile and blocks until the editor
// exits. The editor's exit status is not surfaced; only a spawn failure is.
func (s *Store) Open(name, editorCmd string) error {
	filePath := s.paths.ProfileFile(name)

	if !isRegularFile(filePath) {
		return fmt.Errorf("file %s: %w", filePath, ErrNotFound)
	}
	return s.runner.Run(editorCmd, filePath)
}

// Activate points the active link at the named profile. Any pre-existing
// entry at the link path (file, dir, or dangling symlink) is removed first.
// The profile existence check runs before any destructive step, so a failed
// activate never clobbers the current link.
func (s *Store) Activate(name string) error {
	filePath := s.paths.ProfileFile(name)
	linkPath := s.paths.ActiveLink()

	if !isRegularFile(filePath) {
		return fmt.Errorf("file %s: %w", filePath, ErrNotFound)
	}

	if entryExists(linkPath) {
		if err := os.Remove(linkPath); err != nil {
			return fmt.Errorf("failed to remove %s: %w", linkPath, err)
		}
	}

	if err := os.Symlink(filePath, linkPath); err != nil {
		return fmt.Errorf("failed to create symlink %s: %w", linkPath, err)
	}
	return nil
}

// Active reports the file name of the currently active profile. The symlink
// target is the only source of truth: the link must resolve to an existing
// regular file inside the config dir. There is no failure mode — anything
// else means no profile is active.
func (s *Store) Active() (string, bool) {
	linkPath := s.paths.ActiveLink()

	target, err := os.Readlink(linkPath)
	if err != nil {
		return "", false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(s.paths.HomeDir, target)
	}
	if filepath.Dir(target) != s.paths.ConfigDir {
		return "", false
	}
	if !isRegularFile(target) {
		return "", false
	}
	return filepath.Base(target), true
}

// Remove deletes the named profile file. An active link pointing at it is
// left dangling on purpose; Active then reports no active profile.
func (s *Store) Remove(name string) error {
	filePath := s.paths.ProfileFile(name)

	if !isRegularFile(filePath) {
		return fmt.Errorf("file %s: %w", filePath, ErrNotFound)
	}
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to remove %s: %w", filePath, err)
	}
	return nil
}

// Backup snapshots the current ~/.npmrc (read through the link if it is one)
// into a new profile. Refuses to overwrite an existing profile.
func (s *Store) Backup(name string) error {
	filePath := s.paths.ProfileFile(name)
	linkPath := s.paths.ActiveLink()

	if entryExists(filePath) {
		return fmt.Errorf("file %s: %w", filePath, ErrExists)
	}

	data, err := os.ReadFile(linkPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file %s: %w", linkPath, ErrNotFound)
		}
		return fmt.Errorf("failed to read %s: %w", linkPath, err)
	}

	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filePath, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return f.Close()
}

// isRegularFile follows symlinks.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// entryExists is a link-aware existence check: true if any directory entry
// sits at path, including a symlink whose target is gone.
func entryExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
