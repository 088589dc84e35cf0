package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Runner launches an external editor on a file and blocks until it exits.
// Injected into the profile store so tests can substitute a fake.
type Runner interface {
	Run(editor, filePath string) error
}

// ExecRunner runs the editor as a child process inheriting the current
// terminal.
type ExecRunner struct{}

// Run executes `<editor> <filePath>` and waits for it to finish. A non-zero
// exit status of the editor is not treated as a failure; only failing to
// start the process is.
func (ExecRunner) Run(editor, filePath string) error {
	cmd := exec.Command(editor, filePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("failed to run editor '%s': %w", editor, err)
	}
	return nil
}
