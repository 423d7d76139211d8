package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"vite-setup/internal/logger"
)

// OSRunner implements Runner using real processes.
// The child's stdio is connected to the fields below, which default to the
// invoking terminal so prompts and progress from the package manager stay visible.
type OSRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSRunner creates an OSRunner wired to the current process's stdio.
func NewOSRunner() *OSRunner {
	return &OSRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts name with args in dir and waits for it to finish.
// A non-zero exit is returned wrapping *exec.ExitError.
func (r *OSRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	commandLine := strings.TrimSpace(name + " " + strings.Join(args, " "))
	logger.Debug("[DEBUG] Running command in %s: %s\n", dir, commandLine)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", commandLine, err)
	}
	return nil
}
