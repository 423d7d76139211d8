package runner

import (
	"context"
)

// Runner executes external commands (the package manager) for the installer.
// It blocks until the command exits and returns an error on a non-zero exit.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}
