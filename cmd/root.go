package cmd

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"vite-setup/internal/config"
	"vite-setup/internal/installer"
	"vite-setup/internal/logger"
	"vite-setup/internal/runner"
)

// options holds the global flags shared by every command.
type options struct {
	debug      bool   // --debug: enable Debug logging
	configPath string // --config: explicit config file
}

// NewRootCommand builds the `vite-setup` command tree.
// fs, r and getwd are injected so the whole run can be exercised in tests
// without touching the real working directory or package manager.
func NewRootCommand(fs afero.Fs, r runner.Runner, getwd func() (string, error)) *cobra.Command {
	opts := &options{}

	run := func(cmd *cobra.Command, args []string) error {
		return runSetup(cmd.Context(), fs, r, getwd, opts)
	}

	rootCmd := &cobra.Command{
		Use:   "vite-setup",
		Short: "Set up Vite, Tailwind and gh-pages in the current directory",
		Long: `Set up Vite, Tailwind and gh-pages in the current directory.

Creates package.json if needed, merges in the build and deploy dependencies
and scripts, writes vite.config.js, seeds src/style.css and installs
everything. Existing package.json values and an existing stylesheet are kept.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		// PersistentPreRun runs before any subcommand and sets up logging.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.debug)
		},
		RunE: run,
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"Path to configuration file (default: "+config.DefaultConfigFile+" in the current directory, if present)")

	rootCmd.AddCommand(newInitCommand(run))

	return rootCmd
}

func runSetup(ctx context.Context, fs afero.Fs, r runner.Runner, getwd func() (string, error), opts *options) error {
	dir, err := getwd()
	if err != nil {
		return err
	}

	project, err := config.DetectProject(dir)
	if err != nil {
		return err
	}

	cfg, err := config.ResolveConfig(fs, project.Dir, opts.configPath)
	if err != nil {
		return err
	}

	return installer.New(fs, r, cfg).Run(ctx, project)
}

// Execute runs the CLI against the real filesystem, processes and working directory.
func Execute() error {
	rootCmd := NewRootCommand(afero.NewOsFs(), runner.NewOSRunner(), os.Getwd)
	return rootCmd.ExecuteContext(context.Background())
}

// ExitCode maps an Execute error to a process exit status. A failing package
// manager's own exit status is passed through; anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
