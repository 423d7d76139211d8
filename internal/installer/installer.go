package installer

import (
	"context"

	"github.com/spf13/afero"

	"vite-setup/internal/config"
	"vite-setup/internal/logger"
	"vite-setup/internal/runner"
)

// Installer sets up Vite, Tailwind and gh-pages in a project directory.
// All side effects go through FS and Runner so tests can substitute both.
type Installer struct {
	FS     afero.Fs
	Runner runner.Runner
	Config config.Config
}

// New creates an Installer. Empty config fields fall back to the defaults.
func New(fs afero.Fs, r runner.Runner, cfg config.Config) *Installer {
	return &Installer{FS: fs, Runner: r, Config: cfg.WithDefaults()}
}

// Run executes every step in order and stops at the first failure:
//  1. create package.json with `<pm> init -y` when it is missing
//  2. merge the tool's fields, dependencies and scripts into package.json
//  3. overwrite vite.config.js
//  4. create src/style.css when it is missing
//  5. run `<pm> install`
//
// There are no retries and nothing is rolled back.
func (in *Installer) Run(ctx context.Context, project config.Project) error {
	logger.Debug("[DEBUG] Setting up %s in %s with %s\n", project.Name, project.Dir, in.Config.PackageManager)

	if err := stepErr(StepInitManifest, in.ensureManifest(ctx, project)); err != nil {
		return err
	}
	if err := stepErr(StepUpdateManifest, in.updateManifest(project)); err != nil {
		return err
	}
	if err := stepErr(StepWriteConfig, in.writeViteConfig(project)); err != nil {
		return err
	}
	if err := stepErr(StepSeedStylesheet, in.seedStylesheet(project)); err != nil {
		return err
	}
	if err := stepErr(StepInstall, in.installDependencies(ctx, project)); err != nil {
		return err
	}

	logger.Banner(
		"🎉 All done!",
		`👉 Run "`+in.Config.PackageManager+` run dev" to start the project.`,
	)
	return nil
}
