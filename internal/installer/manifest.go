package installer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"

	"vite-setup/internal/config"
	"vite-setup/internal/logger"
	"vite-setup/internal/manifest"
	"vite-setup/internal/scaffold"
)

func manifestPath(project config.Project) string {
	return filepath.Join(project.Dir, manifest.FileName)
}

// ensureManifest runs `<pm> init -y` when package.json does not exist yet.
func (in *Installer) ensureManifest(ctx context.Context, project config.Project) error {
	path := manifestPath(project)

	exists, err := afero.Exists(in.FS, path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if exists {
		logger.Debug("[DEBUG] %s already exists\n", path)
		return nil
	}

	logger.Info("🟢 Initializing %s...\n", in.Config.PackageManager)
	if err := in.Runner.Run(ctx, project.Dir, in.Config.PackageManager, "init", "-y"); err != nil {
		return err
	}

	// init must leave a manifest behind for the next step
	if exists, err := afero.Exists(in.FS, path); err != nil || !exists {
		return fmt.Errorf("%s init did not create %s", in.Config.PackageManager, path)
	}
	return nil
}

// updateManifest applies the merge policy and rewrites package.json in place.
func (in *Installer) updateManifest(project config.Project) error {
	path := manifestPath(project)

	m, err := manifest.Load(in.FS, path)
	if err != nil {
		return err
	}

	values := manifest.DefaultValues(project.Name)
	if values.Homepage, err = scaffold.Render("homepage", in.Config.Homepage, project); err != nil {
		return err
	}
	if values.Description, err = scaffold.Render("description", in.Config.Description, project); err != nil {
		return err
	}

	report, err := manifest.Apply(m, values)
	if err != nil {
		return err
	}
	for _, field := range report.Ignored {
		logger.Warn("[WARN] %s in %s is not an object; replaced with the defaults\n", field, manifest.FileName)
	}

	version := m.Get("version").String()
	if _, err := semver.StrictNewVersion(version); err != nil {
		logger.Warn("[WARN] version %q in %s is not valid semver: %v\n", version, manifest.FileName, err)
	}

	if err := manifest.Save(in.FS, path, m); err != nil {
		return err
	}
	logger.Success("✅ Updated %s\n", manifest.FileName)
	return nil
}
