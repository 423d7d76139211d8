package installer

import (
	"context"

	"vite-setup/internal/config"
	"vite-setup/internal/logger"
)

// installDependencies resolves everything package.json now declares.
func (in *Installer) installDependencies(ctx context.Context, project config.Project) error {
	logger.Info("📦 Installing dependencies (this might take a minute)...\n")
	return in.Runner.Run(ctx, project.Dir, in.Config.PackageManager, "install")
}
