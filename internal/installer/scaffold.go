package installer

import (
	"vite-setup/internal/config"
	"vite-setup/internal/logger"
	"vite-setup/internal/scaffold"
)

func (in *Installer) writeViteConfig(project config.Project) error {
	path, err := scaffold.WriteViteConfig(in.FS, project)
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] Wrote %s\n", path)
	logger.Success("✅ Created %s\n", scaffold.ViteConfigFile)
	return nil
}

func (in *Installer) seedStylesheet(project config.Project) error {
	created, err := scaffold.SeedStylesheet(in.FS, project)
	if err != nil {
		return err
	}
	if created {
		logger.Success("✅ Created %s/%s\n", scaffold.SourceDir, scaffold.StylesheetFile)
	} else {
		logger.Debug("[DEBUG] %s/%s already exists, leaving it alone\n", scaffold.SourceDir, scaffold.StylesheetFile)
	}
	return nil
}
