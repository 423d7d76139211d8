package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"vite-setup/internal/config"
)

// ViteConfigFile is written at the project root on every run.
const ViteConfigFile = "vite.config.js"

// ViteConfigTemplate enables the Tailwind plugin and serves the site from
// /<project name>/, which is where GitHub Pages publishes a project repo.
const ViteConfigTemplate = `import { defineConfig } from "vite";
import tailwindcss from "@tailwindcss/vite";

export default defineConfig({
  plugins: [tailwindcss()],
  base: "/{{ .Name }}/",
});
`

// WriteViteConfig renders ViteConfigTemplate for project and overwrites
// vite.config.js with it. Any previous content is discarded.
func WriteViteConfig(fs afero.Fs, project config.Project) (string, error) {
	content, err := Render("vite.config.js", ViteConfigTemplate, project)
	if err != nil {
		return "", err
	}

	path := filepath.Join(project.Dir, ViteConfigFile)
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
