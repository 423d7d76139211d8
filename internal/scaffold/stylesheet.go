package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"vite-setup/internal/config"
)

const (
	// SourceDir holds the stylesheet entry point.
	SourceDir = "src"
	// StylesheetFile is the Tailwind entry point inside SourceDir.
	StylesheetFile = "style.css"
	// StylesheetContent pulls in Tailwind; nothing else is needed for v4.
	StylesheetContent = `@import "tailwindcss";`
)

// SeedStylesheet makes sure src/ exists and creates src/style.css when it is
// missing. An existing stylesheet is never touched. The bool result reports
// whether the file was created.
func SeedStylesheet(fs afero.Fs, project config.Project) (bool, error) {
	dir := filepath.Join(project.Dir, SourceDir)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := filepath.Join(dir, StylesheetFile)
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if exists {
		return false, nil
	}

	if err := afero.WriteFile(fs, path, []byte(StylesheetContent), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
