package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNoProjectName is returned when the working directory has no usable final segment.
var ErrNoProjectName = errors.New("cannot derive a project name from directory")

// DetectProject derives the Project for dir: its name is the last path component.
func DetectProject(dir string) (Project, error) {
	if dir == "" {
		return Project{}, fmt.Errorf("%w: empty path", ErrNoProjectName)
	}

	clean := filepath.Clean(dir)
	name := filepath.Base(clean)
	if name == "." || name == string(filepath.Separator) || name == filepath.VolumeName(clean)+string(filepath.Separator) {
		return Project{}, fmt.Errorf("%w: %q", ErrNoProjectName, dir)
	}

	return Project{Dir: clean, Name: name}, nil
}
