package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML config file from path.
// A missing file is not an error: DefaultConfig is returned.
// Unknown keys and malformed YAML are reported so typos do not go unnoticed.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat config %s: %w", path, err)
	}
	if !exists {
		return DefaultConfig(), nil
	}

	f, err := fs.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		// io.EOF means the file was empty, which is the same as no overrides
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg.WithDefaults(), nil
}

// ResolveConfig picks the config for a run in dir.
// An explicit path (from --config) must exist; otherwise DefaultConfigFile in dir
// is used when present, and DefaultConfig when it is not.
func ResolveConfig(fs afero.Fs, dir, explicit string) (Config, error) {
	if explicit == "" {
		return LoadConfig(fs, filepath.Join(dir, DefaultConfigFile))
	}

	exists, err := afero.Exists(fs, explicit)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat config %s: %w", explicit, err)
	}
	if !exists {
		return Config{}, fmt.Errorf("config file %s does not exist", explicit)
	}
	return LoadConfig(fs, explicit)
}
