// Package config provides the configuration loader for buildinfo.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file in the project root.
type Loader struct {
	Filename string
	Logger   ports.Logger
}

// NewLoader creates a Loader reading domain.ConfigFileName.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{
		Filename: domain.ConfigFileName,
		Logger:   log,
	}
}

// Load reads the configuration from the given project root.
// A missing file yields domain.DefaultConfig().
func (l *Loader) Load(root string) (domain.Config, error) {
	path := filepath.Join(root, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	return l.parse(path, data)
}

func (l *Loader) parse(path string, data []byte) (domain.Config, error) {
	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.Version != "" && file.Version != SchemaVersion && l.Logger != nil {
		l.Logger.Warn("unsupported config version " + file.Version + " in " + path)
	}

	cfg := domain.DefaultConfig()
	cfg.Agent = file.Agent

	if file.Store != "" {
		if !filepath.IsLocal(file.Store) {
			return domain.Config{}, zerr.With(domain.ErrStoreOutsideRoot, "store", file.Store)
		}
		cfg.StoreDir = filepath.Clean(file.Store)
	}

	return cfg, nil
}
