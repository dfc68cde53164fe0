package config

import "go.trai.ch/buildinfo/internal/core/domain"

// SchemaVersion is the buildinfo.yaml version this loader understands.
const SchemaVersion = "1"

// Configfile represents the structure of the buildinfo.yaml configuration file.
type Configfile struct {
	Version string            `yaml:"version"`
	Agent   domain.BuildAgent `yaml:"agent"`
	Store   string            `yaml:"store"`
}
