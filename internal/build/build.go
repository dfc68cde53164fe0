// Package build holds build-time information.
package build

import "go.trai.ch/buildinfo/internal/core/domain"

// Name is the agent name this tool records for itself.
const Name = "buildinfo"

// These values default to placeholders and can be overwritten by linker flags.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// Agent returns the build agent identity of this tool.
func Agent() domain.BuildAgent {
	return domain.NewBuildAgent(Name, Version)
}
