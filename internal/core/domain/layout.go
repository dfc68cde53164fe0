package domain

import "path/filepath"

const (
	// BuildInfoDirName is the name of the internal project directory.
	BuildInfoDirName = ".buildinfo"

	// StoreDirName is the name of the build info store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "buildinfo.yaml"

	// RecordExt is the file extension of a stored build record.
	RecordExt = ".json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultBuildInfoPath returns the default root directory for buildinfo metadata.
func DefaultBuildInfoPath() string {
	return BuildInfoDirName
}

// DefaultStorePath returns the default path for the build info store.
// It joins .buildinfo and store.
func DefaultStorePath() string {
	return filepath.Join(DefaultBuildInfoPath(), StoreDirName)
}
