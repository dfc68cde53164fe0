package domain

// Config holds the project settings read from buildinfo.yaml.
type Config struct {
	// Agent is recorded when a build does not name its agent explicitly.
	Agent BuildAgent
	// StoreDir is the store location relative to the project root.
	StoreDir string
}

// DefaultConfig returns the configuration used when no buildinfo.yaml exists.
func DefaultConfig() Config {
	return Config{StoreDir: DefaultStorePath()}
}
