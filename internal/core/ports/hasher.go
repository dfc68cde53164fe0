package ports

// Hasher fingerprints files below a project root.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashPaths computes a single hash over the given root-relative paths.
	// Directories are walked and glob patterns expanded.
	HashPaths(root string, paths []string) (string, error)
}
