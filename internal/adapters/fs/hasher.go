package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints files and directories below a project root.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashPaths computes a single hash over the given paths, relative to root.
// Directories are walked recursively and glob patterns are expanded when the
// literal path does not exist. The result does not depend on the order of
// paths, and file names are hashed relative to root so that the same tree
// produces the same hash wherever it is checked out.
func (h *Hasher) HashPaths(root string, paths []string) (string, error) {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	hasher := xxhash.New()
	for _, p := range sorted {
		if err := h.hashInputPath(root, filepath.Join(root, p), hasher); err != nil {
			return "", err
		}
		_, _ = hasher.Write([]byte{0}) // Section separator
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashInputPath hashes a single path, attempting glob resolution if it doesn't exist.
func (h *Hasher) hashInputPath(root, path string, hasher io.Writer) error {
	if _, err := os.Stat(path); err != nil {
		return h.tryGlobAndHash(root, path, hasher)
	}
	return h.hashPath(root, path, hasher)
}

// tryGlobAndHash resolves path as a glob pattern and hashes all matches.
func (h *Hasher) tryGlobAndHash(root, path string, hasher io.Writer) error {
	matches, globErr := filepath.Glob(path)
	if globErr != nil || len(matches) == 0 {
		return zerr.With(domain.ErrInputNotFound, "path", path)
	}

	for _, match := range matches {
		if err := h.hashPath(root, match, hasher); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashPath(root, path string, hasher io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
	}

	if !info.IsDir() {
		return h.hashFile(root, path, hasher)
	}

	for filePath, err := range h.walker.WalkFiles(path, nil) {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
		}
		if err := h.hashFile(root, filePath, hasher); err != nil {
			return err
		}
	}
	return nil
}

// hashFile writes the root-relative name of path followed by its content
// hash. A symbolic link contributes its target string instead of content.
func (h *Hasher) hashFile(root, path string, hasher io.Writer) error {
	name := path
	if rel, err := filepath.Rel(root, path); err == nil {
		name = filepath.ToSlash(rel)
	}
	_, _ = hasher.Write([]byte(name))
	_, _ = hasher.Write([]byte{0})

	info, err := os.Lstat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
	}

	if info.Mode()&iofs.ModeSymlink != 0 {
		target, err := os.Readlink(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
		}
		_, _ = hasher.Write([]byte{'@'})
		_, _ = hasher.Write([]byte(filepath.ToSlash(target)))
		_, _ = hasher.Write([]byte{0})
		return nil
	}

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(hasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, domain.ErrHashFailed.Error())
	}
	return nil
}
