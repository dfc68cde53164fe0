// Package fs provides file system adapters for walking and hashing build inputs and outputs.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/buildinfo/internal/core/domain"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all non-directory entries below root in lexical order,
// skipping VCS metadata, the buildinfo state directory and any directory
// matching ignores. Yielded paths include root. Symbolic links are yielded
// as entries and never followed.
//
// A read failure is yielded as a non-nil error, after which the walk stops.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skipAction := w.shouldSkip(d, ignores); skipAction != nil {
				return skipAction
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

// shouldSkip returns filepath.SkipDir for directories that must not be walked.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) error {
	if !d.IsDir() {
		return nil
	}

	switch d.Name() {
	case ".git", ".jj", domain.DefaultBuildInfoPath():
		return filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, d.Name()); matched {
			return filepath.SkipDir
		}
	}

	return nil
}
