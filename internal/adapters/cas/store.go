// Package cas implements the file-per-task build info store.
package cas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Store implements ports.BuildInfoStore using one JSON file per task.
// Files are named after the xxhash of the task name.
type Store struct {
	limit int
}

// NewStore creates a new BuildInfoStore.
func NewStore() (*Store, error) {
	return &Store{limit: runtime.NumCPU()}, nil
}

// Get retrieves the build info for a given task name.
func (s *Store) Get(dir, taskName string) (*domain.BuildInfo, error) {
	return readRecord(s.filename(dir, taskName))
}

// Put stores the build info.
func (s *Store) Put(dir string, info domain.BuildInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(s.filename(dir, info.TaskName), data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

// List returns every record in the store ordered by task name.
// A missing store directory yields an empty list.
func (s *Store) List(ctx context.Context, dir string) ([]domain.BuildInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "dir", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), domain.RecordExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	records := make([]*domain.BuildInfo, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := readRecord(path)
			records[i] = info
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	infos := make([]domain.BuildInfo, 0, len(records))
	for _, info := range records {
		// Records removed after ReadDir come back nil.
		if info != nil {
			infos = append(infos, *info)
		}
	}

	slices.SortFunc(infos, func(a, b domain.BuildInfo) int {
		return strings.Compare(a.TaskName, b.TaskName)
	})

	return infos, nil
}

func readRecord(path string) (*domain.BuildInfo, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var info domain.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}

	return &info, nil
}

func (s *Store) filename(dir, taskName string) string {
	return filepath.Join(dir, fmt.Sprintf("%016x", xxhash.Sum64String(taskName))+domain.RecordExt)
}
