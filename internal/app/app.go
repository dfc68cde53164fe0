// Package app implements the application layer for buildinfo.
package app

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"time"

	"go.trai.ch/buildinfo/internal/build"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.BuildInfoStore
	hasher       ports.Hasher
	logger       ports.Logger
	encoders     ports.EncoderProvider
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	log ports.Logger,
	encoders ports.EncoderProvider,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		hasher:       hasher,
		logger:       log,
		encoders:     encoders,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to timestamp build records.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// RecordOptions configuration for the Record method.
type RecordOptions struct {
	// Task is the name of the task the record belongs to.
	Task string
	// Agent is a combined NAME/VERSION token. When empty the configured
	// agent is used, falling back to this tool's own identity.
	Agent      string
	InputHash  string
	OutputHash string
	// Inputs and Outputs are root-relative paths or globs. They are hashed
	// when the matching hash is not given explicitly.
	Inputs  []string
	Outputs []string
}

// ParseAgent parses a combined NAME/VERSION token.
func (a *App) ParseAgent(token string) domain.BuildAgent {
	return domain.ParseBuildAgent(token)
}

// Self returns the build agent identity of this tool.
func (a *App) Self() domain.BuildAgent {
	return build.Agent()
}

// Record stores a build record for a task under the project root.
func (a *App) Record(ctx context.Context, root string, opts RecordOptions) (domain.BuildInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.BuildInfo{}, err
	}
	if opts.Task == "" {
		return domain.BuildInfo{}, domain.ErrMissingTaskName
	}

	cfg, err := a.loadConfig(root)
	if err != nil {
		return domain.BuildInfo{}, err
	}

	inputHash, err := a.resolveHash(root, opts.InputHash, opts.Inputs)
	if err != nil {
		return domain.BuildInfo{}, err
	}
	outputHash, err := a.resolveHash(root, opts.OutputHash, opts.Outputs)
	if err != nil {
		return domain.BuildInfo{}, err
	}

	info := domain.BuildInfo{
		TaskName:   opts.Task,
		Agent:      a.resolveAgent(opts.Agent, cfg),
		InputHash:  inputHash,
		OutputHash: outputHash,
		Timestamp:  a.now().UTC(),
	}

	if err := a.store.Put(storeDir(root, cfg), info); err != nil {
		return domain.BuildInfo{}, errors.Join(domain.ErrBuildInfoUpdateFailed, err)
	}

	a.logger.Info("recorded build info", "task", info.TaskName, "agent", info.Agent.String())
	return info, nil
}

// Show returns the stored build record for a task.
func (a *App) Show(ctx context.Context, root, task string) (domain.BuildInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.BuildInfo{}, err
	}
	if task == "" {
		return domain.BuildInfo{}, domain.ErrMissingTaskName
	}

	cfg, err := a.loadConfig(root)
	if err != nil {
		return domain.BuildInfo{}, err
	}

	info, err := a.store.Get(storeDir(root, cfg), task)
	if err != nil {
		return domain.BuildInfo{}, zerr.Wrap(err, domain.ErrBuildInfoLookupFailed.Error())
	}
	if info == nil {
		return domain.BuildInfo{}, zerr.With(domain.ErrBuildInfoNotFound, "task", task)
	}

	return *info, nil
}

// List returns every stored build record ordered by task name.
func (a *App) List(ctx context.Context, root string) ([]domain.BuildInfo, error) {
	cfg, err := a.loadConfig(root)
	if err != nil {
		return nil, err
	}

	infos, err := a.store.List(ctx, storeDir(root, cfg))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrBuildInfoLookupFailed.Error())
	}
	if infos == nil {
		infos = []domain.BuildInfo{}
	}

	return infos, nil
}

// Render writes v to w in the named output format.
func (a *App) Render(w io.Writer, format string, v any) error {
	enc, err := a.encoders.Encoder(format)
	if err != nil {
		return err
	}
	return enc.Encode(w, v)
}

func (a *App) loadConfig(root string) (domain.Config, error) {
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, domain.ErrConfigLoadFailed.Error())
	}
	return cfg, nil
}

// resolveAgent picks the explicit token first, then the configured agent,
// then this tool's own identity.
func (a *App) resolveAgent(token string, cfg domain.Config) domain.BuildAgent {
	if token != "" {
		return domain.ParseBuildAgent(token)
	}
	if !cfg.Agent.IsZero() {
		return cfg.Agent
	}
	return a.Self()
}

func (a *App) resolveHash(root, explicit string, paths []string) (string, error) {
	if explicit != "" || len(paths) == 0 {
		return explicit, nil
	}
	return a.hasher.HashPaths(root, paths)
}

func storeDir(root string, cfg domain.Config) string {
	dir := cfg.StoreDir
	if dir == "" {
		dir = domain.DefaultStorePath()
	}
	return filepath.Join(root, dir)
}
