package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"semreg.dev/pkg/semreg/internal/adapter"
	m "semreg.dev/pkg/semreg/internal/model"
)

// BuildRequest identifies one side of a scenario to build.
type BuildRequest struct {
	Side       m.Side
	Version    string
	ModuleDir  string
	Module     string
	SourceFile string
	Debug      bool
	Layout     m.TaskLayout
}

// ArtifactCache memoizes built module representations in the task directory.
type ArtifactCache interface {
	// EnsureBuilt returns the cached representation of the requested side,
	// building it first when the task directory does not hold one.
	EnsureBuilt(ctx context.Context, req BuildRequest) (m.BuildArtifact, error)
	// Prepare ensures both sides of spec are built under tasksDir.
	Prepare(ctx context.Context, spec m.ScenarioSpec, tasksDir m.Path) (m.TaskLayout, error)
}

type artifactCache struct {
	fsAdapter adapter.TaskFSAdapter
	builder   adapter.ModuleBuilder
	locker    adapter.BuildLocker
}

// NewArtifactCache constructs an ArtifactCache.
func NewArtifactCache(fsAdapter adapter.TaskFSAdapter, builder adapter.ModuleBuilder, locker adapter.BuildLocker) ArtifactCache {
	return &artifactCache{
		fsAdapter: fsAdapter,
		builder:   builder,
		locker:    locker,
	}
}

func (c *artifactCache) EnsureBuilt(ctx context.Context, req BuildRequest) (m.BuildArtifact, error) {
	artifact := m.BuildArtifact{
		Version:        req.Version,
		Module:         req.Module,
		Representation: req.Layout.ModuleFile(req.Side),
		Source:         req.Layout.Source(req.Side),
	}

	fail := func(err error) (m.BuildArtifact, error) {
		slog.Error("Failed to prepare module", "module", req.Module, "side", req.Side, "version", req.Version, "error", err)
		return m.BuildArtifact{}, &BuildError{Module: req.Module, Version: req.Version, Side: req.Side, Err: err}
	}

	if err := c.fsAdapter.MkdirAll(req.Layout.Dir()); err != nil {
		return fail(fmt.Errorf("create task directory: %w", err))
	}

	unlock, err := c.locker.Lock(ctx, req.Layout.LockFile(req.Side))
	if err != nil {
		return fail(fmt.Errorf("lock: %w", err))
	}

	defer unlock()

	exists, err := c.fsAdapter.Exists(artifact.Representation)
	if err != nil {
		return fail(err)
	}

	if exists {
		slog.Debug("Using cached module", "module", req.Module, "side", req.Side, "path", artifact.Representation)
		return artifact, nil
	}

	slog.Info("Building module", "module", req.Module, "side", req.Side, "version", req.Version)

	built, err := c.builder.Build(ctx, req.Version, req.ModuleDir, req.Module, req.Debug)
	if err != nil {
		return fail(err)
	}

	// The representation is copied last: its presence marks the cache entry complete.
	source := m.Path(filepath.Join(string(built.SourceDir), req.SourceFile))
	if err := c.fsAdapter.CopyFile(source, artifact.Source); err != nil {
		return fail(fmt.Errorf("copy source: %w", err))
	}

	if err := c.fsAdapter.CopyFile(built.Representation, artifact.Representation); err != nil {
		return fail(fmt.Errorf("copy representation: %w", err))
	}

	return artifact, nil
}

func (c *artifactCache) Prepare(ctx context.Context, spec m.ScenarioSpec, tasksDir m.Path) (m.TaskLayout, error) {
	layout := m.NewTaskLayout(tasksDir, spec)

	for _, side := range []m.Side{m.SideOld, m.SideNew} {
		_, err := c.EnsureBuilt(ctx, BuildRequest{
			Side:       side,
			Version:    spec.Kernel(side),
			ModuleDir:  spec.ModuleDir,
			Module:     spec.Module,
			SourceFile: spec.SourceFile,
			Debug:      spec.Debug,
			Layout:     layout,
		})
		if err != nil {
			return layout, err
		}
	}

	return layout, nil
}
