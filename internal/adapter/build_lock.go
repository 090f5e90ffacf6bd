package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	m "semreg.dev/pkg/semreg/internal/model"
)

const lockRetryDelay = 100 * time.Millisecond

// BuildLocker serializes builds of the same artifact across goroutines and
// processes sharing a tasks directory.
type BuildLocker interface {
	Lock(ctx context.Context, path m.Path) (unlock func(), err error)
}

// FileBuildLocker guards each lock path with an in-process mutex and an
// flock(2) lock file.
type FileBuildLocker struct {
	mu    sync.Mutex
	locks map[m.Path]*sync.Mutex
}

// NewFileBuildLocker constructs a FileBuildLocker.
func NewFileBuildLocker() *FileBuildLocker {
	return &FileBuildLocker{locks: make(map[m.Path]*sync.Mutex)}
}

// Lock blocks until path is held by the caller or ctx is done.
func (l *FileBuildLocker) Lock(ctx context.Context, path m.Path) (func(), error) {
	local := l.local(path)
	local.Lock()

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		local.Unlock()
		return nil, fmt.Errorf("create lock dir: %w", err)
	}

	fileLock := flock.New(string(path))

	ok, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !ok {
		local.Unlock()

		if err == nil {
			err = ctx.Err()
		}

		return nil, fmt.Errorf("lock %s: %w", path, err)
	}

	slog.Debug("acquired build lock", "path", path)

	return func() {
		if err := fileLock.Unlock(); err != nil {
			slog.Error("Failed to release build lock", "path", path, "error", err)
		}

		_ = fileLock.Close()

		local.Unlock()
	}, nil
}

func (l *FileBuildLocker) local(path m.Path) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	mu, ok := l.locks[path]
	if !ok {
		mu = &sync.Mutex{}
		l.locks[path] = mu
	}

	return mu
}
