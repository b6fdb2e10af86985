package definition

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch invalidates the cache whenever the catalog file is written, created or
// renamed into place. The parent directory is watched so that editors which
// replace the file atomically are still noticed. Watch blocks until ctx is done.
func (c *Cache) Watch(ctx context.Context, log *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create catalog watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(c.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", target, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("Definition catalog changed", zap.String("path", target), zap.String("op", event.Op.String()))
			c.Invalidate()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Definition catalog watcher error", zap.Error(err))
		}
	}
}
