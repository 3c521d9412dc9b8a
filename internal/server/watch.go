package server

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors often write a file in several steps (truncate, write, rename), so
// changes are collected for a short while before reloading.
const reloadDebounce = 250 * time.Millisecond

// watch reloads the registry whenever the source file changes. The parent
// directory is watched rather than the file so that replacing the file
// through a rename is noticed too.
func (s *Server) watch(ctx context.Context) error {
	path := s.watchable()
	if path == "" {
		s.logger.Warn("registry.watch is set but the source is not a single file; not watching")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("error watching %s: %w", filepath.Dir(path), err)
	}
	s.logger.Infof("watching %s for changes", path)

	go s.processEvents(ctx, watcher, path)
	return nil
}

func (s *Server) processEvents(ctx context.Context, watcher *fsnotify.Watcher, path string) {
	defer watcher.Close()

	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				s.logger.Debugf("%s changed (%s)", path, event.Op)
				timer.Reset(reloadDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Errorf("file watcher error: %v", err)

		case <-timer.C:
			if err := s.Reload(); err != nil {
				s.logger.Errorf("keeping the previous registry: %v", err)
			}
		}
	}
}
