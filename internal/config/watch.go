package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/fakeyudi/lemonade/internal/log"
)

// WatchPaths returns the absolute paths of the global and project config files.
func WatchPaths() ([]string, error) {
	global, err := GlobalPath()
	if err != nil {
		return nil, err
	}
	project, err := filepath.Abs(ProjectFile)
	if err != nil {
		return nil, err
	}
	return []string{global, project}, nil
}

// Watch calls onChange with the freshly merged config whenever one of paths
// is written or created, until ctx is cancelled. The parent directory of each
// path is watched so files that do not exist yet are picked up. Directories
// that do not exist are skipped.
func Watch(ctx context.Context, paths []string, onChange func(Config)) error {
	logger := log.WithComponent("config")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		targets[p] = true
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load()
			if err != nil {
				// Keep the previous config until the file parses again.
				logger.Warn().Err(err).Str("path", event.Name).Msg("config reload failed")
				continue
			}
			logger.Debug().Str("path", event.Name).Msg("config reloaded")
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("config watcher error")
		}
	}
}
