package site

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce groups bursts of file events into one rebuild.
const WatchDebounce = 200 * time.Millisecond

// Watch calls onChange after files under dir change, until ctx is done.
// Events under any of the ignore directories (and dot directories) are
// dropped. New subdirectories are watched as they appear.
func Watch(ctx context.Context, dir string, ignore []string, onChange func(), logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	ignored := func(path string) bool {
		abs, err := filepath.Abs(path)
		if err != nil {
			return false
		}
		for _, ig := range ignore {
			if ig == "" {
				continue
			}
			igAbs, err := filepath.Abs(ig)
			if err != nil {
				continue
			}
			if abs == igAbs || strings.HasPrefix(abs, igAbs+string(filepath.Separator)) {
				return true
			}
		}
		return false
	}

	add := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && (strings.HasPrefix(d.Name(), ".") || ignored(path)) {
				return filepath.SkipDir
			}
			return w.Add(path)
		})
	}
	if err := add(dir); err != nil {
		return err
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ignored(ev.Name) || strings.HasPrefix(filepath.Base(ev.Name), ".") {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if err := add(ev.Name); err != nil {
					logger.Debug("watching new path", "path", ev.Name, "error", err)
				}
			}
			logger.Debug("file changed", "path", ev.Name, "op", ev.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(WatchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
