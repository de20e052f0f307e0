package main

import (
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// fileWatcher signals when any watched file is written, created or
// replaced. Signals coalesce: one pending signal covers any number of
// events.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	paths   []string
	names   map[string]bool
	changed chan struct{}
	done    chan struct{}
	logger  *slog.Logger
}

// watchFiles starts watching paths. Directories are watched rather than
// the files themselves so editors that save by renaming are noticed.
func watchFiles(logger *slog.Logger, paths ...string) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "can't create file watcher")
	}

	fw := &fileWatcher{
		watcher: w,
		paths:   slices.Clone(paths),
		names:   make(map[string]bool),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, errors.Wrapf(err, "can't resolve %s", p)
		}
		fw.names[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, errors.Wrapf(err, "can't watch %s", dir)
		}
	}

	go fw.run()
	return fw, nil
}

func (fw *fileWatcher) run() {
	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.names[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			fw.logger.Debug("file changed", "file", event.Name, "op", event.Op.String())
			select {
			case fw.changed <- struct{}{}:
			default:
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("file watcher", "err", err)
		}
	}
}

// Changed returns the channel that receives a value after a change.
// A nil watcher never signals.
func (fw *fileWatcher) Changed() <-chan struct{} {
	if fw == nil {
		return nil
	}
	return fw.changed
}

// Retarget returns a watcher for paths. The receiver is returned unchanged
// when it already watches exactly paths or when the replacement fails to
// start; otherwise it is closed. A nil watcher stays nil.
func (fw *fileWatcher) Retarget(paths ...string) (*fileWatcher, error) {
	if fw == nil || slices.Equal(fw.paths, paths) {
		return fw, nil
	}
	next, err := watchFiles(fw.logger, paths...)
	if err != nil {
		return fw, err
	}
	fw.Close()
	return next, nil
}

// Close stops watching.
func (fw *fileWatcher) Close() error {
	if fw == nil {
		return nil
	}
	close(fw.done)
	return fw.watcher.Close()
}
