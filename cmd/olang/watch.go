package main

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const (
	WATCH_DEBOUNCE_DURATION = 100 * time.Millisecond
)

// A scriptWatcher calls a function each time a script is written. The parent directory is watched
// because some editors save a file by replacing it.
type scriptWatcher struct {
	watcher *fsnotify.Watcher
	path    string //absolute
	logger  zerolog.Logger
}

func newScriptWatcher(fpath string, logger zerolog.Logger) (*scriptWatcher, error) {
	absPath, err := filepath.Abs(fpath)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &scriptWatcher{
		watcher: watcher,
		path:    absPath,
		logger:  logger,
	}, nil
}

// Run blocks until ctx is done, bursts of events are debounced. Calls of run never overlap.
func (w *scriptWatcher) Run(ctx context.Context, debounceDuration time.Duration, run func()) {
	defer w.watcher.Close()

	var runLock sync.Mutex
	debounced := debounce.New(debounceDuration)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.path {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				debounced(func() {
					if ctx.Err() != nil {
						return
					}
					runLock.Lock()
					defer runLock.Unlock()
					run()
				})
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("script watcher error")
		}
	}
}
