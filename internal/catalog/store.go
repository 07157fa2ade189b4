package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/osse101/ExpTable_Go/internal/event"
	"github.com/osse101/ExpTable_Go/internal/logger"
)

// ErrNoDirectory is returned by Watch when the store reads embedded data
var ErrNoDirectory = errors.New("catalog: watching requires a catalogue directory")

// Store holds the active catalogue snapshot and swaps it atomically on reload
type Store struct {
	opts    Options
	bus     event.Bus
	current atomic.Pointer[Catalog]
}

// NewStore loads the initial snapshot. A load failure here is fatal for the caller.
func NewStore(ctx context.Context, opts Options, bus event.Bus) (*Store, error) {
	s := &Store{opts: opts, bus: bus}
	cat, err := Load(opts)
	if err != nil {
		return nil, err
	}
	s.current.Store(cat)
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"source", cat.Source, "version", cat.Version, "stages", len(cat.Stages))
	s.publish(ctx, event.NewCatalogReloadedEvent(cat.Version, len(cat.Stages), cat.Source))
	return s, nil
}

// NewStaticStore wraps an already loaded catalogue; used by tests and the lambda entrypoint
func NewStaticStore(cat *Catalog) *Store {
	s := &Store{}
	s.current.Store(cat)
	return s
}

// Current returns the active snapshot
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Reload rebuilds the snapshot. On failure the previous snapshot stays active.
func (s *Store) Reload(ctx context.Context) error {
	log := logger.FromContext(ctx)

	cat, err := Load(s.opts)
	if err != nil {
		log.Error(LogMsgCatalogReloadFailed, "error", err)
		s.publish(ctx, event.NewCatalogReloadFailedEvent(s.opts.Dir, err))
		return err
	}

	prev := s.current.Swap(cat)
	if prev != nil && prev.Version == cat.Version {
		return nil
	}
	log.Info(LogMsgCatalogReloaded, "version", cat.Version, "stages", len(cat.Stages))
	s.publish(ctx, event.NewCatalogReloadedEvent(cat.Version, len(cat.Stages), cat.Source))
	return nil
}

// Watch reloads the catalogue whenever a data file in the directory changes.
// It blocks until ctx is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	if s.opts.Dir == "" {
		return ErrNoDirectory
	}
	log := logger.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the files, so atomic renames by editors are seen
	if err := watcher.Add(s.opts.Dir); err != nil {
		return fmt.Errorf("failed to watch catalogue dir: %w", err)
	}
	log.Info(LogMsgWatcherStarted, "dir", s.opts.Dir)

	debounce := time.NewTimer(ReloadDebounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info(LogMsgWatcherStopped)
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isDataFile(ev.Name) || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) {
				continue
			}
			debounce.Reset(ReloadDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn(LogMsgWatcherError, "error", err)
		case <-debounce.C:
			_ = s.Reload(ctx)
		}
	}
}

func (s *Store) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func isDataFile(path string) bool {
	switch filepath.Base(path) {
	case FileStages, FileEvents, FileCashables, FileCeilings:
		return true
	}
	return false
}
