package profile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
)

// DefaultDebounce coalesces the bursts of events editors produce on save
const DefaultDebounce = 50 * time.Millisecond

// Event carries a freshly loaded profile, or the error loading it
type Event struct {
	Profile *Profile
	Err     error
}

// CleanupFunc stops a watch and waits for it to exit
type CleanupFunc func() error

type watchConfig struct {
	debounce time.Duration
	grace    time.Duration
}

// WatchOption configures Watch
type WatchOption func(*watchConfig)

// WithDebounce sets how long Watch waits after the last file event before
// reloading
func WithDebounce(d time.Duration) WatchOption {
	return func(c *watchConfig) {
		c.debounce = d
	}
}

// Watch loads the profile at path and reloads it every time the file is
// written or replaced. The first event carries the initial load. Invalid
// profiles are delivered as events with Err set and watching continues.
//
// The parent directory is watched rather than the file so that atomic
// replacement by rename is seen.
func Watch(ctx context.Context, path string, opts ...WatchOption) (<-chan Event, CleanupFunc, error) {
	cfg := watchConfig{
		debounce: DefaultDebounce,
		grace:    100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("profile: resolving %s: %w", path, err)
	}
	dir, base := filepath.Split(absPath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("profile: watching %s: %w", dir, err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, nil, fmt.Errorf("profile: watching %s: %w", dir, err)
	}

	ch := make(chan Event, 4)

	// Create stopper context for managing goroutine lifecycle
	sctx := stopper.WithContext(ctx)

	sctx.Defer(func() {
		_ = watcher.Close()
		close(ch)
	})

	cleanup := func() error {
		sctx.Stop(cfg.grace)
		return sctx.Wait()
	}

	sctx.Go(func(sctx *stopper.Context) error {
		send := func(ev Event) bool {
			select {
			case ch <- ev:
				return true
			case <-sctx.Stopping():
				return false
			}
		}

		load := func() Event {
			p, err := Load(absPath)
			return Event{Profile: p, Err: err}
		}

		if !send(load()) {
			return nil
		}

		var debouncer *time.Timer
		var fire <-chan time.Time
		defer func() {
			if debouncer != nil {
				debouncer.Stop()
			}
		}()

		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if debouncer == nil {
					debouncer = time.NewTimer(cfg.debounce)
				} else {
					debouncer.Reset(cfg.debounce)
				}
				fire = debouncer.C

			case <-fire:
				fire = nil
				if !send(load()) {
					return nil
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil && !send(Event{Err: err}) {
					return nil
				}
			}
		}
		return nil
	})

	return ch, cleanup, nil
}
