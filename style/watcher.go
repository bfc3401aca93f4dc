package style

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher reloads a stylesheet file when it changes on disk. Parsing and
// validation run on the watcher goroutine; parsed rules are handed to the
// callback, which should only enqueue them for the tick pipeline, never
// mutate world state directly. A reload that fails validation keeps the
// previous rules and logs the failure.
type Watcher struct {
	path     string
	debounce time.Duration
	onRules  func([]Rule)
	log      zerolog.Logger

	watcher *fsnotify.Watcher
	mu      sync.Mutex
	pending time.Time
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewWatcher creates a watcher for one stylesheet file. onRules receives
// every successfully parsed replacement rule set.
func NewWatcher(path string, debounce time.Duration, onRules func([]Rule), log zerolog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onRules:  onRules,
		log:      log,
		watcher:  fw,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts the reload loop. The watch covers the parent directory
// because editors often replace files by rename, which would drop a
// watch held on the file itself.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.processEvents()
	go w.processPending()
	return nil
}

// Close stops watching and releases resources
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents marks the file pending on relevant filesystem events
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Str("path", w.path).Msg("stylesheet watch error")
		}
	}
}

// processPending fires a reload once changes have settled for the
// debounce window, collapsing editor save bursts into one reload
func (w *Watcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			ready := !w.pending.IsZero() && time.Since(w.pending) >= w.debounce
			if ready {
				w.pending = time.Time{}
			}
			w.mu.Unlock()
			if ready {
				w.reload()
			}
		}
	}
}

func (w *Watcher) reload() {
	rules, err := LoadFile(w.path)
	if err != nil {
		w.log.Error().Err(err).Str("path", w.path).Msg("stylesheet reload rejected, keeping previous rules")
		return
	}
	w.log.Info().Str("path", w.path).Int("rules", len(rules)).Msg("stylesheet reloaded")
	w.onRules(rules)
}
