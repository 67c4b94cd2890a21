package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultReloadDebounce = 250 * time.Millisecond

// Watcher reloads an element data file when it changes on disk
type Watcher struct {
	path     string
	onReload func(*Catalog)
	onError  func(error)
	debounce time.Duration
	logger   *zap.Logger

	mu       sync.Mutex
	timer    *time.Timer
	fsw      *fsnotify.Watcher
	stopOnce sync.Once
	done     chan struct{}
}

// WatcherOption configures a Watcher
type WatcherOption func(*Watcher)

// WithLogger sets the logger used for watch events
func WithLogger(l *zap.Logger) WatcherOption {
	return func(w *Watcher) { w.logger = l }
}

// WithDebounce overrides the quiet period before a reload
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// NewWatcher creates a watcher for path. onReload receives each
// successfully parsed catalog; onError receives parse failures, after
// which the previous catalog stays in use.
func NewWatcher(path string, onReload func(*Catalog), onError func(error), opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		onReload: onReload,
		onError:  onError,
		debounce: defaultReloadDebounce,
		logger:   zap.NewNop(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. It runs until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Watch the directory: editors often replace the file by rename.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()

	w.logger.Debug("watching element data", zap.String("path", w.path))
	go w.run(ctx, fsw)
	return nil
}

// Stop ends watching and cancels a pending reload
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		if w.fsw != nil {
			_ = w.fsw.Close()
		}
		w.mu.Unlock()
	})
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.done:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.scheduleReload()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Debug("element data watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}
	c, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("element data reload failed", zap.String("path", w.path), zap.Error(err))
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	w.logger.Info("element data reloaded", zap.String("path", w.path), zap.Int("elements", c.Len()))
	if w.onReload != nil {
		w.onReload(c)
	}
}
