// Package watch re-runs a callback when any of a set of files changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDebounce = 300 * time.Millisecond

// Watcher watches the parent directories of a fixed set of files so that
// editors which save by rename are still seen. Events for other files in
// those directories are ignored.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	files    map[string]struct{}
	pending  map[string]time.Time
	debounce time.Duration
	onChange func(paths []string)
	logger   *zap.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long a file must stay quiet before onChange fires.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a Watcher for paths. onChange receives the sorted set of files
// that changed since the previous call.
func New(paths []string, onChange func(paths []string), opts ...Option) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("watch: no files to watch")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]struct{}, len(paths)),
		pending:  make(map[string]time.Time),
		debounce: DefaultDebounce,
		onChange: onChange,
		logger:   zap.NewNop(),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := map[string]struct{}{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		w.logger.Debug("watching directory", zap.String("dir", dir))
	}
	return w, nil
}

// Start runs the event loop in a goroutine until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.run(ctx)
}

// Stop ends the event loop, waits for it to exit, and releases the fsnotify watcher.
// Stop on a Watcher that was never started only closes the fsnotify watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		select {
		case <-w.stopCh:
		default:
			close(w.stopCh)
		}
		<-w.doneCh
	}
	if err := w.fsw.Close(); err != nil {
		w.logger.Warn("closing watcher", zap.Error(err))
	}
}

// Run blocks until ctx is done, then stops the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	w.Start(ctx)
	<-ctx.Done()
	w.Stop()
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := time.NewTicker(max(w.debounce/3, time.Millisecond))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		case now := <-tick.C:
			w.flush(now)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return
	}
	if _, ok := w.files[name]; !ok {
		return
	}
	w.logger.Debug("file event", zap.String("path", name), zap.String("op", ev.Op.String()))
	w.mu.Lock()
	w.pending[name] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flush(now time.Time) {
	w.mu.Lock()
	var ready []string
	for p, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			ready = append(ready, p)
			delete(w.pending, p)
		}
	}
	w.mu.Unlock()

	if len(ready) == 0 {
		return
	}
	sort.Strings(ready)
	w.logger.Debug("files changed", zap.Strings("paths", ready))
	if w.onChange != nil {
		w.onChange(ready)
	}
}
