// Package watcher reloads a preset file when it changes on disk.
//
// The watcher observes the file's directory rather than the file itself,
// so editors that save by writing a temporary file and renaming it over
// the original are still seen. Bursts of events are coalesced: handlers
// run once, after the file has been quiet for the debounce interval.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed  = errors.New("watcher is closed")
	ErrAlreadyStarted = errors.New("watcher already started")
	ErrPathNotExist   = errors.New("path does not exist")
)

// DefaultDebounce is used when no debounce option is given.
const DefaultDebounce = 100 * time.Millisecond

// Op represents the file operations merged into one event.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	case 0:
		return "NONE"
	default:
		return "MULTIPLE"
	}
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event describes a settled change to the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Op combines every operation seen during the debounce window.
	Op Op

	// Timestamp is when the last operation was seen.
	Timestamp time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the file must be quiet before handlers run.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for watch errors.
func WithLogger(log *zap.Logger) Option {
	return func(w *Watcher) {
		if log != nil {
			w.log = log
		}
	}
}

// WithErrorHandler sets a callback for errors reported by fsnotify.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher watches a single file.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *zap.Logger
	onError  func(error)
	fsw      *fsnotify.Watcher

	mu       sync.Mutex
	handlers []func(Event)
	pending  Event
	timer    *time.Timer
	started  bool
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New creates a watcher for the file at path. The file must exist.
func New(path string, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotExist, absPath)
		}
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		debounce: DefaultDebounce,
		log:      zap.NewNop(),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w.fsw = fsw

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// OnChange registers a handler. Handlers run on the watcher's timer
// goroutine, in registration order.
func (w *Watcher) OnChange(fn func(Event)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, fn)
}

// Start begins delivering events until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.started {
		return ErrAlreadyStarted
	}
	w.started = true

	w.closedWg.Add(1)
	go w.processLoop(ctx)

	return nil
}

// Close stops the watcher and drops any pending event.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.fsw.Close()
}

func (w *Watcher) processLoop(ctx context.Context) {
	defer w.closedWg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(fsEvent.Name) != w.path {
				continue
			}
			if op := convertOp(fsEvent.Op); op != 0 {
				w.schedule(op)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.String("path", w.path), zap.Error(err))
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// schedule merges op into the pending event and restarts the quiet timer.
func (w *Watcher) schedule(op Op) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.pending.Path = w.path
	w.pending.Op |= op
	w.pending.Timestamp = time.Now()

	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.fire)
	} else {
		w.timer.Reset(w.debounce)
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed || w.pending.Op == 0 {
		w.mu.Unlock()
		return
	}
	event := w.pending
	w.pending = Event{}
	w.timer = nil
	handlers := make([]func(Event), len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	w.log.Debug("preset file changed", zap.String("path", event.Path), zap.Stringer("op", event.Op))
	for _, fn := range handlers {
		fn(event)
	}
}

// convertOp converts fsnotify.Op to watcher.Op. Chmod alone is not a
// content change and converts to zero.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}
