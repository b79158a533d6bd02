package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driven"
	"github.com/custodia-labs/hyperless/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

var log = logger.For("watch")

// ErrAlreadyWatching is returned when Watch is called twice.
var ErrAlreadyWatching = errors.New("already watching")

// Watcher reports changes to matching files. Directories are watched
// recursively, including directories created after Watch starts.
// Change events pass through a token bucket before delivery.
type Watcher struct {
	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	limiter *rate.Limiter
	exts    map[string]bool
	dirs    map[string]bool // watched recursively
	files   map[string]bool // watched individually
	closed  bool
}

// NewWatcher creates a watcher that delivers at most limit events per
// second with bursts of up to burst events. No extensions means
// DefaultExtensions.
func NewWatcher(limit rate.Limit, burst int, exts ...string) *Watcher {
	return &Watcher{
		limiter: rate.NewLimiter(limit, max(burst, 1)),
		exts:    extensionSet(exts),
		dirs:    make(map[string]bool),
		files:   make(map[string]bool),
	}
}

// Watch starts watching paths.
func (w *Watcher) Watch(ctx context.Context, paths ...string) (<-chan domain.FileChange, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, domain.ErrWatcherClosed
	}
	if w.fsw != nil {
		return nil, ErrAlreadyWatching
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no paths to watch", domain.ErrInvalidInput)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w.fsw = fsw

	for _, path := range paths {
		if err := w.add(path); err != nil {
			w.fsw = nil
			_ = fsw.Close()
			return nil, err
		}
	}

	changes := make(chan domain.FileChange)
	go w.run(ctx, fsw, changes)
	return changes, nil
}

// Close stops watching. The change channel is closed once the event loop
// exits.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

// add registers one root. Must be called with mu held.
func (w *Watcher) add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return statError(path, err)
	}
	if !info.IsDir() {
		w.files[abs] = true
		return w.fsw.Add(filepath.Dir(abs))
	}
	return w.addTree(abs)
}

// addTree watches dir and every non-hidden directory beneath it.
// Must be called with mu held.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		w.dirs[p] = true
		log.Debug("watching %s", p)
		return nil
	})
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, changes chan<- domain.FileChange) {
	defer close(changes)
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			change := w.handleFsEvent(event)
			if change == nil {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return
			}
			log.Debug("%s %s", change.Type, change.Path)
			select {
			case changes <- *change:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Warn("%v", err)
		}
	}
}

// handleFsEvent converts an fsnotify event into a change, or nil when the
// event is not reported.
func (w *Watcher) handleFsEvent(event fsnotify.Event) *domain.FileChange {
	path := filepath.Clean(event.Name)
	if isHidden(filepath.Base(path)) {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	recursive := w.dirs[filepath.Dir(path)]
	if !recursive && !w.files[path] {
		return nil
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if recursive && !w.closed && w.fsw != nil {
				if err := w.addTree(path); err != nil {
					log.Warn("%v", err)
				}
			}
			return nil
		}
	}

	if !w.exts[strings.ToLower(filepath.Ext(path))] && !w.files[path] {
		return nil
	}

	switch {
	case event.Has(fsnotify.Create):
		return &domain.FileChange{Type: domain.ChangeCreated, Path: path}
	case event.Has(fsnotify.Write):
		return &domain.FileChange{Type: domain.ChangeUpdated, Path: path}
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.FileChange{Type: domain.ChangeDeleted, Path: path}
	default:
		return nil
	}
}
