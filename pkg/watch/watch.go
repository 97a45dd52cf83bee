package watch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/l10ncheck/pkg/logger"
)

// DefaultDebounce is used when Config.Debounce is not positive.
const DefaultDebounce = 300 * time.Millisecond

var ErrNotADirectory = errors.New("watch path is not a directory")

// Config configures a Watcher.
type Config struct {
	// Debounce is how long to wait for more changes before calling back.
	Debounce time.Duration
	// Extensions limits events to files with these extensions ("yaml" or
	// ".yaml"). All files are reported when empty.
	Extensions []string
	// ExcludeDirs lists directory names that are not watched. Hidden
	// directories are always skipped.
	ExcludeDirs []string
}

// ChangeFunc receives the sorted absolute paths changed since the last call.
type ChangeFunc func(ctx context.Context, paths []string)

// Watcher watches a directory tree.
type Watcher struct {
	root       string
	debounce   time.Duration
	extensions map[string]bool
	excludes   map[string]bool
	fsw        *fsnotify.Watcher
	log        *slog.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

// New starts watching root and every directory below it.
func New(root string, cfg Config, log *slog.Logger) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrNotADirectory
	}
	if log == nil {
		log = slog.Default()
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:       abs,
		debounce:   cfg.Debounce,
		extensions: make(map[string]bool, len(cfg.Extensions)),
		excludes:   make(map[string]bool, len(cfg.ExcludeDirs)),
		fsw:        fsw,
		log:        log.With(logger.Component("watch")),
		pending:    make(map[string]struct{}),
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		w.extensions[strings.ToLower(ext)] = true
	}
	for _, dir := range cfg.ExcludeDirs {
		w.excludes[dir] = true
	}

	if err := w.addRecursive(abs); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Root returns the absolute watched directory.
func (w *Watcher) Root() string { return w.root }

// Run delivers debounced changes to fn until ctx is done, then closes the
// watcher. fn is never called concurrently with itself.
func (w *Watcher) Run(ctx context.Context, fn ChangeFunc) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	w.log.InfoContext(ctx, "watching catalogs", logger.Path(w.root))
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.handle(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.ErrorContext(ctx, "watcher error", logger.Error(err))

		case <-timer.C:
			if paths := w.flush(); len(paths) > 0 {
				fn(ctx, paths)
			}
		}
	}
}

// Close stops the watcher without waiting for Run.
func (w *Watcher) Close() error { return w.fsw.Close() }

// handle records a relevant event and reports whether it was recorded.
func (w *Watcher) handle(event fsnotify.Event) bool {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				w.log.Warn("failed to watch new directory", logger.Path(event.Name), logger.Error(err))
			}
			return false
		}
	}
	if event.Op == fsnotify.Chmod || !w.accepts(event.Name) {
		return false
	}

	w.mu.Lock()
	w.pending[event.Name] = struct{}{}
	w.mu.Unlock()

	w.log.Debug("catalog change detected", logger.Path(event.Name), slog.String("op", event.Op.String()))
	return true
}

func (w *Watcher) accepts(path string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}

func (w *Watcher) flush() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	clear(w.pending)
	slices.Sort(paths)
	return paths
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		base := d.Name()
		if path != root && (w.excludes[base] || strings.HasPrefix(base, ".")) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return err
		}
		w.log.Debug("watching directory", logger.Path(path))
		return nil
	})
}
