// Package watch reruns extraction when definition or graphics files change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher debounces file events under a set of directory trees into calls
// to a single change handler.
type Watcher struct {
	fsw      *fsnotify.Watcher
	exts     map[string]bool
	debounce time.Duration
	logger   *zap.Logger
	onChange func(context.Context) error
}

// New watches every directory under each root. Only files whose extension
// (compared case-insensitively) is in exts trigger onChange.
//
// Precondition: roots are readable directories; debounce >= 0.
// Postcondition: returns a Watcher that must be closed, or an error.
func New(roots, exts []string, debounce time.Duration, logger *zap.Logger, onChange func(context.Context) error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	w := &Watcher{
		fsw:      fsw,
		exts:     make(map[string]bool, len(exts)),
		debounce: debounce,
		logger:   logger,
		onChange: onChange,
	}
	for _, e := range exts {
		w.exts[strings.ToLower(e)] = true
	}
	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

// Run handles events until ctx is done. Handler errors are logged and the
// watch continues.
//
// Postcondition: returns nil when ctx is cancelled, or the watcher's error
// if its event channels close.
func (w *Watcher) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("file watcher closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("file changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			pending = true
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("file watcher closed")
			}
			w.logger.Warn("file watcher error", zap.Error(err))

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			if err := w.onChange(ctx); err != nil {
				w.logger.Error("rerun failed", zap.Error(err))
			}
		}
	}
}

// relevant filters events to watched extensions, and starts watching
// directories created after New.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("cannot watch new directory", zap.String("path", event.Name), zap.Error(err))
			}
			return false
		}
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return w.exts[strings.ToLower(filepath.Ext(event.Name))]
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
