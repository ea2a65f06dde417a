package config

import (
	"path/filepath"
	"sync"

	"github.com/ochinchina/filechangemonitor"
	"go.uber.org/zap"
)

const defaultCheckInterval = 10

// Watcher reloads the configuration into a store. A failed load leaves the
// active tree in place.
type Watcher struct {
	loader        *Loader
	store         *Store
	metrics       *Metrics
	checkInterval int
	monitor       *filechangemonitor.FileChangeMonitor
	mu            sync.Mutex
}

type WatcherOptionFn func(w *Watcher)

// WithCheckInterval sets how often, in seconds, Watch looks for changes.
func WithCheckInterval(seconds int) WatcherOptionFn {
	return func(w *Watcher) {
		if seconds > 0 {
			w.checkInterval = seconds
		}
	}
}

func NewWatcher(loader *Loader, store *Store, metrics *Metrics, opts ...WatcherOptionFn) *Watcher {
	w := &Watcher{loader: loader, store: store, metrics: metrics, checkInterval: defaultCheckInterval}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Reload loads the configuration and applies it to the store.
func (w *Watcher) Reload() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	root, err := w.loader.Load()
	if err != nil {
		w.metrics.ObserveFailure()
		zap.L().Error("Failed to load configuration", zap.String("file", w.loader.Path()), zap.Error(err))
		return err
	}

	changes, err := w.store.Apply(root)
	if err != nil {
		w.metrics.ObserveFailure()
		zap.L().Error("Failed to apply configuration", zap.Error(err))
		return err
	}

	rev := w.store.Revision()
	w.metrics.ObserveReload(root, rev, changes)
	for _, c := range changes {
		zap.L().Info("Configuration changed", zap.String("table", c.Table), zap.String("name", c.Name), zap.String("kind", string(c.Kind)))
	}
	zap.L().Info("Configuration applied", zap.Uint64("revision", rev), zap.Int("changes", len(changes)))
	return nil
}

// Watch reloads whenever the main document or a file of the include
// directory changes.
func (w *Watcher) Watch() error {
	path, err := filepath.Abs(w.loader.Path())
	if err != nil {
		return err
	}

	w.mu.Lock()
	if w.monitor == nil {
		w.monitor = filechangemonitor.NewFileChangeMonitor(w.checkInterval)
	}
	monitor := w.monitor
	w.mu.Unlock()

	err = monitor.AddMonitorFile(path,
		false,
		filechangemonitor.NewExactFileMatcher(path),
		filechangemonitor.NewFileChangeCallbackWrapper(w.onChange),
		filechangemonitor.NewFileMD5CompareInfo())
	if err != nil {
		return err
	}

	if dir := w.loader.IncludeDir(); dir != "" {
		dir, err = filepath.Abs(dir)
		if err != nil {
			return err
		}
		err = monitor.AddMonitorFile(dir,
			true,
			filechangemonitor.NewPatternFileMatcher("*"),
			filechangemonitor.NewFileChangeCallbackWrapper(w.onChange),
			filechangemonitor.NewFileMD5CompareInfo())
		if err != nil {
			return err
		}
	}
	zap.L().Info("Watching configuration", zap.String("file", path), zap.Int("interval", w.checkInterval))
	return nil
}

// Stop ends watching. Reload keeps working.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.monitor != nil {
		w.monitor.Stop()
		w.monitor = nil
	}
}

func (w *Watcher) onChange(path string, mode filechangemonitor.FileChangeMode) {
	zap.L().Info("Configuration file changed", zap.String("file", path))
	_ = w.Reload()
}
