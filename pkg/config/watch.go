package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"gldemos/internal/logger"
)

// Watcher reloads a config file whenever it changes on disk. Only configs
// that parse and validate are delivered.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *Config
	done    chan struct{}
	log     *logger.Logger
}

// Watch starts watching filePath. The parent directory is watched so that
// editors which replace the file on save are picked up too.
func Watch(filePath string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan *Config, 1),
		done:    make(chan struct{}),
		log:     log,
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnf("config watcher: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadConfig(w.path)
	if err != nil {
		// Half-written files show up as parse errors; the next write fixes them
		w.log.Warnf("ignoring config change: %v", err)
		return
	}

	// Keep only the newest config
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.log.Infof("config reloaded from %s", w.path)
}

// Updates delivers reloaded configs. At most one is buffered.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops watching
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
