package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/widgetkit/internal/logger"
	"github.com/alexisbeaulieu97/widgetkit/internal/timer"
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
)

// DefaultDebounce is how long a theme file must stay quiet before it is reloaded.
const DefaultDebounce = 150 * time.Millisecond

// ThemeEvent is the outcome of one reload.
type ThemeEvent struct {
	Theme components.Theme
	Err   error
}

// Watcher reloads a theme file whenever it changes on disk.
type Watcher struct {
	path   string
	log    *logger.Logger
	fs     *fsnotify.Watcher
	sched  *timer.Scheduler
	reload func()

	events    chan ThemeEvent
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// WatchTheme starts watching path. The parent directory is watched so that
// editors replacing the file by rename are still noticed.
func WatchTheme(path string, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		path:   abs,
		log:    log.With("theme_file", abs),
		fs:     fsw,
		sched:  timer.NewScheduler(),
		events: make(chan ThemeEvent, 1),
		done:   make(chan struct{}),
	}
	w.reload = timer.Debounce(w.sched, debounce, w.load)

	w.wg.Add(1)
	go w.loop()

	w.log.Debug("watching theme file")
	return w, nil
}

// Events delivers reloaded themes. It is closed by Close.
func (w *Watcher) Events() <-chan ThemeEvent {
	return w.events
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.reload()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Error(err, "theme watcher error")
		}
	}
}

func (w *Watcher) load() {
	var event ThemeEvent
	file, err := LoadTheme(w.path)
	if err != nil {
		w.log.Warn("theme reload failed: " + err.Error())
		event.Err = err
	} else {
		w.log.Info("theme reloaded")
		event.Theme = file.Resolve()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- event:
	case <-w.done:
	}
}

// Close stops watching, cancels any pending reload and closes Events.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.sched.Close()
		err = w.fs.Close()
		w.wg.Wait()

		w.mu.Lock()
		w.closed = true
		close(w.events)
		w.mu.Unlock()
	})
	return err
}
