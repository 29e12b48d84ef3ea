package shader

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/hans8638/opengl-samples/internal/logger"
)

// Watcher reports changes to shader files in a directory.
// Events are gathered on the fsnotify goroutine; Poll drains them on the caller's thread.
type Watcher struct {
	fs      *fsnotify.Watcher
	names   map[string]bool
	changed chan struct{}
	done    chan struct{}
}

// NewWatcher watches dir for writes to the named files.
func NewWatcher(dir string, names ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating shader watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fs:      fw,
		names:   make(map[string]bool, len(names)),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	for _, n := range names {
		w.names[filepath.Base(n)] = true
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.names[filepath.Base(ev.Name)] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("shader watcher", zap.Error(err))
		}
	}
}

// Poll reports whether a watched file changed since the last call. It never blocks.
func (w *Watcher) Poll() bool {
	select {
	case <-w.changed:
		return true
	default:
		return false
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}
