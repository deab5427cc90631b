package icon

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to icon files
// notify runs on the watcher goroutine and must only hand the path off to the UI goroutine
type Watcher struct {
	fs     *fsnotify.Watcher
	files  map[string]struct{}
	notify func(path string)
	wg     sync.WaitGroup
}

// NewWatcher watches the directories holding paths and starts the event loop
func NewWatcher(paths []string, notify func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("icon watcher: %w", err)
	}

	w := &Watcher{
		fs:     fw,
		files:  make(map[string]struct{}, len(paths)),
		notify: notify,
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		p = filepath.Clean(p)
		w.files[p] = struct{}{}
		dirs[filepath.Dir(p)] = struct{}{}
	}
	// Directories rather than files so editors that replace files by rename still trigger
	for d := range dirs {
		if err := fw.Add(d); err != nil {
			fw.Close()
			return nil, fmt.Errorf("icon watcher: watch %s: %w", d, err)
		}
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if _, ok := w.files[path]; ok {
				w.notify(path)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("icon watcher: %v", err)
		}
	}
}

// Close stops watching and waits for the event loop to exit
func (w *Watcher) Close() error {
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
