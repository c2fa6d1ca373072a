package content

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher hot-reloads a library when its source file changes on disk.
// A reload that fails to parse keeps the previous definitions; running
// animators are unaffected either way since Build hands out fresh
// tweenables
type Watcher struct {
	lib      *Library
	path     string
	fsw      *fsnotify.Watcher
	onReload func(*Library)
	done     chan struct{}
}

// Watch loads path into a library and reloads it on file changes.
// onReload, if non-nil, runs after each successful reload
func Watch(path string, onReload func(*Library)) (*Watcher, error) {
	lib, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors replace files on save, which drops
	// a watch registered on the file itself
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		lib:      lib,
		path:     path,
		fsw:      fsw,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Library returns the watched library
func (w *Watcher) Library() *Library {
	return w.lib
}

// Close stops watching
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("content: watch error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	fresh, err := Load(w.path)
	if err != nil {
		log.Printf("content: reload of %s failed, keeping previous definitions: %v", w.path, err)
		return
	}
	fresh.mu.RLock()
	defs := fresh.defs
	fresh.mu.RUnlock()
	w.lib.replace(defs)
	log.Printf("content: reloaded %s (%d animations)", w.path, len(defs))
	if w.onReload != nil {
		w.onReload(w.lib)
	}
}
