package animations

import (
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a roster directory whenever a character file changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	dir     string
	Reloads chan *Roster
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching dir on disk.
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		dir:     dir,
		Reloads: make(chan *Roster, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// reloadDelay is how long the directory must stay quiet before a reload.
// Editors fire several events per save.
const reloadDelay = 100 * time.Millisecond

func (w *Watcher) run() {
	settle := time.NewTimer(reloadDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			settle.Reset(reloadDelay)
		case <-settle.C:
			if !w.reload() {
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(w.Errors, err)
		case <-w.closeCh:
			return
		}
	}
}

// reload loads the directory and publishes the result. It reports false
// once the watcher is closed.
func (w *Watcher) reload() bool {
	roster, err := LoadRoster(os.DirFS(w.dir), ".")
	if err != nil {
		w.send(w.Errors, err)
		return true
	}
	select {
	case w.Reloads <- roster:
	case <-w.closeCh:
		return false
	default:
		// Drop the stale pending reload in favour of this one
		select {
		case <-w.Reloads:
		default:
		}
		w.Reloads <- roster
	}
	return true
}

func (w *Watcher) send(ch chan error, err error) {
	select {
	case ch <- err:
	default:
	}
}
