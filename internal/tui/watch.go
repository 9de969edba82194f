package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/manav03panchal/studinest/internal/logging"
)

// defaultDebounce coalesces the burst of events a single write produces.
const defaultDebounce = 250 * time.Millisecond

// storageChangedMsg is sent when the database changed on disk.
type storageChangedMsg struct{}

// StorageWatcher reports changes to the database made by other processes,
// such as a CLI command run while the dashboard is open.
type StorageWatcher struct {
	path     string
	dir      bool
	watcher  *fsnotify.Watcher
	changes  chan struct{}
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped chan struct{}
	once    sync.Once
}

// NewStorageWatcher watches path. A directory (badger) is watched as a
// whole; for a file (sqlite) the parent directory is watched and events are
// filtered to the file and its journal files.
func NewStorageWatcher(path string, isDir bool) (*StorageWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve storage path: %w", err)
	}

	target := absPath
	if !isDir {
		target = filepath.Dir(absPath)
	}
	if err := watcher.Add(target); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", target, err)
	}

	sw := &StorageWatcher{
		path:     absPath,
		dir:      isDir,
		watcher:  watcher,
		changes:  make(chan struct{}, 1),
		debounce: defaultDebounce,
		stopped:  make(chan struct{}),
	}
	go sw.loop()

	logging.DebugLog("watching storage", logging.KeyPath, absPath)
	return sw, nil
}

// Changes delivers one value per debounced burst of writes.
func (sw *StorageWatcher) Changes() <-chan struct{} {
	return sw.changes
}

// Close stops watching.
func (sw *StorageWatcher) Close() error {
	var err error
	sw.once.Do(func() {
		close(sw.stopped)
		err = sw.watcher.Close()

		sw.mu.Lock()
		if sw.timer != nil {
			sw.timer.Stop()
		}
		sw.mu.Unlock()
	})
	return err
}

func (sw *StorageWatcher) loop() {
	for {
		select {
		case <-sw.stopped:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !sw.relevant(event) {
				continue
			}
			sw.trigger()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("storage watcher error", logging.KeyError, err)
		}
	}
}

func (sw *StorageWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	if sw.dir {
		return true
	}
	// sqlite also writes name-wal and name-journal next to the database
	return strings.HasPrefix(filepath.Base(event.Name), filepath.Base(sw.path))
}

func (sw *StorageWatcher) trigger() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.timer = time.AfterFunc(sw.debounce, func() {
		select {
		case sw.changes <- struct{}{}:
		default:
			// a change is already pending
		}
	})
}

// waitForChange blocks until the watcher reports a change.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return storageChangedMsg{}
	}
}
