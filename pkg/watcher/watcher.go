package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
)

// Logger receives watcher errors
type Logger interface {
	Warn(format string, args ...interface{})
}

// FileWatcher watches files for changes and triggers callbacks
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	dirs      map[string]int
	debounce  time.Duration
	timers    map[string]*time.Timer
	logger    Logger
	done      chan struct{}
	startOnce sync.Once
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, logger Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create watcher")
	}

	return &FileWatcher{
		watcher:   watcher,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]int),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
		logger:    logger,
		done:      make(chan struct{}),
	}, nil
}

// Watch starts watching the specified files.
// callback will be called when any of the files change. The parent
// directory is watched so that files replaced by rename keep reporting.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve path %s", file)
		}

		dir := filepath.Dir(absPath)
		if fw.dirs[dir] == 0 {
			if err := fw.watcher.Add(dir); err != nil {
				return errors.Wrapf(err, "failed to watch %s", dir)
			}
		}
		if _, exists := fw.callbacks[absPath]; !exists {
			fw.dirs[dir]++
		}
		fw.callbacks[absPath] = callback
	}

	return nil
}

// Start begins watching for file changes. Calls after the first are no-ops.
func (fw *FileWatcher) Start() {
	fw.startOnce.Do(func() {
		go fw.loop()
	})
}

func (fw *FileWatcher) loop() {
	defer close(fw.done)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			// Only trigger on write or create events
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.handleFileChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			if fw.logger != nil {
				fw.logger.Warn("watcher error: %v", err)
			}
		}
	}
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return
	}

	callback, exists := fw.callbacks[absPath]
	if !exists {
		return
	}

	// Cancel existing timer if any
	if timer, exists := fw.timers[absPath]; exists {
		timer.Stop()
	}

	fw.timers[absPath] = time.AfterFunc(fw.debounce, func() {
		callback(absPath)
	})
}

// Close stops the watcher and any pending callbacks
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}

// Done is closed once the event loop started by Start has exited
func (fw *FileWatcher) Done() <-chan struct{} {
	return fw.done
}

// RemoveAll removes all watched files
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for dir := range fw.dirs {
		if err := fw.watcher.Remove(dir); err != nil {
			return errors.Wrapf(err, "failed to stop watching %s", dir)
		}
	}

	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.callbacks = make(map[string]func(string))
	fw.dirs = make(map[string]int)
	fw.timers = make(map[string]*time.Timer)
	return nil
}
