package tail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/pgtail/internal/log"
)

// Config holds follower configuration options.
type Config struct {
	Path string
	// Debounce coalesces bursts of write events into one read.
	Debounce time.Duration
	// FromStart emits the existing content before following.
	FromStart bool
	// Backlog emits up to this many existing lines first. Ignored with FromStart.
	Backlog int
}

// DefaultConfig returns sensible defaults for following path.
func DefaultConfig(path string) Config {
	return Config{
		Path:     path,
		Debounce: 50 * time.Millisecond,
	}
}

// Follower delivers lines appended to a file. It handles truncation and
// rotation (the path being replaced by a new file). A trailing line without a
// newline is held back until it is completed.
type Follower struct {
	fsWatcher *fsnotify.Watcher
	cfg       Config
	file      *os.File
	info      os.FileInfo
	offset    int64
	partial   []byte
	backlog   []string
	lines     chan string
	done      chan struct{}
	stopOnce  sync.Once
}

// New creates a follower. Nothing is read until Start.
func New(cfg Config) (*Follower, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	return &Follower{
		fsWatcher: fsw,
		cfg:       cfg,
		lines:     make(chan string, 256),
		done:      make(chan struct{}),
	}, nil
}

// Start opens the file and begins following it. The returned channel is
// closed after Stop.
func (f *Follower) Start() (<-chan string, error) {
	if err := f.open(); err != nil {
		return nil, err
	}
	if !f.cfg.FromStart {
		f.offset = f.info.Size()
		if f.cfg.Backlog > 0 {
			lines, err := ReadFrom(io.NewSectionReader(f.file, 0, f.offset), f.cfg.Backlog)
			if err != nil {
				_ = f.file.Close()
				return nil, err
			}
			f.backlog = lines
		}
	}

	dir := filepath.Dir(f.cfg.Path)
	if err := f.fsWatcher.Add(dir); err != nil {
		_ = f.file.Close()
		return nil, fmt.Errorf("watching directory %s: %w", dir, err)
	}
	log.Info(log.CatTail, "following file", "path", f.cfg.Path, "offset", f.offset)

	go f.loop()

	return f.lines, nil
}

// Stop terminates the follower and releases resources. It is safe to call
// more than once.
func (f *Follower) Stop() error {
	var err error
	f.stopOnce.Do(func() {
		close(f.done)
		err = f.fsWatcher.Close()
	})
	return err
}

func (f *Follower) open() error {
	file, err := os.Open(f.cfg.Path)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("stat log: %w", err)
	}
	if f.file != nil {
		_ = f.file.Close()
	}
	f.file = file
	f.info = info
	f.offset = 0
	f.partial = nil
	return nil
}

func (f *Follower) loop() {
	defer close(f.lines)
	defer func() {
		if f.file != nil {
			_ = f.file.Close()
		}
	}()

	var (
		timer   *time.Timer
		pending bool
	)

	for _, line := range f.backlog {
		select {
		case f.lines <- line:
		case <-f.done:
			return
		}
	}
	f.backlog = nil

	// Content written between open and the watch being added.
	f.drain()

	for {
		select {
		case event, ok := <-f.fsWatcher.Events:
			if !ok {
				return
			}
			if !f.isRelevantEvent(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(f.cfg.Debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(f.cfg.Debounce)
			}
			pending = true

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending {
				f.drain()
				pending = false
			}

		case err, ok := <-f.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn(log.CatTail, "watcher error", "path", f.cfg.Path, "error", err)

		case <-f.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (f *Follower) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(f.cfg.Path)
}

// drain reads everything appended since the last call and emits complete lines.
func (f *Follower) drain() {
	info, err := os.Stat(f.cfg.Path)
	if err != nil {
		log.Debug(log.CatTail, "stat failed", "path", f.cfg.Path, "error", err)
		return
	}

	if !os.SameFile(info, f.info) {
		log.Info(log.CatTail, "file replaced, reopening", "path", f.cfg.Path)
		if err := f.open(); err != nil {
			log.ErrorErr(log.CatTail, "reopen failed", err, "path", f.cfg.Path)
			return
		}
		info = f.info
	}

	size := info.Size()
	if size < f.offset {
		log.Info(log.CatTail, "file truncated", "path", f.cfg.Path, "size", size, "offset", f.offset)
		f.offset = 0
		f.partial = nil
	}
	if size == f.offset {
		return
	}

	buf := make([]byte, size-f.offset)
	n, err := f.file.ReadAt(buf, f.offset)
	if err != nil && !errors.Is(err, io.EOF) {
		log.ErrorErr(log.CatTail, "read failed", err, "path", f.cfg.Path)
		return
	}
	f.offset += int64(n)
	f.emit(buf[:n])
}

func (f *Follower) emit(data []byte) {
	data = append(f.partial, data...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		line := string(bytes.TrimSuffix(data[:i], []byte{'\r'}))
		data = data[i+1:]
		select {
		case f.lines <- line:
		case <-f.done:
			return
		}
	}
	f.partial = bytes.Clone(data)
}
