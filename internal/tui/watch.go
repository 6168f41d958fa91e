package tui

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// storeChangedMsg is sent into the program when another process rewrote the store.
type storeChangedMsg struct{}

// StoreWatcher reports writes to the store file (and its sqlite -wal/-shm siblings).
// Bursts of events are collapsed into one callback per debounce window.
type StoreWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	base     string
	onChange func()
	log      *zap.Logger

	debounceDur time.Duration
	pending     bool
	lastEvent   time.Time

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

func NewStoreWatcher(path string, onChange func(), log *zap.Logger) (*StoreWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &StoreWatcher{
		watcher:     w,
		dir:         filepath.Dir(path),
		base:        filepath.Base(path),
		onChange:    onChange,
		log:         log,
		debounceDur: 150 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start watches the store's directory; atomic rename writes replace the file itself.
func (sw *StoreWatcher) Start(ctx context.Context) error {
	sw.mu.Lock()
	if sw.running {
		sw.mu.Unlock()
		return nil
	}
	sw.running = true
	sw.mu.Unlock()

	if err := sw.watcher.Add(sw.dir); err != nil {
		sw.mu.Lock()
		sw.running = false
		sw.mu.Unlock()
		_ = sw.watcher.Close()
		close(sw.doneCh)
		return err
	}
	sw.log.Debug("watching store", zap.String("dir", sw.dir), zap.String("file", sw.base))

	go sw.run(ctx)
	return nil
}

func (sw *StoreWatcher) Stop() {
	sw.mu.Lock()
	if !sw.running {
		sw.mu.Unlock()
		return
	}
	sw.running = false
	sw.mu.Unlock()

	close(sw.stopCh)
	<-sw.doneCh

	if err := sw.watcher.Close(); err != nil {
		sw.log.Warn("closing store watcher", zap.Error(err))
	}
}

func (sw *StoreWatcher) run(ctx context.Context) {
	defer close(sw.doneCh)

	tick := time.NewTicker(sw.debounceDur / 3)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sw.stopCh:
			return
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			sw.handleEvent(ev)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.log.Warn("store watcher error", zap.Error(err))
		case now := <-tick.C:
			if sw.pending && now.Sub(sw.lastEvent) >= sw.debounceDur {
				sw.pending = false
				sw.onChange()
			}
		}
	}
}

func (sw *StoreWatcher) handleEvent(ev fsnotify.Event) {
	if !strings.HasPrefix(filepath.Base(ev.Name), sw.base) {
		return
	}
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}
	sw.pending = true
	sw.lastEvent = time.Now()
}
