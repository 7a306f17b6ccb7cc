package photos

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/coachlab/tactics-board/internal/board"
)

// Loaded reports a photo that was decoded and stored in the cache.
type Loaded struct {
	PlayerID string
	Path     string
}

// Watcher keeps a Cache in sync with a directory of player photos named
// after player ids (a1.png .. b11.jpg).
type Watcher struct {
	dir     string
	cache   *Cache
	events  chan Loaded
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching dir. Run must be called to process events.
func NewWatcher(dir string, cache *Cache) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create photo watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch photo directory: %w", err)
	}
	return &Watcher{
		dir:     dir,
		cache:   cache,
		events:  make(chan Loaded, 2*board.PlayersPerTeam),
		watcher: fw,
	}, nil
}

// Events delivers a Loaded for every photo stored in the cache. The channel
// is closed when Run returns.
func (w *Watcher) Events() <-chan Loaded { return w.events }

// Run loads the photos already in the directory, then follows changes until
// ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) (err error) {
	defer close(w.events)
	defer func() {
		if closeErr := w.watcher.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read photo directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := w.load(ctx, filepath.Join(w.dir, e.Name())); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				if err := w.load(ctx, event.Name); err != nil {
					return err
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[WARN] photo watcher: %v", err)
		}
	}
}

// load decodes path if it names a player photo. Decode failures are logged
// and skipped; a later write to the same file retries. Only cancellation is
// returned as an error.
func (w *Watcher) load(ctx context.Context, path string) error {
	id, ok := PlayerIDFromPath(path)
	if !ok || !supported(path) {
		return nil
	}
	img, err := LoadFile(path)
	if err != nil {
		log.Printf("[WARN] %v", err)
		return nil
	}
	w.cache.Store(id, img)

	select {
	case w.events <- Loaded{PlayerID: id, Path: path}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
