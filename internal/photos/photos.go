// Package photos loads player photos from disk for the board renderer.
// Decoding happens off the UI goroutine; results are handed back as events
// and looked up by player id at paint time.
package photos

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/coachlab/tactics-board/internal/board"
)

// Cache maps player ids to decoded photos. It is safe for concurrent use and
// satisfies board.PhotoSource.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{images: make(map[string]image.Image)}
}

// Photo returns the decoded photo for a player.
func (c *Cache) Photo(playerID string) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[playerID]
	return img, ok
}

// Store records img for playerID, replacing any earlier photo.
func (c *Cache) Store(playerID string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images[playerID] = img
}

// Len returns the number of cached photos.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// LoadFile decodes the image at path.
func LoadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode photo %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// PlayerIDFromPath maps a file name like "a7.png" or "B11.jpeg" to the
// player id it belongs to.
func PlayerIDFromPath(path string) (string, bool) {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if len(name) < 2 {
		return "", false
	}
	team := board.Team(strings.ToUpper(name[:1]))
	if team != board.TeamA && team != board.TeamB {
		return "", false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 1 || n > board.PlayersPerTeam {
		return "", false
	}
	return string(team) + strconv.Itoa(n), true
}

// supported reports whether path has an image extension we can decode.
func supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return true
	}
	return false
}

// LoadDir decodes every player photo in dir into cache once, without
// watching for changes. Files that fail to decode are skipped.
func LoadDir(dir string, cache *Cache) ([]Loaded, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read photo directory: %w", err)
	}
	var loaded []Loaded
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		id, ok := PlayerIDFromPath(path)
		if e.IsDir() || !ok || !supported(path) {
			continue
		}
		img, err := LoadFile(path)
		if err != nil {
			log.Printf("[WARN] %v", err)
			continue
		}
		cache.Store(id, img)
		loaded = append(loaded, Loaded{PlayerID: id, Path: path})
	}
	return loaded, nil
}
