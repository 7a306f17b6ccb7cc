package photos

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePNG(t *testing.T, path string, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestPlayerIDFromPath(t *testing.T) {
	cases := map[string]string{
		"a7.png":            "A7",
		"/squad/B11.jpeg":   "B11",
		"b01.webp":          "B1",
		"photos/a1.bmp":     "A1",
		"c3.png":            "",
		"a0.png":            "",
		"a12.png":           "",
		"a.png":             "",
		"keeper.png":        "",
		"/tmp/anotes/a3x.j": "",
	}
	for path, want := range cases {
		got, ok := PlayerIDFromPath(path)
		if ok != (want != "") || got != want {
			t.Fatalf("%s: expected %q, got %q (ok=%v)", path, want, got, ok)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a2.png")
	writePNG(t, path, color.RGBA{G: 0xff, A: 0xff})

	img, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Fatalf("expected 4px wide image, got %d", img.Bounds().Dx())
	}

	bad := filepath.Join(dir, "a3.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestCache(t *testing.T) {
	c := NewCache()
	if _, ok := c.Photo("A1"); ok {
		t.Fatal("expected empty cache")
	}
	c.Store("A1", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if _, ok := c.Photo("A1"); !ok || c.Len() != 1 {
		t.Fatalf("expected one photo, got %d", c.Len())
	}
}

func waitFor(t *testing.T, events <-chan Loaded, id string) Loaded {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("events closed before %s was loaded", id)
			}
			if ev.PlayerID == id {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", id)
		}
	}
}

func TestWatcher_InitialScanAndNewFiles(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a3.png"), color.RGBA{R: 0xff, A: 0xff})
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cache := NewCache()
	w, err := NewWatcher(dir, cache)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitFor(t, w.Events(), "A3")

	// Write under a name the watcher ignores, then rename into place so the
	// watcher never sees a half-written file.
	tmp := filepath.Join(dir, "incoming.part")
	writePNG(t, tmp, color.RGBA{B: 0xff, A: 0xff})
	if err := os.Rename(tmp, filepath.Join(dir, "b11.png")); err != nil {
		t.Fatal(err)
	}
	ev := waitFor(t, w.Events(), "B11")
	if filepath.Base(ev.Path) != "b11.png" {
		t.Fatalf("unexpected path %s", ev.Path)
	}
	if _, ok := cache.Photo("B11"); !ok {
		t.Fatal("expected B11 cached")
	}
	if cache.Len() != 2 {
		t.Fatalf("expected 2 cached photos, got %d", cache.Len())
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope"), NewCache()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a1.png"), color.RGBA{R: 0xff, A: 0xff})
	writePNG(t, filepath.Join(dir, "keeper.png"), color.RGBA{R: 0xff, A: 0xff})
	if err := os.WriteFile(filepath.Join(dir, "b2.png"), []byte("broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	cache := NewCache()
	loaded, err := LoadDir(dir, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 1 || loaded[0].PlayerID != "A1" {
		t.Fatalf("expected only A1 loaded, got %+v", loaded)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected 1 cached photo, got %d", cache.Len())
	}
	if _, err := LoadDir(filepath.Join(dir, "missing"), cache); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
