package app

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coachlab/tactics-board/internal/board"
	"github.com/coachlab/tactics-board/internal/config"
	"github.com/coachlab/tactics-board/internal/photos"
)

func newTestGame(t *testing.T, events <-chan photos.Loaded) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Window.Density = 1
	return New(cfg, photos.NewCache(), events)
}

func TestTextEntry(t *testing.T) {
	var e textEntry
	e.reset("Kane")
	if !e.insert([]rune{' ', '9', '\n', '\t'}) {
		t.Fatal("expected printable runes to be inserted")
	}
	if got := e.String(); got != "Kane 9" {
		t.Fatalf("expected %q, got %q", "Kane 9", got)
	}
	e.backspace()
	e.backspace()
	if got := e.String(); got != "Kane" {
		t.Fatalf("expected %q after backspace, got %q", "Kane", got)
	}

	e.reset("")
	if e.backspace() {
		t.Fatal("backspace on empty entry should report no change")
	}
	long := make([]rune, maxEntryLen+10)
	for i := range long {
		long[i] = 'x'
	}
	e.insert(long)
	if n := len([]rune(e.String())); n != maxEntryLen {
		t.Fatalf("expected entry capped at %d, got %d", maxEntryLen, n)
	}
}

func TestNextFormation_Wraps(t *testing.T) {
	names := formationOrder()
	if len(names) != len(board.FormationNames()) {
		t.Fatalf("picker lists %d formations, catalog has %d", len(names), len(board.FormationNames()))
	}
	first, last := names[0], names[len(names)-1]

	if got := nextFormation("", 1); got != first {
		t.Fatalf("expected %s from empty, got %s", first, got)
	}
	if got := nextFormation("", -1); got != last {
		t.Fatalf("expected %s stepping back from empty, got %s", last, got)
	}
	if got := nextFormation(last, 1); got != first {
		t.Fatalf("expected wrap to %s, got %s", first, got)
	}
	if got := nextFormation(first, -1); got != last {
		t.Fatalf("expected wrap to %s, got %s", last, got)
	}
	if got := nextFormation(first, 1); got != names[1] {
		t.Fatalf("expected %s, got %s", names[1], got)
	}
}

func TestPalette(t *testing.T) {
	if len(palette) != len(colorKeys) {
		t.Fatalf("palette has %d colours for %d keys", len(palette), len(colorKeys))
	}
	seen := map[color.RGBA]bool{}
	for _, c := range palette {
		if seen[c] {
			t.Fatalf("duplicate palette colour %s", board.HexColor(c))
		}
		seen[c] = true
	}
}

func TestLayout_ReservesLogPanel(t *testing.T) {
	g := newTestGame(t, nil)
	w, h := g.Layout(1350, 680)
	if w != 1350 || h != 680 {
		t.Fatalf("expected 1350x680 at density 1, got %dx%d", w, h)
	}
	s := g.Board().Surface()
	if s.Width != 1050 || s.Height != 680 {
		t.Fatalf("expected 1050x680 board, got %vx%v", s.Width, s.Height)
	}

	g.showLog = false
	g.Layout(1350, 680)
	if s := g.Board().Surface(); s.Width != 1350 {
		t.Fatalf("expected full width board without log, got %v", s.Width)
	}
}

func TestDrainPhotos(t *testing.T) {
	events := make(chan photos.Loaded, 3)
	events <- photos.Loaded{PlayerID: "A4", Path: "/squad/a4.png"}
	events <- photos.Loaded{PlayerID: "Z9", Path: "/squad/z9.png"}
	close(events)

	g := newTestGame(t, events)
	g.dirty = false
	g.drainPhotos()

	p, ok := g.Board().Player("A4")
	if !ok || p.Photo != "/squad/a4.png" {
		t.Fatalf("expected A4 photo attached, got %+v", p)
	}
	if !g.dirty {
		t.Fatal("expected a redraw after attaching a photo")
	}
	if g.photoEvents != nil {
		t.Fatal("expected closed channel to be released")
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(1, 1, color.RGBA{R: 0xff, A: 0xff})
	path := filepath.Join(t.TempDir(), "shots", "board.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Fatalf("expected bounds %v, got %v", img.Bounds(), got.Bounds())
	}
	if r, _, _, _ := got.At(1, 1).RGBA(); r>>8 != 0xff {
		t.Fatalf("expected red pixel, got %v", got.At(1, 1))
	}
}

func TestScreenshotName(t *testing.T) {
	ts := time.Date(2024, 5, 17, 9, 3, 7, 0, time.UTC)
	if got := screenshotName(ts); got != "board-20240517-090307.png" {
		t.Fatalf("unexpected name %s", got)
	}
}
