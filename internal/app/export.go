package app

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
)

// copyLayout puts the text layout of the board on the system clipboard.
func (g *Game) copyLayout() {
	if err := clipboard.WriteAll(g.board.LayoutText()); err != nil {
		log.Printf("[WARN] copy layout: %v", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("layout copied")
}

// saveScreenshot writes the last rendered frame next to the working directory.
func (g *Game) saveScreenshot() {
	if g.frame == nil {
		return
	}
	name := screenshotName(time.Now())
	if err := writePNG(name, g.frame); err != nil {
		log.Printf("[WARN] %v", err)
		g.setStatus("screenshot failed")
		return
	}
	g.setStatus("saved " + name)
}

func screenshotName(t time.Time) string {
	return fmt.Sprintf("board-%s.png", t.Format("20060102-150405"))
}

// writePNG encodes img to path, creating parent directories as needed.
func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
