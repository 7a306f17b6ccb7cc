package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/coachlab/tactics-board/internal/app"
	"github.com/coachlab/tactics-board/internal/config"
	"github.com/coachlab/tactics-board/internal/photos"
)

func main() {
	defaultPath, err := config.DefaultPath()
	if err != nil {
		log.Printf("[WARN] %v", err)
	}
	configPath := flag.String("config", defaultPath, "path to config.toml")
	writeDefaults := flag.Bool("write-config", false, "write the effective config back to -config and continue")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *writeDefaults {
		if err := cfg.Save(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		cache  *photos.Cache
		events <-chan photos.Loaded
	)
	if dir := cfg.Photos.Directory; dir != "" {
		cache = photos.NewCache()
		w, err := photos.NewWatcher(dir, cache)
		if err != nil {
			log.Printf("[WARN] photos disabled: %v", err)
		} else {
			events = w.Events()
			go func() {
				if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Printf("[WARN] photo watcher stopped: %v", err)
				}
			}()
		}
	}

	ebiten.SetWindowTitle("CoachLab Tactics Board")
	ebiten.SetWindowSize(cfg.Window.Width+app.LogPanelWidth, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app.New(cfg, cache, events)); err != nil {
		log.Fatal(err)
	}
}
