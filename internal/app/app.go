// Package app is the windowed front end: it owns the drawing surface, feeds
// pointer and keyboard input into the board and blits the rendered frame.
package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/coachlab/tactics-board/internal/board"
	"github.com/coachlab/tactics-board/internal/config"
	"github.com/coachlab/tactics-board/internal/photos"
)

// LogPanelWidth is the width of the action log panel in layout pixels.
const LogPanelWidth = 300

// Game implements ebiten.Game.
type Game struct {
	board       *board.Board
	photos      board.PhotoSource
	photoEvents <-chan photos.Loaded
	density     float64 // configured density, 0 asks the monitor

	frame    *image.RGBA
	boardImg *ebiten.Image
	uiBuf    *ebiten.Image
	dirty    bool

	outW, outH int // layout size in layout pixels
	scale      float64

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
	lastPointer   board.Point
	runeBuf       []rune

	entry     textEntry
	editingID string // player being renamed

	formation   [2]string
	showHUD     bool
	showLog     bool
	status      string
	statusTicks int
}

// New builds the game from cfg. cache and events may be nil when photo
// loading is disabled.
func New(cfg *config.Config, cache *photos.Cache, events <-chan photos.Loaded) *Game {
	g := &Game{
		density:     cfg.Window.Density,
		photoEvents: events,
		prevKeys:    make(map[ebiten.Key]bool),
		showHUD:     true,
		showLog:     true,
		dirty:       true,
		scale:       1,
	}
	if cache != nil {
		g.photos = cache
	}
	s := board.NewSurface(float64(cfg.Window.Width), float64(cfg.Window.Height), 1)
	g.board = cfg.NewBoard(s)
	return g
}

// Board exposes the underlying board.
func (g *Game) Board() *board.Board { return g.board }

func (g *Game) Update() error {
	g.drainPhotos()
	g.handleInput()
	if g.statusTicks > 0 {
		g.statusTicks--
	}
	g.updateCursor()
	return nil
}

// drainPhotos attaches every photo decoded since the last frame.
func (g *Game) drainPhotos() {
	if g.photoEvents == nil {
		return
	}
	for {
		select {
		case ev, ok := <-g.photoEvents:
			if !ok {
				g.photoEvents = nil
				return
			}
			if g.board.AttachPlayerPhoto(ev.PlayerID, ev.Path) {
				g.dirty = true
			}
		default:
			return
		}
	}
}

func (g *Game) updateCursor() {
	shape := ebiten.CursorShapeDefault
	switch {
	case g.board.Busy():
		shape = ebiten.CursorShapeText
	case g.board.Cursor() == "crosshair":
		shape = ebiten.CursorShapeCrosshair
	case g.board.Cursor() == "cell":
		shape = ebiten.CursorShapePointer
	}
	ebiten.SetCursorShape(shape)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})

	w, h := g.board.Surface().DeviceSize()
	if w <= 0 || h <= 0 {
		return
	}
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		g.frame = board.NewFrame(g.board.Surface())
		g.boardImg = ebiten.NewImage(w, h)
		g.dirty = true
	}
	if g.dirty {
		g.board.Render(g.frame, g.photos)
		g.boardImg.WritePixels(g.frame.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.boardImg, nil)

	// Panels and overlays are laid out at 1x, then scaled to device pixels.
	if g.uiBuf == nil || g.uiBuf.Bounds().Dx() != g.outW || g.uiBuf.Bounds().Dy() != g.outH {
		if g.outW <= 0 || g.outH <= 0 {
			return
		}
		g.uiBuf = ebiten.NewImage(g.outW, g.outH)
	}
	g.uiBuf.Clear()
	if g.showLog {
		g.drawLog(g.uiBuf, g.outW-LogPanelWidth, g.outH)
	}
	if g.showHUD {
		g.drawHUD(g.uiBuf)
	}
	g.drawEntry(g.uiBuf)
	g.drawStatus(g.uiBuf)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(g.uiBuf, opts)
}

// Layout sizes the board surface to the window minus the log panel and
// returns a device-pixel screen so the board is painted at full density.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	d := g.density
	if d <= 0 {
		d = 1
		if m := ebiten.Monitor(); m != nil {
			d = m.DeviceScaleFactor()
		}
	}
	boardW := outsideWidth
	if g.showLog {
		boardW -= LogPanelWidth
	}
	if boardW < 1 {
		boardW = 1
	}
	s := board.NewSurface(float64(boardW), float64(outsideHeight), d)
	if s != g.board.Surface() {
		g.board.SetSurface(s)
		g.dirty = true
	}
	g.outW, g.outH, g.scale = outsideWidth, outsideHeight, s.Density
	return int(float64(outsideWidth) * s.Density), int(float64(outsideHeight) * s.Density)
}

// setStatus shows msg in the status line for about two seconds.
func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = 120
}
