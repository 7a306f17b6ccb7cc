package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/coachlab/tactics-board/internal/board"
)

// Debug font metrics at 1x.
const (
	lineH = 16
	charW = 6
)

var (
	panelBG     = color.RGBA{R: 6, G: 10, B: 6, A: 210}
	panelBorder = color.RGBA{R: 60, G: 100, B: 60, A: 180}
	panelTitle  = color.RGBA{R: 20, G: 30, B: 20, A: 255}
	rowHighlite = color.RGBA{R: 30, G: 40, B: 30, A: 160}
)

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (g *Game) hudLines() []string {
	b := g.board
	formation := func(i int) string {
		if g.formation[i] == "" {
			return "border"
		}
		return g.formation[i]
	}
	state := b.State().String()
	if sel, ok := b.SelectedPlayer(); ok {
		state += "  sel " + sel
	} else if _, ok := b.SelectedDrawing(); ok {
		state += "  sel drawing"
	}
	return []string{
		fmt.Sprintf("tool: %-12s colour: %s  fill: %s", b.Tool(), board.HexColor(b.Color()), onOff(b.Filled())),
		fmt.Sprintf("%s: %s   %s: %s", b.TeamName(board.TeamA), formation(0), b.TeamName(board.TeamB), formation(1)),
		fmt.Sprintf("undo: %d  state: %s", b.HistoryLen(), state),
		"V sel E erase L line A arrow Q curve R rect O circle",
		"T tri Z zone X text F fill 1-6 colour",
		"G/J formation B/N border Space ball Del clear",
		"Ctrl+Z undo Enter rename P hide C copy F12 png",
		fmt.Sprintf("F1 names:%s F2 zones:%s F3 light:%s  H hud",
			onOff(b.View().ShowNames), onOff(b.View().ShowZones), onOff(b.View().LightField)),
	}
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	lines := g.hudLines()
	const padX, padY = 5, 4

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)
	bx := float32(4)
	by := float32(g.outH) - boxH - 4

	vector.FillRect(dst, bx, by, boxW, boxH, panelBG, false)
	vector.StrokeRect(dst, bx, by, boxW, boxH, 1.0, panelBorder, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, int(bx)+padX, int(by)+padY+i*lineH)
	}
}

// drawLog renders the action log panel, newest entry at the bottom.
func (g *Game) drawLog(dst *ebiten.Image, panelX, panelH int) {
	x := float32(panelX)
	vector.FillRect(dst, x, 0, LogPanelWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.StrokeLine(dst, x, 0, x, float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)
	vector.FillRect(dst, x, 0, LogPanelWidth, lineH+2, panelTitle, false)
	ebitenutil.DebugPrintAt(dst, "ACTIONS", panelX+8, 1)

	entries := g.board.Log().Recent()
	maxVisible := (panelH - 24) / lineH
	if maxVisible < 0 {
		maxVisible = 0
	}
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	const recent = 3
	y := 22
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(dst, x+2, float32(y), LogPanelWidth-4, lineH, rowHighlite, false)
		}
		ebitenutil.DebugPrintAt(dst, e.String(), panelX+6, y)
		y += lineH
	}
}

// drawEntry shows the text being typed next to where it will land.
func (g *Game) drawEntry(dst *ebiten.Image) {
	var at board.Point
	label := ""
	switch g.board.State() {
	case board.StatePlacingText:
		dev, ok := g.board.TextAnchor()
		if !ok {
			return
		}
		at, label = dev, "text"
	case board.StateEditing:
		p, ok := g.board.Player(g.editingID)
		if !ok {
			return
		}
		at, label = board.ToDevice(p.Pos, g.board.Surface()), "name "+p.ID
	default:
		return
	}
	s := fmt.Sprintf("%s: %s_", label, g.entry.String())
	x := float32(at.X/g.scale) + 8
	y := float32(at.Y/g.scale) - lineH - 6
	vector.FillRect(dst, x-3, y-2, float32(len(s)*charW+6), lineH+4, panelBG, false)
	vector.StrokeRect(dst, x-3, y-2, float32(len(s)*charW+6), lineH+4, 1.0, panelBorder, false)
	ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
}

func (g *Game) drawStatus(dst *ebiten.Image) {
	if g.statusTicks <= 0 || g.status == "" {
		return
	}
	ebitenutil.DebugPrintAt(dst, g.status, 8, 6)
}
