package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/coachlab/tactics-board/internal/board"
)

// toolKeys binds the toolbar.
var toolKeys = map[ebiten.Key]board.Tool{
	ebiten.KeyV: board.ToolSelect,
	ebiten.KeyE: board.ToolEraser,
	ebiten.KeyL: board.ToolLine,
	ebiten.KeyA: board.ToolArrow,
	ebiten.KeyQ: board.ToolCurvedArrow,
	ebiten.KeyR: board.ToolRect,
	ebiten.KeyO: board.ToolCircle,
	ebiten.KeyT: board.ToolTriangle,
	ebiten.KeyZ: board.ToolZone,
	ebiten.KeyX: board.ToolText,
}

var colorKeys = [...]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
}

// watchedKeys is every key polled for press edges. All of them are sampled
// each frame so a key held across a mode switch does not fire twice.
var watchedKeys = func() []ebiten.Key {
	keys := []ebiten.Key{
		ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeyBackspace, ebiten.KeyEscape,
		ebiten.KeyDelete, ebiten.KeySpace, ebiten.KeyF, ebiten.KeyG, ebiten.KeyJ,
		ebiten.KeyB, ebiten.KeyN, ebiten.KeyP, ebiten.KeyC, ebiten.KeyH, ebiten.KeyK,
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF12,
	}
	for k := range toolKeys {
		keys = append(keys, k)
	}
	return append(keys, colorKeys[:]...)
}()

func (g *Game) handleInput() {
	currentKeys := make(map[ebiten.Key]bool, len(watchedKeys))
	for _, k := range watchedKeys {
		currentKeys[k] = ebiten.IsKeyPressed(k)
	}
	edge := func(k ebiten.Key) bool { return currentKeys[k] && !g.prevKeys[k] }

	if g.board.Busy() {
		g.handleTextEntry(edge)
	} else {
		g.handleShortcuts(edge)
	}
	g.handlePointer()

	g.prevKeys = currentKeys
}

// handleTextEntry feeds typed characters into the text or rename overlay.
// Enter commits, Escape abandons.
func (g *Game) handleTextEntry(edge func(ebiten.Key) bool) {
	g.runeBuf = ebiten.AppendInputChars(g.runeBuf[:0])
	g.entry.insert(g.runeBuf)
	if edge(ebiten.KeyBackspace) {
		g.entry.backspace()
	}

	switch {
	case edge(ebiten.KeyEnter) || edge(ebiten.KeyNumpadEnter):
		if g.board.State() == board.StatePlacingText {
			g.board.CommitText(g.entry.String())
		} else {
			g.board.UpdatePlayerName(g.editingID, g.entry.String())
			g.board.EndEditing()
			g.editingID = ""
		}
		g.dirty = true
	case edge(ebiten.KeyEscape):
		if g.board.State() == board.StatePlacingText {
			g.board.CancelText()
		} else {
			g.board.EndEditing()
			g.editingID = ""
		}
		g.dirty = true
	}
}

func (g *Game) handleShortcuts(edge func(ebiten.Key) bool) {
	b := g.board
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	before := b.HistoryLen()
	view := b.View()

	// Ctrl+Z: undo. Ctrl+K: reset all names.
	if ctrl {
		if edge(ebiten.KeyZ) && !b.Undo() {
			g.setStatus("nothing to undo")
		}
		if edge(ebiten.KeyK) {
			b.ResetAllNames()
			g.dirty = true
		}
		g.dirty = g.dirty || b.HistoryLen() != before
		return
	}

	for k, tool := range toolKeys {
		if edge(k) {
			b.SetTool(tool)
		}
	}
	for i, k := range colorKeys {
		if edge(k) {
			b.SetColor(palette[i])
		}
	}
	if edge(ebiten.KeyF) {
		b.SetFilled(!b.Filled())
	}

	// Formations: G cycles team A, J cycles team B; Shift steps backwards.
	step := 1
	if shift {
		step = -1
	}
	for i, k := range [2]ebiten.Key{ebiten.KeyG, ebiten.KeyJ} {
		if next := nextFormation(g.formation[i], step); edge(k) && b.ApplyFormation(board.Teams[i], next) {
			g.formation[i] = next
			g.setStatus(fmt.Sprintf("%s: %s", b.TeamName(board.Teams[i]), next))
		}
	}
	if edge(ebiten.KeyB) && b.ResetToBorder(board.TeamA) {
		g.formation[0] = ""
	}
	if edge(ebiten.KeyN) && b.ResetToBorder(board.TeamB) {
		g.formation[1] = ""
	}
	if edge(ebiten.KeySpace) {
		b.BallToCenter()
	}
	if edge(ebiten.KeyDelete) || edge(ebiten.KeyBackspace) {
		if shift {
			if b.ClearAll() {
				g.formation = [2]string{}
			}
		} else {
			b.ClearDrawings()
		}
	}

	// Escape deselects only; an active drag carries on.
	if edge(ebiten.KeyEscape) {
		b.ClearSelection()
		g.dirty = true
	}

	// Enter renames the selected player; P hides it, Shift+P shows everyone.
	if id, ok := b.SelectedPlayer(); ok {
		if edge(ebiten.KeyEnter) && b.BeginEditing() {
			p, _ := b.Player(id)
			g.editingID = id
			g.entry.reset(p.Name)
		}
		if edge(ebiten.KeyP) && !shift {
			b.TogglePlayerVisibility(id)
			g.dirty = true
		}
	}
	if edge(ebiten.KeyP) && shift {
		for _, p := range b.Players() {
			if !p.Visible {
				b.TogglePlayerVisibility(p.ID)
			}
		}
		g.dirty = true
	}

	if edge(ebiten.KeyF1) {
		view.ShowNames = !view.ShowNames
	}
	if edge(ebiten.KeyF2) {
		view.ShowZones = !view.ShowZones
	}
	if edge(ebiten.KeyF3) {
		view.LightField = !view.LightField
	}
	if view != b.View() {
		b.SetView(view)
		g.dirty = true
	}

	if edge(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if edge(ebiten.KeyC) {
		g.copyLayout()
	}
	if edge(ebiten.KeyF12) {
		g.saveScreenshot()
	}

	if b.HistoryLen() != before {
		g.dirty = true
	}
}

// handlePointer turns left-button edges and motion into board gestures.
// Presses outside the board area, e.g. on the log panel, are ignored.
func (g *Game) handlePointer() {
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	defer func() { g.prevMouseLeft = pressed }()

	mx, my := ebiten.CursorPosition()
	s := g.board.Surface()
	p := board.ToLogical(board.Pt(float64(mx), float64(my)), s)
	w, h := s.DeviceSize()

	if !ebiten.IsFocused() {
		// Losing focus mid-gesture may never deliver a release.
		switch g.board.State() {
		case board.StateDraggingEntity, board.StateDraggingHandle, board.StateDrawing:
			g.board.PointerCancel()
			g.dirty = true
		}
		return
	}

	switch {
	case pressed && !g.prevMouseLeft:
		if mx < 0 || my < 0 || mx >= w || my >= h {
			return
		}
		g.board.PointerDown(p)
		if g.board.State() == board.StatePlacingText {
			g.entry.reset("")
		}
		g.dirty = true
	case pressed && p != g.lastPointer:
		g.board.PointerMove(p)
		g.dirty = g.dirty || g.board.State() != board.StateIdle
	case !pressed && g.prevMouseLeft:
		g.board.PointerUp()
		g.dirty = true
	}
	g.lastPointer = p
}
