package board

import (
	"fmt"
	"strings"
)

// MinShapeLength is the start-to-end distance a new shape must exceed to be
// committed. Shorter drags are treated as accidental clicks.
const MinShapeLength = 6.0

// GestureState is the pointer gesture in progress. Exactly one is active.
type GestureState int

const (
	StateIdle GestureState = iota
	StateDraggingEntity
	StateDraggingHandle
	StateDrawing
	StatePlacingText
	StateEditing
)

var gestureNames = [...]string{
	StateIdle:           "idle",
	StateDraggingEntity: "dragging-entity",
	StateDraggingHandle: "dragging-handle",
	StateDrawing:        "drawing",
	StatePlacingText:    "placing-text",
	StateEditing:        "editing",
}

func (s GestureState) String() string {
	if s < 0 || int(s) >= len(gestureNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return gestureNames[s]
}

// gesture holds the transient state of the active pointer session.
type gesture struct {
	state GestureState

	// DraggingEntity
	target EntityHit
	offset Point // press point minus entity position
	origin Point // entity position at press

	// DraggingHandle
	drawingID string
	handle    int
	before    Drawing

	// Drawing
	preview Drawing

	// PlacingText
	anchor Point
}

// State returns the current gesture state.
func (b *Board) State() GestureState { return b.gesture.state }

// Preview returns the shape being sketched, if any.
func (b *Board) Preview() (Drawing, bool) {
	if b.gesture.state != StateDrawing {
		return Drawing{}, false
	}
	return b.gesture.preview.clone(), true
}

// PointerDown starts a gesture at logical point p according to the active
// tool. It is ignored while another gesture, text placement or editing is
// in progress.
func (b *Board) PointerDown(p Point) {
	if b.gesture.state != StateIdle {
		return
	}
	b.history.Capture(b.snapshot())

	switch b.tool {
	case ToolEraser:
		b.erase(p)
	case ToolSelect:
		b.pressSelect(p)
	case ToolText:
		b.gesture = gesture{state: StatePlacingText, anchor: p}
	default:
		kind, ok := b.tool.Kind()
		if !ok {
			b.history.Discard()
			return
		}
		b.gesture = gesture{
			state: StateDrawing,
			preview: Drawing{
				Kind:        kind,
				Color:       b.color,
				StrokeWidth: DefaultStrokeWidth,
				Filled:      b.filled,
				Start:       p,
				End:         p,
			},
		}
	}
}

func (b *Board) erase(p Point) {
	id, ok := FindDrawingAtPoint(b.drawings, p)
	if !ok {
		b.history.Discard()
		return
	}
	b.history.Commit()
	i := b.drawingIndex(id)
	kind := b.drawings[i].Kind
	b.drawings = append(b.drawings[:i:i], b.drawings[i+1:]...)
	if b.selectedDrawing == id {
		b.selectedDrawing = ""
	}
	b.log.Add("erase", "%s", kind)
}

// pressSelect resolves a select-tool press in priority order: a handle of the
// selected drawing, any drawing, a player or the ball, else deselect.
func (b *Board) pressSelect(p Point) {
	r := PlayerRadius(b.surface)

	if i := b.drawingIndex(b.selectedDrawing); i >= 0 {
		if h, ok := FindHandleAtPoint(b.drawings[i], p, r); ok {
			b.gesture = gesture{
				state:     StateDraggingHandle,
				drawingID: b.selectedDrawing,
				handle:    h,
				before:    b.drawings[i].clone(),
			}
			return
		}
	}

	if id, ok := FindDrawingAtPoint(b.drawings, p); ok {
		b.history.Discard()
		b.selectDrawing(id)
		return
	}

	hit, ok := FindPlayerAtPoint(b.players, b.ball, p, r)
	if !ok {
		b.history.Discard()
		b.ClearSelection()
		return
	}
	var pos Point
	if hit.Kind == HitPlayer {
		b.selectPlayer(hit.ID)
		pos = b.players[b.playerIndex(hit.ID)].Pos
	} else {
		b.ClearSelection()
		pos = b.ball.Pos
	}
	b.gesture = gesture{
		state:  StateDraggingEntity,
		target: hit,
		offset: p.Sub(pos),
		origin: pos,
	}
}

// PointerMove advances the active gesture to logical point p.
func (b *Board) PointerMove(p Point) {
	g := &b.gesture
	switch g.state {
	case StateDraggingEntity:
		pos := clampToPitch(p.Sub(g.offset))
		if g.target.Kind == HitBall {
			b.ball.Pos = pos
		} else if i := b.playerIndex(g.target.ID); i >= 0 {
			b.players[i].Pos = pos
		}
	case StateDraggingHandle:
		if i := b.drawingIndex(g.drawingID); i >= 0 {
			moveHandle(&b.drawings[i], g.handle, p)
		}
	case StateDrawing:
		g.preview.End = p
	}
}

// PointerUp ends the active gesture, committing it when it changed the board.
func (b *Board) PointerUp() {
	g := b.gesture
	switch g.state {
	case StateDrawing:
		b.gesture = gesture{}
		b.commitShape(g.preview)
	case StateDraggingEntity:
		b.gesture = gesture{}
		pos := b.ball.Pos
		label := "ball"
		if g.target.Kind == HitPlayer {
			i := b.playerIndex(g.target.ID)
			if i < 0 {
				b.history.Discard()
				return
			}
			pos, label = b.players[i].Pos, g.target.ID
		}
		if pos == g.origin {
			b.history.Discard()
			return
		}
		b.history.Commit()
		b.log.Add("move", "%s -> (%.0f,%.0f)", label, pos.X, pos.Y)
	case StateDraggingHandle:
		b.gesture = gesture{}
		i := b.drawingIndex(g.drawingID)
		if i < 0 || b.drawings[i].equal(g.before) {
			b.history.Discard()
			return
		}
		b.history.Commit()
		b.log.Add("reshape", "%s handle %d", b.drawings[i].Kind, g.handle)
	}
}

// PointerCancel is treated exactly like PointerUp.
func (b *Board) PointerCancel() { b.PointerUp() }

func (b *Board) commitShape(d Drawing) {
	if d.Start.Dist(d.End) <= MinShapeLength {
		b.history.Discard()
		return
	}
	switch d.Kind {
	case KindTriangle:
		d.Points = trianglePoints(d.Start, d.End)
	case KindCurvedArrow:
		d.Points = []Point{defaultControl(d.Start, d.End)}
	}
	d.ID = b.newID()
	b.history.Commit()
	b.drawings = append(b.drawings, d)
	b.log.Add("draw", "%s %s", d.Kind, HexColor(d.Color))
}

// CommitText completes text placement. Blank text is discarded and reported
// as false.
func (b *Board) CommitText(value string) bool {
	if b.gesture.state != StatePlacingText {
		return false
	}
	anchor := b.gesture.anchor
	b.gesture = gesture{}
	text := strings.TrimSpace(value)
	if text == "" {
		b.history.Discard()
		return false
	}
	b.history.Commit()
	b.drawings = append(b.drawings, Drawing{
		ID:          b.newID(),
		Kind:        KindText,
		Color:       b.color,
		StrokeWidth: DefaultStrokeWidth,
		Start:       anchor,
		End:         anchor,
		Text:        text,
	})
	b.log.Add("text", "%q", text)
	return true
}

// CancelText abandons text placement.
func (b *Board) CancelText() {
	if b.gesture.state != StatePlacingText {
		return
	}
	b.gesture = gesture{}
	b.history.Discard()
}

// TextAnchor returns the device position of a pending text placement, for
// positioning the entry field.
func (b *Board) TextAnchor() (Point, bool) {
	if b.gesture.state != StatePlacingText {
		return Point{}, false
	}
	return ToDevice(b.gesture.anchor, b.surface), true
}

// BeginEditing marks a name or label field as focused. Pointer input on the
// board is ignored until EndEditing. It only applies between gestures.
func (b *Board) BeginEditing() bool {
	if b.gesture.state != StateIdle {
		return false
	}
	b.gesture = gesture{state: StateEditing}
	return true
}

// EndEditing returns to Idle after BeginEditing.
func (b *Board) EndEditing() {
	if b.gesture.state == StateEditing {
		b.gesture = gesture{}
	}
}

// Busy reports whether keyboard shortcuts should be suppressed.
func (b *Board) Busy() bool {
	return b.gesture.state == StateEditing || b.gesture.state == StatePlacingText
}
