package board

import (
	"image/color"
	"strings"

	"github.com/google/uuid"
)

// DefaultStrokeWidth is the stroke width, in logical units, of new drawings.
const DefaultStrokeWidth = 2.5

// DefaultColor is the initial drawing colour.
var DefaultColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// ViewOptions are display toggles. They are configuration, not entity data.
type ViewOptions struct {
	ShowNames  bool
	ShowZones  bool
	LightField bool
}

// Board owns the single writable copy of the entities, the undo history,
// the selection and the pointer gesture in progress. It is not safe for
// concurrent use: every call is expected on the event-handling goroutine.
type Board struct {
	players  []Player
	ball     Ball
	drawings []Drawing

	history *History
	log     *ActionLog
	newID   func() string

	tool    Tool
	color   color.RGBA
	filled  bool
	view    ViewOptions
	surface Surface

	selectedPlayer  string
	selectedDrawing string

	gesture gesture

	teamNames map[Team]string
	notes     string
}

// Option configures a Board at construction.
type Option func(*Board)

// WithHistoryCapacity bounds the undo stack.
func WithHistoryCapacity(n int) Option {
	return func(b *Board) { b.history = NewHistory(n) }
}

// WithIDGenerator replaces the uuid-based drawing id generator.
func WithIDGenerator(fn func() string) Option {
	return func(b *Board) { b.newID = fn }
}

// WithSurface sets the initial drawing surface.
func WithSurface(s Surface) Option {
	return func(b *Board) { b.surface = s }
}

// WithView sets the initial display toggles.
func WithView(v ViewOptions) Option {
	return func(b *Board) { b.view = v }
}

// New creates a board in its initial layout.
func New(opts ...Option) *Board {
	players, ball := InitialBoard()
	b := &Board{
		players:   players,
		ball:      ball,
		history:   NewHistory(DefaultHistoryCapacity),
		log:       NewActionLog(),
		newID:     uuid.NewString,
		tool:      ToolSelect,
		color:     DefaultColor,
		view:      ViewOptions{ShowNames: true},
		surface:   NewSurface(PitchW, PitchH, 1),
		teamNames: map[Team]string{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// snapshot returns a deep copy of the current entities.
func (b *Board) snapshot() Snapshot {
	return Snapshot{Players: b.players, Ball: b.ball, Drawings: b.drawings}.Clone()
}

// Snapshot returns a deep copy of the current entities.
func (b *Board) Snapshot() Snapshot { return b.snapshot() }

// Players returns a copy of all players in board order.
func (b *Board) Players() []Player { return append([]Player(nil), b.players...) }

// Player looks up a player by id.
func (b *Board) Player(id string) (Player, bool) {
	if i := b.playerIndex(id); i >= 0 {
		return b.players[i], true
	}
	return Player{}, false
}

// Ball returns the ball.
func (b *Board) Ball() Ball { return b.ball }

// Drawings returns a copy of the committed drawings in insertion order.
func (b *Board) Drawings() []Drawing { return b.snapshot().Drawings }

// Drawing looks up a drawing by id.
func (b *Board) Drawing(id string) (Drawing, bool) {
	if i := b.drawingIndex(id); i >= 0 {
		return b.drawings[i].clone(), true
	}
	return Drawing{}, false
}

// HistoryLen returns the number of undo steps available.
func (b *Board) HistoryLen() int { return b.history.Len() }

// Log returns the action log.
func (b *Board) Log() *ActionLog { return b.log }

func (b *Board) playerIndex(id string) int {
	for i := range b.players {
		if b.players[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) drawingIndex(id string) int {
	for i := range b.drawings {
		if b.drawings[i].ID == id {
			return i
		}
	}
	return -1
}

// --- toolbar ---

// SetTool changes the active tool.
func (b *Board) SetTool(t Tool) {
	if t < 0 || t >= toolCount {
		return
	}
	b.tool = t
}

func (b *Board) Tool() Tool { return b.tool }

// SetColor sets the colour of subsequent drawings. Drawing colours are
// opaque; fills get their translucency at paint time.
func (b *Board) SetColor(c color.RGBA) {
	c.A = 0xff
	b.color = c
}

func (b *Board) Color() color.RGBA { return b.color }

// SetFilled sets whether subsequent shapes are filled.
func (b *Board) SetFilled(f bool) { b.filled = f }

func (b *Board) Filled() bool { return b.filled }

// SetView replaces the display toggles.
func (b *Board) SetView(v ViewOptions) { b.view = v }

func (b *Board) View() ViewOptions { return b.view }

// SetSurface is called by the surface owner on resize.
func (b *Board) SetSurface(s Surface) { b.surface = s }

func (b *Board) Surface() Surface { return b.surface }

// Cursor returns a cursor hint for the active tool.
func (b *Board) Cursor() string {
	switch b.tool {
	case ToolEraser:
		return "cell"
	case ToolSelect:
		return "default"
	}
	return "crosshair"
}

// --- action bar ---

// Undo restores the newest snapshot. It reports false when there is nothing
// to undo or a pointer gesture is still holding a capture.
func (b *Board) Undo() bool {
	if b.history.HasPending() {
		return false
	}
	s, ok := b.history.Pop()
	if !ok {
		return false
	}
	b.players, b.ball, b.drawings = s.Players, s.Ball, s.Drawings
	if b.drawingIndex(b.selectedDrawing) < 0 {
		b.selectedDrawing = ""
	}
	b.log.Add("undo", "%d left", b.history.Len())
	return true
}

// The one-shot actions below report false, and change nothing, while a
// pointer gesture holds a capture; its release would otherwise commit a
// snapshot older than theirs.

// ClearDrawings removes every drawing.
func (b *Board) ClearDrawings() bool {
	if b.history.HasPending() {
		return false
	}
	b.history.Record(b.snapshot())
	b.drawings = nil
	b.selectedDrawing = ""
	b.log.Add("clear", "drawings")
	return true
}

// ClearAll removes every drawing and restores the initial layout.
func (b *Board) ClearAll() bool {
	if b.history.HasPending() {
		return false
	}
	b.history.Record(b.snapshot())
	b.players, b.ball = InitialBoard()
	b.drawings = nil
	b.selectedDrawing = ""
	b.selectedPlayer = ""
	b.log.Add("clear", "all")
	return true
}

// BallToCenter puts the ball back on the centre spot.
func (b *Board) BallToCenter() bool {
	if b.history.HasPending() {
		return false
	}
	b.history.Record(b.snapshot())
	b.ball.Pos = CentreSpot()
	b.log.Add("ball", "centre")
	return true
}

// --- formation picker ---

// ApplyFormation lays out team using the named template. Unknown names are
// a no-op that reports false.
func (b *Board) ApplyFormation(team Team, name string) bool {
	slots, ok := formations[name]
	if !ok || b.history.HasPending() {
		return false
	}
	b.history.Record(b.snapshot())
	layoutFormation(b.players, team, slots)
	b.log.Add("formation", "%s %s", team, name)
	return true
}

// ResetToBorder lines team up along its own goal line.
func (b *Board) ResetToBorder(team Team) bool {
	if b.history.HasPending() {
		return false
	}
	b.history.Record(b.snapshot())
	layoutBorder(b.players, team)
	b.log.Add("border", "%s", team)
	return true
}

// --- roster ---

// TogglePlayerVisibility shows or hides a player.
func (b *Board) TogglePlayerVisibility(id string) bool {
	i := b.playerIndex(id)
	if i < 0 {
		return false
	}
	b.players[i].Visible = !b.players[i].Visible
	if !b.players[i].Visible && b.selectedPlayer == id {
		b.selectedPlayer = ""
	}
	return true
}

// UpdatePlayerName renames a player.
func (b *Board) UpdatePlayerName(id, name string) bool {
	i := b.playerIndex(id)
	if i < 0 {
		return false
	}
	b.players[i].Name = name
	return true
}

// AttachPlayerPhoto records an image reference for a player. The decoded
// image itself lives in the renderer's photo source, keyed by player id.
func (b *Board) AttachPlayerPhoto(id, ref string) bool {
	i := b.playerIndex(id)
	if i < 0 {
		return false
	}
	b.players[i].Photo = ref
	b.log.Add("photo", "%s", id)
	return true
}

// ResetAllNames clears every player name.
func (b *Board) ResetAllNames() {
	for i := range b.players {
		b.players[i].Name = ""
	}
}

// SetTeamName sets a team's display name; blank restores the default.
func (b *Board) SetTeamName(team Team, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		delete(b.teamNames, team)
		return
	}
	b.teamNames[team] = name
}

// TeamName returns a team's display name.
func (b *Board) TeamName(team Team) string {
	if n, ok := b.teamNames[team]; ok {
		return n
	}
	return "Team " + string(team)
}

// SetNotes stores the free-form tactical notes.
func (b *Board) SetNotes(s string) { b.notes = s }

func (b *Board) Notes() string { return b.notes }

// --- selection ---

// SelectedPlayer returns the selected player id, if any.
func (b *Board) SelectedPlayer() (string, bool) {
	return b.selectedPlayer, b.selectedPlayer != ""
}

// SelectedDrawing returns the selected drawing id, if any.
func (b *Board) SelectedDrawing() (string, bool) {
	return b.selectedDrawing, b.selectedDrawing != ""
}

// ClearSelection deselects everything. It does not cancel a gesture.
func (b *Board) ClearSelection() {
	b.selectedPlayer = ""
	b.selectedDrawing = ""
}

func (b *Board) selectDrawing(id string) {
	b.selectedDrawing = id
	b.selectedPlayer = ""
}

func (b *Board) selectPlayer(id string) {
	b.selectedPlayer = id
	b.selectedDrawing = ""
}

// Scene returns a read-only projection of the board for one repaint. The
// slices are copies, so the renderer never shares memory with the board.
func (b *Board) Scene() Scene {
	s := b.snapshot()
	sc := Scene{
		Players:         s.Players,
		Ball:            s.Ball,
		Drawings:        s.Drawings,
		SelectedPlayer:  b.selectedPlayer,
		SelectedDrawing: b.selectedDrawing,
		View:            b.view,
	}
	if d, ok := b.Preview(); ok {
		sc.Preview = &d
	}
	return sc
}
