package board

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Team identifies one of the two sides on the board.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// Teams lists both sides in board order.
var Teams = [2]Team{TeamA, TeamB}

// PlayersPerTeam is fixed for the lifetime of a board.
const PlayersPerTeam = 11

// Role distinguishes the goalkeeper from outfield players.
type Role int

const (
	RoleOutfield Role = iota
	RoleGoalkeeper
)

func (r Role) String() string {
	if r == RoleGoalkeeper {
		return "GK"
	}
	return "--"
}

// Player is one of the 22 pieces on the board. Players are created once and
// only ever repositioned, renamed, shown/hidden or given a photo.
type Player struct {
	ID      string
	Team    Team
	Role    Role
	Number  int // 1..11, 1 is the goalkeeper
	Name    string
	Pos     Point
	Visible bool
	Photo   string // opaque image reference, empty when none
}

// Ball is the single ball on the board.
type Ball struct {
	Pos Point
}

// Kind is the shape variant of a drawing.
type Kind int

const (
	KindLine Kind = iota
	KindArrow
	KindCurvedArrow
	KindRect
	KindCircle
	KindTriangle
	KindZone
	KindText
	kindCount
)

var kindNames = [kindCount]string{
	KindLine:        "line",
	KindArrow:       "arrow",
	KindCurvedArrow: "curved-arrow",
	KindRect:        "rect",
	KindCircle:      "circle",
	KindTriangle:    "triangle",
	KindZone:        "zone",
	KindText:        "text",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Drawing is a committed tactical annotation. Start and End are the endpoints
// of line-like shapes and the opposite corners of box-like shapes. Points
// holds the 3 vertices of a triangle or the single control point of a curved
// arrow. Text drawings are anchored at Start.
type Drawing struct {
	ID          string
	Kind        Kind
	Color       color.RGBA
	StrokeWidth float64
	Filled      bool
	Start       Point
	End         Point
	Points      []Point
	Text        string
}

func (d Drawing) clone() Drawing {
	if d.Points != nil {
		d.Points = append([]Point(nil), d.Points...)
	}
	return d
}

func (d Drawing) equal(o Drawing) bool {
	if d.ID != o.ID || d.Kind != o.Kind || d.Color != o.Color ||
		d.StrokeWidth != o.StrokeWidth || d.Filled != o.Filled ||
		d.Start != o.Start || d.End != o.End || d.Text != o.Text ||
		len(d.Points) != len(o.Points) {
		return false
	}
	for i := range d.Points {
		if d.Points[i] != o.Points[i] {
			return false
		}
	}
	return true
}

// Tool is the active toolbar tool. It is orthogonal to the gesture state.
type Tool int

const (
	ToolSelect Tool = iota
	ToolEraser
	ToolLine
	ToolArrow
	ToolCurvedArrow
	ToolRect
	ToolCircle
	ToolTriangle
	ToolZone
	ToolText
	toolCount
)

var toolNames = [toolCount]string{
	ToolSelect:      "select",
	ToolEraser:      "eraser",
	ToolLine:        "line",
	ToolArrow:       "arrow",
	ToolCurvedArrow: "curved-arrow",
	ToolRect:        "rect",
	ToolCircle:      "circle",
	ToolTriangle:    "triangle",
	ToolZone:        "zone",
	ToolText:        "text",
}

func (t Tool) String() string {
	if t < 0 || t >= toolCount {
		return fmt.Sprintf("tool(%d)", int(t))
	}
	return toolNames[t]
}

// ParseTool maps a tool name back to its Tool.
func ParseTool(name string) (Tool, bool) {
	for t, n := range toolNames {
		if n == name {
			return Tool(t), true
		}
	}
	return ToolSelect, false
}

// Kind returns the drawing kind a tool creates.
func (t Tool) Kind() (Kind, bool) {
	switch t {
	case ToolLine:
		return KindLine, true
	case ToolArrow:
		return KindArrow, true
	case ToolCurvedArrow:
		return KindCurvedArrow, true
	case ToolRect:
		return KindRect, true
	case ToolCircle:
		return KindCircle, true
	case ToolTriangle:
		return KindTriangle, true
	case ToolZone:
		return KindZone, true
	case ToolText:
		return KindText, true
	}
	return 0, false
}

// Snapshot is a deep copy of the board entities used for undo.
type Snapshot struct {
	Players  []Player
	Ball     Ball
	Drawings []Drawing
}

// Clone returns a copy sharing no memory with s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Players:  append([]Player(nil), s.Players...),
		Ball:     s.Ball,
		Drawings: make([]Drawing, len(s.Drawings)),
	}
	for i, d := range s.Drawings {
		out.Drawings[i] = d.clone()
	}
	return out
}

// ParseHexColor parses an opaque "#rrggbb" or "#rgb" colour.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("parse colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// HexColor formats the colour channels of c as "#rrggbb". Board colours are
// opaque, so alpha is not written.
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
