package board

import (
	"image/color"
	"testing"
)

func TestNew_InitialState(t *testing.T) {
	b := New()
	if n := len(b.Players()); n != 2*PlayersPerTeam {
		t.Fatalf("expected %d players, got %d", 2*PlayersPerTeam, n)
	}
	if b.Ball().Pos != CentreSpot() {
		t.Fatalf("expected ball on centre spot, got %v", b.Ball().Pos)
	}
	if b.Tool() != ToolSelect || b.Color() != DefaultColor || b.Filled() {
		t.Fatalf("unexpected toolbar defaults: %s %v %v", b.Tool(), b.Color(), b.Filled())
	}
	if !b.View().ShowNames {
		t.Fatal("expected names shown by default")
	}
	if b.HistoryLen() != 0 || b.State() != StateIdle {
		t.Fatalf("expected empty history and idle, got %d / %s", b.HistoryLen(), b.State())
	}
}

func TestNew_DefaultIDsAreUnique(t *testing.T) {
	b := New()
	b.SetTool(ToolLine)
	drag(b, Pt(100, 100), Pt(200, 100))
	drag(b, Pt(100, 200), Pt(200, 200))
	ds := b.Drawings()
	if ds[0].ID == "" || ds[0].ID == ds[1].ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", ds[0].ID, ds[1].ID)
	}
}

func TestOneShotActions_RecordHistory(t *testing.T) {
	actions := []struct {
		name string
		fn   func(b *Board)
	}{
		{"clear drawings", func(b *Board) { b.ClearDrawings() }},
		{"clear all", func(b *Board) { b.ClearAll() }},
		{"ball to centre", func(b *Board) { b.BallToCenter() }},
		{"formation", func(b *Board) { b.ApplyFormation(TeamA, "1-4-2-3-1") }},
		{"border", func(b *Board) { b.ResetToBorder(TeamB) }},
	}
	for _, a := range actions {
		b := newTestBoard(t)
		a.fn(b)
		if b.HistoryLen() != 1 {
			t.Fatalf("%s: expected 1 history entry, got %d", a.name, b.HistoryLen())
		}
	}
}

func TestClearAll_RestoresInitialLayout(t *testing.T) {
	b := newTestBoard(t)
	b.ApplyFormation(TeamA, "1-4-4-2")
	drag(b, CentreSpot(), Pt(800, 100))
	b.SetTool(ToolZone)
	drag(b, Pt(300, 300), Pt(400, 400))

	b.ClearAll()
	if len(b.Drawings()) != 0 {
		t.Fatal("expected drawings removed")
	}
	if b.Ball().Pos != CentreSpot() {
		t.Fatalf("expected ball on centre spot, got %v", b.Ball().Pos)
	}
	initial := InitialPlayers()
	for i, p := range b.Players() {
		if p.Pos != initial[i].Pos {
			t.Fatalf("%s: expected %v, got %v", p.ID, initial[i].Pos, p.Pos)
		}
	}
}

func TestClearDrawings_KeepsPlayers(t *testing.T) {
	b := newTestBoard(t)
	b.ApplyFormation(TeamA, "1-4-4-2")
	before := b.Players()
	b.SetTool(ToolLine)
	drag(b, Pt(300, 300), Pt(400, 400))
	b.ClearDrawings()
	if len(b.Drawings()) != 0 {
		t.Fatal("expected drawings removed")
	}
	for i, p := range b.Players() {
		if p.Pos != before[i].Pos {
			t.Fatalf("%s moved", p.ID)
		}
	}
}

func TestRosterEdits_NoHistory(t *testing.T) {
	b := newTestBoard(t)
	if !b.UpdatePlayerName("A9", "Striker") {
		t.Fatal("expected rename to succeed")
	}
	if !b.TogglePlayerVisibility("B2") {
		t.Fatal("expected toggle to succeed")
	}
	if !b.AttachPlayerPhoto("A1", "/photos/a1.png") {
		t.Fatal("expected photo attach to succeed")
	}
	if b.HistoryLen() != 0 {
		t.Fatalf("expected roster edits outside history, got %d", b.HistoryLen())
	}
	if p := mustPlayer(t, b, "A9"); p.Name != "Striker" {
		t.Fatalf("expected name Striker, got %q", p.Name)
	}
	if p := mustPlayer(t, b, "B2"); p.Visible {
		t.Fatal("expected B2 hidden")
	}
	if p := mustPlayer(t, b, "A1"); p.Photo != "/photos/a1.png" {
		t.Fatalf("unexpected photo ref %q", p.Photo)
	}

	b.ResetAllNames()
	if p := mustPlayer(t, b, "A9"); p.Name != "" {
		t.Fatalf("expected names reset, got %q", p.Name)
	}
}

func TestRosterEdits_UnknownID(t *testing.T) {
	b := newTestBoard(t)
	if b.UpdatePlayerName("C1", "x") || b.TogglePlayerVisibility("A12") || b.AttachPlayerPhoto("", "x") {
		t.Fatal("expected unknown ids to report false")
	}
}

func TestToggleVisibility_DropsSelection(t *testing.T) {
	b := newTestBoard(t)
	p := mustPlayer(t, b, "A7")
	b.PointerDown(p.Pos)
	b.PointerUp()
	b.TogglePlayerVisibility("A7")
	if _, ok := b.SelectedPlayer(); ok {
		t.Fatal("expected hidden player to be deselected")
	}
	b.PointerDown(p.Pos)
	b.PointerUp()
	if _, ok := b.SelectedPlayer(); ok {
		t.Fatal("expected hidden player not to be selectable")
	}
}

func TestTeamName_Defaults(t *testing.T) {
	b := newTestBoard(t)
	if b.TeamName(TeamA) != "Team A" {
		t.Fatalf("unexpected default %q", b.TeamName(TeamA))
	}
	b.SetTeamName(TeamA, "  Reds ")
	if b.TeamName(TeamA) != "Reds" {
		t.Fatalf("expected Reds, got %q", b.TeamName(TeamA))
	}
	b.SetTeamName(TeamA, "   ")
	if b.TeamName(TeamA) != "Team A" {
		t.Fatalf("expected blank name to restore default, got %q", b.TeamName(TeamA))
	}
}

func TestUndo_DropsStaleDrawingSelection(t *testing.T) {
	b := newTestBoard(t)
	b.SetTool(ToolLine)
	drag(b, Pt(100, 100), Pt(300, 100))
	b.SetTool(ToolSelect)
	b.PointerDown(Pt(200, 100))
	b.PointerUp()

	b.Undo()
	if _, ok := b.SelectedDrawing(); ok {
		t.Fatal("expected selection of a removed drawing to be cleared")
	}
}

func TestScene_IsACopy(t *testing.T) {
	b := newTestBoard(t)
	b.SetTool(ToolTriangle)
	drag(b, Pt(100, 100), Pt(200, 200))

	sc := b.Scene()
	sc.Players[0].Pos = Pt(1, 1)
	sc.Drawings[0].Points[0] = Pt(1, 1)
	sc.Ball.Pos = Pt(1, 1)

	if mustPlayer(t, b, sc.Players[0].ID).Pos == Pt(1, 1) {
		t.Fatal("scene players share memory with the board")
	}
	if d, _ := b.Drawing("d1"); d.Points[0] == Pt(1, 1) {
		t.Fatal("scene drawings share memory with the board")
	}
	if b.Ball().Pos == Pt(1, 1) {
		t.Fatal("scene ball shares memory with the board")
	}
}

func TestSetTool_IgnoresInvalid(t *testing.T) {
	b := newTestBoard(t)
	b.SetTool(ToolZone)
	b.SetTool(Tool(-1))
	b.SetTool(toolCount)
	if b.Tool() != ToolZone {
		t.Fatalf("expected zone, got %s", b.Tool())
	}
}

func TestParseTool(t *testing.T) {
	for tool := ToolSelect; tool < toolCount; tool++ {
		got, ok := ParseTool(tool.String())
		if !ok || got != tool {
			t.Fatalf("expected %s to round-trip, got %s (ok=%v)", tool, got, ok)
		}
	}
	if _, ok := ParseTool("lasso"); ok {
		t.Fatal("expected unknown tool name to fail")
	}
}

func TestParseHexColor(t *testing.T) {
	cases := map[string]string{
		"#7A1E3A":   "#7a1e3a",
		"fff":       "#ffffff",
		" #0a0B0c ": "#0a0b0c",
	}
	for in, want := range cases {
		c, err := ParseHexColor(in)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", in, err)
		}
		if got := HexColor(c); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
	for _, bad := range []string{"", "#12", "#zzzzzz", "#ff000080"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
}

func TestSetColor_Opaque(t *testing.T) {
	b := newTestBoard(t)
	b.SetColor(color.RGBA{R: 0x40, G: 0x20, A: 0x80})
	if c := b.Color(); c.A != 0xff || c.R != 0x40 || c.G != 0x20 {
		t.Fatalf("expected opaque colour, got %+v", c)
	}
	if got := HexColor(b.Color()); got != "#402000" {
		t.Fatalf("expected #402000, got %s", got)
	}
}

func TestNotes_OutsideHistory(t *testing.T) {
	b := newTestBoard(t)
	b.SetNotes("press their left back")
	b.BallToCenter()
	b.SetNotes("drop deep")
	b.Undo()
	if b.Notes() != "drop deep" {
		t.Fatalf("expected notes untouched by undo, got %q", b.Notes())
	}
}
