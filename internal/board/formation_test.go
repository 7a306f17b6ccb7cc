package board

import (
	"sort"
	"testing"
)

func TestFormations_ElevenSlotsInUnitSquare(t *testing.T) {
	for name, slots := range formations {
		if len(slots) != PlayersPerTeam {
			t.Fatalf("formation %s: expected %d slots, got %d", name, PlayersPerTeam, len(slots))
		}
		for i, s := range slots {
			if s.X < 0 || s.X > 1 || s.Y < 0 || s.Y > 1 {
				t.Fatalf("formation %s slot %d: (%.2f,%.2f) outside unit square", name, i, s.X, s.Y)
			}
		}
		if slots[0].X > 0.1 {
			t.Fatalf("formation %s: goalkeeper slot should sit on the goal line, got x=%.2f", name, slots[0].X)
		}
	}
}

func TestFormationGroups_CoverCatalogOnce(t *testing.T) {
	seen := map[string]bool{}
	for _, g := range FormationGroups() {
		for _, name := range g.Formations {
			if seen[name] {
				t.Fatalf("formation %s listed twice", name)
			}
			if _, ok := formations[name]; !ok {
				t.Fatalf("group %s lists unknown formation %s", g.Label, name)
			}
			seen[name] = true
		}
	}
	if len(seen) != len(formations) {
		t.Fatalf("expected groups to cover %d formations, got %d", len(formations), len(seen))
	}
}

func TestFormationNames_Sorted(t *testing.T) {
	names := FormationNames()
	if len(names) != len(formations) {
		t.Fatalf("expected %d names, got %d", len(formations), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("expected sorted names, got %v", names)
	}
}

func TestFormation_ReturnsCopy(t *testing.T) {
	slots, ok := Formation("1-4-4-2")
	if !ok {
		t.Fatal("expected 1-4-4-2 in catalog")
	}
	slots[0].X = 0.9
	again, _ := Formation("1-4-4-2")
	if again[0].X == 0.9 {
		t.Fatal("expected catalog to be unaffected by caller mutation")
	}
	if _, ok := Formation("1-1-1"); ok {
		t.Fatal("expected unknown formation to be missing")
	}
}

func TestApplyFormation_Idempotent(t *testing.T) {
	b := New()
	b.ApplyFormation(TeamA, "1-4-4-2")
	first := b.Players()
	b.ApplyFormation(TeamA, "1-4-4-2")
	second := b.Players()
	for i := range first {
		if first[i].Pos != second[i].Pos {
			t.Fatalf("player %s moved on second apply: %v -> %v", first[i].ID, first[i].Pos, second[i].Pos)
		}
	}
}

func TestApplyFormation_TeamBMirrored(t *testing.T) {
	b := New()
	b.ApplyFormation(TeamA, "1-4-3-3")
	b.ApplyFormation(TeamB, "1-4-3-3")
	for n := 1; n <= PlayersPerTeam; n++ {
		a, _ := b.Player(playerID(TeamA, n))
		bp, _ := b.Player(playerID(TeamB, n))
		if a.Pos.Y != bp.Pos.Y {
			t.Fatalf("number %d: expected equal y, got %v and %v", n, a.Pos.Y, bp.Pos.Y)
		}
		if bp.Pos.X != PitchW-a.Pos.X {
			t.Fatalf("number %d: expected mirrored x %v, got %v", n, PitchW-a.Pos.X, bp.Pos.X)
		}
	}
}

func TestApplyFormation_LeavesOtherTeam(t *testing.T) {
	b := New()
	before := b.Players()
	b.ApplyFormation(TeamA, "1-3-5-2")
	for i, p := range b.Players() {
		if p.Team == TeamB && p.Pos != before[i].Pos {
			t.Fatalf("team B player %s moved", p.ID)
		}
	}
}

func TestApplyFormation_UnknownIsNoop(t *testing.T) {
	b := New()
	before := b.Players()
	if b.ApplyFormation(TeamA, "9-9-9") {
		t.Fatal("expected unknown formation to report false")
	}
	if b.HistoryLen() != 0 {
		t.Fatalf("expected no history entry, got %d", b.HistoryLen())
	}
	for i, p := range b.Players() {
		if p.Pos != before[i].Pos {
			t.Fatalf("player %s moved", p.ID)
		}
	}
}

func TestLayoutFormation_ShortTemplateSkipsMissingSlots(t *testing.T) {
	players := InitialPlayers()
	before := append([]Player(nil), players...)
	slots := formations["1-4-4-2"][:5]

	layoutFormation(players, TeamA, slots)
	for i, p := range players {
		if p.Team != TeamA {
			continue
		}
		moved := p.Pos != before[i].Pos
		if p.Number <= 5 && !moved {
			t.Fatalf("player %s should have moved", p.ID)
		}
		if p.Number > 5 && moved {
			t.Fatalf("player %s has no slot and should keep its position", p.ID)
		}
	}
}

func TestResetToBorder_VerticalLine(t *testing.T) {
	b := New()
	b.ApplyFormation(TeamA, "1-4-4-2")
	b.ApplyFormation(TeamB, "1-4-4-2")
	b.ResetToBorder(TeamA)
	b.ResetToBorder(TeamB)

	for _, team := range Teams {
		wantX := PitchLeft + borderInset
		if team == TeamB {
			wantX = PitchRight - borderInset
		}
		prevY := -1.0
		for n := 1; n <= PlayersPerTeam; n++ {
			p, _ := b.Player(playerID(team, n))
			if p.Pos.X != wantX {
				t.Fatalf("%s: expected x=%v, got %v", p.ID, wantX, p.Pos.X)
			}
			if p.Pos.Y <= prevY {
				t.Fatalf("%s: expected y to increase with number, got %v after %v", p.ID, p.Pos.Y, prevY)
			}
			prevY = p.Pos.Y
		}
		first, _ := b.Player(playerID(team, 1))
		last, _ := b.Player(playerID(team, PlayersPerTeam))
		if first.Pos.Y != PitchTop || last.Pos.Y != PitchBottom {
			t.Fatalf("team %s: expected y span %v..%v, got %v..%v", team, PitchTop, PitchBottom, first.Pos.Y, last.Pos.Y)
		}
	}
}

func TestInitialPlayers_IdsAndRoles(t *testing.T) {
	players := InitialPlayers()
	if len(players) != 2*PlayersPerTeam {
		t.Fatalf("expected %d players, got %d", 2*PlayersPerTeam, len(players))
	}
	seen := map[string]bool{}
	for _, p := range players {
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
		if p.ID != playerID(p.Team, p.Number) {
			t.Fatalf("expected id %s, got %s", playerID(p.Team, p.Number), p.ID)
		}
		if (p.Number == 1) != (p.Role == RoleGoalkeeper) {
			t.Fatalf("%s: number %d has role %s", p.ID, p.Number, p.Role)
		}
		if !p.Visible {
			t.Fatalf("%s should start visible", p.ID)
		}
	}
	if !seen["A1"] || !seen["B11"] {
		t.Fatal("expected A1 and B11 ids")
	}
}
