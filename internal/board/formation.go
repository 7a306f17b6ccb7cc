package board

import (
	"sort"
	"strconv"
)

// Slot is a normalized formation position in [0,1]². X runs from the team's
// own goal line towards the opponent, Y from the top touchline down.
type Slot struct {
	X, Y float64
}

// FormationGroup is a labelled set of formations for the picker, grouped by
// number of defenders.
type FormationGroup struct {
	Label      string
	Formations []string
}

// borderInset is how far from the playable margin the border line sits.
const borderInset = 22.0

// formations is the process-wide template catalog. Slot 0 is the goalkeeper,
// slots 1..10 the outfield players in shirt-number order. It is read-only.
var formations = map[string][]Slot{
	"1-4-3-3":   {{.04, .50}, {.20, .15}, {.20, .38}, {.20, .62}, {.20, .85}, {.41, .27}, {.42, .50}, {.41, .73}, {.65, .15}, {.68, .50}, {.65, .85}},
	"1-4-4-2":   {{.04, .50}, {.20, .10}, {.20, .37}, {.20, .63}, {.20, .90}, {.42, .10}, {.42, .37}, {.42, .63}, {.42, .90}, {.64, .33}, {.64, .67}},
	"1-4-2-3-1": {{.04, .50}, {.20, .10}, {.20, .37}, {.20, .63}, {.20, .90}, {.37, .37}, {.37, .63}, {.53, .15}, {.54, .50}, {.53, .85}, {.69, .50}},
	"1-3-5-2":   {{.04, .50}, {.20, .23}, {.20, .50}, {.20, .77}, {.39, .08}, {.41, .30}, {.42, .50}, {.41, .70}, {.39, .92}, {.63, .35}, {.63, .65}},
	"1-3-6-1":   {{.04, .50}, {.20, .22}, {.20, .50}, {.20, .78}, {.37, .10}, {.40, .28}, {.41, .44}, {.41, .56}, {.40, .72}, {.37, .90}, {.68, .50}},
	"1-3-4-3":   {{.04, .50}, {.19, .22}, {.20, .50}, {.19, .78}, {.40, .15}, {.40, .40}, {.40, .60}, {.40, .85}, {.63, .15}, {.66, .50}, {.63, .85}},
	"1-4-5-1":   {{.04, .50}, {.20, .10}, {.20, .35}, {.20, .65}, {.20, .90}, {.42, .10}, {.42, .30}, {.43, .50}, {.42, .70}, {.42, .90}, {.68, .50}},
	"1-4-1-4-1": {{.04, .50}, {.20, .10}, {.20, .35}, {.20, .65}, {.20, .90}, {.34, .50}, {.50, .10}, {.50, .35}, {.50, .65}, {.50, .90}, {.68, .50}},
	"1-5-4-1":   {{.04, .50}, {.18, .08}, {.20, .27}, {.20, .50}, {.20, .73}, {.18, .92}, {.42, .15}, {.42, .38}, {.42, .62}, {.42, .85}, {.68, .50}},
	"1-5-3-2":   {{.04, .50}, {.18, .08}, {.20, .27}, {.20, .50}, {.20, .73}, {.18, .92}, {.42, .27}, {.43, .50}, {.42, .73}, {.65, .33}, {.65, .67}},
	"1-5-2-3":   {{.04, .50}, {.18, .08}, {.20, .27}, {.20, .50}, {.20, .73}, {.18, .92}, {.40, .38}, {.40, .62}, {.63, .15}, {.66, .50}, {.63, .85}},
	"1-4-3-2-1": {{.04, .50}, {.20, .10}, {.20, .37}, {.20, .63}, {.20, .90}, {.38, .25}, {.39, .50}, {.38, .75}, {.53, .38}, {.53, .62}, {.68, .50}},
	"1-4-1-2-3": {{.04, .50}, {.20, .10}, {.20, .37}, {.20, .63}, {.20, .90}, {.34, .50}, {.48, .38}, {.48, .62}, {.63, .15}, {.66, .50}, {.63, .85}},
	"1-3-4-2-1": {{.04, .50}, {.19, .22}, {.20, .50}, {.19, .78}, {.37, .15}, {.38, .38}, {.38, .62}, {.37, .85}, {.53, .38}, {.53, .62}, {.68, .50}},
	"1-4-4-1-1": {{.04, .50}, {.20, .10}, {.20, .37}, {.20, .63}, {.20, .90}, {.40, .10}, {.40, .37}, {.40, .63}, {.40, .90}, {.55, .50}, {.68, .50}},
	"1-3-3-4":   {{.04, .50}, {.19, .22}, {.20, .50}, {.19, .78}, {.39, .25}, {.40, .50}, {.39, .75}, {.60, .10}, {.62, .38}, {.62, .62}, {.60, .90}},
	"1-4-2-2-2": {{.04, .50}, {.20, .10}, {.20, .37}, {.20, .63}, {.20, .90}, {.37, .38}, {.37, .62}, {.52, .38}, {.52, .62}, {.65, .33}, {.65, .67}},
	"1-3-4-1-2": {{.04, .50}, {.19, .22}, {.20, .50}, {.19, .78}, {.37, .15}, {.38, .38}, {.38, .62}, {.37, .85}, {.53, .50}, {.65, .33}, {.65, .67}},
	"1-4-6-0":   {{.04, .50}, {.20, .10}, {.20, .35}, {.20, .65}, {.20, .90}, {.40, .10}, {.41, .28}, {.42, .46}, {.42, .54}, {.41, .72}, {.40, .90}},
	"1-2-3-5":   {{.04, .50}, {.19, .33}, {.19, .67}, {.39, .22}, {.40, .50}, {.39, .78}, {.60, .08}, {.62, .27}, {.64, .50}, {.62, .73}, {.60, .92}},
	"1-4-3-1-2": {{.04, .50}, {.20, .10}, {.20, .37}, {.20, .63}, {.20, .90}, {.38, .25}, {.39, .50}, {.38, .75}, {.53, .50}, {.65, .33}, {.65, .67}},
	"1-3-1-4-2": {{.04, .50}, {.19, .22}, {.20, .50}, {.19, .78}, {.33, .50}, {.48, .15}, {.49, .38}, {.49, .62}, {.48, .85}, {.65, .33}, {.65, .67}},
	"1-4-1-3-2": {{.04, .50}, {.20, .10}, {.20, .37}, {.20, .63}, {.20, .90}, {.34, .50}, {.49, .27}, {.50, .50}, {.49, .73}, {.65, .33}, {.65, .67}},
	"1-3-2-4-1": {{.04, .50}, {.19, .22}, {.20, .50}, {.19, .78}, {.36, .38}, {.36, .62}, {.52, .15}, {.53, .38}, {.53, .62}, {.52, .85}, {.68, .50}},
}

var formationGroups = []FormationGroup{
	{Label: "4 Def", Formations: []string{"1-4-3-3", "1-4-4-2", "1-4-2-3-1", "1-4-5-1", "1-4-1-4-1", "1-4-3-2-1", "1-4-1-2-3", "1-4-4-1-1", "1-4-2-2-2", "1-4-6-0", "1-4-3-1-2", "1-4-1-3-2"}},
	{Label: "3 Def", Formations: []string{"1-3-5-2", "1-3-6-1", "1-3-4-3", "1-3-4-2-1", "1-3-3-4", "1-3-4-1-2", "1-3-1-4-2", "1-3-2-4-1"}},
	{Label: "5 Def", Formations: []string{"1-5-4-1", "1-5-3-2", "1-5-2-3"}},
	{Label: "2 Def", Formations: []string{"1-2-3-5"}},
}

// Formation returns a copy of the named template.
func Formation(name string) ([]Slot, bool) {
	slots, ok := formations[name]
	if !ok {
		return nil, false
	}
	return append([]Slot(nil), slots...), true
}

// FormationNames returns every catalog entry in sorted order.
func FormationNames() []string {
	names := make([]string, 0, len(formations))
	for n := range formations {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FormationGroups returns the picker groups.
func FormationGroups() []FormationGroup {
	out := make([]FormationGroup, len(formationGroups))
	for i, g := range formationGroups {
		out[i] = FormationGroup{Label: g.Label, Formations: append([]string(nil), g.Formations...)}
	}
	return out
}

// SlotPosition projects a normalized slot onto the playable area for team.
// Team B is mirrored on x so the sides face each other.
func SlotPosition(team Team, s Slot) Point {
	rawX := PitchLeft + s.X*(PitchRight-PitchLeft)
	rawY := PitchTop + s.Y*(PitchBottom-PitchTop)
	if team == TeamB {
		rawX = PitchW - rawX
	}
	return Point{rawX, rawY}
}

// BorderPosition is the default single-file position of a player: a vertical
// line just inside the team's own goal line, evenly spaced by number.
func BorderPosition(team Team, number int) Point {
	x := PitchLeft + borderInset
	if team == TeamB {
		x = PitchRight - borderInset
	}
	idx := float64(number - 1)
	return Point{x, PitchTop + idx*((PitchBottom-PitchTop)/(PlayersPerTeam-1))}
}

// layoutFormation moves team's players onto slots, in place. Players whose
// slot is missing keep their position.
func layoutFormation(players []Player, team Team, slots []Slot) {
	for i := range players {
		p := &players[i]
		if p.Team != team {
			continue
		}
		idx := p.Number - 1
		if idx < 0 || idx >= len(slots) {
			continue
		}
		p.Pos = SlotPosition(team, slots[idx])
	}
}

// layoutBorder lines team's players up on the border.
func layoutBorder(players []Player, team Team) {
	for i := range players {
		if players[i].Team == team {
			players[i].Pos = BorderPosition(team, players[i].Number)
		}
	}
}

// InitialPlayers returns both teams lined up on their border, goalkeeper
// first.
func InitialPlayers() []Player {
	players := make([]Player, 0, 2*PlayersPerTeam)
	for _, team := range Teams {
		for n := 1; n <= PlayersPerTeam; n++ {
			role := RoleOutfield
			if n == 1 {
				role = RoleGoalkeeper
			}
			players = append(players, Player{
				ID:      playerID(team, n),
				Team:    team,
				Role:    role,
				Number:  n,
				Pos:     BorderPosition(team, n),
				Visible: true,
			})
		}
	}
	return players
}

// CentreSpot is where the ball starts.
func CentreSpot() Point { return Point{PitchW / 2, PitchH / 2} }

// InitialBoard returns the deterministic starting layout.
func InitialBoard() ([]Player, Ball) {
	return InitialPlayers(), Ball{Pos: CentreSpot()}
}

func playerID(team Team, number int) string {
	return string(team) + strconv.Itoa(number)
}
