package board

import (
	"fmt"
	"strings"
)

// LayoutText renders the board as plain text: both teams with their player
// positions, the ball, the drawings in insertion order and any notes. It is
// what the clipboard export and the report tool emit.
func (b *Board) LayoutText() string {
	var sb strings.Builder
	for _, team := range Teams {
		fmt.Fprintf(&sb, "%s (%s)\n", b.TeamName(team), team)
		for _, p := range b.players {
			if p.Team != team {
				continue
			}
			fmt.Fprintf(&sb, "  %2d %s %-3s (%4.0f,%4.0f)", p.Number, p.Role, p.ID, p.Pos.X, p.Pos.Y)
			if !p.Visible {
				sb.WriteString(" hidden")
			}
			if p.Name != "" {
				fmt.Fprintf(&sb, " %s", p.Name)
			}
			sb.WriteByte('\n')
		}
	}
	fmt.Fprintf(&sb, "Ball (%4.0f,%4.0f)\n", b.ball.Pos.X, b.ball.Pos.Y)

	if len(b.drawings) > 0 {
		fmt.Fprintf(&sb, "Drawings (%d)\n", len(b.drawings))
		for _, d := range b.drawings {
			fmt.Fprintf(&sb, "  %-12s %s (%4.0f,%4.0f)-(%4.0f,%4.0f)",
				d.Kind, HexColor(d.Color), d.Start.X, d.Start.Y, d.End.X, d.End.Y)
			if d.Filled {
				sb.WriteString(" filled")
			}
			if d.Kind == KindText {
				fmt.Fprintf(&sb, " %q", d.Text)
			}
			sb.WriteByte('\n')
		}
	}
	if notes := strings.TrimSpace(b.notes); notes != "" {
		sb.WriteString("Notes\n")
		for _, line := range strings.Split(notes, "\n") {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}
	return sb.String()
}
