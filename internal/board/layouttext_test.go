package board

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

func assertText(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Fatalf("layout text mismatch:\n%s", diff)
}

func TestLayoutText_InitialBoard(t *testing.T) {
	b := newTestBoard(t)
	var want strings.Builder
	want.WriteString("Team A (A)\n")
	want.WriteString("   1 GK A1  (  37,  15)\n")
	want.WriteString("   2 -- A2  (  37,  80)\n")
	want.WriteString("   3 -- A3  (  37, 145)\n")
	want.WriteString("   4 -- A4  (  37, 210)\n")
	want.WriteString("   5 -- A5  (  37, 275)\n")
	want.WriteString("   6 -- A6  (  37, 340)\n")
	want.WriteString("   7 -- A7  (  37, 405)\n")
	want.WriteString("   8 -- A8  (  37, 470)\n")
	want.WriteString("   9 -- A9  (  37, 535)\n")
	want.WriteString("  10 -- A10 (  37, 600)\n")
	want.WriteString("  11 -- A11 (  37, 665)\n")
	want.WriteString("Team B (B)\n")
	want.WriteString("   1 GK B1  (1013,  15)\n")
	want.WriteString("   2 -- B2  (1013,  80)\n")
	want.WriteString("   3 -- B3  (1013, 145)\n")
	want.WriteString("   4 -- B4  (1013, 210)\n")
	want.WriteString("   5 -- B5  (1013, 275)\n")
	want.WriteString("   6 -- B6  (1013, 340)\n")
	want.WriteString("   7 -- B7  (1013, 405)\n")
	want.WriteString("   8 -- B8  (1013, 470)\n")
	want.WriteString("   9 -- B9  (1013, 535)\n")
	want.WriteString("  10 -- B10 (1013, 600)\n")
	want.WriteString("  11 -- B11 (1013, 665)\n")
	want.WriteString("Ball ( 525, 340)\n")

	assertText(t, b.LayoutText(), want.String())
}

func TestLayoutText_DrawingsNamesNotes(t *testing.T) {
	b := newTestBoard(t)
	b.SetTeamName(TeamB, "Blues")
	b.UpdatePlayerName("A9", "Nine")
	b.TogglePlayerVisibility("A11")
	b.SetTool(ToolRect)
	b.SetFilled(true)
	drag(b, Pt(100, 100), Pt(200, 150))
	b.SetTool(ToolText)
	b.PointerDown(Pt(300, 300))
	b.CommitText("Press")
	b.SetNotes("Win it back\nStay compact")

	got := b.LayoutText()
	for _, line := range []string{
		"   9 -- A9  (  37, 535) Nine\n",
		"  11 -- A11 (  37, 665) hidden\n",
		"Blues (B)\n",
		"Drawings (2)\n",
		"  rect         #ffffff ( 100, 100)-( 200, 150) filled\n",
		"  text         #ffffff ( 300, 300)-( 300, 300) \"Press\"\n",
		"Notes\n  Win it back\n  Stay compact\n",
	} {
		if !strings.Contains(got, line) {
			t.Fatalf("expected layout text to contain %q, got:\n%s", line, got)
		}
	}
}
