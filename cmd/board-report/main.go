// Command board-report builds a board without a window, applies formations
// and moves from flags, then prints its text layout and optionally writes a
// rendered PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/coachlab/tactics-board/internal/board"
	"github.com/coachlab/tactics-board/internal/config"
	"github.com/coachlab/tactics-board/internal/photos"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// move is a parsed -drag value: a player id (or "ball") and a logical target.
type move struct {
	target string
	to     board.Point
}

// moveList collects repeated -drag flags.
type moveList []move

func (m *moveList) String() string {
	parts := make([]string, len(*m))
	for i, mv := range *m {
		parts[i] = fmt.Sprintf("%s:%g,%g", mv.target, mv.to.X, mv.to.Y)
	}
	return strings.Join(parts, " ")
}

func (m *moveList) Set(v string) error {
	mv, err := parseMove(v)
	if err != nil {
		return err
	}
	*m = append(*m, mv)
	return nil
}

// noteLines collects repeated -note flags, one line each.
type noteLines []string

func (n *noteLines) String() string { return strings.Join(*n, "\n") }

func (n *noteLines) Set(v string) error {
	*n = append(*n, v)
	return nil
}

// parseMove parses "A5:300,400" or "ball:525,340".
func parseMove(v string) (move, error) {
	target, coords, ok := strings.Cut(v, ":")
	if !ok || target == "" {
		return move{}, fmt.Errorf("drag %q: want ID:x,y", v)
	}
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return move{}, fmt.Errorf("drag %q: want ID:x,y", v)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return move{}, fmt.Errorf("drag %q: bad x: %w", v, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return move{}, fmt.Errorf("drag %q: bad y: %w", v, err)
	}
	if strings.EqualFold(target, "ball") {
		target = "ball"
	} else {
		target = strings.ToUpper(target)
	}
	return move{target: target, to: board.Pt(x, y)}, nil
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("board-report", flag.ContinueOnError)
	fs.SetOutput(stdout)

	var (
		configPath  string
		formationA  string
		formationB  string
		width       float64
		height      float64
		density     float64
		outPath     string
		photoDir    string
		list        bool
		moves       moveList
		notes       noteLines
		showActions bool
	)
	fs.StringVar(&configPath, "config", "", "config.toml to start from (defaults when empty)")
	fs.StringVar(&formationA, "formation-a", "", "formation for team A")
	fs.StringVar(&formationB, "formation-b", "", "formation for team B")
	fs.Float64Var(&width, "width", 0, "surface width in layout pixels (config value when 0)")
	fs.Float64Var(&height, "height", 0, "surface height in layout pixels (config value when 0)")
	fs.Float64Var(&density, "density", 1, "device pixel density, clamped to [1, 2]")
	fs.StringVar(&outPath, "out", "", "write the rendered board to this PNG")
	fs.StringVar(&photoDir, "photos", "", "directory of player photos (a1.png .. b11.png)")
	fs.BoolVar(&list, "list-formations", false, "list the formation catalog and exit")
	fs.Var(&moves, "drag", "drag a player or the ball, e.g. A5:300,400 (repeatable)")
	fs.Var(&notes, "note", "add a line to the tactical notes (repeatable)")
	fs.BoolVar(&showActions, "actions", true, "print the action log")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if list {
		printFormations(stdout)
		return nil
	}

	cfg := config.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if width <= 0 {
		width = float64(cfg.Window.Width)
	}
	if height <= 0 {
		height = float64(cfg.Window.Height)
	}
	b := cfg.NewBoard(board.NewSurface(width, height, density))

	var src board.PhotoSource
	if photoDir != "" {
		cache := photos.NewCache()
		loaded, err := photos.LoadDir(photoDir, cache)
		if err != nil {
			return err
		}
		for _, l := range loaded {
			b.AttachPlayerPhoto(l.PlayerID, l.Path)
		}
		src = cache
	}

	for i, name := range []string{formationA, formationB} {
		if name == "" {
			continue
		}
		if !b.ApplyFormation(board.Teams[i], name) {
			return fmt.Errorf("unknown formation %q (see -list-formations)", name)
		}
	}

	b.SetNotes(strings.Join(notes, "\n"))

	b.SetTool(board.ToolSelect)
	for _, mv := range moves {
		if err := applyMove(b, mv); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "=== Board Report ===\n")
	fmt.Fprintf(stdout, "surface=%gx%g density=%g undo=%d\n\n", b.Surface().Width, b.Surface().Height, b.Surface().Density, b.HistoryLen())
	fmt.Fprint(stdout, b.LayoutText())

	if showActions {
		fmt.Fprintf(stdout, "\n--- actions ---\n")
		for _, e := range b.Log().Recent() {
			fmt.Fprintln(stdout, e.String())
		}
	}

	if outPath != "" {
		frame := board.NewFrame(b.Surface())
		b.Render(frame, src)
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		if err := png.Encode(f, frame); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", outPath, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "\nwrote %s (%dx%d)\n", outPath, frame.Bounds().Dx(), frame.Bounds().Dy())
	}
	return nil
}

// applyMove replays a drag through the pointer pipeline so the move lands in
// history and the action log like an interactive one.
func applyMove(b *board.Board, mv move) error {
	var from board.Point
	if mv.target == "ball" {
		from = b.Ball().Pos
	} else {
		p, ok := b.Player(mv.target)
		if !ok {
			return fmt.Errorf("drag: unknown player %q", mv.target)
		}
		if !p.Visible {
			return fmt.Errorf("drag: player %s is hidden", mv.target)
		}
		from = p.Pos
	}
	b.PointerDown(from)
	sel, _ := b.SelectedPlayer()
	if b.State() != board.StateDraggingEntity || (mv.target != "ball" && sel != mv.target) || (mv.target == "ball" && sel != "") {
		b.PointerCancel()
		return fmt.Errorf("drag: %s is covered at (%.0f,%.0f)", mv.target, from.X, from.Y)
	}
	b.PointerMove(mv.to)
	b.PointerUp()
	return nil
}

func printFormations(w io.Writer) {
	for _, g := range board.FormationGroups() {
		fmt.Fprintf(w, "%s\n", g.Label)
		for _, name := range g.Formations {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
}
