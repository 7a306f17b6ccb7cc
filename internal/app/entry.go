package app

import (
	"image/color"
	"unicode"

	"github.com/coachlab/tactics-board/internal/board"
)

// maxEntryLen bounds typed names and labels.
const maxEntryLen = 40

// textEntry is the single-line buffer behind the text and rename overlays.
type textEntry struct {
	runes []rune
}

func (e *textEntry) reset(s string) {
	e.runes = append(e.runes[:0], []rune(s)...)
	if len(e.runes) > maxEntryLen {
		e.runes = e.runes[:maxEntryLen]
	}
}

// insert appends printable runes, dropping the rest and anything past the
// length limit.
func (e *textEntry) insert(rs []rune) bool {
	changed := false
	for _, r := range rs {
		if len(e.runes) >= maxEntryLen {
			break
		}
		if !unicode.IsPrint(r) {
			continue
		}
		e.runes = append(e.runes, r)
		changed = true
	}
	return changed
}

func (e *textEntry) backspace() bool {
	if len(e.runes) == 0 {
		return false
	}
	e.runes = e.runes[:len(e.runes)-1]
	return true
}

func (e *textEntry) String() string { return string(e.runes) }

// formationOrder is the picker order: groups as listed, formations within a
// group as listed.
func formationOrder() []string {
	var names []string
	for _, g := range board.FormationGroups() {
		names = append(names, g.Formations...)
	}
	return names
}

// nextFormation steps through formationOrder from current, wrapping at both
// ends. An unknown current starts from the first (or last) entry.
func nextFormation(current string, step int) string {
	names := formationOrder()
	if len(names) == 0 {
		return ""
	}
	idx := -1
	for i, n := range names {
		if n == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if step < 0 {
			return names[len(names)-1]
		}
		return names[0]
	}
	n := len(names)
	return names[((idx+step)%n+n)%n]
}

// palette is the colour row bound to keys 1-6.
var palette = []color.RGBA{
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // white
	{R: 0xff, G: 0xd6, B: 0x00, A: 0xff}, // yellow
	{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}, // red
	{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}, // blue
	{R: 0x21, G: 0x21, B: 0x21, A: 0xff}, // black
	{R: 0xfb, G: 0x8c, B: 0x00, A: 0xff}, // orange
}
