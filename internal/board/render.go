package board

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"golang.org/x/image/draw"
)

// Team colours.
var (
	Bordeaux   = color.RGBA{R: 0x7a, G: 0x1e, B: 0x3a, A: 0xff}
	BordeauxGK = color.RGBA{R: 0x4a, G: 0x0f, B: 0x22, A: 0xff}
	Ocean      = color.RGBA{R: 0x0b, G: 0x4f, B: 0x8a, A: 0xff}
	OceanGK    = color.RGBA{R: 0x05, G: 0x1e, B: 0x3e, A: 0xff}
)

var (
	grassDark   = [2]color.RGBA{{R: 30, G: 92, B: 46, A: 255}, {R: 34, G: 102, B: 52, A: 255}}
	grassLight  = [2]color.RGBA{{R: 92, G: 160, B: 96, A: 255}, {R: 102, G: 172, B: 104, A: 255}}
	lineColor   = color.RGBA{R: 235, G: 240, B: 235, A: 220}
	zoneColor   = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	selectColor = color.RGBA{R: 255, G: 220, B: 40, A: 255}
	handleFill  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ballFill    = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	ballOutline = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	shirtText   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	nameText    = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	playerRim   = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

const grassStripes = 12

// PhotoSource looks up decoded player photos by player id. Photos are loaded
// asynchronously elsewhere; a missing entry renders the plain disc.
type PhotoSource interface {
	Photo(playerID string) (image.Image, bool)
}

// Scene is everything one repaint needs. It is a value: Render never writes
// back into it.
type Scene struct {
	Players         []Player
	Ball            Ball
	Drawings        []Drawing
	Preview         *Drawing
	SelectedPlayer  string
	SelectedDrawing string
	View            ViewOptions
	Photos          PhotoSource
}

// Render repaints the whole board onto dst, whose bounds must start at the
// origin and match s.DeviceSize. Order: pitch, drawings in insertion order,
// the preview, players, ball, then the selection highlight on top.
func Render(dst draw.Image, s Surface, sc Scene) {
	c := newCanvas(dst, s)
	c.pitch(sc.View)
	for _, d := range sc.Drawings {
		c.shape(d)
	}
	if sc.Preview != nil {
		c.shape(*sc.Preview)
	}
	r := PlayerRadius(s) * c.sx
	for _, p := range sc.Players {
		if p.Visible {
			c.player(p, r, sc.View.ShowNames, sc.Photos)
		}
	}
	c.ball(sc.Ball, r)
	c.selection(sc, r)
}

// Render repaints the board onto dst using its current surface.
func (b *Board) Render(dst draw.Image, photos PhotoSource) {
	sc := b.Scene()
	sc.Photos = photos
	Render(dst, b.surface, sc)
}

// NewFrame allocates an image matching the board surface.
func NewFrame(s Surface) *image.RGBA {
	w, h := s.DeviceSize()
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// pitch paints grass stripes and the field markings.
func (c *canvas) pitch(v ViewOptions) {
	grass := grassDark
	if v.LightField {
		grass = grassLight
	}
	stripeW := float64(c.w) / float64(grassStripes)
	for i := 0; i < grassStripes; i++ {
		c.fillRect(float64(i)*stripeW, 0, stripeW+1, float64(c.h), grass[i%2])
	}

	lw := 2 * c.d
	l, r, t, b := PitchLeft, PitchRight, PitchTop, PitchBottom
	midX, midY := PitchW/2, PitchH/2

	c.strokePolyline(c.devAll([]Point{{l, t}, {r, t}, {r, b}, {l, b}}), lw, true, lineColor)
	c.strokePolyline(c.devAll([]Point{{midX, t}, {midX, b}}), lw, false, lineColor)
	c.strokeEllipse(c.dev(Pt(midX, midY)), centreCircle*c.sx, centreCircle*c.sy, lw, lineColor)
	c.fillEllipse(c.dev(Pt(midX, midY)), 3*c.d, 3*c.d, lineColor)

	for _, side := range [2]float64{1, -1} {
		goalX := l
		if side < 0 {
			goalX = r
		}
		box := func(depth, width float64) []Point {
			return []Point{
				{goalX, midY - width/2},
				{goalX + side*depth, midY - width/2},
				{goalX + side*depth, midY + width/2},
				{goalX, midY + width/2},
			}
		}
		c.strokePolyline(c.devAll(box(penaltyDepth, penaltyWidth)), lw, false, lineColor)
		c.strokePolyline(c.devAll(box(goalAreaDepth, goalAreaWidth)), lw, false, lineColor)
		c.strokePolyline(c.devAll(box(-goalDepth, goalWidth)), lw, false, lineColor)

		spot := Pt(goalX+side*penaltySpot, midY)
		c.fillEllipse(c.dev(spot), 2.5*c.d, 2.5*c.d, lineColor)

		// Penalty arc: the part of the spot circle outside the area.
		half := math.Acos((penaltyDepth - penaltySpot) / centreCircle)
		base := 0.0
		if side < 0 {
			base = math.Pi
		}
		arc := make([]Point, 0, 17)
		for i := 0; i <= 16; i++ {
			a := base - half + 2*half*float64(i)/16
			arc = append(arc, Pt(spot.X+centreCircle*math.Cos(a), spot.Y+centreCircle*math.Sin(a)))
		}
		c.strokePolyline(c.devAll(arc), lw, false, lineColor)
	}

	for _, corner := range [4]Point{{l, t}, {r, t}, {r, b}, {l, b}} {
		start := math.Atan2(midY-corner.Y, 0)
		sweep := math.Copysign(math.Pi/2, corner.X-midX)
		if corner.Y > midY {
			sweep = -sweep
		}
		arc := make([]Point, 0, 7)
		for i := 0; i <= 6; i++ {
			a := start + sweep*float64(i)/6
			arc = append(arc, Pt(corner.X+cornerArc*math.Cos(a), corner.Y+cornerArc*math.Sin(a)))
		}
		c.strokePolyline(c.devAll(arc), lw, false, lineColor)
	}

	if v.ShowZones {
		for i := 1; i < 3; i++ {
			x := l + (r-l)*float64(i)/3
			c.strokeDashed(c.dev(Pt(x, t)), c.dev(Pt(x, b)), c.d, 8*c.d, 6*c.d, zoneColor)
		}
		for i := 1; i < 5; i++ {
			y := t + (b-t)*float64(i)/5
			c.strokeDashed(c.dev(Pt(l, y)), c.dev(Pt(r, y)), c.d, 8*c.d, 6*c.d, zoneColor)
		}
	}
}

// Marking dimensions in logical units (10 per metre).
const (
	centreCircle  = 91.5
	penaltyDepth  = 165.0
	penaltyWidth  = 403.2
	goalAreaDepth = 55.0
	goalAreaWidth = 183.2
	penaltySpot   = 110.0
	goalWidth     = 73.2
	goalDepth     = 12.0
	cornerArc     = 10.0
)

func teamColor(p Player) color.RGBA {
	switch {
	case p.Team == TeamA && p.Role == RoleGoalkeeper:
		return BordeauxGK
	case p.Team == TeamA:
		return Bordeaux
	case p.Role == RoleGoalkeeper:
		return OceanGK
	}
	return Ocean
}

func (c *canvas) player(p Player, r float64, names bool, photos PhotoSource) {
	ctr := c.dev(p.Pos)
	var img image.Image
	if p.Photo != "" && photos != nil {
		img, _ = photos.Photo(p.ID)
	}
	if img != nil {
		c.imageDisc(img, ctr, r)
		c.strokeEllipse(ctr, r, r, 2.5*c.d, teamColor(p))
	} else {
		c.fillEllipse(ctr, r, r, teamColor(p))
		c.strokeEllipse(ctr, r, r, 1.5*c.d, playerRim)
		c.text(strconv.Itoa(p.Number), ctr, r/9, r/9, true, shirtText)
	}
	if names && p.Name != "" {
		c.text(p.Name, Pt(ctr.X, ctr.Y+r+8*c.d), c.d, c.d, true, nameText)
	}
}

func (c *canvas) ball(b Ball, r float64) {
	br := r * BallScale
	ctr := c.dev(b.Pos)
	c.fillEllipse(ctr, br, br, ballFill)
	c.strokeEllipse(ctr, br, br, 1.5*c.d, ballOutline)
	c.fillEllipse(ctr, br*0.35, br*0.35, ballOutline)
}

// selection rings the selected player or marks the selected drawing's
// handles. It is painted last so nothing covers it.
func (c *canvas) selection(sc Scene, r float64) {
	if sc.SelectedPlayer != "" {
		for _, p := range sc.Players {
			if p.ID == sc.SelectedPlayer && p.Visible {
				c.strokeEllipse(c.dev(p.Pos), r+4*c.d, r+4*c.d, 2.5*c.d, selectColor)
			}
		}
	}
	if sc.SelectedDrawing == "" {
		return
	}
	for _, d := range sc.Drawings {
		if d.ID != sc.SelectedDrawing {
			continue
		}
		hs := 4 * c.d
		for _, h := range HandlePoints(d) {
			p := c.dev(h)
			c.fillRect(p.X-hs, p.Y-hs, 2*hs, 2*hs, selectColor)
			c.fillRect(p.X-hs/2, p.Y-hs/2, hs, hs, handleFill)
		}
	}
}
