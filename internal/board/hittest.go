package board

import "math"

// strokeSlack is the extra tolerance, in logical units, added to half the
// stroke width when testing outlines and lines.
const strokeSlack = 6.0

// Text drawings are hit-tested against a box of textCharW per character by
// textLineH, in logical units, starting at the anchor.
const (
	textCharW = 7.0
	textLineH = 13.0
)

// HitKind tells whether a pick landed on a player or the ball.
type HitKind int

const (
	HitNone HitKind = iota
	HitPlayer
	HitBall
)

// EntityHit is the result of FindPlayerAtPoint. ID is empty for the ball.
type EntityHit struct {
	Kind HitKind
	ID   string
}

// FindPlayerAtPoint circle-tests every visible player and then the ball in a
// single pass, in paint order. The last entity contacted wins, so the ball,
// which is painted above the players, takes priority, and among overlapping
// players the later one in the slice wins. The ball is tested at its painted
// size, radius*BallScale.
func FindPlayerAtPoint(players []Player, ball Ball, p Point, radius float64) (EntityHit, bool) {
	r2 := radius * radius
	var hit EntityHit
	for _, pl := range players {
		if !pl.Visible {
			continue
		}
		if dist2(pl.Pos, p) <= r2 {
			hit = EntityHit{Kind: HitPlayer, ID: pl.ID}
		}
	}
	if br := radius * BallScale; dist2(ball.Pos, p) <= br*br {
		hit = EntityHit{Kind: HitBall}
	}
	return hit, hit.Kind != HitNone
}

// FindDrawingAtPoint returns the id of the topmost drawing at p. Drawings
// are tested in reverse insertion order, matching paint order.
func FindDrawingAtPoint(drawings []Drawing, p Point) (string, bool) {
	for i := len(drawings) - 1; i >= 0; i-- {
		if drawingContains(drawings[i], p) {
			return drawings[i].ID, true
		}
	}
	return "", false
}

// FindHandleAtPoint returns the index of the handle of d under p. Only the
// selected drawing's handles are ever tested; callers enforce that.
func FindHandleAtPoint(d Drawing, p Point, radius float64) (int, bool) {
	r2 := radius * radius
	for i, h := range HandlePoints(d) {
		if dist2(h, p) <= r2 {
			return i, true
		}
	}
	return -1, false
}

var hitTests = [kindCount]func(d Drawing, p Point) bool{
	KindLine:        hitSegment,
	KindArrow:       hitSegment,
	KindCurvedArrow: hitCurve,
	KindRect:        hitRect,
	KindZone:        hitBox,
	KindCircle:      hitCircle,
	KindTriangle:    hitTriangle,
	KindText:        hitText,
}

func drawingContains(d Drawing, p Point) bool {
	if d.Kind < 0 || d.Kind >= kindCount {
		return false
	}
	return hitTests[d.Kind](d, p)
}

func tolerance(d Drawing) float64 {
	return d.StrokeWidth/2 + strokeSlack
}

func hitSegment(d Drawing, p Point) bool {
	return distToSegment(p, d.Start, d.End) <= tolerance(d)
}

func hitCurve(d Drawing, p Point) bool {
	return distToPolyline(p, curvePoints(d), false) <= tolerance(d)
}

// hitBox tests containment in the start/end box grown by the tolerance.
func hitBox(d Drawing, p Point) bool {
	lo, hi := box(d)
	t := tolerance(d)
	return p.X >= lo.X-t && p.X <= hi.X+t && p.Y >= lo.Y-t && p.Y <= hi.Y+t
}

func hitRect(d Drawing, p Point) bool {
	if d.Filled {
		return hitBox(d, p)
	}
	return distToPolyline(p, boxCorners(d), true) <= tolerance(d)
}

func hitCircle(d Drawing, p Point) bool {
	c, rx, ry := ellipse(d)
	dx, dy := p.X-c.X, p.Y-c.Y
	dist := math.Hypot(dx, dy)
	r := ellipseRadiusAt(rx, ry, dx, dy)
	if d.Filled {
		return dist <= r+tolerance(d)
	}
	return math.Abs(dist-r) <= tolerance(d)
}

func hitTriangle(d Drawing, p Point) bool {
	pts := triangleVertices(d)
	if d.Filled && pointInPolygon(p, pts) {
		return true
	}
	return distToPolyline(p, pts, true) <= tolerance(d)
}

func hitText(d Drawing, p Point) bool {
	w := float64(len([]rune(d.Text))) * textCharW
	const pad = 3.0
	return p.X >= d.Start.X-pad && p.X <= d.Start.X+w+pad &&
		p.Y >= d.Start.Y-textLineH-pad && p.Y <= d.Start.Y+pad
}

func dist2(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
