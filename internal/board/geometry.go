package board

import "math"

// Logical pitch dimensions. One logical unit is 10 cm of a 105x68 m pitch.
const (
	PitchW = 1050.0
	PitchH = 680.0
)

// Playable margins inset from the pitch edges. The touchlines and goal lines
// are painted on this rectangle and formations are anchored to it.
const (
	PitchLeft   = 15.0
	PitchRight  = PitchW - 15
	PitchTop    = 15.0
	PitchBottom = PitchH - 15
)

// MaxDensity caps the device pixel density of a surface.
const MaxDensity = 2.0

// playerRadiusBase is the on-screen player radius at 1:1 scale, in device
// pixels per unit density. The radius is clamped so players stay legible on
// small surfaces and do not balloon on large ones.
const (
	playerRadiusBase = 14.0
	playerRadiusMin  = 10.0
	playerRadiusMax  = 26.0
)

// Point is a position in either logical or device space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Surface describes the drawing surface the board is painted on: its layout
// size in pixels and the device pixel density applied on top of it.
type Surface struct {
	Width   float64
	Height  float64
	Density float64
}

// NewSurface returns a surface with density clamped to [1, MaxDensity].
func NewSurface(width, height, density float64) Surface {
	if density < 1 || math.IsNaN(density) {
		density = 1
	}
	if density > MaxDensity {
		density = MaxDensity
	}
	return Surface{Width: width, Height: height, Density: density}
}

func (s Surface) density() float64 {
	if s.Density <= 0 {
		return 1
	}
	return s.Density
}

// DeviceSize returns the size of the pixel buffer backing the surface.
func (s Surface) DeviceSize() (int, int) {
	d := s.density()
	return int(math.Round(s.Width * d)), int(math.Round(s.Height * d))
}

// Scale returns the logical-to-device scale factors. The pitch fills the
// surface, so x and y scale independently.
func (s Surface) Scale() (sx, sy float64) {
	d := s.density()
	return s.Width * d / PitchW, s.Height * d / PitchH
}

// ToDevice maps a logical pitch point to device pixels on s.
func ToDevice(p Point, s Surface) Point {
	sx, sy := s.Scale()
	return Point{p.X * sx, p.Y * sy}
}

// ToLogical maps a device pixel position on s back to pitch space. Points
// outside the surface map outside the pitch; a degenerate surface maps
// everything to the origin.
func ToLogical(p Point, s Surface) Point {
	sx, sy := s.Scale()
	if sx == 0 || sy == 0 {
		return Point{}
	}
	return Point{p.X / sx, p.Y / sy}
}

// BallScale is the ball radius as a fraction of the player radius, both when
// painted and when hit-tested.
const BallScale = 0.6

// PlayerRadius returns the player radius in logical units for s. The renderer
// draws players at PlayerRadius*sx device pixels and the hit-tester uses the
// same value, so what is drawn is what is clickable.
func PlayerRadius(s Surface) float64 {
	sx, _ := s.Scale()
	if sx <= 0 {
		return playerRadiusBase
	}
	d := s.density()
	px := clamp(playerRadiusBase*sx, playerRadiusMin*d, playerRadiusMax*d)
	return px / sx
}

// clampToPitch clamps both axes of p to the pitch rectangle.
func clampToPitch(p Point) Point {
	return Point{clamp(p.X, 0, PitchW), clamp(p.Y, 0, PitchH)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return p.Dist(a)
	}
	t := clamp(((p.X-a.X)*dx+(p.Y-a.Y)*dy)/l2, 0, 1)
	return p.Dist(Point{a.X + t*dx, a.Y + t*dy})
}

// distToPolyline returns the distance from p to the nearest segment of pts.
func distToPolyline(p Point, pts []Point, closed bool) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(pts); i++ {
		best = math.Min(best, distToSegment(p, pts[i], pts[i+1]))
	}
	if closed && len(pts) > 2 {
		best = math.Min(best, distToSegment(p, pts[len(pts)-1], pts[0]))
	}
	if len(pts) == 1 {
		best = p.Dist(pts[0])
	}
	return best
}

// pointInPolygon reports whether p is inside the polygon (even-odd rule).
func pointInPolygon(p Point, poly []Point) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}
