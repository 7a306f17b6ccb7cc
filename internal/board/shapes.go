package board

import "math"

// curveSamples is the number of segments a curved arrow is flattened into
// for painting and hit-testing.
const curveSamples = 24

// curveBend is how far the default control point of a curved arrow sits from
// the chord, as a fraction of the chord length.
const curveBend = 0.25

// trianglePoints derives the initial vertices of a triangle from the box
// spanned by start and end: apex on the start edge midpoint, base corners
// on the end edge.
func trianglePoints(start, end Point) []Point {
	mx := (start.X + end.X) / 2
	return []Point{
		{mx, start.Y},
		{start.X, end.Y},
		{end.X, end.Y},
	}
}

// defaultControl returns the control point a new curved arrow bends through.
func defaultControl(start, end Point) Point {
	dx, dy := end.X-start.X, end.Y-start.Y
	mid := Point{(start.X + end.X) / 2, (start.Y + end.Y) / 2}
	return Point{mid.X - dy*curveBend, mid.Y + dx*curveBend}
}

// curveControl returns the control point of a curved arrow, falling back to
// the default bend when the drawing has none yet (live preview).
func curveControl(d Drawing) Point {
	if len(d.Points) > 0 {
		return d.Points[0]
	}
	return defaultControl(d.Start, d.End)
}

// curvePoints flattens the quadratic curve start-control-end.
func curvePoints(d Drawing) []Point {
	c := curveControl(d)
	pts := make([]Point, curveSamples+1)
	for i := 0; i <= curveSamples; i++ {
		t := float64(i) / curveSamples
		u := 1 - t
		pts[i] = Point{
			u*u*d.Start.X + 2*u*t*c.X + t*t*d.End.X,
			u*u*d.Start.Y + 2*u*t*c.Y + t*t*d.End.Y,
		}
	}
	return pts
}

// triangleVertices returns the 3 vertices of a triangle drawing, deriving
// them from start/end for a preview that has none yet.
func triangleVertices(d Drawing) []Point {
	if len(d.Points) == 3 {
		return d.Points
	}
	return trianglePoints(d.Start, d.End)
}

// box returns the normalized bounding box of start/end.
func box(d Drawing) (minP, maxP Point) {
	return Point{math.Min(d.Start.X, d.End.X), math.Min(d.Start.Y, d.End.Y)},
		Point{math.Max(d.Start.X, d.End.X), math.Max(d.Start.Y, d.End.Y)}
}

// boxCorners returns tl, tr, br, bl of the start/end box, with start as
// the first corner and end as the third.
func boxCorners(d Drawing) []Point {
	return []Point{
		d.Start,
		{d.End.X, d.Start.Y},
		d.End,
		{d.Start.X, d.End.Y},
	}
}

// ellipse returns the centre and radii of a circle drawing's box.
func ellipse(d Drawing) (c Point, rx, ry float64) {
	c = Point{(d.Start.X + d.End.X) / 2, (d.Start.Y + d.End.Y) / 2}
	return c, math.Abs(d.End.X-d.Start.X) / 2, math.Abs(d.End.Y-d.Start.Y) / 2
}

// ellipseRadiusAt returns the radius of the ellipse (rx, ry) in the
// direction of the vector (dx, dy).
func ellipseRadiusAt(rx, ry, dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return math.Min(rx, ry)
	}
	th := math.Atan2(dy, dx)
	a, b := ry*math.Cos(th), rx*math.Sin(th)
	den := math.Hypot(a, b)
	if den == 0 {
		return 0
	}
	return rx * ry / den
}

// handleRule describes the editable control points of one kind and how
// moving one of them rewrites the drawing.
type handleRule struct {
	points func(d Drawing) []Point
	move   func(d *Drawing, idx int, p Point)
}

var handleRules = [kindCount]handleRule{
	KindLine:        {points: endpointHandles, move: moveEndpoint},
	KindArrow:       {points: endpointHandles, move: moveEndpoint},
	KindCurvedArrow: {points: curveHandles, move: moveCurveControl},
	KindRect:        {points: boxCorners, move: moveBoxCorner},
	KindZone:        {points: boxCorners, move: moveBoxCorner},
	KindCircle:      {points: endpointHandles, move: moveCircleHandle},
	KindTriangle:    {points: triangleHandles, move: moveTriangleVertex},
	KindText:        {points: textHandles, move: moveTextAnchor},
}

// HandlePoints returns the editable control points of d.
func HandlePoints(d Drawing) []Point {
	if d.Kind < 0 || d.Kind >= kindCount {
		return nil
	}
	return handleRules[d.Kind].points(d)
}

// moveHandle applies a handle drag to d. Out-of-range indices are ignored.
func moveHandle(d *Drawing, idx int, p Point) {
	if d.Kind < 0 || d.Kind >= kindCount {
		return
	}
	if idx < 0 || idx >= len(handleRules[d.Kind].points(*d)) {
		return
	}
	handleRules[d.Kind].move(d, idx, p)
}

func endpointHandles(d Drawing) []Point { return []Point{d.Start, d.End} }

func moveEndpoint(d *Drawing, idx int, p Point) {
	if idx == 0 {
		d.Start = p
	} else {
		d.End = p
	}
}

func curveHandles(d Drawing) []Point { return []Point{curveControl(d)} }

func moveCurveControl(d *Drawing, _ int, p Point) {
	d.Points = []Point{p}
}

// moveBoxCorner keeps the box axis-aligned: the dragged corner moves and the
// diagonally opposite corner stays fixed.
func moveBoxCorner(d *Drawing, idx int, p Point) {
	switch idx {
	case 0:
		d.Start = p
	case 1:
		d.Start.Y = p.Y
		d.End.X = p.X
	case 2:
		d.End = p
	case 3:
		d.Start.X = p.X
		d.End.Y = p.Y
	}
}

// moveCircleHandle resizes the circle about its existing centre, keeping the
// bounding box square.
func moveCircleHandle(d *Drawing, _ int, p Point) {
	c, _, _ := ellipse(*d)
	r := math.Max(math.Abs(p.X-c.X), math.Abs(p.Y-c.Y))
	d.Start = Point{c.X - r, c.Y - r}
	d.End = Point{c.X + r, c.Y + r}
}

func triangleHandles(d Drawing) []Point {
	return append([]Point(nil), triangleVertices(d)...)
}

func moveTriangleVertex(d *Drawing, idx int, p Point) {
	pts := triangleHandles(*d)
	pts[idx] = p
	d.Points = pts
}

func textHandles(d Drawing) []Point { return []Point{d.Start} }

func moveTextAnchor(d *Drawing, _ int, p Point) {
	d.Start = p
	d.End = p
}
