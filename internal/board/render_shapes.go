package board

import (
	"image/color"
	"math"
)

// fillAlpha is the opacity of filled box shapes; zones are always filled,
// more faintly.
const (
	fillAlpha = 0x70
	zoneAlpha = 0x40
)

var painters = [kindCount]func(c *canvas, d Drawing){
	KindLine:        paintLine,
	KindArrow:       paintArrow,
	KindCurvedArrow: paintCurvedArrow,
	KindRect:        paintRect,
	KindCircle:      paintCircle,
	KindTriangle:    paintTriangle,
	KindZone:        paintZone,
	KindText:        paintText,
}

// shape paints one drawing. Previews go through the same path.
func (c *canvas) shape(d Drawing) {
	if d.Kind < 0 || d.Kind >= kindCount {
		return
	}
	painters[d.Kind](c, d)
}

func (c *canvas) strokeWidth(d Drawing) float64 {
	return math.Max(1, d.StrokeWidth*c.sx)
}

func withAlpha(col color.RGBA, a uint8) color.RGBA {
	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(uint32(col.R) * uint32(a) / 0xff),
		G: uint8(uint32(col.G) * uint32(a) / 0xff),
		B: uint8(uint32(col.B) * uint32(a) / 0xff),
		A: uint8(uint32(col.A) * uint32(a) / 0xff),
	}
}

func paintLine(c *canvas, d Drawing) {
	c.strokePolyline(c.devAll([]Point{d.Start, d.End}), c.strokeWidth(d), false, d.Color)
}

func paintArrow(c *canvas, d Drawing) {
	a, b := c.dev(d.Start), c.dev(d.End)
	w := c.strokeWidth(d)
	c.strokePolyline([]Point{a, shaftEnd(a, b, w)}, w, false, d.Color)
	c.arrowHead(a, b, w, d.Color)
}

func paintCurvedArrow(c *canvas, d Drawing) {
	pts := c.devAll(curvePoints(d))
	w := c.strokeWidth(d)
	n := len(pts)
	from := pts[n-2]
	// Aim the head along the last few samples so it follows the curve.
	if n > 4 {
		from = pts[n-4]
	}
	pts[n-1] = shaftEnd(from, pts[n-1], w)
	c.strokePolyline(pts, w, false, d.Color)
	c.arrowHead(from, c.dev(d.End), w, d.Color)
}

func paintRect(c *canvas, d Drawing) {
	corners := c.devAll(boxCorners(d))
	if d.Filled {
		c.fillPolygon(corners, withAlpha(d.Color, fillAlpha))
	}
	c.strokePolyline(corners, c.strokeWidth(d), true, d.Color)
}

func paintCircle(c *canvas, d Drawing) {
	ctr, rx, ry := ellipse(d)
	dc := c.dev(ctr)
	rx, ry = rx*c.sx, ry*c.sy
	if d.Filled {
		c.fillEllipse(dc, rx, ry, withAlpha(d.Color, fillAlpha))
	}
	c.strokeEllipse(dc, rx, ry, c.strokeWidth(d), d.Color)
}

func paintTriangle(c *canvas, d Drawing) {
	pts := c.devAll(triangleVertices(d))
	if d.Filled {
		c.fillPolygon(pts, withAlpha(d.Color, fillAlpha))
	}
	c.strokePolyline(pts, c.strokeWidth(d), true, d.Color)
}

func paintZone(c *canvas, d Drawing) {
	corners := c.devAll(boxCorners(d))
	c.fillPolygon(corners, withAlpha(d.Color, zoneAlpha))
	w := c.strokeWidth(d) * 0.6
	for i := range corners {
		c.strokeDashed(corners[i], corners[(i+1)%len(corners)], w, 7*c.d, 5*c.d, d.Color)
	}
}

func paintText(c *canvas, d Drawing) {
	c.text(d.Text, c.dev(d.Start), c.sx, c.sy, false, d.Color)
}

// arrowHead paints a filled head at b pointing away from a.
func (c *canvas) arrowHead(a, b Point, w float64, col color.Color) {
	l := a.Dist(b)
	if l == 0 {
		return
	}
	size := headSize(w)
	ux, uy := (b.X-a.X)/l, (b.Y-a.Y)/l
	base := Point{b.X - ux*size, b.Y - uy*size}
	half := size * 0.55
	c.fillPolygon([]Point{
		b,
		{base.X - uy*half, base.Y + ux*half},
		{base.X + uy*half, base.Y - ux*half},
	}, col)
}

func headSize(w float64) float64 { return math.Max(10, w*4) }

// shaftEnd pulls the shaft back under the head so its round cap does not
// poke through the tip.
func shaftEnd(a, b Point, w float64) Point {
	l := a.Dist(b)
	back := headSize(w) * 0.5
	if l <= back {
		return b
	}
	return Point{b.X - (b.X-a.X)/l*back, b.Y - (b.Y-a.Y)/l*back}
}
