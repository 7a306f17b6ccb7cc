package board

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four arcs approximate a circle.
const kappa = 0.5522847498

// canvas paints in device pixels onto dst with a software rasterizer, so the
// same inputs always produce the same pixels.
type canvas struct {
	dst    draw.Image
	w, h   int
	sx, sy float64
	d      float64
	z      *vector.Rasterizer
}

func newCanvas(dst draw.Image, s Surface) *canvas {
	b := dst.Bounds()
	sx, sy := s.Scale()
	return &canvas{
		dst: dst,
		w:   b.Dx(),
		h:   b.Dy(),
		sx:  sx,
		sy:  sy,
		d:   s.density(),
		z:   vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// dev maps a logical point to device space.
func (c *canvas) dev(p Point) Point { return Point{p.X * c.sx, p.Y * c.sy} }

func (c *canvas) devAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = c.dev(p)
	}
	return out
}

// fill rasterizes path inside the device box lo-hi and composites col
// through it. Only the part of the box on the canvas is touched.
func (c *canvas) fill(col color.Color, lo, hi Point, path func(pn *pen)) {
	r := image.Rect(
		int(math.Floor(lo.X)), int(math.Floor(lo.Y)),
		int(math.Ceil(hi.X)), int(math.Ceil(hi.Y)),
	).Intersect(image.Rect(0, 0, c.w, c.h))
	if r.Empty() {
		return
	}
	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = draw.Over
	path(&pen{z: c.z, o: Point{float64(r.Min.X), float64(r.Min.Y)}})
	c.z.Draw(c.dst, r, image.NewUniform(col), image.Point{})
}

func (c *canvas) fillRect(x, y, w, h float64, col color.Color) {
	c.fillPolygon([]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, col)
}

func (c *canvas) fillPolygon(pts []Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	lo, hi := bounds(pts, 0)
	c.fill(col, lo, hi, func(pn *pen) { pn.polygon(pts) })
}

func (c *canvas) fillEllipse(ctr Point, rx, ry float64, col color.Color) {
	c.fill(col, Point{ctr.X - rx, ctr.Y - ry}, Point{ctr.X + rx, ctr.Y + ry}, func(pn *pen) {
		pn.ellipse(ctr, rx, ry, false)
	})
}

// strokeEllipse paints a ring of width w centred on the ellipse outline.
func (c *canvas) strokeEllipse(ctr Point, rx, ry, w float64, col color.Color) {
	ox, oy := rx+w/2, ry+w/2
	c.fill(col, Point{ctr.X - ox, ctr.Y - oy}, Point{ctr.X + ox, ctr.Y + oy}, func(pn *pen) {
		pn.ellipse(ctr, ox, oy, false)
		if rx > w/2 && ry > w/2 {
			pn.ellipse(ctr, rx-w/2, ry-w/2, true)
		}
	})
}

// strokePolyline paints pts as a polyline of width w with round joins and
// caps, in a single pass so overlapping segments do not double up.
func (c *canvas) strokePolyline(pts []Point, w float64, closed bool, col color.Color) {
	if len(pts) == 0 {
		return
	}
	lo, hi := bounds(pts, w/2)
	c.fill(col, lo, hi, func(pn *pen) {
		n := len(pts)
		for i := 0; i+1 < n; i++ {
			pn.segment(pts[i], pts[i+1], w)
		}
		if closed && n > 2 {
			pn.segment(pts[n-1], pts[0], w)
		}
		for _, p := range pts {
			pn.ellipse(p, w/2, w/2, false)
		}
	})
}

// strokeDashed paints the segment a-b as dashes.
func (c *canvas) strokeDashed(a, b Point, w, dash, gap float64, col color.Color) {
	length := a.Dist(b)
	if length == 0 || dash <= 0 {
		return
	}
	ux, uy := (b.X-a.X)/length, (b.Y-a.Y)/length
	lo, hi := bounds([]Point{a, b}, w/2)
	c.fill(col, lo, hi, func(pn *pen) {
		for t := 0.0; t < length; t += dash + gap {
			e := math.Min(t+dash, length)
			pn.segment(Point{a.X + ux*t, a.Y + uy*t}, Point{a.X + ux*e, a.Y + uy*e}, w)
		}
	})
}

// bounds returns the box around pts grown by pad on every side.
func bounds(pts []Point, pad float64) (lo, hi Point) {
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return Point{lo.X - pad, lo.Y - pad}, Point{hi.X + pad, hi.Y + pad}
}

// text paints s with the basic bitmap face scaled by kx, ky. The anchor is the
// left end of the baseline, or the centre of the text box when centred.
func (c *canvas) text(s string, at Point, kx, ky float64, centred bool, col color.Color) {
	if s == "" || kx <= 0 || ky <= 0 {
		return
	}
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	h := face.Height
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face, Dot: fixed.P(0, face.Ascent)}
	d.DrawString(s)

	dw := int(math.Round(float64(w) * kx))
	dh := int(math.Round(float64(h) * ky))
	if dw <= 0 || dh <= 0 {
		return
	}
	scaled := mask
	if dw != w || dh != h {
		scaled = image.NewAlpha(image.Rect(0, 0, dw, dh))
		draw.BiLinear.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), draw.Src, nil)
	}

	var ox, oy int
	if centred {
		ox = int(math.Round(at.X - float64(dw)/2))
		oy = int(math.Round(at.Y - float64(dh)/2))
	} else {
		ox = int(math.Round(at.X))
		oy = int(math.Round(at.Y - float64(face.Ascent)*ky))
	}
	r := image.Rect(ox, oy, ox+dw, oy+dh)
	draw.DrawMask(c.dst, r, image.NewUniform(col), image.Point{}, scaled, image.Point{}, draw.Over)
}

// imageDisc paints img scaled into a disc of radius r centred on ctr.
func (c *canvas) imageDisc(img image.Image, ctr Point, r float64) {
	size := int(math.Ceil(2 * r))
	if size <= 0 {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	mask := image.NewAlpha(scaled.Bounds())
	z := vector.NewRasterizer(size, size)
	(&pen{z: z}).ellipse(Point{float64(size) / 2, float64(size) / 2}, r, r, false)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	ox := int(math.Round(ctr.X - float64(size)/2))
	oy := int(math.Round(ctr.Y - float64(size)/2))
	draw.DrawMask(c.dst, image.Rect(ox, oy, ox+size, oy+size), scaled, image.Point{}, mask, image.Point{}, draw.Over)
}

// pen feeds device-space paths to a rasterizer whose origin sits at o.
//
// All paths wind clockwise in screen space (positive shoelace area) unless
// reversed, so overlapping sub-paths accumulate instead of cancelling.
type pen struct {
	z *vector.Rasterizer
	o Point
}

func (pn *pen) moveTo(p Point) { pn.z.MoveTo(float32(p.X-pn.o.X), float32(p.Y-pn.o.Y)) }
func (pn *pen) lineTo(p Point) { pn.z.LineTo(float32(p.X-pn.o.X), float32(p.Y-pn.o.Y)) }

func (pn *pen) cubeTo(b, c, d Point) {
	pn.z.CubeTo(
		float32(b.X-pn.o.X), float32(b.Y-pn.o.Y),
		float32(c.X-pn.o.X), float32(c.Y-pn.o.Y),
		float32(d.X-pn.o.X), float32(d.Y-pn.o.Y),
	)
}

func (pn *pen) polygon(pts []Point) {
	pn.moveTo(pts[0])
	for _, p := range pts[1:] {
		pn.lineTo(p)
	}
	pn.z.ClosePath()
}

func (pn *pen) segment(a, b Point, w float64) {
	l := a.Dist(b)
	if l == 0 {
		return
	}
	nx, ny := -(b.Y-a.Y)/l*w/2, (b.X-a.X)/l*w/2
	pn.polygon([]Point{
		{a.X - nx, a.Y - ny},
		{b.X - nx, b.Y - ny},
		{b.X + nx, b.Y + ny},
		{a.X + nx, a.Y + ny},
	})
}

// ellipse adds four cubic arcs around ctr, counter-clockwise when reverse.
func (pn *pen) ellipse(ctr Point, rx, ry float64, reverse bool) {
	if rx <= 0 || ry <= 0 {
		return
	}
	kx, ky := rx*kappa, ry*kappa
	x, y := ctr.X, ctr.Y
	pn.moveTo(Point{x + rx, y})
	if !reverse {
		pn.cubeTo(Point{x + rx, y + ky}, Point{x + kx, y + ry}, Point{x, y + ry})
		pn.cubeTo(Point{x - kx, y + ry}, Point{x - rx, y + ky}, Point{x - rx, y})
		pn.cubeTo(Point{x - rx, y - ky}, Point{x - kx, y - ry}, Point{x, y - ry})
		pn.cubeTo(Point{x + kx, y - ry}, Point{x + rx, y - ky}, Point{x + rx, y})
	} else {
		pn.cubeTo(Point{x + rx, y - ky}, Point{x + kx, y - ry}, Point{x, y - ry})
		pn.cubeTo(Point{x - kx, y - ry}, Point{x - rx, y - ky}, Point{x - rx, y})
		pn.cubeTo(Point{x - rx, y + ky}, Point{x - kx, y + ry}, Point{x, y + ry})
		pn.cubeTo(Point{x + kx, y + ry}, Point{x + rx, y + ky}, Point{x + rx, y})
	}
	pn.z.ClosePath()
}
