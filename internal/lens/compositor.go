package lens

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

const (
	shadowAlpha = 0.3
	// cubic bezier control distance for a quarter circle
	kappa = 0.5522847498
)

var (
	outerRingColor = color.NRGBA{0x00, 0x00, 0x00, opacity(0.05)}
	innerRingColor = color.NRGBA{0xff, 0xff, 0xff, opacity(0.5)}
	blockShadow    = color.NRGBA{0x00, 0x00, 0x00, opacity(0.2)}
	blockFrame     = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// Compositor stamps screen samples into the lens. The shadow background is
// rendered once and never painted on; Compose always works on a copy.
type Compositor struct {
	geom       Geometry
	background *image.RGBA
}

func NewCompositor(g Geometry) (*Compositor, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &Compositor{geom: g, background: renderShadow(g)}, nil
}

func (c *Compositor) Geometry() Geometry { return c.geom }

// Background returns the cached drop shadow. Callers must not modify it.
func (c *Compositor) Background() image.Image { return c.background }

// Hotspot is the pixel of the lens image that sits under the cursor.
func (c *Compositor) Hotspot() image.Point {
	h := c.geom.Outer() / 2
	return image.Pt(h, h)
}

// Compose magnifies sample into the lens and draws the rings and crosshair on
// top. A nil or empty sample leaves the circle transparent.
func (c *Compositor) Compose(sample image.Image) *image.RGBA {
	g := c.geom
	off := g.Offset()
	w := g.Inner()

	out := image.NewRGBA(c.background.Bounds())
	copy(out.Pix, c.background.Pix)

	zoom := image.NewRGBA(image.Rect(0, 0, w, w))
	if sample != nil && !sample.Bounds().Empty() {
		xdraw.NearestNeighbor.Scale(zoom, zoom.Bounds(), sample, sample.Bounds(), xdraw.Src, nil)
	}
	mask := image.NewAlpha(out.Bounds())
	fillCircle(mask, float32(off+2), float32(off+2), float32(w-4))
	dst := image.Rect(off+1, off+1, off+1+w, off+1+w).Intersect(out.Bounds())
	xdraw.DrawMask(out, dst, zoom, image.Point{}, mask, dst.Min, xdraw.Over)

	strokeCircle(out, float32(off+1), float32(off+1), float32(w-2), 1, outerRingColor)
	strokeCircle(out, float32(off+3), float32(off+3), float32(w-6), 4, innerRingColor)

	b := g.BlockSize()
	bx := off + w/2 - b/2
	by := off + w/2 - b/2
	frameRect(out, image.Rect(bx, by, bx+b+1, by+b+1), blockShadow)
	frameRect(out, image.Rect(bx+1, by+1, bx+b, by+b), blockFrame)

	return out
}

func renderShadow(g Geometry) *image.RGBA {
	n := g.Outer()
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	center := float64(n) / 2
	radius := float64(g.Inner()) / 2
	spread := float64(g.Offset())
	drop := math.Max(1, g.Scale)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center - drop
			d := math.Hypot(dx, dy) - radius
			var a float64
			switch {
			case d <= 0:
				a = shadowAlpha
			case d < spread:
				t := 1 - d/spread
				a = shadowAlpha * t * t
			default:
				continue
			}
			img.SetRGBA(x, y, color.RGBA{A: uint8(a*255 + 0.5)})
		}
	}
	return img
}

func opacity(f float64) uint8 {
	return uint8(math.Round(f * 255))
}

func addCircle(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	if reverse {
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	} else {
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	}
	z.ClosePath()
}

// fillCircle writes the coverage of the circle inscribed in the d-sized
// square at (x, y) into mask.
func fillCircle(mask *image.Alpha, x, y, d float32) {
	b := mask.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	addCircle(z, x+d/2, y+d/2, d/2, false)
	z.Draw(mask, b, image.Opaque, image.Point{})
}

// strokeCircle draws a ring of the given width centered on the circle
// inscribed in the d-sized square at (x, y).
func strokeCircle(dst *image.RGBA, x, y, d, width float32, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	cx, cy, r := x+d/2, y+d/2, d/2
	addCircle(z, cx, cy, r+width/2, false)
	if inner := r - width/2; inner > 0 {
		addCircle(z, cx, cy, inner, true)
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// frameRect draws a one pixel outline just inside r. Corners are painted
// once so translucent colors stay even.
func frameRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+1, r.Min.X+1, r.Max.Y-1),
		image.Rect(r.Max.X-1, r.Min.Y+1, r.Max.X, r.Max.Y-1),
	}
	for _, e := range edges {
		if e.Empty() {
			continue
		}
		xdraw.Draw(dst, e, src, image.Point{}, xdraw.Over)
	}
}
