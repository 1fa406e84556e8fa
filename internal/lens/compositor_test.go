package lens

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func mustCompositor(t *testing.T, scale float64) *Compositor {
	t.Helper()
	c, err := NewCompositor(DefaultGeometry(scale))
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	return c
}

func TestComposeKeepsOuterSize(t *testing.T) {
	for _, scale := range []float64{1, 1.25, 2} {
		c := mustCompositor(t, scale)
		want := c.Geometry().Outer()
		samples := []image.Image{
			nil,
			image.NewRGBA(image.Rect(0, 0, 0, 0)),
			solid(1, 1, color.RGBA{0xff, 0, 0, 0xff}),
			solid(11, 11, color.RGBA{0x33, 0x66, 0x99, 0xff}),
			solid(40, 7, color.RGBA{0, 0xff, 0, 0xff}),
		}
		for i, s := range samples {
			got := c.Compose(s).Bounds()
			if got.Dx() != want || got.Dy() != want || got.Min != (image.Point{}) {
				t.Fatalf("scale %v sample %d: bounds %v, want %dx%d at origin", scale, i, got, want, want)
			}
		}
	}
}

func TestComposeLeavesBackgroundUntouched(t *testing.T) {
	c := mustCompositor(t, 1)
	bg, ok := c.Background().(*image.RGBA)
	if !ok {
		t.Fatalf("Background is %T, want *image.RGBA", c.Background())
	}
	before := append([]byte(nil), bg.Pix...)

	c.Compose(solid(11, 11, color.RGBA{0xff, 0xff, 0xff, 0xff}))
	c.Compose(solid(11, 11, color.RGBA{0x12, 0x34, 0x56, 0xff}))

	if !bytes.Equal(before, bg.Pix) {
		t.Fatalf("background changed after Compose")
	}
}

func TestComposeMagnifiesSample(t *testing.T) {
	c := mustCompositor(t, 1)
	want := color.RGBA{0x33, 0x66, 0x99, 0xff}
	out := c.Compose(solid(11, 11, want))

	center := c.Hotspot()
	// well inside the circle, clear of the rings and the crosshair
	for _, p := range []image.Point{
		{center.X - 40, center.Y},
		{center.X + 40, center.Y},
		{center.X, center.Y - 60},
	} {
		if got := out.RGBAAt(p.X, p.Y); got != want {
			t.Fatalf("pixel %v = %v, want %v", p, got, want)
		}
	}
}

func TestComposeDrawsCrosshair(t *testing.T) {
	c := mustCompositor(t, 1)
	out := c.Compose(solid(11, 11, color.RGBA{0x33, 0x66, 0x99, 0xff}))

	g := c.Geometry()
	bx := g.Offset() + g.Inner()/2 - g.BlockSize()/2
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	if got := out.RGBAAt(bx+1, bx+g.BlockSize()/2); got != white {
		t.Fatalf("inner frame pixel = %v, want white", got)
	}
	if got := out.RGBAAt(bx, bx+g.BlockSize()/2); got == white || got.A != 0xff {
		t.Fatalf("outer frame pixel = %v, want darkened sample", got)
	}
	// the box interior still shows the centre sample pixel
	if got := out.RGBAAt(bx+g.BlockSize()/2, bx+g.BlockSize()/2); got != (color.RGBA{0x33, 0x66, 0x99, 0xff}) {
		t.Fatalf("box interior = %v", got)
	}
}

func TestComposeCornerIsTransparent(t *testing.T) {
	c := mustCompositor(t, 1)
	out := c.Compose(solid(11, 11, color.RGBA{0xff, 0, 0, 0xff}))
	if got := out.RGBAAt(0, 0); got.A != 0 {
		t.Fatalf("corner pixel = %v, want transparent", got)
	}
}

func TestComposeCenterPixelFillsBlock(t *testing.T) {
	c := mustCompositor(t, 1)
	sample := solid(11, 11, color.RGBA{0, 0, 0, 0xff})
	mark := color.RGBA{0xff, 0x00, 0x00, 0xff}
	sample.SetRGBA(5, 5, mark)

	out := c.Compose(sample)
	h := c.Hotspot()
	if got := out.RGBAAt(h.X, h.Y); got != mark {
		t.Fatalf("hotspot pixel = %v, want the centre sample %v", got, mark)
	}
	if got := out.RGBAAt(h.X-20, h.Y); got == mark {
		t.Fatalf("pixel outside the centre block shows the centre sample")
	}
}

func TestComposeDrawsRings(t *testing.T) {
	c := mustCompositor(t, 1)
	black := color.RGBA{0, 0, 0, 0xff}
	out := c.Compose(solid(11, 11, black))
	h := c.Hotspot()

	// inside the rings the sample is untouched
	if got := out.RGBAAt(h.X+100, h.Y); got != black {
		t.Fatalf("dx=100 = %v, want plain sample %v", got, black)
	}

	// the 4px inner ring is half-transparent white over the sample
	for _, dx := range []int{105, 106, 107} {
		got := out.RGBAAt(h.X+dx, h.Y)
		if got.A != 0xff || got.R != got.G || got.G != got.B || got.R < 0x78 || got.R > 0x88 {
			t.Fatalf("dx=%d = %v, want opaque mid grey", dx, got)
		}
	}

	// beyond the outer ring only the drop shadow remains
	edge := c.Geometry().Outer() - h.X
	for dx := 110; dx < edge; dx++ {
		got := out.RGBAAt(h.X+dx, h.Y)
		if got.R != 0 || got.G != 0 || got.B != 0 || got.A > 0x4d {
			t.Fatalf("dx=%d = %v, want shadow only", dx, got)
		}
	}
}
