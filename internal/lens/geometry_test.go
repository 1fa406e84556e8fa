package lens

import (
	"image"
	"testing"
)

func TestDefaultGeometrySizes(t *testing.T) {
	tests := []struct {
		scale             float64
		inner, outer, blk int
	}{
		{1, 220, 236, 20},
		{2, 440, 472, 40},
		{1.5, 330, 354, 30},
		{0, 220, 236, 20},
	}
	for _, tt := range tests {
		g := DefaultGeometry(tt.scale)
		if g.Inner() != tt.inner || g.Outer() != tt.outer || g.BlockSize() != tt.blk {
			t.Errorf("scale %v: inner=%d outer=%d block=%d, want %d/%d/%d",
				tt.scale, g.Inner(), g.Outer(), g.BlockSize(), tt.inner, tt.outer, tt.blk)
		}
		if err := g.Validate(); err != nil {
			t.Errorf("scale %v: Validate: %v", tt.scale, err)
		}
	}
}

func TestCaptureRectIsCentered(t *testing.T) {
	g := DefaultGeometry(1)
	r := g.CaptureRect(100, 100)
	if want := image.Rect(95, 95, 106, 106); r != want {
		t.Fatalf("CaptureRect = %v, want %v", r, want)
	}
	if c := r.Min.Add(image.Pt(g.SampleSize/2, g.SampleSize/2)); c != image.Pt(100, 100) {
		t.Fatalf("centre of capture = %v", c)
	}

	r = g.CaptureRect(0, 0)
	if r.Min != image.Pt(-5, -5) {
		t.Fatalf("CaptureRect at origin = %v, want unclamped", r)
	}
}

func TestValidateRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Geometry)
	}{
		{"zero scale", func(g *Geometry) { g.Scale = 0 }},
		{"no sample", func(g *Geometry) { g.SampleSize = 0 }},
		{"sample as large as lens", func(g *Geometry) { g.SampleSize = g.Inner() }},
		{"no shadow", func(g *Geometry) { g.Shadow = 0 }},
		{"block too large", func(g *Geometry) { g.Block = g.Diameter }},
	}
	for _, tt := range tests {
		g := DefaultGeometry(1)
		tt.edit(&g)
		if err := g.Validate(); err == nil {
			t.Errorf("%s: Validate accepted %+v", tt.name, g)
		}
		if _, err := NewCompositor(g); err == nil {
			t.Errorf("%s: NewCompositor accepted %+v", tt.name, g)
		}
	}
}
