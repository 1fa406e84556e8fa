// Package lens renders the magnified circular preview that follows the cursor.
package lens

import (
	"fmt"
	"image"
	"math"
)

// Logical sizes, before the device scale factor is applied.
const (
	DefaultDiameter   = 220
	DefaultShadow     = 8
	DefaultSampleSize = 11
	DefaultBlock      = 20
)

// Geometry describes the lens layout. Diameter, Shadow and Block are logical
// pixels and get multiplied by Scale; SampleSize is a count of screen pixels.
type Geometry struct {
	Diameter   int
	Shadow     int
	SampleSize int
	Block      int
	Scale      float64
}

// DefaultGeometry returns the stock 220px lens over an 11x11 sample.
func DefaultGeometry(scale float64) Geometry {
	if scale <= 0 {
		scale = 1
	}
	return Geometry{
		Diameter:   DefaultDiameter,
		Shadow:     DefaultShadow,
		SampleSize: DefaultSampleSize,
		Block:      DefaultBlock,
		Scale:      scale,
	}
}

func (g Geometry) px(v int) int {
	return int(math.Round(float64(v) * g.Scale))
}

// Inner is the device-pixel diameter of the magnified circle.
func (g Geometry) Inner() int { return g.px(g.Diameter) }

// Offset is the shadow margin around the circle in device pixels.
func (g Geometry) Offset() int { return g.px(g.Shadow) }

// Outer is the edge length of the composited lens image.
func (g Geometry) Outer() int { return g.Inner() + 2*g.Offset() }

// BlockSize is the device-pixel edge of the crosshair box.
func (g Geometry) BlockSize() int { return g.px(g.Block) }

// CaptureRect returns the SampleSize square centered on (x, y).
func (g Geometry) CaptureRect(x, y int) image.Rectangle {
	half := g.SampleSize / 2
	return image.Rect(x-half, y-half, x-half+g.SampleSize, y-half+g.SampleSize)
}

// Validate reports layouts that cannot produce a magnified preview.
func (g Geometry) Validate() error {
	if g.Scale <= 0 {
		return fmt.Errorf("lens: scale must be positive, got %v", g.Scale)
	}
	if g.SampleSize <= 0 {
		return fmt.Errorf("lens: sample size must be positive, got %d", g.SampleSize)
	}
	if g.Offset() < 1 {
		return fmt.Errorf("lens: shadow margin must be at least one device pixel")
	}
	if g.SampleSize >= g.Inner() {
		return fmt.Errorf("lens: sample %dpx must be smaller than lens %dpx", g.SampleSize, g.Inner())
	}
	if g.BlockSize()+2 > g.Inner() {
		return fmt.Errorf("lens: crosshair block %dpx does not fit lens %dpx", g.BlockSize(), g.Inner())
	}
	return nil
}
