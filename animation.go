package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/example/screenpicker/internal/picker"
	"github.com/example/screenpicker/internal/popup"
)

// PickAnimation shrinks a circle of the picked color from the lens radius
// down to the crosshair block, cross-fading from the magnified pixels.
type PickAnimation struct {
	at       image.Point
	color    color.RGBA
	from, to float64
	src      image.Image
	sample   *ebiten.Image
	timeline *popup.Timeline
}

func NewPickAnimation(a picker.Animation, done func()) *PickAnimation {
	return &PickAnimation{
		at:       a.At,
		color:    a.Color,
		from:     float64(a.Radius),
		to:       float64(a.Block) / 2,
		src:      a.Sample,
		timeline: popup.NewTimeline(AnimFrames, done),
	}
}

// Update advances one tick. It returns false once the animation is over;
// the completion callback has run by then.
func (pa *PickAnimation) Update() bool {
	if pa.timeline.Step() {
		return true
	}
	if pa.sample != nil {
		pa.sample.Deallocate()
		pa.sample = nil
	}
	return false
}

func (pa *PickAnimation) Draw(screen *ebiten.Image) {
	if pa.timeline.Finished() {
		return
	}
	p := popup.EaseOut(pa.timeline.Progress())
	r := popup.Lerp(pa.from, pa.to, p)
	cx, cy := float32(pa.at.X), float32(pa.at.Y)

	if pa.src != nil {
		if pa.sample == nil {
			pa.sample = ebiten.NewImageFromImage(pa.src)
		}
		// inscribed square of the circle
		side := r * math.Sqrt2
		sw := float64(pa.sample.Bounds().Dx())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(side/sw, side/sw)
		op.GeoM.Translate(float64(cx)-side/2, float64(cy)-side/2)
		op.ColorScale.ScaleAlpha(float32(1 - p))
		screen.DrawImage(pa.sample, op)
	}

	fill := color.NRGBA{R: pa.color.R, G: pa.color.G, B: pa.color.B, A: uint8(255 * math.Min(1, 0.4+p))}
	vector.DrawFilledCircle(screen, cx, cy, float32(r), fill, true)
	vector.StrokeCircle(screen, cx, cy, float32(r), AnimRingWidth, ColorAnimRing, true)
}
