package capture

import (
	"errors"
	"fmt"
	"image"
)

// Source is anything that can hand out a full-screen image.
type Source interface {
	GrabScreen() (*image.RGBA, error)
}

// Snapshot serves every grab from one frozen image of the screen.
//
// The overlay paints the lens inside its own window rather than as a real
// cursor, so a live grab would read back the lens itself. Freezing the
// desktop before the window appears keeps samples clean, and the overlay shows
// the same frozen image underneath so what the user sees is what gets picked.
type Snapshot struct {
	img *image.RGBA
}

// Freeze grabs src once.
func Freeze(src Source) (*Snapshot, error) {
	img, err := src.GrabScreen()
	if err != nil {
		return nil, fmt.Errorf("freeze screen: %w", err)
	}
	return FromImage(img), nil
}

// FromImage wraps an existing image; it is translated to the origin and
// copied so later changes to img are not observed.
func FromImage(img image.Image) *Snapshot {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			rgba.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return &Snapshot{img: rgba}
}

// Image returns the frozen screen. Callers must not modify it.
func (s *Snapshot) Image() *image.RGBA { return s.img }

func (s *Snapshot) Bounds() image.Rectangle { return s.img.Bounds() }

// Grab returns a copy of r. r must lie inside Bounds.
func (s *Snapshot) Grab(r image.Rectangle) (*image.RGBA, error) {
	if r.Empty() || !r.In(s.img.Bounds()) {
		return nil, errors.New("capture: region " + r.String() + " outside " + s.img.Bounds().String())
	}
	return clone(s.img, r), nil
}

// GrabScreen returns a copy of the whole snapshot.
func (s *Snapshot) GrabScreen() (*image.RGBA, error) {
	return clone(s.img, s.img.Bounds()), nil
}
