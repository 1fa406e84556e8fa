// Package capture grabs pixels from the screen.
package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
	xdraw "golang.org/x/image/draw"
)

var ErrNoDisplay = errors.New("capture: no active display")

// Screen reads live pixels from one display through kbinani/screenshot.
type Screen struct {
	display int
	bounds  image.Rectangle
}

// NewScreen binds to the display with the given index. Coordinates used with
// Grab are relative to that display's top-left corner.
func NewScreen(display int) (*Screen, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, ErrNoDisplay
	}
	if display < 0 || display >= n {
		return nil, fmt.Errorf("capture: display %d out of range (have %d)", display, n)
	}
	return &Screen{display: display, bounds: screenshot.GetDisplayBounds(display)}, nil
}

// Bounds returns the display rectangle translated to the origin.
func (s *Screen) Bounds() image.Rectangle {
	return s.bounds.Sub(s.bounds.Min)
}

// Origin is the display's top-left corner on the virtual desktop.
func (s *Screen) Origin() image.Point { return s.bounds.Min }

// Grab captures r, given in display-local coordinates. The returned image
// has r's bounds.
func (s *Screen) Grab(r image.Rectangle) (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(r.Add(s.bounds.Min))
	if err != nil {
		return nil, fmt.Errorf("capture %v: %w", r, err)
	}
	return rebase(img, r.Min), nil
}

// GrabScreen captures the whole display.
func (s *Screen) GrabScreen() (*image.RGBA, error) {
	return s.Grab(s.Bounds())
}

// rebase moves img so its top-left corner lands on at.
func rebase(img *image.RGBA, at image.Point) *image.RGBA {
	if img.Rect.Min == at {
		return img
	}
	out := *img
	out.Rect = image.Rectangle{Min: at, Max: at.Add(img.Rect.Size())}
	return &out
}

// clone returns a copy of the r portion of src that shares no memory with it.
func clone(src *image.RGBA, r image.Rectangle) *image.RGBA {
	out := image.NewRGBA(r)
	xdraw.Draw(out, r, src, r.Min, xdraw.Src)
	return out
}
