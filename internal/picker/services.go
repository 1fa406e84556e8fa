package picker

import (
	"image"
	"image/color"

	"github.com/example/screenpicker/internal/colorfmt"
)

// Capturer reads pixels from the screen. Coordinates are screen-local with
// the origin at the top-left of the picked display.
type Capturer interface {
	Bounds() image.Rectangle
	Grab(r image.Rectangle) (*image.RGBA, error)
	GrabScreen() (*image.RGBA, error)
}

// Pointer changes what is drawn for the mouse pointer.
type Pointer interface {
	SetPointerImage(img image.Image, hotspot image.Point)
	ResetPointer()
}

// CursorSource reports where the pointer is now.
type CursorSource interface {
	CursorPosition() (x, y int)
}

// Window is the overlay surface.
type Window interface {
	Show()
	Visible() bool
}

// Deliverer hands a picked color to the user, normally via the clipboard.
type Deliverer interface {
	DeliverColor(c color.RGBA, f colorfmt.Format) error
}

// Notifier tells the program that started a session which color was picked.
type Notifier interface {
	ColorPicked(sessionID, hex string) error
}

// Options reads user preferences.
type Options interface {
	Option(key, def string) string
}

// Animation is the transient effect played before the format menu.
type Animation struct {
	At     image.Point
	Color  color.RGBA
	Sample image.Image
	// Radius is where the effect starts; it shrinks towards Block/2.
	Radius int
	Block  int
}

// MenuRequest places the format menu.
type MenuRequest struct {
	At    image.Point
	Size  int
	Color color.RGBA
}

// Popup owns the animation and the format menu. PlayAnimation must call done
// once, on the UI loop, when the animation has finished.
type Popup interface {
	PlayAnimation(a Animation, done func())
	ShowMenu(m MenuRequest)
}
