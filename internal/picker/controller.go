// Package picker drives the color-picking session: it keeps the magnified
// lens under the cursor up to date and turns clicks into picked colors.
package picker

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/example/screenpicker/internal/colorfmt"
	"github.com/example/screenpicker/internal/lens"
)

// OptionColorType is the setting that selects the clipboard format.
const OptionColorType = "color_type"

var (
	ErrMissingService = errors.New("picker: missing service")
	ErrEmptyScreen    = errors.New("picker: screen has no pixels")
)

// State is the session lifecycle.
type State int

const (
	StateIdle State = iota
	StateActive
	StateCommitted
	StateMenuPending
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateCommitted:
		return "committed"
	case StateMenuPending:
		return "menu-pending"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config wires a Controller to its host. Notifier is optional and is only
// set when the session was started by another program.
type Config struct {
	Geometry lens.Geometry
	Capture  Capturer
	Pointer  Pointer
	Cursor   CursorSource
	Window   Window
	Deliver  Deliverer
	Popup    Popup
	Options  Options
	Notifier Notifier
	Verbose  bool
}

// Controller owns the lens and the pick state. All methods must be called
// from the UI loop.
type Controller struct {
	geom       lens.Geometry
	compositor *lens.Compositor
	debounce   *Debouncer

	capture  Capturer
	pointer  Pointer
	cursor   CursorSource
	window   Window
	deliver  Deliverer
	popup    Popup
	options  Options
	notifier Notifier
	verbose  bool

	state     State
	sessionID string
	pos       image.Point
	color     color.RGBA
	sample    *image.RGBA
	menuOpen  bool
}

func New(cfg Config) (*Controller, error) {
	switch {
	case cfg.Capture == nil:
		return nil, fmt.Errorf("%w: capture", ErrMissingService)
	case cfg.Pointer == nil:
		return nil, fmt.Errorf("%w: pointer", ErrMissingService)
	case cfg.Cursor == nil:
		return nil, fmt.Errorf("%w: cursor", ErrMissingService)
	case cfg.Window == nil:
		return nil, fmt.Errorf("%w: window", ErrMissingService)
	case cfg.Deliver == nil:
		return nil, fmt.Errorf("%w: deliver", ErrMissingService)
	case cfg.Popup == nil:
		return nil, fmt.Errorf("%w: popup", ErrMissingService)
	case cfg.Options == nil:
		return nil, fmt.Errorf("%w: options", ErrMissingService)
	}
	comp, err := lens.NewCompositor(cfg.Geometry)
	if err != nil {
		return nil, err
	}
	return &Controller{
		geom:       cfg.Geometry,
		compositor: comp,
		debounce:   NewDebouncer(RefreshDelay),
		capture:    cfg.Capture,
		pointer:    cfg.Pointer,
		cursor:     cfg.Cursor,
		window:     cfg.Window,
		deliver:    cfg.Deliver,
		popup:      cfg.Popup,
		options:    cfg.Options,
		notifier:   cfg.Notifier,
		verbose:    cfg.Verbose,
	}, nil
}

func (c *Controller) State() State { return c.state }

func (c *Controller) SessionID() string { return c.sessionID }

// Color is the last sampled color.
func (c *Controller) Color() color.RGBA { return c.color }

// Position is where the lens was last drawn.
func (c *Controller) Position() image.Point { return c.pos }

// MenuOpen reports whether the format menu has been requested.
func (c *Controller) MenuOpen() bool { return c.menuOpen }

func (c *Controller) Geometry() lens.Geometry { return c.geom }

func (c *Controller) active() bool {
	return c.state == StateActive && c.window.Visible()
}

// StartSession shows the overlay and draws the first lens right away rather
// than waiting for the debounce.
func (c *Controller) StartSession(id string) error {
	c.sessionID = id
	c.state = StateActive
	c.menuOpen = false
	c.debounce.Stop()
	c.window.Show()
	if c.verbose {
		log.Printf("picker: session %q started", id)
	}
	return c.Refresh()
}

// OnMouseMove restarts the refresh countdown.
func (c *Controller) OnMouseMove(now time.Time) {
	c.debounce.Restart(now)
}

// Tick runs the pending refresh once the cursor has rested long enough.
func (c *Controller) Tick(now time.Time) error {
	if !c.debounce.Fire(now) {
		return nil
	}
	return c.Refresh()
}

// Refresh grabs the pixels around the cursor and installs a new lens as the
// pointer image. It does nothing once the session is frozen or hidden.
func (c *Controller) Refresh() error {
	if !c.active() {
		return nil
	}
	x, y := c.cursor.CursorPosition()
	sample, err := c.grabSample(x, y)
	if err != nil {
		return err
	}
	c.pos = image.Pt(x, y)
	c.sample = sample
	c.pointer.SetPointerImage(c.compositor.Compose(sample), c.compositor.Hotspot())
	if c.verbose {
		log.Printf("picker: lens refreshed at (%d,%d)", x, y)
	}
	return nil
}

// grabSample captures the sample square around (x, y). Parts that fall off
// the screen stay transparent so the centre pixel stays under the crosshair.
func (c *Controller) grabSample(x, y int) (*image.RGBA, error) {
	want := c.geom.CaptureRect(x, y)
	sample := image.NewRGBA(image.Rect(0, 0, want.Dx(), want.Dy()))
	visible := want.Intersect(c.capture.Bounds())
	if visible.Empty() {
		return sample, nil
	}
	img, err := c.capture.Grab(visible)
	if err != nil {
		return nil, fmt.Errorf("grab lens sample: %w", err)
	}
	xdraw.Draw(sample, visible.Sub(want.Min), img, img.Bounds().Min, xdraw.Src)
	return sample, nil
}

// SampleColorAt grabs the whole screen and returns the pixel at (x, y),
// clamped to the screen. Nothing is cached between calls.
func (c *Controller) SampleColorAt(x, y int) (color.RGBA, error) {
	screen, err := c.capture.GrabScreen()
	if err != nil {
		return color.RGBA{}, fmt.Errorf("grab screen: %w", err)
	}
	b := screen.Bounds()
	if b.Empty() {
		return color.RGBA{}, ErrEmptyScreen
	}
	px := screen.RGBAAt(clamp(x, b.Min.X, b.Max.X-1), clamp(y, b.Min.Y, b.Max.Y-1))
	px.A = 0xff
	return px, nil
}

// PrimaryAction commits the color under pt to the clipboard.
func (c *Controller) PrimaryAction(pt image.Point) error {
	if !c.active() {
		return nil
	}
	c.state = StateCommitted
	c.debounce.Stop()
	c.pointer.ResetPointer()

	format, ok := colorfmt.Parse(c.options.Option(OptionColorType, string(colorfmt.Default)))
	if !ok && c.verbose {
		log.Printf("picker: unknown %s setting, using %s", OptionColorType, format)
	}
	col, err := c.SampleColorAt(pt.X, pt.Y)
	if err != nil {
		return err
	}
	c.color = col
	if err := c.deliver.DeliverColor(col, format); err != nil {
		return fmt.Errorf("deliver color: %w", err)
	}
	if c.notifier != nil && c.sessionID != "" {
		if err := c.notifier.ColorPicked(c.sessionID, colorfmt.ToHex(col)); err != nil {
			return fmt.Errorf("notify color picked: %w", err)
		}
	}
	return nil
}

// SecondaryAction freezes the lens, plays the animation at pt and opens the
// format menu once it finishes.
func (c *Controller) SecondaryAction(pt image.Point) error {
	if !c.active() {
		return nil
	}
	c.state = StateMenuPending
	c.debounce.Stop()

	col, err := c.SampleColorAt(pt.X, pt.Y)
	if err != nil {
		return err
	}
	c.color = col

	block := c.geom.BlockSize()
	half := block / 2
	menu := MenuRequest{At: pt.Sub(image.Pt(half, half)), Size: block, Color: col}
	anim := Animation{
		At:     pt,
		Color:  col,
		Radius: c.geom.Inner() / 2,
		Block:  block,
	}
	if c.sample != nil {
		anim.Sample = c.sample
	}

	// the pointer goes back to normal before the animation shows up
	c.pointer.ResetPointer()
	fired := false
	c.popup.PlayAnimation(anim, func() {
		if fired {
			return
		}
		fired = true
		c.menuOpen = true
		c.popup.ShowMenu(menu)
	})
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
