package popup

import "image"

// MenuLayout is the geometry of a vertical menu: a header row followed by
// Items rows of ItemHeight, all Width wide, framed by Padding on each side.
type MenuLayout struct {
	X, Y       int
	Width      int
	Header     int
	ItemHeight int
	Items      int
	Padding    int
}

// Bounds is the full menu rectangle including padding.
func (l MenuLayout) Bounds() image.Rectangle {
	return image.Rect(
		l.X-l.Padding,
		l.Y-l.Padding,
		l.X+l.Width+l.Padding,
		l.Y+l.Header+l.Items*l.ItemHeight+l.Padding,
	)
}

// HeaderRect is the area above the first item.
func (l MenuLayout) HeaderRect() image.Rectangle {
	return image.Rect(l.X, l.Y, l.X+l.Width, l.Y+l.Header)
}

// ItemRect is the row of item i.
func (l MenuLayout) ItemRect(i int) image.Rectangle {
	top := l.Y + l.Header + i*l.ItemHeight
	return image.Rect(l.X, top, l.X+l.Width, top+l.ItemHeight)
}

// ItemAt returns the item under (x, y), or -1.
func (l MenuLayout) ItemAt(x, y int) int {
	if x < l.X || x >= l.X+l.Width {
		return -1
	}
	top := l.Y + l.Header
	if y < top || y >= top+l.Items*l.ItemHeight {
		return -1
	}
	return (y - top) / l.ItemHeight
}

// Contains reports whether (x, y) is anywhere on the menu, padding included.
func (l MenuLayout) Contains(x, y int) bool {
	return image.Pt(x, y).In(l.Bounds())
}

// Fit moves the menu so it lies inside screen, preferring to keep its
// top-left corner where it was.
func (l MenuLayout) Fit(screen image.Rectangle) MenuLayout {
	b := l.Bounds()
	if b.Max.X > screen.Max.X {
		l.X -= b.Max.X - screen.Max.X
	}
	if b.Max.Y > screen.Max.Y {
		l.Y -= b.Max.Y - screen.Max.Y
	}
	b = l.Bounds()
	if b.Min.X < screen.Min.X {
		l.X += screen.Min.X - b.Min.X
	}
	if b.Min.Y < screen.Min.Y {
		l.Y += screen.Min.Y - b.Min.Y
	}
	return l
}
