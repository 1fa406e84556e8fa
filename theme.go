package main

import "image/color"

// Color Palette
var (
	ColorText          = color.White                        // Standard text
	ColorTextDim       = color.RGBA{0xaa, 0xaa, 0xb4, 0xff} // Hex value next to the swatch
	ColorMenuBg        = color.RGBA{0x10, 0x10, 0x12, 0xf0} // Format menu background
	ColorMenuBorder    = color.RGBA{0x44, 0x44, 0x50, 0xff} // Format menu border
	ColorMenuHighlight = color.RGBA{0x33, 0x55, 0xff, 0xff} // Format menu hover highlight
	ColorMenuCurrent   = color.RGBA{0x66, 0x88, 0xff, 0xff} // Marker for the stored format
	ColorSwatchBorder  = color.RGBA{0xff, 0xff, 0xff, 0xcc} // Frame around the color swatch
	ColorAnimRing      = color.RGBA{0xff, 0xff, 0xff, 0x80} // Ring around the shrinking circle
)

// Layout Constants, in logical pixels before the device scale is applied.
const (
	MenuWidth        = 180
	MenuItemHeight   = 24
	MenuPadding      = 4
	MenuBorderWidth  = 2
	MenuInnerPadding = 6
	MenuMarkerSize   = 6

	AnimFrames    = 12
	AnimRingWidth = 2
)
