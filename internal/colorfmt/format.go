// Package colorfmt turns a picked color into the text copied to the clipboard.
package colorfmt

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Format names a clipboard representation. The string value is what gets
// stored under the color_type setting.
type Format string

const (
	Hex       Format = "HEX"
	RGB       Format = "RGB"
	RGBA      Format = "RGBA"
	FloatRGB  Format = "FLOAT_RGB"
	FloatRGBA Format = "FLOAT_RGBA"
	HSV       Format = "HSV"
	HSL       Format = "HSL"
)

// Default is used when no preference is stored or the stored one is unknown.
const Default = Hex

var all = []Format{Hex, RGB, RGBA, FloatRGB, FloatRGBA, HSV, HSL}

var labels = map[Format]string{
	Hex:       "HEX",
	RGB:       "RGB",
	RGBA:      "RGBA",
	FloatRGB:  "Float RGB",
	FloatRGBA: "Float RGBA",
	HSV:       "HSV",
	HSL:       "HSL",
}

// All returns every format in menu order.
func All() []Format {
	return append([]Format(nil), all...)
}

// Label is the human readable menu text.
func (f Format) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	_, ok := labels[f]
	return ok
}

// Parse maps a stored setting to a Format, ignoring case and surrounding
// space. Unknown names yield Default and false.
func Parse(s string) (Format, bool) {
	f := Format(strings.ToUpper(strings.TrimSpace(s)))
	f = Format(strings.ReplaceAll(string(f), " ", "_"))
	if f.Valid() {
		return f, true
	}
	return Default, false
}

// ToHex renders c as #RRGGBB. Alpha is ignored.
func ToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Encode renders c in format f; unknown formats fall back to HEX.
func Encode(c color.RGBA, f Format) string {
	switch f {
	case RGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case RGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, 1)", c.R, c.G, c.B)
	case FloatRGB:
		return fmt.Sprintf("(%.3f, %.3f, %.3f)", unit(c.R), unit(c.G), unit(c.B))
	case FloatRGBA:
		return fmt.Sprintf("(%.3f, %.3f, %.3f, 1)", unit(c.R), unit(c.G), unit(c.B))
	case HSV:
		h, s, v := toColorful(c).Hsv()
		return fmt.Sprintf("hsv(%d, %d%%, %d%%)", degrees(h), percent(s), percent(v))
	case HSL:
		h, s, l := toColorful(c).Hsl()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", degrees(h), percent(s), percent(l))
	default:
		return ToHex(c)
	}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: unit(c.R), G: unit(c.G), B: unit(c.B)}
}

func unit(v uint8) float64 {
	return float64(v) / 255
}

func degrees(h float64) int {
	d := int(math.Round(h))
	if d >= 360 {
		d -= 360
	}
	return d
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}
