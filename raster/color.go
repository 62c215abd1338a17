/*
Package raster converts decoded images into the flat byte payloads that
get embedded into generated source files.
*/
package raster

import "fmt"

// Color selects the output pixel encoding.
type Color int

const (
	// Gray8 is one luma byte per pixel.
	Gray8 Color = iota
	// RGB8 is three bytes per pixel.
	RGB8
	// RGB16 is three 16-bit channel values per pixel.
	RGB16
	// WB1 is one bit per pixel, packed eight pixels per byte.
	WB1
	// RLE is run-length encoded black and white.
	RLE
	// SSD1306 is the page layout used by SSD1306 OLED controllers.
	SSD1306
	// Pal8 is a quantized palette followed by one index byte per pixel.
	Pal8
)

var colorNames = map[Color]string{
	Gray8:   "gray8",
	RGB8:    "rgb8",
	RGB16:   "rgb16",
	WB1:     "wb1",
	RLE:     "rle",
	SSD1306: "ssd1306",
	Pal8:    "pal8",
}

func (c Color) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// ParseColor maps a command line value to a Color.
func ParseColor(s string) (Color, error) {
	for c, name := range colorNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("raster: unknown color type %q", s)
}

// PixelSize returns the number of payload bytes per emitted unit.
func (c Color) PixelSize() int {
	switch c {
	case RGB8:
		return 3
	case RGB16:
		return 6
	default:
		return 1
	}
}

// WidthDelimiter returns how many pixels share one emitted unit; it is
// the divisor applied to the image width in the generated length
// constants.
func (c Color) WidthDelimiter() int {
	switch c {
	case WB1, SSD1306:
		return 8
	default:
		return 1
	}
}
