package raster

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/nrot/img-to-array/gray"
)

const (
	// DefaultBlackLevel is the luma threshold separating black from
	// white in the 1-bit encodings.
	DefaultBlackLevel = 128

	maxRun       = 128
	maxPalette   = 256
	rleSizeLimit = 1 << 16
)

var errRLETooBig = errors.New("raster: run-length payload exceeds 16-bit length prefix")

// Options tunes the encoders. The zero value is usable: black level
// defaults to DefaultBlackLevel, byte order to little endian and the
// palette to its maximum size.
type Options struct {
	// BlackLevel is the luma value above which a pixel counts as
	// white in the WB1, RLE and SSD1306 encodings. It is a pointer
	// so an explicit threshold of zero is distinguishable from
	// unset.
	BlackLevel *uint8
	// ByteOrder lays out the 16-bit channel values of RGB16.
	ByteOrder binary.ByteOrder
	// MaxColors caps the Pal8 palette size.
	MaxColors int
}

func (o Options) blackLevel() uint8 {
	if o.BlackLevel == nil {
		return DefaultBlackLevel
	}
	return *o.BlackLevel
}

func (o Options) byteOrder() binary.ByteOrder {
	if o.ByteOrder == nil {
		return binary.LittleEndian
	}
	return o.ByteOrder
}

func (o Options) maxColors() int {
	if o.MaxColors < 2 || o.MaxColors > maxPalette {
		return maxPalette
	}
	return o.MaxColors
}

// Result is the outcome of encoding an image.
type Result struct {
	// Data is the payload to embed.
	Data []byte
	// PaletteColors is the number of palette entries at the front of
	// Data; it is zero for every encoding except Pal8.
	PaletteColors int
}

func luma(c color.Color) byte {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

func lumaPlane(m image.Image) []byte {
	b := m.Bounds()
	p := make([]byte, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p = append(p, luma(m.At(x, y)))
		}
	}
	return p
}

// Encode converts m into the flat payload for the given encoding.
func Encode(m image.Image, c Color, o Options) (*Result, error) {
	switch c {
	case Gray8:
		b := new(bytes.Buffer)
		if err := gray.Encode(b, m); err != nil {
			return nil, err
		}
		return &Result{Data: b.Bytes()}, nil
	case RGB8:
		return encodeRGB8(m), nil
	case RGB16:
		return encodeRGB16(m, o.byteOrder()), nil
	case WB1:
		return encodeWB1(m, o.blackLevel()), nil
	case RLE:
		return encodeRLE(m, o.blackLevel())
	case SSD1306:
		return encodeSSD1306(m, o.blackLevel()), nil
	case Pal8:
		return encodePal8(m, o.maxColors())
	default:
		return nil, fmt.Errorf("raster: unknown color type %q", c)
	}
}

func encodeRGB8(m image.Image) *Result {
	b := m.Bounds()
	p := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := m.At(x, y).RGBA()
			p = append(p, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
	}
	return &Result{Data: p}
}

func encodeRGB16(m image.Image, order binary.ByteOrder) *Result {
	b := m.Bounds()
	p := make([]byte, 0, b.Dx()*b.Dy()*6)
	var tmp [2]byte
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := m.At(x, y).RGBA()
			for _, v := range [3]uint32{r, g, bl} {
				order.PutUint16(tmp[:], uint16(v))
				p = append(p, tmp[0], tmp[1])
			}
		}
	}
	return &Result{Data: p}
}

// encodeWB1 packs the thresholded pixel stream eight per byte, most
// significant bit first, crossing row boundaries like the width
// delimiter arithmetic in the generated constants expects.
func encodeWB1(m image.Image, black uint8) *Result {
	plane := lumaPlane(m)
	p := make([]byte, 0, (len(plane)+7)/8)

	var acc byte
	var n int
	for _, v := range plane {
		acc <<= 1
		if v > black {
			acc |= 1
		}
		if n++; n == 8 {
			p = append(p, acc)
			acc, n = 0, 0
		}
	}
	if n > 0 {
		p = append(p, acc<<(8-n))
	}

	return &Result{Data: p}
}

// encodeRLE emits runs of thresholded pixels. Each run byte carries the
// color in the high bit and the run length minus one in the low seven
// bits, so a run covers up to 128 pixels. The payload is prefixed with
// its length as a little-endian 16-bit value.
func encodeRLE(m image.Image, black uint8) (*Result, error) {
	plane := lumaPlane(m)
	if len(plane) == 0 {
		return &Result{Data: []byte{0, 0}}, nil
	}

	var runs []byte
	flush := func(lit bool, n int) {
		b := byte(n - 1)
		if lit {
			b |= 0x80
		}
		runs = append(runs, b)
	}

	lit := plane[0] > black
	n := 0
	for _, v := range plane {
		c := v > black
		if c == lit && n < maxRun {
			n++
			continue
		}
		flush(lit, n)
		lit, n = c, 1
	}
	flush(lit, n)

	if len(runs) >= rleSizeLimit {
		return nil, errRLETooBig
	}

	p := make([]byte, 2, 2+len(runs))
	binary.LittleEndian.PutUint16(p, uint16(len(runs)))

	return &Result{Data: append(p, runs...)}, nil
}

// encodeSSD1306 lays pixels out in pages of eight rows where each
// payload byte is one column of a page, least significant bit at the
// top. Bits past the image height in the final page stay zero.
func encodeSSD1306(m image.Image, black uint8) *Result {
	b := m.Bounds()
	width, height := b.Dx(), b.Dy()
	pages := (height + 7) / 8

	p := make([]byte, pages*width)
	for page := 0; page < pages; page++ {
		for x := 0; x < width; x++ {
			var acc byte
			for bit := 0; bit < 8; bit++ {
				y := page*8 + bit
				if y >= height {
					break
				}
				if luma(m.At(b.Min.X+x, b.Min.Y+y)) > black {
					acc |= 1 << bit
				}
			}
			p[page*width+x] = acc
		}
	}

	return &Result{Data: p}
}

// encodePal8 reduces the image to at most maxColors colors and emits
// the palette as packed RGB triplets followed by one palette index per
// pixel.
func encodePal8(m image.Image, maxColors int) (*Result, error) {
	b := m.Bounds()

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > maxColors {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	p := make([]byte, 0, len(pm.Palette)*3+b.Dx()*b.Dy())
	for _, c := range pm.Palette {
		r, g, bl, _ := c.RGBA()
		p = append(p, byte(r>>8), byte(g>>8), byte(bl>>8))
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p = append(p, pm.ColorIndexAt(x, y))
		}
	}

	return &Result{Data: p, PaletteColors: len(pm.Palette)}, nil
}
