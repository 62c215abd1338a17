package imgarray

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nrot/img-to-array/emit"
	"github.com/nrot/img-to-array/manifest"
	"github.com/nrot/img-to-array/raster"
)

// ResizeOptions scales the image before encoding. A zero width or
// height keeps the source dimension.
type ResizeOptions struct {
	Width  int
	Height int
	Mode   raster.ResizeMode
	Filter raster.Filter
}

// Options controls a conversion.
type Options struct {
	Color    raster.Color
	Lang     emit.Lang
	View     emit.View
	Symbol   string
	Guard    string
	Package  string
	Includes []string

	Invert bool
	Blur   float64
	// BlackLevel leaves the encoder default in place when nil; an
	// explicit zero is honored.
	BlackLevel *uint8
	BigEndian  bool
	Resize     *ResizeOptions

	// Compress wraps the payload in a zstd frame and emits the
	// uncompressed size as an extra constant.
	Compress bool
}

func (o Options) byteOrder() binary.ByteOrder {
	if o.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Convert reads the image at input and writes it to output as source
// code. It returns a description of the generated asset, or nil if the
// input was skipped because the index already has it.
func (c *Converter) Convert(input, output string, o Options) (*Asset, error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h := sha1.New()
	m, _, err := image.Decode(io.TeeReader(f, h))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", input, err)
	}
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}
	sha := fmt.Sprintf("%X", h.Sum(nil))

	if c.db != nil {
		seen, err := c.db.Seen(sha)
		if err != nil {
			return nil, err
		}
		if seen {
			c.logger.Printf("Skipping \"%s\", already generated\n", input)
			return nil, nil
		}
	}

	if o.Invert {
		m = raster.Invert(m)
	}
	if o.Blur > 0 {
		c.logger.Printf("Blur by %.2f\n", o.Blur)
		m = raster.Blur(m, o.Blur)
	}
	if o.Resize != nil {
		m = raster.Resize(m, o.Resize.Width, o.Resize.Height, o.Resize.Mode, o.Resize.Filter)
	}

	res, err := raster.Encode(m, o.Color, raster.Options{
		BlackLevel: o.BlackLevel,
		ByteOrder:  o.byteOrder(),
	})
	if err != nil {
		return nil, err
	}

	payload := res.Data

	var extra []emit.Const
	if res.PaletteColors > 0 {
		extra = append(extra, emit.Const{Name: "PALETTE_COLORS", Value: res.PaletteColors})
	}
	if o.Compress {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		extra = append(extra, emit.Const{Name: "RAW_LENGTH", Value: len(payload)})
		payload = enc.EncodeAll(payload, nil)
		enc.Close()
	}

	symbol := o.Symbol
	if symbol == "" {
		symbol = emit.Symbol(input)
	}

	b := m.Bounds()
	src := &emit.Source{
		Symbol:         symbol,
		Guard:          o.Guard,
		Includes:       o.Includes,
		Package:        o.Package,
		Width:          b.Dx(),
		Height:         b.Dy(),
		WidthDelimiter: o.Color.WidthDelimiter(),
		PixelSize:      o.Color.PixelSize(),
		Extra:          extra,
		Payload:        payload,
		View:           o.View,
	}

	out, err := os.Create(output)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	if err := src.Render(out, o.Lang); err != nil {
		return nil, err
	}

	asset := &Asset{
		Symbol: symbol,
		Entry: manifest.Entry{
			Source: input,
			Output: output,
			SHA1:   sha,
			Color:  o.Color.String(),
			Width:  b.Dx(),
			Height: b.Dy(),
			Length: len(payload),
		},
	}

	if c.db != nil {
		if err := c.db.Record(asset.Symbol, asset.Entry); err != nil {
			return nil, err
		}
	}

	return asset, nil
}
