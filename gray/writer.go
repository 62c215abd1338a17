package gray

import (
	"image"
	"image/color"
	"io"
)

func luma(c color.Color) byte {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

// Encode writes the Image m to w as a raw grayscale buffer. Colors are
// converted to 8-bit luma values first if necessary.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()

	// Pix of a full-width sub-image can run past the last row, so the
	// write is capped at the band's own size.
	if gm, ok := m.(*image.Gray); ok && gm.Stride == b.Dx() {
		_, err := w.Write(gm.Pix[:b.Dx()*b.Dy()])
		return err
	}

	row := make([]byte, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			row[x-b.Min.X] = luma(m.At(x, y))
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
