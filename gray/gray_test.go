package gray

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrot/img-to-array/sprite"
)

func TestEncode(t *testing.T) {
	b := new(bytes.Buffer)

	assert.Nil(t, Encode(b, sprite.GrayImage()))
	assert.Equal(t, sprite.Length, b.Len())
	assert.Equal(t, sprite.Image[:], b.Bytes())
}

func TestEncodeConverts(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 2, 1))
	m.Set(0, 0, color.RGBA{0xff, 0xff, 0xff, 0xff})
	m.Set(1, 0, color.RGBA{0x00, 0x00, 0x00, 0xff})

	b := new(bytes.Buffer)
	assert.Nil(t, Encode(b, m))
	assert.Equal(t, []byte{0xff, 0x00}, b.Bytes())
}

func TestEncodeSubImage(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 4, 6))
	for i := range m.Pix {
		m.Pix[i] = byte(i)
	}

	// A full-width band keeps the parent's Pix slice beyond its own
	// last row; only the band's bytes may be written.
	band := m.SubImage(image.Rect(0, 2, 4, 4)).(*image.Gray)

	b := new(bytes.Buffer)
	assert.Nil(t, Encode(b, band))
	assert.Equal(t, 8, b.Len())
	assert.Equal(t, m.Pix[8:16], b.Bytes())
}

func TestDecode(t *testing.T) {
	m, err := Decode(bytes.NewReader(sprite.Image[:]), sprite.Width, sprite.Height)
	assert.Nil(t, err)

	g := m.(*image.Gray)
	assert.Equal(t, sprite.Width, g.Bounds().Dx())
	assert.Equal(t, sprite.Height, g.Bounds().Dy())
	assert.Equal(t, sprite.Image[:], g.Pix)
}

func TestDecodeNotEnough(t *testing.T) {
	_, err := Decode(bytes.NewReader(sprite.Image[:100]), sprite.Width, sprite.Height)
	assert.Equal(t, errNotEnough, err)
}

func TestDecodeTooMuch(t *testing.T) {
	b := append(append([]byte{}, sprite.Image[:]...), 0x00)
	_, err := Decode(bytes.NewReader(b), sprite.Width, sprite.Height)
	assert.Equal(t, errTooMuch, err)
}

func TestDecodeBadBounds(t *testing.T) {
	_, err := Decode(new(bytes.Buffer), 0, 24)
	assert.Equal(t, errBadBounds, err)
}

func TestRoundTrip(t *testing.T) {
	b := new(bytes.Buffer)
	assert.Nil(t, Encode(b, sprite.GrayImage()))

	m, err := Decode(b, sprite.Width, sprite.Height)
	assert.Nil(t, err)
	assert.Equal(t, sprite.Image[:], m.(*image.Gray).Pix)
}
