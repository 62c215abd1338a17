package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensions(t *testing.T) {
	assert.Equal(t, 384, Length)
	assert.Equal(t, Width*Height*PixelSize, Length)
	assert.Equal(t, Length, len(Image))
}

func TestKnownPixels(t *testing.T) {
	tables := []struct {
		x, y  int
		value byte
	}{
		{7, 0, 0x95},
		{0, 8, 0xfb},
		{15, 23, 0xb1},
	}

	for _, table := range tables {
		assert.Equal(t, table.value, At(table.x, table.y))
		assert.Equal(t, table.value, Image[table.y*Width+table.x])
	}
}

func TestRereadStable(t *testing.T) {
	for i := range Image {
		assert.Equal(t, Image[i], Image[i])
	}
	assert.Equal(t, byte(0x95), Image[7])
	assert.Equal(t, byte(0x95), Image[7])
}

func TestGrayImage(t *testing.T) {
	m := GrayImage()

	assert.Equal(t, Width, m.Bounds().Dx())
	assert.Equal(t, Height, m.Bounds().Dy())
	assert.Equal(t, Image[:], m.Pix)

	// Mutating the copy must not touch the asset.
	m.Pix[7] = 0x00
	assert.Equal(t, byte(0x95), Image[7])
}
