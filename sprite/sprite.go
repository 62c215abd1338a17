/*
Package sprite holds the sample image shipped with the tool as an
embedded asset: a 16 by 24 pixel grayscale sprite stored as one byte per
pixel in row-major order, the same layout the convert command emits.

The buffer is initialized at program start and never written afterwards,
so it may be read from any number of goroutines without synchronization.
*/
package sprite

import "image"

// At returns the intensity of the pixel at (x, y). Both coordinates are
// zero-based; x must be in [0, Width) and y in [0, Height).
func At(x, y int) byte {
	return Image[y*Width+x]
}

// GrayImage returns the sprite as an image.Gray. The pixel data is
// copied so the caller cannot mutate the embedded asset.
func GrayImage() *image.Gray {
	m := image.NewGray(image.Rect(0, 0, Width, Height))
	copy(m.Pix, Image[:])
	return m
}
