package raster

import (
	"image"
	"math"
)

// Invert returns a copy of m with every color channel inverted. Alpha
// is left alone.
func Invert(m image.Image) image.Image {
	b := m.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := m.At(x, y).RGBA()
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = byte(0xff - r>>8)
			dst.Pix[i+1] = byte(0xff - g>>8)
			dst.Pix[i+2] = byte(0xff - bl>>8)
			dst.Pix[i+3] = byte(a >> 8)
		}
	}
	return dst
}

func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	k := make([]float64, 2*radius+1)
	var sum float64
	for i := range k {
		d := float64(i - radius)
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// Blur returns a Gaussian blurred copy of m. A sigma of zero or less
// returns m unchanged.
func Blur(m image.Image, sigma float64) image.Image {
	if sigma <= 0 {
		return m
	}

	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	k := gaussianKernel(sigma)
	radius := len(k) / 2

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := m.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := src.PixOffset(x, y)
			src.Pix[i+0] = byte(r >> 8)
			src.Pix[i+1] = byte(g >> 8)
			src.Pix[i+2] = byte(bl >> 8)
			src.Pix[i+3] = byte(a >> 8)
		}
	}

	clamp := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v >= max {
			return max - 1
		}
		return v
	}

	// Horizontal then vertical pass with the same separable kernel.
	tmp := image.NewRGBA(src.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc [4]float64
			for j, kv := range k {
				i := src.PixOffset(clamp(x+j-radius, w), y)
				for c := 0; c < 4; c++ {
					acc[c] += kv * float64(src.Pix[i+c])
				}
			}
			i := tmp.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				tmp.Pix[i+c] = byte(math.Round(acc[c]))
			}
		}
	}

	dst := image.NewRGBA(src.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc [4]float64
			for j, kv := range k {
				i := tmp.PixOffset(x, clamp(y+j-radius, h))
				for c := 0; c < 4; c++ {
					acc[c] += kv * float64(tmp.Pix[i+c])
				}
			}
			i := dst.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				dst.Pix[i+c] = byte(math.Round(acc[c]))
			}
		}
	}

	return dst
}
