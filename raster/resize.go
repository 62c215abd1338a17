package raster

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ResizeMode selects how the target dimensions are honored.
type ResizeMode int

const (
	// Fit scales preserving aspect ratio so the result fits within
	// the target dimensions.
	Fit ResizeMode = iota
	// Exact scales to exactly the target dimensions.
	Exact
	// Fill scales preserving aspect ratio to cover the target
	// dimensions, cropping the overflow around the center.
	Fill
)

// Filter selects the interpolation kernel.
type Filter int

const (
	Nearest Filter = iota
	ApproxBilinear
	Bilinear
	CatmullRom
)

var modeNames = map[ResizeMode]string{
	Fit:   "fit",
	Exact: "exact",
	Fill:  "fill",
}

var filterNames = map[Filter]string{
	Nearest:        "nearest",
	ApproxBilinear: "approx-bilinear",
	Bilinear:       "bilinear",
	CatmullRom:     "catmull-rom",
}

func (m ResizeMode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func (f Filter) String() string {
	if s, ok := filterNames[f]; ok {
		return s
	}
	return fmt.Sprintf("filter(%d)", int(f))
}

// ParseResizeMode maps a command line value to a ResizeMode.
func ParseResizeMode(s string) (ResizeMode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("raster: unknown resize mode %q", s)
}

// ParseFilter maps a command line value to a Filter.
func ParseFilter(s string) (Filter, error) {
	for f, name := range filterNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("raster: unknown resize filter %q", s)
}

func (f Filter) scaler() draw.Scaler {
	switch f {
	case Nearest:
		return draw.NearestNeighbor
	case ApproxBilinear:
		return draw.ApproxBiLinear
	case Bilinear:
		return draw.BiLinear
	default:
		return draw.CatmullRom
	}
}

// Resize scales m to the target width and height according to mode. A
// zero width or height is substituted with the source dimension.
func Resize(m image.Image, width, height int, mode ResizeMode, f Filter) image.Image {
	src := m.Bounds()
	sw, sh := src.Dx(), src.Dy()

	if width == 0 {
		width = sw
	}
	if height == 0 {
		height = sh
	}
	if width == sw && height == sh {
		return m
	}

	scaler := f.scaler()

	switch mode {
	case Exact:
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		scaler.Scale(dst, dst.Bounds(), m, src, draw.Src, nil)
		return dst
	case Fill:
		// Crop the source around the center to the target aspect
		// ratio before scaling.
		srcAR := float64(sw) / float64(sh)
		dstAR := float64(width) / float64(height)
		if srcAR < dstAR {
			dh := int(math.Round((float64(sh) - float64(sw)/dstAR) / 2))
			src.Min.Y += dh
			src.Max.Y -= dh
		} else if srcAR > dstAR {
			dw := int(math.Round((float64(sw) - float64(sh)*dstAR) / 2))
			src.Min.X += dw
			src.Max.X -= dw
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		scaler.Scale(dst, dst.Bounds(), m, src, draw.Src, nil)
		return dst
	default: // Fit
		scale := math.Min(float64(width)/float64(sw), float64(height)/float64(sh))
		dw := int(math.Round(float64(sw) * scale))
		dh := int(math.Round(float64(sh) * scale))
		if dw < 1 {
			dw = 1
		}
		if dh < 1 {
			dh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		scaler.Scale(dst, dst.Bounds(), m, src, draw.Src, nil)
		return dst
	}
}
