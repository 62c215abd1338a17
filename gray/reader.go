package gray

import (
	"errors"
	"image"
	"io"
)

var (
	errBadBounds = errors.New("gray: dimensions must be positive")
	errNotEnough = errors.New("gray: not enough image data")
	errTooMuch   = errors.New("gray: too much image data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Decode reads width * height bytes from r and returns them as an
// image.Image. It is an error for r to hold fewer or more bytes than
// the dimensions require.
func Decode(r io.Reader, width, height int) (image.Image, error) {
	if width < 1 || height < 1 {
		return nil, errBadBounds
	}

	m := image.NewGray(image.Rect(0, 0, width, height))

	if err := readFull(r, m.Pix); err != nil {
		if err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, errNotEnough
	}

	var tmp [1]byte
	if n, err := r.Read(tmp[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil && err != io.EOF {
			return nil, err
		}
		return nil, errTooMuch
	}

	return m, nil
}
