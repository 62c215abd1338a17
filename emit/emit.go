/*
Package emit renders an encoded pixel payload as compilable source
code: a C header in the classic embedded style, or a Go file holding
the same data as a fixed-size byte array.

The generated length constant is always expressed as the product of the
height, pixel size and width-bytes constants rather than a literal, so
the array declaration cannot drift out of step with the dimensions.
*/
package emit

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Lang selects the output language.
type Lang int

const (
	C Lang = iota
	Go
)

// View selects how individual payload bytes are rendered.
type View int

const (
	Hex View = iota
	Dec
	SDec
	Bin
)

var langNames = map[Lang]string{
	C:  "c",
	Go: "go",
}

var viewNames = map[View]string{
	Hex:  "hex",
	Dec:  "dec",
	SDec: "sdec",
	Bin:  "bin",
}

func (l Lang) String() string {
	if s, ok := langNames[l]; ok {
		return s
	}
	return fmt.Sprintf("lang(%d)", int(l))
}

func (v View) String() string {
	if s, ok := viewNames[v]; ok {
		return s
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// ParseLang maps a command line value to a Lang.
func ParseLang(s string) (Lang, error) {
	for l, name := range langNames {
		if name == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("emit: unknown output language %q", s)
}

// ParseView maps a command line value to a View.
func ParseView(s string) (View, error) {
	for v, name := range viewNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("emit: unknown output view %q", s)
}

// Const is an extra named constant emitted alongside the dimension
// constants, such as the palette size of a pal8 payload.
type Const struct {
	Name  string
	Value int
}

// Source describes one generated asset.
type Source struct {
	// Symbol is the base identifier; the dimension constants derive
	// their names from it.
	Symbol string
	// Guard overrides the C include guard; it defaults to Symbol.
	Guard string
	// Includes lists the C headers to include; it defaults to
	// <stdint.h>.
	Includes []string
	// Package is the package clause of Go output; it defaults to
	// "assets".
	Package string

	Width, Height  int
	WidthDelimiter int
	PixelSize      int
	Extra          []Const

	Payload []byte
	View    View
}

// Symbol derives an identifier from an input filename the same way the
// original tool did: basename without extension, uppercased, with
// dashes turned into underscores.
func Symbol(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ToUpper(name)
	name = strings.ReplaceAll(name, "-", "_")
	if name == "" {
		return "IMAGE"
	}
	return name
}

func (s *Source) guard() string {
	if s.Guard != "" {
		return s.Guard
	}
	return s.Symbol
}

func (s *Source) includes() []string {
	if len(s.Includes) > 0 {
		return s.Includes
	}
	return []string{"<stdint.h>"}
}

func (s *Source) widthDelimiter() int {
	if s.WidthDelimiter < 1 {
		return 1
	}
	return s.WidthDelimiter
}

func (s *Source) pixelSize() int {
	if s.PixelSize < 1 {
		return 1
	}
	return s.PixelSize
}

// valuesPerLine returns how many payload bytes make up one image row,
// used to break the array literal into lines.
func (s *Source) valuesPerLine() int {
	n := s.Width / s.widthDelimiter() * s.pixelSize()
	if n < 1 {
		n = 16
	}
	return n
}

func (s *Source) value(b byte) string {
	switch s.View {
	case Dec:
		return fmt.Sprintf("%3d", b)
	case SDec:
		return fmt.Sprintf("%3d", int8(b))
	case Bin:
		return fmt.Sprintf("0b%08b", b)
	default:
		return fmt.Sprintf("0x%02x", b)
	}
}

func (s *Source) writeValues(w io.Writer) error {
	perLine := s.valuesPerLine()
	for i, b := range s.Payload {
		if _, err := fmt.Fprintf(w, "%s, ", s.value(b)); err != nil {
			return err
		}
		if (i+1)%perLine == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	if len(s.Payload)%perLine != 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Render writes the source in the given language.
func (s *Source) Render(w io.Writer, lang Lang) error {
	switch lang {
	case Go:
		return s.writeGo(w)
	default:
		return s.writeC(w)
	}
}
