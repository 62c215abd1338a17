package emit

import (
	"fmt"
	"io"
	"strings"
)

func (s *Source) packageName() string {
	if s.Package != "" {
		return s.Package
	}
	return "assets"
}

// goSymbol converts an emitted symbol such as ELKA_TREE into the
// exported Go identifier ElkaTree.
func goSymbol(symbol string) string {
	parts := strings.Split(strings.ToLower(symbol), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}

func (s *Source) writeGo(w io.Writer) error {
	sym := goSymbol(s.Symbol)

	if _, err := fmt.Fprintf(w, "// Code generated by img-to-array. DO NOT EDIT.\n\npackage %s\n\n", s.packageName()); err != nil {
		return err
	}

	consts := []struct {
		name  string
		value string
	}{
		{"Width", fmt.Sprintf("%d", s.Width)},
		{"Height", fmt.Sprintf("%d", s.Height)},
		{"WidthDelimiter", fmt.Sprintf("%d", s.widthDelimiter())},
		{"WidthBytes", fmt.Sprintf("%sWidth / %sWidthDelimiter", sym, sym)},
		{"PixelSize", fmt.Sprintf("%d", s.pixelSize())},
		{"Length", fmt.Sprintf("%sHeight * %sPixelSize * %sWidthBytes", sym, sym, sym)},
	}

	if _, err := fmt.Fprintln(w, "const ("); err != nil {
		return err
	}
	for _, c := range consts {
		if _, err := fmt.Fprintf(w, "\t%s%s = %s\n", sym, c.name, c.value); err != nil {
			return err
		}
	}
	for _, c := range s.Extra {
		if _, err := fmt.Fprintf(w, "\t%s%s = %d\n", sym, goSymbol(c.Name), c.Value); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ")"); err != nil {
		return err
	}

	size := fmt.Sprintf("%sLength", sym)
	if len(s.Payload) != s.fixedLength() {
		size = fmt.Sprintf("%d", len(s.Payload))
	}

	if _, err := fmt.Fprintf(w, "\nvar %s = [%s]byte{\n", sym, size); err != nil {
		return err
	}

	perLine := s.valuesPerLine()
	for i, b := range s.Payload {
		if i%perLine == 0 {
			if _, err := fmt.Fprint(w, "\t"); err != nil {
				return err
			}
		}
		// Signed decimal cannot appear in a byte array literal, so
		// Go output falls back to plain decimal for that view.
		v := s.value(b)
		if s.View == SDec {
			v = fmt.Sprintf("%3d", b)
		}
		if _, err := fmt.Fprintf(w, "%s,", v); err != nil {
			return err
		}
		if (i+1)%perLine == 0 || i == len(s.Payload)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
