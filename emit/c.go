package emit

import (
	"fmt"
	"io"
)

// fixedLength returns the payload size implied by the dimension
// constants, matching the arithmetic in the generated LENGTH macro.
func (s *Source) fixedLength() int {
	n := s.Height * s.pixelSize() * (s.Width / s.widthDelimiter())
	if s.Width*s.Height*s.pixelSize()%s.widthDelimiter() != 0 {
		n++
	}
	return n
}

func (s *Source) writeC(w io.Writer) error {
	guard := s.guard()

	if _, err := fmt.Fprintf(w, "#ifndef __%s\n#define __%s\n\n", guard, guard); err != nil {
		return err
	}

	for _, include := range s.includes() {
		if _, err := fmt.Fprintf(w, "#include %s\n", include); err != nil {
			return err
		}
	}

	defines := []struct {
		name  string
		value string
	}{
		{"HEIGHT", fmt.Sprintf("%d", s.Height)},
		{"WIDTH", fmt.Sprintf("%d", s.Width)},
		{"WIDTH_DELIMITER", fmt.Sprintf("%d", s.widthDelimiter())},
		{"WIDTH_BYTES", fmt.Sprintf("%s_WIDTH / %s_WIDTH_DELIMITER", s.Symbol, s.Symbol)},
		{"PIXEL_SIZE", fmt.Sprintf("%d", s.pixelSize())},
		{"LENGTH", fmt.Sprintf("%s_HEIGHT * %s_PIXEL_SIZE * %s_WIDTH_BYTES", s.Symbol, s.Symbol, s.Symbol)},
	}

	for _, d := range defines {
		if _, err := fmt.Fprintf(w, "#define %s_%s %s\n", s.Symbol, d.name, d.value); err != nil {
			return err
		}
	}

	for _, c := range s.Extra {
		if _, err := fmt.Fprintf(w, "#define %s_%s %d\n", s.Symbol, c.Name, c.Value); err != nil {
			return err
		}
	}

	// Variable length payloads get a literal array size since the
	// LENGTH macro only describes fixed encodings.
	size := fmt.Sprintf("%s_LENGTH", s.Symbol)
	if len(s.Payload) != s.fixedLength() {
		size = fmt.Sprintf("%d", len(s.Payload))
	}

	if _, err := fmt.Fprintf(w, "uint8_t %s[%s] = {\n", s.Symbol, size); err != nil {
		return err
	}

	if err := s.writeValues(w); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "};\n#endif //__%s\n", guard)
	return err
}
