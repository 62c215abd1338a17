package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSource() *Source {
	return &Source{
		Symbol:         "DOT",
		Width:          2,
		Height:         2,
		WidthDelimiter: 1,
		PixelSize:      1,
		Payload:        []byte{0x00, 0x01, 0x02, 0x03},
	}
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "ELKA", Symbol("testdata/elka.png"))
	assert.Equal(t, "SOME_IMAGE", Symbol("some-image.jpg"))
	assert.Equal(t, "IMAGE", Symbol(""))
}

func TestWriteC(t *testing.T) {
	b := new(bytes.Buffer)
	assert.Nil(t, testSource().Render(b, C))

	expected := strings.Join([]string{
		"#ifndef __DOT",
		"#define __DOT",
		"",
		"#include <stdint.h>",
		"#define DOT_HEIGHT 2",
		"#define DOT_WIDTH 2",
		"#define DOT_WIDTH_DELIMITER 1",
		"#define DOT_WIDTH_BYTES DOT_WIDTH / DOT_WIDTH_DELIMITER",
		"#define DOT_PIXEL_SIZE 1",
		"#define DOT_LENGTH DOT_HEIGHT * DOT_PIXEL_SIZE * DOT_WIDTH_BYTES",
		"uint8_t DOT[DOT_LENGTH] = {",
		"0x00, 0x01, ",
		"0x02, 0x03, ",
		"};",
		"#endif //__DOT",
		"",
	}, "\n")

	assert.Equal(t, expected, b.String())
}

func TestWriteCGuardAndIncludes(t *testing.T) {
	s := testSource()
	s.Guard = "ASSETS"
	s.Includes = []string{"<stdint.h>", "\"display.h\""}

	b := new(bytes.Buffer)
	assert.Nil(t, s.Render(b, C))

	assert.Contains(t, b.String(), "#ifndef __ASSETS")
	assert.Contains(t, b.String(), "#include \"display.h\"")
	assert.Contains(t, b.String(), "#endif //__ASSETS")
}

func TestWriteCVariableLength(t *testing.T) {
	s := testSource()
	s.Payload = []byte{0x02, 0x00, 0x87}

	b := new(bytes.Buffer)
	assert.Nil(t, s.Render(b, C))

	// Payload length no longer matches the dimension constants so
	// the array size must be a literal.
	assert.Contains(t, b.String(), "uint8_t DOT[3] = {")
}

func TestWriteCExtraConst(t *testing.T) {
	s := testSource()
	s.Extra = []Const{{Name: "PALETTE_COLORS", Value: 4}}

	b := new(bytes.Buffer)
	assert.Nil(t, s.Render(b, C))
	assert.Contains(t, b.String(), "#define DOT_PALETTE_COLORS 4")
}

func TestWriteGo(t *testing.T) {
	b := new(bytes.Buffer)
	assert.Nil(t, testSource().Render(b, Go))

	expected := strings.Join([]string{
		"// Code generated by img-to-array. DO NOT EDIT.",
		"",
		"package assets",
		"",
		"const (",
		"\tDotWidth = 2",
		"\tDotHeight = 2",
		"\tDotWidthDelimiter = 1",
		"\tDotWidthBytes = DotWidth / DotWidthDelimiter",
		"\tDotPixelSize = 1",
		"\tDotLength = DotHeight * DotPixelSize * DotWidthBytes",
		")",
		"",
		"var Dot = [DotLength]byte{",
		"\t0x00, 0x01,",
		"\t0x02, 0x03,",
		"}",
		"",
	}, "\n")

	assert.Equal(t, expected, b.String())
}

func TestWriteGoPackage(t *testing.T) {
	s := testSource()
	s.Package = "sprite"

	b := new(bytes.Buffer)
	assert.Nil(t, s.Render(b, Go))
	assert.Contains(t, b.String(), "package sprite\n")
}

func TestGoSymbol(t *testing.T) {
	assert.Equal(t, "ElkaTree", goSymbol("ELKA_TREE"))
	assert.Equal(t, "Dot", goSymbol("DOT"))
}

func TestViews(t *testing.T) {
	tables := []struct {
		view     View
		expected string
	}{
		{Hex, "0xff"},
		{Dec, "255"},
		{SDec, " -1"},
		{Bin, "0b11111111"},
	}

	for _, table := range tables {
		s := testSource()
		s.View = table.view
		assert.Equal(t, table.expected, s.value(0xff))
	}
}

func TestParseLang(t *testing.T) {
	l, err := ParseLang("go")
	assert.Nil(t, err)
	assert.Equal(t, Go, l)

	_, err = ParseLang("rust")
	assert.NotNil(t, err)
}

func TestParseView(t *testing.T) {
	v, err := ParseView("bin")
	assert.Nil(t, err)
	assert.Equal(t, Bin, v)

	_, err = ParseView("oct")
	assert.NotNil(t, err)
}
