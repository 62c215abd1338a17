package imgarray

import (
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrot/img-to-array/emit"
	"github.com/nrot/img-to-array/raster"
	"github.com/nrot/img-to-array/sprite"
)

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func writeSpritePNG(t *testing.T, dir string) string {
	t.Helper()

	file := filepath.Join(dir, "elka.png")
	f, err := os.Create(file)
	require.Nil(t, err)
	defer f.Close()

	require.Nil(t, png.Encode(f, sprite.GrayImage()))

	return file
}

func TestConvertC(t *testing.T) {
	dir := t.TempDir()
	input := writeSpritePNG(t, dir)
	output := filepath.Join(dir, "elka.h")

	c := New(nil, discard())
	defer c.Close()

	asset, err := c.Convert(input, output, Options{})
	require.Nil(t, err)
	require.NotNil(t, asset)

	assert.Equal(t, "ELKA", asset.Symbol)
	assert.Equal(t, sprite.Width, asset.Width)
	assert.Equal(t, sprite.Height, asset.Height)
	assert.Equal(t, sprite.Length, asset.Length)
	assert.Equal(t, "gray8", asset.Color)

	b, err := os.ReadFile(output)
	require.Nil(t, err)
	s := string(b)

	assert.Contains(t, s, "#ifndef __ELKA")
	assert.Contains(t, s, "#define ELKA_WIDTH 16")
	assert.Contains(t, s, "#define ELKA_HEIGHT 24")
	assert.Contains(t, s, "#define ELKA_PIXEL_SIZE 1")
	assert.Contains(t, s, "uint8_t ELKA[ELKA_LENGTH] = {")
	assert.Contains(t, s, "0x95")

	// One line per image row plus the surrounding scaffolding.
	assert.Equal(t, sprite.Height, strings.Count(s, ", \n"))
}

func TestConvertGo(t *testing.T) {
	dir := t.TempDir()
	input := writeSpritePNG(t, dir)
	output := filepath.Join(dir, "elka.go")

	c := New(nil, discard())
	defer c.Close()

	_, err := c.Convert(input, output, Options{Lang: emit.Go, Package: "assets"})
	require.Nil(t, err)

	b, err := os.ReadFile(output)
	require.Nil(t, err)
	s := string(b)

	assert.Contains(t, s, "package assets")
	assert.Contains(t, s, "ElkaWidth = 16")
	assert.Contains(t, s, "var Elka = [ElkaLength]byte{")
}

func TestConvertPal8(t *testing.T) {
	dir := t.TempDir()
	input := writeSpritePNG(t, dir)
	output := filepath.Join(dir, "elka.h")

	c := New(nil, discard())
	defer c.Close()

	asset, err := c.Convert(input, output, Options{Color: raster.Pal8})
	require.Nil(t, err)
	require.NotNil(t, asset)

	b, err := os.ReadFile(output)
	require.Nil(t, err)
	assert.Contains(t, string(b), "#define ELKA_PALETTE_COLORS ")
}

func TestConvertCompress(t *testing.T) {
	dir := t.TempDir()
	input := writeSpritePNG(t, dir)
	output := filepath.Join(dir, "elka.h")

	c := New(nil, discard())
	defer c.Close()

	asset, err := c.Convert(input, output, Options{Compress: true})
	require.Nil(t, err)
	require.NotNil(t, asset)

	b, err := os.ReadFile(output)
	require.Nil(t, err)
	assert.Contains(t, string(b), "#define ELKA_RAW_LENGTH 384")

	// Compressed payload no longer matches the dimension constants.
	assert.Contains(t, string(b), "uint8_t ELKA[")
	assert.NotContains(t, string(b), "uint8_t ELKA[ELKA_LENGTH]")
}

func TestConvertResize(t *testing.T) {
	dir := t.TempDir()
	input := writeSpritePNG(t, dir)
	output := filepath.Join(dir, "elka.h")

	c := New(nil, discard())
	defer c.Close()

	asset, err := c.Convert(input, output, Options{
		Resize: &ResizeOptions{Width: 8, Height: 12, Mode: raster.Exact},
	})
	require.Nil(t, err)
	require.NotNil(t, asset)

	assert.Equal(t, 8, asset.Width)
	assert.Equal(t, 12, asset.Height)
	assert.Equal(t, 96, asset.Length)
}

func TestConvertSymbolOverride(t *testing.T) {
	dir := t.TempDir()
	input := writeSpritePNG(t, dir)
	output := filepath.Join(dir, "elka.h")

	c := New(nil, discard())
	defer c.Close()

	asset, err := c.Convert(input, output, Options{Symbol: "TREE", Guard: "ASSETS"})
	require.Nil(t, err)

	assert.Equal(t, "TREE", asset.Symbol)

	b, err := os.ReadFile(output)
	require.Nil(t, err)
	assert.Contains(t, string(b), "#ifndef __ASSETS")
	assert.Contains(t, string(b), "uint8_t TREE[TREE_LENGTH] = {")
}

func TestConvertMissingInput(t *testing.T) {
	dir := t.TempDir()

	c := New(nil, discard())
	defer c.Close()

	_, err := c.Convert(filepath.Join(dir, "missing.png"), filepath.Join(dir, "missing.h"), Options{})
	assert.NotNil(t, err)
}
