package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	imgarray "github.com/nrot/img-to-array"
	"github.com/nrot/img-to-array/emit"
	"github.com/nrot/img-to-array/raster"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func convertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Value:   "gray8",
			Usage:   "output pixel encoding (gray8, rgb8, rgb16, wb1, rle, ssd1306, pal8)",
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Value:   "c",
			Usage:   "output language (c, go)",
		},
		&cli.StringFlag{
			Name:  "view",
			Value: "hex",
			Usage: "value rendering (hex, dec, sdec, bin)",
		},
		&cli.StringFlag{
			Name:    "symbol",
			Aliases: []string{"n"},
			Usage:   "name of the emitted array, derived from the filename if empty",
		},
		&cli.StringFlag{
			Name:  "guard",
			Usage: "include guard for C output",
		},
		&cli.StringFlag{
			Name:  "package",
			Usage: "package clause for Go output",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Value: cli.NewStringSlice("<stdint.h>"),
			Usage: "headers to include in C output",
		},
		&cli.BoolFlag{
			Name:    "invert",
			Aliases: []string{"i"},
			Usage:   "invert colors",
		},
		&cli.Float64Flag{
			Name:  "blur",
			Usage: "blur the image with the given sigma",
		},
		&cli.UintFlag{
			Name:  "black-level",
			Value: raster.DefaultBlackLevel,
			Usage: "luma threshold for the 1-bit encodings",
		},
		&cli.BoolFlag{
			Name:  "big-endian",
			Usage: "emit 16-bit channel values big endian",
		},
		&cli.BoolFlag{
			Name:  "compress",
			Usage: "zstd compress the payload",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "resize to this width",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "resize to this height",
		},
		&cli.StringFlag{
			Name:  "mode",
			Value: "fit",
			Usage: "resize mode (fit, exact, fill)",
		},
		&cli.StringFlag{
			Name:  "filter",
			Value: "catmull-rom",
			Usage: "resize filter (nearest, approx-bilinear, bilinear, catmull-rom)",
		},
	}
}

func options(c *cli.Context) (imgarray.Options, error) {
	var o imgarray.Options
	var err error

	if o.Color, err = raster.ParseColor(c.String("color")); err != nil {
		return o, err
	}
	if o.Lang, err = emit.ParseLang(c.String("lang")); err != nil {
		return o, err
	}
	if o.View, err = emit.ParseView(c.String("view")); err != nil {
		return o, err
	}

	o.Symbol = c.String("symbol")
	o.Guard = c.String("guard")
	o.Package = c.String("package")
	o.Includes = c.StringSlice("include")
	o.Invert = c.Bool("invert")
	o.Blur = c.Float64("blur")
	o.BigEndian = c.Bool("big-endian")
	o.Compress = c.Bool("compress")

	bl := c.Uint("black-level")
	if bl > 255 {
		return o, fmt.Errorf("black-level must be between 0 and 255, got %d", bl)
	}
	level := uint8(bl)
	o.BlackLevel = &level

	if c.Int("width") > 0 || c.Int("height") > 0 {
		r := &imgarray.ResizeOptions{
			Width:  c.Int("width"),
			Height: c.Int("height"),
		}
		if r.Mode, err = raster.ParseResizeMode(c.String("mode")); err != nil {
			return o, err
		}
		if r.Filter, err = raster.ParseFilter(c.String("filter")); err != nil {
			return o, err
		}
		o.Resize = r
	}

	return o, nil
}

func newConverter(c *cli.Context) (*imgarray.Converter, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	var db *imgarray.AssetDB
	if file := c.String("db"); file != "" {
		var err error
		if db, err = imgarray.NewAssetDB(file); err != nil {
			return nil, err
		}
	}

	return imgarray.New(db, logger), nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "img-to-array"
	app.Usage = "convert images to embeddable source arrays"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"IMG_TO_ARRAY_DB"},
			Usage:   "path to the asset index database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert one image to a source file",
			Description: "",
			ArgsUsage:   "INPUT OUTPUT",
			Flags:       convertFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				o, err := options(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				conv, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer conv.Close()

				if _, err := conv.Convert(c.Args().Get(0), c.Args().Get(1), o); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every image under a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags:       convertFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				o, err := options(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				conv, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer conv.Close()

				if err := conv.Scan(c.Args().First(), o); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
