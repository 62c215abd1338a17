package imgarray

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nrot/img-to-array/emit"
	"github.com/nrot/img-to-array/manifest"
)

const numWorkers = 10

var imageExtensions = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
}

func isImage(file string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(file))]
	return ok
}

// outputName maps an input image filename to the generated source
// filename next to it.
func outputName(input string, lang emit.Lang) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if lang == emit.Go {
		return base + ".go"
	}
	return base + ".h"
}

func (c *Converter) findDirectories(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(dir string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a directory
			if !info.Mode().IsDir() {
				return nil
			}

			select {
			case out <- dir:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (c *Converter) directoryWorker(ctx context.Context, in <-chan string, o Options) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for dir := range in {
			mf := manifest.New()

			entries, err := os.ReadDir(dir)
			if err != nil {
				errc <- err
				return
			}

			for _, entry := range entries {
				if entry.IsDir() || entry.Name()[0] == '.' || !isImage(entry.Name()) {
					continue
				}

				input := filepath.Join(dir, entry.Name())

				// The per-file symbol always derives from the
				// filename when scanning; a fixed symbol would
				// collide across files.
				po := o
				po.Symbol = ""

				asset, err := c.Convert(input, outputName(input, o.Lang), po)
				if err != nil {
					errc <- err
					return
				}
				if asset == nil {
					continue
				}

				if err := mf.Set(asset.Symbol, asset.Entry); err != nil {
					errc <- err
					return
				}
			}

			if mf.Length() > 0 {
				b, err := mf.MarshalBinary()
				if err != nil {
					errc <- err
					return
				}

				f, err := os.Create(filepath.Join(dir, manifest.Filename))
				if err != nil {
					errc <- err
					return
				}

				if _, err = f.Write(b); err != nil {
					f.Close()
					errc <- err
					return
				}

				if err := f.Close(); err != nil {
					errc <- err
					return
				}
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks path and converts every image file found, writing the
// generated source next to each image and a manifest into each
// directory that produced assets.
func (c *Converter) Scan(path string, o Options) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	dirs, errc, err := c.findDirectories(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < numWorkers; i++ {
		errc, err := c.directoryWorker(ctx, dirs, o)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
