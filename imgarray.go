/*
Package imgarray is a library for converting images into embeddable
source arrays: C headers or Go files holding the raw pixel data as a
fixed-size byte array alongside its dimension constants.
*/
package imgarray

import (
	"log"

	"github.com/nrot/img-to-array/manifest"
)

// Converter converts images to generated source files, optionally
// recording every generated asset in an index database so unchanged
// inputs can be skipped on later runs.
type Converter struct {
	db     *AssetDB
	logger *log.Logger
}

// New returns a Converter. db may be nil to convert without an index.
func New(db *AssetDB, logger *log.Logger) *Converter {
	return &Converter{
		db:     db,
		logger: logger,
	}
}

// Close releases the index database, if one was supplied.
func (c *Converter) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Asset describes one generated asset.
type Asset struct {
	Symbol string
	manifest.Entry
}
