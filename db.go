package imgarray

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nrot/img-to-array/manifest"
)

// AssetDB is the index of generated assets, keyed by the SHA-1 of the
// source image so unchanged inputs can be skipped.
type AssetDB struct {
	db *sql.DB
}

// NewAssetDB opens or creates the index database at file.
func NewAssetDB(file string) (*AssetDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, source TEXT NOT NULL, output TEXT NOT NULL, symbol TEXT NOT NULL, color TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, length INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &AssetDB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *AssetDB) Close() error {
	return db.db.Close()
}

// Seen reports whether an asset has already been generated from a
// source image with the given SHA-1.
func (db *AssetDB) Seen(sha string) (bool, error) {
	var id int64
	switch err := db.db.QueryRow("SELECT id FROM asset WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		return false, nil
	case nil:
		return true, nil
	default:
		return false, err
	}
}

// Record stores the generated asset for the given symbol.
func (db *AssetDB) Record(symbol string, e manifest.Entry) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO asset (sha1, source, output, symbol, color, width, height, length) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", e.SHA1, e.Source, e.Output, symbol, e.Color, e.Width, e.Height, e.Length); err != nil {
		return err
	}
	return nil
}

// FindBySymbol returns the recorded entry for a symbol.
func (db *AssetDB) FindBySymbol(symbol string) (*manifest.Entry, error) {
	var e manifest.Entry
	switch err := db.db.QueryRow("SELECT sha1, source, output, color, width, height, length FROM asset WHERE symbol = ?", symbol).Scan(&e.SHA1, &e.Source, &e.Output, &e.Color, &e.Width, &e.Height, &e.Length); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &e, nil
	default:
		return nil, err
	}
}
