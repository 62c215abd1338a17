/*
Package manifest implements the small index written to each directory
that assets have been generated in, recording every emitted symbol and
where it came from.
*/
package manifest

import (
	"encoding/json"
	"errors"
	"sort"
)

// Filename is the expected filename used when writing to disk
const Filename = "assets.json"

// Entry describes one generated asset.
type Entry struct {
	Source string `json:"source"`
	Output string `json:"output"`
	SHA1   string `json:"sha1"`
	Color  string `json:"color"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Length int    `json:"length"`
}

// Manifest is the per-directory asset index. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type Manifest struct {
	entries map[string]Entry
}

// New returns an empty manifest
func New() *Manifest {
	return &Manifest{
		entries: make(map[string]Entry),
	}
}

// Length returns the number of assets in the manifest
func (m *Manifest) Length() int {
	return len(m.entries)
}

// Set stores the entry for the given symbol
func (m *Manifest) Set(symbol string, e Entry) error {
	if symbol == "" {
		return errors.New("manifest: empty symbol")
	}
	m.entries[symbol] = e
	return nil
}

// Get returns the entry for the given symbol, if present
func (m *Manifest) Get(symbol string) (Entry, bool) {
	e, ok := m.entries[symbol]
	return e, ok
}

type document struct {
	Symbol string `json:"symbol"`
	Entry
}

// MarshalBinary encodes the manifest and returns the result. Entries
// are sorted by symbol so output is stable across runs.
func (m *Manifest) MarshalBinary() ([]byte, error) {
	symbols := make([]string, 0, len(m.entries))
	for s := range m.entries {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	docs := make([]document, 0, len(symbols))
	for _, s := range symbols {
		docs = append(docs, document{Symbol: s, Entry: m.entries[s]})
	}

	return json.MarshalIndent(docs, "", "  ")
}

// UnmarshalBinary decodes the manifest from its serialized form
func (m *Manifest) UnmarshalBinary(b []byte) error {
	var docs []document
	if err := json.Unmarshal(b, &docs); err != nil {
		return err
	}

	m.entries = make(map[string]Entry, len(docs))
	for _, d := range docs {
		m.entries[d.Symbol] = d.Entry
	}

	return nil
}
