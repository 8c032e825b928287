package gokanjihanzi

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeAll reads r as UTF-8, honouring a UTF-8 or UTF-16 byte order mark.
func decodeAll(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadTable reads and parses a whole mapping table. The returned error only
// reports read failures; malformed rows are returned as row errors.
func ReadTable(r io.Reader, f Format) ([]Entry, []*RowError, error) {
	text, err := decodeAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read table: %w", err)
	}
	entries, rowErrs := ParseTable(text, f)
	return entries, rowErrs, nil
}

// ReadKanjiList reads a Kanji list with one character per line.
func ReadKanjiList(r io.Reader) (KanjiSet, error) {
	text, err := decodeAll(r)
	if err != nil {
		return KanjiSet{}, fmt.Errorf("read kanji list: %w", err)
	}
	return ParseKanjiList(text), nil
}
