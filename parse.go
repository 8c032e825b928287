package gokanjihanzi

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Format describes the notation of a mapping table.
type Format struct {
	// Delimiter separates the Japanese, Traditional and Simplified columns.
	Delimiter string
	// CandidateSeparator separates candidates inside a cell.
	CandidateSeparator string
	// NoCandidate marks a cell without any conversion.
	NoCandidate string
	// CommentPrefix starts a line that is ignored. Empty disables comments.
	CommentPrefix string
}

// DefaultFormat is the notation of the upstream table.
var DefaultFormat = Format{
	Delimiter:          "\t",
	CandidateSeparator: ",",
	NoCandidate:        "N/A",
	CommentPrefix:      "#",
}

// ErrMalformedRow is wrapped by every RowError.
var ErrMalformedRow = errors.New("malformed row")

// RowError reports a table row that was skipped.
type RowError struct {
	Line   int
	Text   string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, ErrMalformedRow, e.Reason)
}

func (e *RowError) Unwrap() error { return ErrMalformedRow }

// ParseTable parses the mapping table text into entries, in source order.
// Malformed rows are skipped and returned as the second value; they never
// stop the parse.
func ParseTable(text string, f Format) ([]Entry, []*RowError) {
	if f.Delimiter == "" {
		f.Delimiter = DefaultFormat.Delimiter
	}

	var (
		entries []Entry
		errs    []*RowError
	)
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if f.CommentPrefix != "" && strings.HasPrefix(trimmed, f.CommentPrefix) {
			continue
		}

		entry, reason := parseRow(line, f)
		if reason != "" {
			errs = append(errs, &RowError{Line: i + 1, Text: line, Reason: reason})
			continue
		}
		entries = append(entries, entry)
	}
	return entries, errs
}

func parseRow(line string, f Format) (Entry, string) {
	cells := strings.Split(line, f.Delimiter)
	if len(cells) < 3 {
		return Entry{}, fmt.Sprintf("column count %d, want 3", len(cells))
	}

	kanji := strings.TrimSpace(cells[0])
	switch utf8.RuneCountInString(kanji) {
	case 0:
		return Entry{}, "empty kanji"
	case 1:
	default:
		return Entry{}, fmt.Sprintf("multi-character kanji %q", kanji)
	}
	r, _ := utf8.DecodeRuneInString(kanji)

	return Entry{
		Japanese:    r,
		Traditional: splitCandidates(cells[1], f),
		Simplified:  splitCandidates(cells[2], f),
	}, ""
}

func splitCandidates(cell string, f Format) []rune {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	parts := []string{cell}
	if f.CandidateSeparator != "" {
		parts = strings.Split(cell, f.CandidateSeparator)
	}

	var out []rune
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == f.NoCandidate {
			continue
		}
		r, _ := utf8.DecodeRuneInString(part)
		out = append(out, r)
	}
	return out
}
