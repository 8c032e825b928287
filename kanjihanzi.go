// Package gokanjihanzi converts Japanese Kanji into Traditional and Simplified
// Chinese characters, and Chinese characters back into Japanese Kanji.
//
// The conversion is driven by the Kanji mapping table of Chu, Nakazawa and
// Kurohashi (LREC2012). The raw table contains questionable rows, e.g.
//
//	学	學	学
//	學	學	学
//	斈	學	学
//
// so only rows whose Japanese character is one of the 2,310 standard Kanji are
// kept. Build a Table once and share it; it is read-only after construction.
//
// Conversion is rune for rune. Characters without a mapping are passed through
// unchanged, and when a character has several candidates the first one listed
// in the table is used.
package gokanjihanzi

import (
	"fmt"
	"strings"
)

// Target selects the script a conversion produces.
type Target int

const (
	Traditional Target = iota
	Simplified
	Japanese
)

func (t Target) String() string {
	switch t {
	case Traditional:
		return "traditional"
	case Simplified:
		return "simplified"
	case Japanese:
		return "japanese"
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

// ParseTarget accepts the long name or a short alias of a target,
// case-insensitively.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "traditional", "trad", "t":
		return Traditional, nil
	case "simplified", "simp", "s":
		return Simplified, nil
	case "japanese", "ja", "j":
		return Japanese, nil
	}
	return 0, fmt.Errorf("gokanjihanzi: unknown target %q", s)
}

// Entry is one row of the mapping table. Candidates keep the table order; the
// first one is the preferred form.
type Entry struct {
	Japanese    rune
	Traditional []rune
	Simplified  []rune
}

// Candidates returns the candidate list for t. Japanese has no candidate list.
func (e Entry) Candidates(t Target) []rune {
	switch t {
	case Traditional:
		return e.Traditional
	case Simplified:
		return e.Simplified
	}
	return nil
}

func (e Entry) clone() Entry {
	return Entry{
		Japanese:    e.Japanese,
		Traditional: append([]rune(nil), e.Traditional...),
		Simplified:  append([]rune(nil), e.Simplified...),
	}
}
