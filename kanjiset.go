package gokanjihanzi

import (
	"strings"
	"unicode/utf8"
)

// StandardKanjiCount is the size of the standard Kanji list.
const StandardKanjiCount = 2310

// KanjiSet is an immutable set of accepted Japanese Kanji.
type KanjiSet struct {
	m map[rune]struct{}
}

// NewKanjiSet returns a set holding runes.
func NewKanjiSet(runes ...rune) KanjiSet {
	m := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		m[r] = struct{}{}
	}
	return KanjiSet{m: m}
}

// ParseKanjiList builds a set from a list with one Kanji per line. The first
// character of every non-blank line is taken.
func ParseKanjiList(text string) KanjiSet {
	var runes []rune
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(line)
		runes = append(runes, r)
	}
	return NewKanjiSet(runes...)
}

func (s KanjiSet) Contains(r rune) bool {
	_, ok := s.m[r]
	return ok
}

func (s KanjiSet) Len() int { return len(s.m) }
