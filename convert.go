package gokanjihanzi

import "strings"

// Convert rewrites text rune by rune into target. Runes without a mapping are
// kept, so the result always has as many runes as text. Invalid UTF-8 bytes
// become utf8.RuneError.
func (t *Table) Convert(text string, target Target) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, runeValue := range text {
		b.WriteRune(t.convertRune(runeValue, target))
	}
	return b.String()
}

// ToTraditional converts Japanese Kanji to Traditional Chinese.
func (t *Table) ToTraditional(text string) string {
	return t.Convert(text, Traditional)
}

// ToSimplified converts Japanese Kanji to Simplified Chinese.
func (t *Table) ToSimplified(text string) string {
	return t.Convert(text, Simplified)
}

// ToJapanese converts Chinese characters to Japanese Kanji.
func (t *Table) ToJapanese(text string) string {
	return t.Convert(text, Japanese)
}

func (t *Table) convertRune(r rune, target Target) rune {
	if t == nil {
		return r
	}
	e, ok := t.entries[r]
	if target == Japanese {
		if ok {
			return r
		}
		if v, ok := t.reverse[r]; ok {
			return v
		}
		return r
	}
	if !ok {
		return r
	}
	if candidates := e.Candidates(target); len(candidates) > 0 {
		return candidates[0]
	}
	return r
}

