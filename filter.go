package gokanjihanzi

import (
	"fmt"
	"sort"
	"strings"
)

// DuplicatePolicy decides what happens when the table lists the same
// Japanese Kanji more than once.
type DuplicatePolicy int

const (
	// LastWins keeps the last row.
	LastWins DuplicatePolicy = iota
	// FirstWins keeps the first row.
	FirstWins
	// MergeCandidates appends the candidates of later rows that are not
	// already present.
	MergeCandidates
)

// DefaultDuplicatePolicy is used by Filter when no policy is given.
const DefaultDuplicatePolicy = LastWins

func (p DuplicatePolicy) String() string {
	switch p {
	case LastWins:
		return "last"
	case FirstWins:
		return "first"
	case MergeCandidates:
		return "merge"
	}
	return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
}

// ParseDuplicatePolicy accepts "last", "first" or "merge".
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "last", "last-wins":
		return LastWins, nil
	case "first", "first-wins":
		return FirstWins, nil
	case "merge":
		return MergeCandidates, nil
	}
	return 0, fmt.Errorf("gokanjihanzi: unknown duplicate policy %q", s)
}

type filterConfig struct {
	policy DuplicatePolicy
}

// FilterOption customises Filter.
type FilterOption func(*filterConfig)

// WithDuplicatePolicy sets how repeated Japanese Kanji are resolved.
func WithDuplicatePolicy(p DuplicatePolicy) FilterOption {
	return func(cfg *filterConfig) {
		cfg.policy = p
	}
}

// Table maps accepted Japanese Kanji to their entries. It is never modified
// after construction and may be shared between goroutines.
type Table struct {
	entries map[rune]Entry
	// reverse maps a primary Chinese candidate back to its Japanese Kanji.
	reverse map[rune]rune
}

// Filter keeps the entries whose Japanese Kanji is in accepted and indexes
// them. It does not modify entries.
func Filter(entries []Entry, accepted KanjiSet, opts ...FilterOption) *Table {
	cfg := filterConfig{policy: DefaultDuplicatePolicy}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table{
		entries: make(map[rune]Entry),
		reverse: make(map[rune]rune),
	}
	for _, e := range entries {
		if !accepted.Contains(e.Japanese) {
			continue
		}
		t.insert(e.clone(), cfg.policy)
		t.index(e)
	}
	return t
}

func (t *Table) insert(e Entry, policy DuplicatePolicy) {
	prev, ok := t.entries[e.Japanese]
	if !ok {
		t.entries[e.Japanese] = e
		return
	}
	switch policy {
	case FirstWins:
	case MergeCandidates:
		prev.Traditional = mergeRunes(prev.Traditional, e.Traditional)
		prev.Simplified = mergeRunes(prev.Simplified, e.Simplified)
		t.entries[e.Japanese] = prev
	default:
		t.entries[e.Japanese] = e
	}
}

func (t *Table) index(e Entry) {
	for _, candidates := range [][]rune{e.Traditional, e.Simplified} {
		if len(candidates) == 0 {
			continue
		}
		if _, ok := t.reverse[candidates[0]]; !ok {
			t.reverse[candidates[0]] = e.Japanese
		}
	}
}

func mergeRunes(dst, src []rune) []rune {
	for _, r := range src {
		found := false
		for _, d := range dst {
			if d == r {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, r)
		}
	}
	return dst
}

// Lookup returns the entry of a Japanese Kanji.
func (t *Table) Lookup(r rune) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.entries[r]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// Len returns the number of Japanese Kanji in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Keys returns the Japanese Kanji of the table in code point order.
func (t *Table) Keys() []rune {
	if t == nil {
		return nil
	}
	keys := make([]rune, 0, len(t.entries))
	for r := range t.entries {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// EntryPredicate decides whether an entry stays in a restricted table.
type EntryPredicate interface {
	Keep(Entry) bool
}

// PredicateFunc adapts a function to EntryPredicate.
type PredicateFunc func(Entry) bool

func (f PredicateFunc) Keep(e Entry) bool { return f(e) }

// All keeps an entry only when every predicate keeps it.
func All(preds ...EntryPredicate) EntryPredicate {
	return PredicateFunc(func(e Entry) bool {
		for _, p := range preds {
			if !p.Keep(e) {
				return false
			}
		}
		return true
	})
}

// Restrict returns a new table holding the entries p keeps. The reverse
// index only retains mappings to Kanji that are still in the table.
func (t *Table) Restrict(p EntryPredicate) *Table {
	out := &Table{
		entries: make(map[rune]Entry),
		reverse: make(map[rune]rune),
	}
	if t == nil {
		return out
	}
	for r, e := range t.entries {
		if p.Keep(e.clone()) {
			out.entries[r] = e
		}
	}
	for from, to := range t.reverse {
		if _, ok := out.entries[to]; ok {
			out.reverse[from] = to
		}
	}
	return out
}
