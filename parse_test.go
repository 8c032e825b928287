package gokanjihanzi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Entry
		reason string
	}{
		{
			name: "multiple candidates",
			line: "七\t七,柒,漆\t七,柒,漆",
			want: Entry{Japanese: '七', Traditional: []rune("七柒漆"), Simplified: []rune("七柒漆")},
		},
		{
			name: "no candidate marker",
			line: "鰄\tN/A\tN/A",
			want: Entry{Japanese: '鰄'},
		},
		{
			name: "cells are trimmed",
			line: " 学 \t 學 , 斈 \t 学 ",
			want: Entry{Japanese: '学', Traditional: []rune("學斈"), Simplified: []rune("学")},
		},
		{
			name: "empty candidate cell",
			line: "円\t\t円",
			want: Entry{Japanese: '円', Simplified: []rune("円")},
		},
		{
			name: "extra columns are ignored",
			line: "国\t國\t国\tnote",
			want: Entry{Japanese: '国', Traditional: []rune("國"), Simplified: []rune("国")},
		},
		{name: "random text", line: "just some random text", reason: "column count 1, want 3"},
		{name: "empty kanji", line: " \t人\t人", reason: "empty kanji"},
		{name: "two kanji", line: "日本\t日本\t日本", reason: `multi-character kanji "日本"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := parseRow(tt.line, DefaultFormat)
			assert.Equal(t, tt.reason, reason)
			if tt.reason == "" {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseTable(t *testing.T) {
	entries, rowErrs := ParseTable(readTestdata(t, "kanji_mapping_table.txt"), DefaultFormat)

	var japanese []rune
	for _, e := range entries {
		japanese = append(japanese, e.Japanese)
	}
	assert.Equal(t, []rune("七學学斈医生鰄国漢円"), japanese, "source order, no dedup")

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 9, rowErrs[0].Line)
	assert.Equal(t, 14, rowErrs[1].Line)
	assert.Equal(t, "empty kanji", rowErrs[1].Reason)
	for _, rowErr := range rowErrs {
		assert.True(t, errors.Is(rowErr, ErrMalformedRow))
	}
}

func TestParseTableCustomFormat(t *testing.T) {
	f := Format{Delimiter: "|", CandidateSeparator: " ", NoCandidate: "-"}
	entries, rowErrs := ParseTable("㐀 | 㐀 㐁 | 㐀\r\n漢|-|汉\r\n", f)

	require.Empty(t, rowErrs)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Japanese: '㐀', Traditional: []rune("㐀㐁"), Simplified: []rune("㐀")}, entries[0])
	assert.Equal(t, Entry{Japanese: '漢', Simplified: []rune("汉")}, entries[1])
}

func TestParseTableCommentsDisabled(t *testing.T) {
	f := DefaultFormat
	f.CommentPrefix = ""
	entries, rowErrs := ParseTable("#\t#\t#\n", f)

	require.Empty(t, rowErrs)
	require.Len(t, entries, 1)
	assert.Equal(t, '#', entries[0].Japanese)
}

func TestRowErrorMessage(t *testing.T) {
	err := &RowError{Line: 3, Text: "x", Reason: "empty kanji"}
	assert.Equal(t, "line 3: malformed row: empty kanji", err.Error())
}
