package gokanjihanzi

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer returns a transform.Transformer applying the same conversion as
// Convert to a byte stream. It keeps no state between calls.
func (t *Table) Transformer(target Target) transform.Transformer {
	return &converter{table: t, target: target}
}

type converter struct {
	transform.NopResetter
	table  *Table
	target Target
}

func (c *converter) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		out := c.table.convertRune(r, c.target)
		if nDst+utf8.RuneLen(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], out)
		nSrc += size
	}
	return nDst, nSrc, nil
}
