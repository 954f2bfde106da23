// Package sanitize implements the input sanitation contract of spec §4.6:
// byte sequences that cannot be interpreted as text must reach the output
// verbatim and must never be handed to the pattern matcher. Go strings are
// UTF-8 by construction, so in practice this package's job is to find the
// rare malformed byte run in otherwise-valid input and wall it off before
// normalization and matching ever see it.
package sanitize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Segment is a contiguous run of the input that is either well-formed
// text (Valid) or an undecodable byte sequence that must pass through
// unchanged (Valid == false).
type Segment struct {
	Text  string
	Valid bool
}

// Split partitions text into a sequence of valid/invalid segments. Valid
// segments are safe to case-normalize and match against the pattern
// table; invalid segments must be emitted unchanged and must never
// advance into a match.
func Split(text string) []Segment {
	if utf8.ValidString(text) {
		return []Segment{{Text: text, Valid: true}}
	}

	var segments []Segment
	var valid strings.Builder
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			if valid.Len() > 0 {
				segments = append(segments, Segment{Text: valid.String(), Valid: true})
				valid.Reset()
			}
			segments = append(segments, Segment{Text: text[i : i+1], Valid: false})
			i++
			continue
		}
		valid.WriteString(text[i : i+size])
		i += size
	}
	if valid.Len() > 0 {
		segments = append(segments, Segment{Text: valid.String(), Valid: true})
	}
	return segments
}

// Transformer exposes the same pass-through-on-error behavior as a
// transform.Transformer, for callers composing sanitize into a
// golang.org/x/text transform.Chain ahead of further processing.
type Transformer struct{ transform.NopResetter }

// Transform implements transform.Transformer. Well-formed runes are
// copied through unchanged; a malformed byte is copied through as-is
// rather than rejected, matching Split's pass-through contract.
func (Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && nSrc == len(src)-1 {
				// Might be a truncated multi-byte sequence; wait for more.
				return nDst, nSrc, transform.ErrShortSrc
			}
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}
